package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa a configuração da aplicação (leitura via Viper de env e opcionalmente arquivo).
type Config struct {
	App    AppConfig
	Store  StoreConfig
	Import ImportConfig
	HTTP   HTTPConfig
}

// AppConfig configuração geral da aplicação.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// StoreConfig configuração da tabela persistida de funcionários.
type StoreConfig struct {
	DataFile string // caminho do CSV canônico (criado com cabeçalho se ausente)
}

// ImportConfig configuração do pipeline de importação.
type ImportConfig struct {
	EmailDomain string // domínio usado ao derivar email a partir do nome
}

// HTTPConfig configuração do servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devolve o endereço de escuta (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lê a configuração de variáveis de ambiente (e opcionalmente de arquivo).
// As env vars têm prioridade. Nomes esperados: APP_ENV, DATA_FILE, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: arquivo de configuração (.env ou config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos erro se não existir

	// Também tenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos erro se não existir

	// Bind de variáveis de ambiente
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "painel-rh"),
		},
		Store: StoreConfig{
			DataFile: getString(v, "DATA_FILE", "data/funcionarios.csv"),
		},
		Import: ImportConfig{
			EmailDomain: getString(v, "IMPORT_EMAIL_DOMAIN", "empresa.com"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
