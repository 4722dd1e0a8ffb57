package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/painel-rh/funcionarios-api/internal/application/importer"
	"github.com/painel-rh/funcionarios-api/internal/application/usecase"
	"github.com/painel-rh/funcionarios-api/internal/infrastructure/csvstore"
	"github.com/painel-rh/funcionarios-api/internal/infrastructure/excel"
	infrapdf "github.com/painel-rh/funcionarios-api/internal/infrastructure/pdf"
	httpRouter "github.com/painel-rh/funcionarios-api/internal/interfaces/http"
	"github.com/painel-rh/funcionarios-api/pkg/config"
	"github.com/painel-rh/funcionarios-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data_file", cfg.Store.DataFile).
		Msg("iniciando aplicação")

	// Tabela canônica de funcionários (CSV plano, criado com cabeçalho se ausente)
	repo, err := csvstore.NewEmployeeRepository(cfg.Store.DataFile)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar tabela de funcionários")
	}

	employeeUC := usecase.NewEmployeeUseCase(repo, cfg.Import.EmailDomain)
	backupUC := usecase.NewBackupUseCase(repo)
	reportUC := usecase.NewReportUseCase(repo)
	imp := importer.New(repo, cfg.Import.EmailDomain, log)
	exporter := excel.NewExporter()
	pdfGen := infrapdf.NewPayrollReportGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Painel RH API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		EmployeeUC:  employeeUC,
		BackupUC:    backupUC,
		ReportUC:    reportUC,
		Importer:    imp,
		Repo:        repo,
		Exporter:    exporter,
		PDFGen:      pdfGen,
		CompanyName: cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
