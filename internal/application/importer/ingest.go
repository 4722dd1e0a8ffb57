package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/painel-rh/funcionarios-api/internal/domain"
	"github.com/painel-rh/funcionarios-api/internal/domain/entity"
	"github.com/painel-rh/funcionarios-api/internal/domain/repository"
	"github.com/painel-rh/funcionarios-api/pkg/logger"
)

// Table resultado tabular de uma detecção bem-sucedida.
type Table struct {
	Headers   []string
	Rows      [][]string
	Delimiter string
	Encoding  string
}

// UndetectableFormatError nenhuma combinação separador/encoding leu o
// arquivo. Carrega o diagnóstico completo das tentativas para o usuário
// corrigir o arquivo sem adivinhação.
type UndetectableFormatError struct {
	Attempts []string
}

func (e *UndetectableFormatError) Error() string {
	return "não foi possível detectar o formato do arquivo (" +
		strings.Join(e.Attempts, "; ") + ")"
}

// Candidatos de leitura em ordem de prioridade: exportações brasileiras de
// planilha costumam vir com ';' e encoding legado antes de CSV "puro".
var detectCandidates = []struct {
	sep rune
	enc string
}{
	{';', "utf-8"},
	{';', "latin-1"},
	{';', "cp1252"},
	{';', "iso-8859-1"},
	{',', "utf-8"},
	{',', "latin-1"},
}

// DetectAndParse tenta a lista fixa de combinações (separador, encoding) e
// aceita a primeira que produzir pelo menos uma coluna e uma linha de dados.
// Devolve também o log de tentativas rejeitadas, mesmo em caso de sucesso.
func DetectAndParse(raw []byte) (*Table, []string, error) {
	var attempts []string
	for _, cand := range detectCandidates {
		decoded, err := decodeBytes(raw, cand.enc)
		if err != nil {
			attempts = append(attempts, fmt.Sprintf("sep=%q encoding=%s: %v", cand.sep, cand.enc, err))
			continue
		}
		table, err := parseDelimited(decoded, cand.sep)
		if err != nil {
			attempts = append(attempts, fmt.Sprintf("sep=%q encoding=%s: %v", cand.sep, cand.enc, err))
			continue
		}
		if len(table.Headers) == 0 || len(table.Rows) == 0 {
			attempts = append(attempts, fmt.Sprintf("sep=%q encoding=%s: arquivo vazio ou sem colunas", cand.sep, cand.enc))
			continue
		}
		table.Delimiter = string(cand.sep)
		table.Encoding = cand.enc
		return table, attempts, nil
	}
	return nil, attempts, &UndetectableFormatError{Attempts: attempts}
}

func decodeBytes(raw []byte, enc string) ([]byte, error) {
	switch enc {
	case "utf-8":
		if !utf8.Valid(raw) {
			return nil, errors.New("bytes inválidos para utf-8")
		}
		return raw, nil
	case "latin-1", "iso-8859-1":
		return io.ReadAll(transform.NewReader(bytes.NewReader(raw), charmap.ISO8859_1.NewDecoder()))
	case "cp1252":
		return io.ReadAll(transform.NewReader(bytes.NewReader(raw), charmap.Windows1252.NewDecoder()))
	default:
		return nil, fmt.Errorf("encoding desconhecido: %s", enc)
	}
}

func parseDelimited(data []byte, sep rune) (*Table, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sep
	r.FieldsPerRecord = -1 // linhas curtas/longas são toleradas e ajustadas depois

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &Table{}, nil
	}

	headers := records[0]
	rows := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < len(headers) {
			padded := make([]string, len(headers))
			copy(padded, rec)
			rec = padded
		}
		rows = append(rows, rec)
	}
	return &Table{Headers: headers, Rows: rows}, nil
}

// RowFailure falha individual de uma linha da planilha (a linha 1 é o cabeçalho).
type RowFailure struct {
	Line   int    `json:"line"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Report resultado completo de uma importação em lote. As falhas nunca são
// descartadas: voltam inteiras para quem chamou exibir.
type Report struct {
	BatchID   string       `json:"batch_id"`
	Imported  int          `json:"imported"`
	Failed    int          `json:"failed"`
	Failures  []RowFailure `json:"failures"`
	Attempts  []string     `json:"detection_attempts,omitempty"`
	Delimiter string       `json:"delimiter"`
	Encoding  string       `json:"encoding"`
}

// Importer orquestra a importação em lote: detecção de formato, mapeamento
// de colunas, normalização campo a campo e gravação registro a registro.
type Importer struct {
	repo        repository.EmployeeRepository
	emailDomain string
	log         *logger.Logger
}

// New constrói o importador.
func New(repo repository.EmployeeRepository, emailDomain string, log *logger.Logger) *Importer {
	return &Importer{repo: repo, emailDomain: emailDomain, log: log}
}

// Import processa os bytes crus de um upload. Falhas de tabela (formato
// indetectável, colunas faltando) abortam tudo; falhas de linha nunca
// interrompem o lote.
func (im *Importer) Import(raw []byte) (*Report, error) {
	batchID := uuid.New().String()
	log := im.log.With().Str("batch_id", batchID).Logger()

	table, attempts, err := DetectAndParse(raw)
	if err != nil {
		log.Warn().Strs("attempts", attempts).Msg("formato de arquivo não detectado")
		return nil, err
	}
	log.Info().
		Str("sep", table.Delimiter).
		Str("encoding", table.Encoding).
		Int("rows", len(table.Rows)).
		Msg("formato detectado")

	cols, err := NormalizeColumns(table.Headers)
	if err != nil {
		return nil, err
	}

	report := &Report{
		BatchID:   batchID,
		Attempts:  attempts,
		Delimiter: table.Delimiter,
		Encoding:  table.Encoding,
	}

	for i, row := range table.Rows {
		line := i + 2 // linha 1 é o cabeçalho
		get := func(field string) string {
			idx, ok := cols[field]
			if !ok || idx >= len(row) {
				return ""
			}
			return row[idx]
		}

		name := strings.TrimSpace(get(FieldName))
		if name == "" {
			report.Failed++
			report.Failures = append(report.Failures, RowFailure{Line: line, Reason: "nome vazio"})
			continue
		}

		email := strings.TrimSpace(get(FieldEmail))
		if email == "" {
			email = DeriveEmail(name, im.emailDomain)
		}

		salary, err := ParseCurrency(get(FieldSalary))
		if err != nil {
			// política leniente: valor irreconhecível entra como zero e a
			// linha segue em frente
			log.Warn().Int("line", line).Str("raw", get(FieldSalary)).Msg("salário não reconhecido, usando 0")
			salary = decimal.Zero
		}

		hireDate, err := ParseDate(get(FieldHireDate))
		if err != nil {
			log.Warn().Int("line", line).Str("raw", get(FieldHireDate)).Msg("data de admissão não reconhecida")
			hireDate = strings.TrimSpace(get(FieldHireDate))
		}

		emp := &entity.Employee{
			Name:       name,
			Email:      email,
			Department: strings.TrimSpace(get(FieldDepartment)),
			Title:      strings.TrimSpace(get(FieldTitle)),
			Salary:     salary,
			HireDate:   hireDate,
			Status:     entity.StatusActive,
		}

		if err := im.repo.Create(emp); err != nil {
			report.Failed++
			reason := err.Error()
			if errors.Is(err, domain.ErrDuplicateEmail) {
				reason = fmt.Sprintf("email %s já existe", email)
			}
			report.Failures = append(report.Failures, RowFailure{Line: line, Name: name, Reason: reason})
			continue
		}
		report.Imported++
	}

	log.Info().
		Int("imported", report.Imported).
		Int("failed", report.Failed).
		Msg("importação concluída")
	return report, nil
}
