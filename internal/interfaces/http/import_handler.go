package http

import (
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/painel-rh/funcionarios-api/internal/application/dto"
	"github.com/painel-rh/funcionarios-api/internal/application/importer"
)

// ImportHandler recebe o upload de planilha e dispara a importação em lote.
type ImportHandler struct {
	imp *importer.Importer
}

// NewImportHandler constrói o handler.
func NewImportHandler(imp *importer.Importer) *ImportHandler {
	return &ImportHandler{imp: imp}
}

// Import POST /api/employees/import (multipart, campo "file")
//
// Falhas de tabela voltam com o diagnóstico completo em Details; falhas de
// linha voltam dentro do relatório, nunca descartadas.
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	raw, err := readUpload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_UPLOAD", Message: err.Error()})
	}

	report, err := h.imp.Import(raw)
	if err != nil {
		var undetectable *importer.UndetectableFormatError
		if errors.As(err, &undetectable) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Code:    "UNDETECTABLE_FORMAT",
				Message: "não foi possível detectar o formato do arquivo",
				Details: undetectable.Attempts,
			})
		}
		var missing *importer.MissingColumnsError
		if errors.As(err, &missing) {
			details := []string{
				"obrigatórias faltando: " + strings.Join(missing.Missing, ", "),
				"encontradas: " + strings.Join(missing.Found, ", "),
			}
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Code:    "MISSING_COLUMNS",
				Message: missing.Error(),
				Details: details,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(report)
}

func readUpload(c *fiber.Ctx) ([]byte, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, errors.New("campo multipart \"file\" é obrigatório")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, errors.New("não foi possível abrir o arquivo enviado")
	}
	defer f.Close()
	return io.ReadAll(f)
}
