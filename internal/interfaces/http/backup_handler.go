package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/painel-rh/funcionarios-api/internal/application/dto"
	"github.com/painel-rh/funcionarios-api/internal/application/usecase"
	"github.com/painel-rh/funcionarios-api/internal/domain"
)

// BackupHandler backup, restauração e template da tabela de funcionários.
type BackupHandler struct {
	uc *usecase.BackupUseCase
}

// NewBackupHandler constrói o handler.
func NewBackupHandler(uc *usecase.BackupUseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Backup GET /api/backup — download da tabela inteira no formato canônico.
func (h *BackupHandler) Backup(c *fiber.Ctx) error {
	blob, err := h.uc.Backup()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="funcionarios_backup.csv"`)
	return c.Send(blob)
}

// Restore POST /api/restore (multipart, campo "file") — substituição
// destrutiva da tabela inteira, sem merge.
func (h *BackupHandler) Restore(c *fiber.Ctx) error {
	raw, err := readUpload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_UPLOAD", Message: err.Error()})
	}
	if err := h.uc.Restore(raw); err != nil {
		if errors.Is(err, domain.ErrIncompatibleSchema) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INCOMPATIBLE_SCHEMA", Message: err.Error()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BACKUP", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"restored": true})
}

// Template GET /api/employees/template — CSV de exemplo para importação.
func (h *BackupHandler) Template(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="template_funcionarios.csv"`)
	return c.Send(h.uc.Template())
}
