package http

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/painel-rh/funcionarios-api/internal/application/dto"
	"github.com/painel-rh/funcionarios-api/internal/application/usecase"
	"github.com/painel-rh/funcionarios-api/internal/domain"
)

// EmployeeHandler maneja as requisições HTTP de funcionários (CRUD).
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler constrói o handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// List GET /api/employees?department=&status=&name=
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	var f dto.EmployeeFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	list, err := h.uc.List(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Create POST /api/employees
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	emp, err := h.uc.Create(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, department, title, salary e hire_date são obrigatórios"})
		case errors.Is(err, domain.ErrMalformedCurrency), errors.Is(err, domain.ErrMalformedDate):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrDuplicateEmail):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_EMAIL", Message: "já existe um funcionário com esse email"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(emp)
}

// Update PUT /api/employees/:email
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	email := paramEmail(c)
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	emp, err := h.uc.Update(email, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "funcionário não encontrado"})
		case errors.Is(err, domain.ErrInvalidInput),
			errors.Is(err, domain.ErrMalformedCurrency),
			errors.Is(err, domain.ErrMalformedDate):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(emp)
}

// Delete DELETE /api/employees/:email
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	email := paramEmail(c)
	if err := h.uc.Delete(email); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "funcionário não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// paramEmail extrai o email da rota; emails chegam percent-encoded.
func paramEmail(c *fiber.Ctx) string {
	raw := c.Params("email")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
