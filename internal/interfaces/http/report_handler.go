package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/painel-rh/funcionarios-api/internal/application/dto"
	"github.com/painel-rh/funcionarios-api/internal/application/usecase"
	"github.com/painel-rh/funcionarios-api/internal/domain/repository"
	"github.com/painel-rh/funcionarios-api/internal/infrastructure/excel"
	"github.com/painel-rh/funcionarios-api/internal/infrastructure/pdf"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler relatórios agregados e exportações (JSON, xlsx, PDF).
type ReportHandler struct {
	uc          *usecase.ReportUseCase
	repo        repository.EmployeeRepository
	exporter    *excel.Exporter
	pdfGen      *pdf.PayrollReportGenerator
	companyName string
}

// NewReportHandler constrói o handler.
func NewReportHandler(
	uc *usecase.ReportUseCase,
	repo repository.EmployeeRepository,
	exporter *excel.Exporter,
	pdfGen *pdf.PayrollReportGenerator,
	companyName string,
) *ReportHandler {
	return &ReportHandler{uc: uc, repo: repo, exporter: exporter, pdfGen: pdfGen, companyName: companyName}
}

// Summary GET /api/reports/summary
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Salaries GET /api/reports/salaries
func (h *ReportHandler) Salaries(c *fiber.Ctx) error {
	out, err := h.uc.SalariesByDepartment()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// EmployeesXLSX GET /api/reports/employees.xlsx
func (h *ReportHandler) EmployeesXLSX(c *fiber.Ctx) error {
	list, err := h.repo.ReadAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	blob, err := h.exporter.EmployeeList(list)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT", Message: err.Error()})
	}
	return sendFile(c, blob, xlsxContentType, "funcionarios.xlsx")
}

// SalariesXLSX GET /api/reports/salaries.xlsx
func (h *ReportHandler) SalariesXLSX(c *fiber.Ctx) error {
	rows, err := h.uc.SalariesByDepartment()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	blob, err := h.exporter.SalaryReport(rows)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT", Message: err.Error()})
	}
	return sendFile(c, blob, xlsxContentType, "relatorio_salarios.xlsx")
}

// SalariesPDF GET /api/reports/salaries.pdf
func (h *ReportHandler) SalariesPDF(c *fiber.Ctx) error {
	rows, err := h.uc.SalariesByDepartment()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	blob, err := h.pdfGen.GenerateSalaryReport(h.companyName, time.Now(), rows)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT", Message: err.Error()})
	}
	return sendFile(c, blob, "application/pdf", "relatorio_salarios.pdf")
}

func sendFile(c *fiber.Ctx, blob []byte, contentType, filename string) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(blob)
}
