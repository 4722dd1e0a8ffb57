package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/painel-rh/funcionarios-api/internal/application/importer"
	"github.com/painel-rh/funcionarios-api/internal/application/usecase"
	"github.com/painel-rh/funcionarios-api/internal/domain/repository"
	"github.com/painel-rh/funcionarios-api/internal/infrastructure/excel"
	"github.com/painel-rh/funcionarios-api/internal/infrastructure/pdf"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	EmployeeUC  *usecase.EmployeeUseCase
	BackupUC    *usecase.BackupUseCase
	ReportUC    *usecase.ReportUseCase
	Importer    *importer.Importer
	Repo        repository.EmployeeRepository
	Exporter    *excel.Exporter
	PDFGen      *pdf.PayrollReportGenerator
	CompanyName string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Funcionários (CRUD + importação + template)
	employees := api.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	importHandler := NewImportHandler(deps.Importer)
	backupHandler := NewBackupHandler(deps.BackupUC)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Post("/import", importHandler.Import)
	employees.Get("/template", backupHandler.Template)
	employees.Put("/:email", employeeHandler.Update)
	employees.Delete("/:email", employeeHandler.Delete)

	// Backup e restauração (tabela inteira)
	api.Get("/backup", backupHandler.Backup)
	api.Post("/restore", backupHandler.Restore)

	// Relatórios e exportações
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.Repo, deps.Exporter, deps.PDFGen, deps.CompanyName)
	reports.Get("/summary", reportHandler.Summary)
	reports.Get("/salaries", reportHandler.Salaries)
	reports.Get("/employees.xlsx", reportHandler.EmployeesXLSX)
	reports.Get("/salaries.xlsx", reportHandler.SalariesXLSX)
	reports.Get("/salaries.pdf", reportHandler.SalariesPDF)
}
