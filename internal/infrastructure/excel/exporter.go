// Package excel gera as planilhas de exportação (lista de funcionários e
// relatório salarial) em formato xlsx via excelize.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/painel-rh/funcionarios-api/internal/application/dto"
	"github.com/painel-rh/funcionarios-api/internal/domain/entity"
)

// Exporter gerador de planilhas de exportação.
type Exporter struct{}

// NewExporter constrói o exportador.
func NewExporter() *Exporter { return &Exporter{} }

var employeeHeaders = []string{
	"Nome", "Email", "Telefone", "Departamento", "Cargo",
	"Salário", "Data de Admissão", "Status", "Observações",
}

// EmployeeList gera a planilha completa de funcionários, com larguras de
// coluna ajustadas ao conteúdo (limite de 50).
func (x *Exporter) EmployeeList(list []*entity.Employee) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Funcionários"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("excel: renomear aba: %w", err)
	}

	widths := make([]float64, len(employeeHeaders))
	for col, h := range employeeHeaders {
		if err := setCell(f, sheet, col+1, 1, h); err != nil {
			return nil, err
		}
		widths[col] = float64(len([]rune(h)))
	}

	for i, e := range list {
		values := []string{
			e.Name, e.Email, e.Phone, e.Department, e.Title,
			e.Salary.StringFixed(2), e.HireDate, e.Status, e.Notes,
		}
		for col, v := range values {
			if err := setCell(f, sheet, col+1, i+2, v); err != nil {
				return nil, err
			}
			if w := float64(len([]rune(v))); w > widths[col] {
				widths[col] = w
			}
		}
	}

	for col := range employeeHeaders {
		name, _ := excelize.ColumnNumberToName(col + 1)
		w := widths[col] + 2
		if w > 50 {
			w = 50
		}
		if err := f.SetColWidth(sheet, name, name, w); err != nil {
			return nil, fmt.Errorf("excel: largura da coluna %s: %w", name, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar planilha: %w", err)
	}
	return buf.Bytes(), nil
}

// SalaryReport gera a planilha do resumo salarial por departamento.
func (x *Exporter) SalaryReport(rows []*dto.DepartmentSalaryResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Relatório de Salários"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("excel: renomear aba: %w", err)
	}

	headers := []string{"Departamento", "Funcionários", "Salário Total", "Salário Médio"}
	for col, h := range headers {
		if err := setCell(f, sheet, col+1, 1, h); err != nil {
			return nil, err
		}
		name, _ := excelize.ColumnNumberToName(col + 1)
		if err := f.SetColWidth(sheet, name, name, 20); err != nil {
			return nil, fmt.Errorf("excel: largura da coluna %s: %w", name, err)
		}
	}

	for i, r := range rows {
		values := []interface{}{
			r.Department, r.Employees,
			r.TotalSalary.StringFixed(2), r.AvgSalary.StringFixed(2),
		}
		for col, v := range values {
			if err := setCell(f, sheet, col+1, i+2, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar planilha: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("excel: célula (%d,%d): %w", col, row, err)
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("excel: escrever %s: %w", cell, err)
	}
	return nil
}
