package usecase

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/painel-rh/funcionarios-api/internal/application/dto"
	"github.com/painel-rh/funcionarios-api/internal/domain/repository"
)

// ReportUseCase agrega estatísticas e o resumo salarial por departamento
// a partir da leitura da tabela canônica (somente leitura).
type ReportUseCase struct {
	repo repository.EmployeeRepository
}

// NewReportUseCase constrói o caso de uso.
func NewReportUseCase(repo repository.EmployeeRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// Summary estatísticas básicas: total de funcionários, folha total, média
// salarial (duas casas) e quantidade de departamentos distintos.
func (uc *ReportUseCase) Summary() (*dto.SummaryResponse, error) {
	list, err := uc.repo.ReadAll()
	if err != nil {
		return nil, err
	}

	out := &dto.SummaryResponse{
		TotalEmployees: len(list),
		TotalSalary:    decimal.Zero,
		AvgSalary:      decimal.Zero,
	}
	departments := make(map[string]struct{})
	for _, e := range list {
		out.TotalSalary = out.TotalSalary.Add(e.Salary)
		departments[e.Department] = struct{}{}
	}
	out.Departments = len(departments)
	if len(list) > 0 {
		out.AvgSalary = out.TotalSalary.DivRound(decimal.NewFromInt(int64(len(list))), 2)
	}
	return out, nil
}

// SalariesByDepartment resumo por departamento, ordenado pelo nome do
// departamento para saída estável.
func (uc *ReportUseCase) SalariesByDepartment() ([]*dto.DepartmentSalaryResponse, error) {
	list, err := uc.repo.ReadAll()
	if err != nil {
		return nil, err
	}

	byDept := make(map[string]*dto.DepartmentSalaryResponse)
	for _, e := range list {
		row, ok := byDept[e.Department]
		if !ok {
			row = &dto.DepartmentSalaryResponse{
				Department:  e.Department,
				TotalSalary: decimal.Zero,
			}
			byDept[e.Department] = row
		}
		row.Employees++
		row.TotalSalary = row.TotalSalary.Add(e.Salary)
	}

	out := make([]*dto.DepartmentSalaryResponse, 0, len(byDept))
	for _, row := range byDept {
		row.AvgSalary = row.TotalSalary.DivRound(decimal.NewFromInt(int64(row.Employees)), 2)
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Department < out[j].Department })
	return out, nil
}
