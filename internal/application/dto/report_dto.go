package dto

import "github.com/shopspring/decimal"

// SummaryResponse estatísticas básicas da tabela de funcionários.
type SummaryResponse struct {
	TotalEmployees int             `json:"total_employees"`
	TotalSalary    decimal.Decimal `json:"total_salary"`
	AvgSalary      decimal.Decimal `json:"avg_salary"`
	Departments    int             `json:"departments"`
}

// DepartmentSalaryResponse uma linha do resumo salarial por departamento.
type DepartmentSalaryResponse struct {
	Department  string          `json:"department"`
	Employees   int             `json:"employees"`
	TotalSalary decimal.Decimal `json:"total_salary"`
	AvgSalary   decimal.Decimal `json:"avg_salary"`
}
