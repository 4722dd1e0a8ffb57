package entity

import "github.com/shopspring/decimal"

// Status válidos para Employee.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
	StatusOnLeave  = "OnLeave"
)

// ValidStatus informa se s é um dos status aceitos.
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive || s == StatusOnLeave
}

// Employee representa uma linha da tabela canônica de funcionários.
// O email é a identidade única do registro; todas as mutações usam essa chave.
type Employee struct {
	Name       string
	Email      string
	Phone      string
	Department string
	Title      string
	Salary     decimal.Decimal // sempre não-negativo, nunca string formatada
	HireDate   string          // sempre ISO YYYY-MM-DD
	Status     string          // Active, Inactive, OnLeave
	Notes      string
}
