package dto

import "github.com/shopspring/decimal"

// CreateEmployeeRequest entrada de criação direta. Salary é texto para
// aceitar tanto "5000.00" quanto o formato brasileiro "R$ 5.000,00";
// HireDate aceita DD/MM/YYYY ou ISO. Email vazio é derivado do nome.
type CreateEmployeeRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Department string `json:"department"`
	Title      string `json:"title"`
	Salary     string `json:"salary"`
	HireDate   string `json:"hire_date"`
	Status     string `json:"status,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// UpdateEmployeeRequest patch parcial por email: campos ausentes (nil)
// não são tocados. O email em si não muda — é a chave do registro.
type UpdateEmployeeRequest struct {
	Name       *string `json:"name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Department *string `json:"department,omitempty"`
	Title      *string `json:"title,omitempty"`
	Salary     *string `json:"salary,omitempty"`
	HireDate   *string `json:"hire_date,omitempty"`
	Status     *string `json:"status,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// EmployeeFilter filtros opcionais do listado.
type EmployeeFilter struct {
	Department string `query:"department"`
	Status     string `query:"status"`
	Name       string `query:"name"` // trecho do nome, sem diferenciar maiúsculas
}

// EmployeeResponse um registro da tabela canônica.
type EmployeeResponse struct {
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Department string          `json:"department"`
	Title      string          `json:"title"`
	Salary     decimal.Decimal `json:"salary"`
	HireDate   string          `json:"hire_date"`
	Status     string          `json:"status"`
	Notes      string          `json:"notes"`
}
