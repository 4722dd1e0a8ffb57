package repository

import (
	"github.com/shopspring/decimal"

	"github.com/painel-rh/funcionarios-api/internal/domain/entity"
)

// EmployeeRepository define o porto de persistência da tabela de funcionários.
// O contrato é de reescrita total: cada mutação carrega a tabela inteira,
// altera em memória e persiste tudo de novo (sem log incremental).
type EmployeeRepository interface {
	Create(emp *entity.Employee) error
	ReadAll() ([]*entity.Employee, error)
	Update(email string, patch EmployeePatch) error
	Delete(email string) error
	Backup() ([]byte, error)
	Restore(blob []byte) error
}

// EmployeePatch campos opcionais para atualização parcial por email.
// Campos nil não são tocados.
type EmployeePatch struct {
	Name       *string
	Phone      *string
	Department *string
	Title      *string
	Salary     *decimal.Decimal
	HireDate   *string
	Status     *string
	Notes      *string
}
