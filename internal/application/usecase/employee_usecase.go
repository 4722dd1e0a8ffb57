package usecase

import (
	"strings"

	"github.com/painel-rh/funcionarios-api/internal/application/dto"
	"github.com/painel-rh/funcionarios-api/internal/application/importer"
	"github.com/painel-rh/funcionarios-api/internal/domain"
	"github.com/painel-rh/funcionarios-api/internal/domain/entity"
	"github.com/painel-rh/funcionarios-api/internal/domain/repository"
)

// EmployeeUseCase casos de uso de CRUD sobre a tabela de funcionários.
type EmployeeUseCase struct {
	repo        repository.EmployeeRepository
	emailDomain string
}

// NewEmployeeUseCase constrói o caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, emailDomain string) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, emailDomain: emailDomain}
}

// Create valida e cria um funcionário individual. Diferente da importação
// em lote, aqui o parse de salário e data é estrito: entrada inválida
// rejeita a chamada em vez de entrar com default.
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	name := strings.TrimSpace(in.Name)
	department := strings.TrimSpace(in.Department)
	title := strings.TrimSpace(in.Title)
	if name == "" || department == "" || title == "" || in.Salary == "" || in.HireDate == "" {
		return nil, domain.ErrInvalidInput
	}

	salary, err := importer.ParseCurrency(in.Salary)
	if err != nil {
		return nil, err
	}
	if salary.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	hireDate, err := importer.ParseDate(in.HireDate)
	if err != nil {
		return nil, err
	}

	email := strings.TrimSpace(in.Email)
	if email == "" {
		email = importer.DeriveEmail(name, uc.emailDomain)
	}

	status := in.Status
	if status == "" {
		status = entity.StatusActive
	}
	if !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}

	emp := &entity.Employee{
		Name:       name,
		Email:      email,
		Phone:      strings.TrimSpace(in.Phone),
		Department: department,
		Title:      title,
		Salary:     salary,
		HireDate:   hireDate,
		Status:     status,
		Notes:      in.Notes,
	}
	if err := uc.repo.Create(emp); err != nil {
		return nil, err
	}
	return toResponse(emp), nil
}

// List devolve os registros na ordem persistida, com filtros opcionais.
func (uc *EmployeeUseCase) List(f dto.EmployeeFilter) ([]*dto.EmployeeResponse, error) {
	list, err := uc.repo.ReadAll()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeResponse, 0, len(list))
	nameFilter := strings.ToLower(strings.TrimSpace(f.Name))
	for _, e := range list {
		if f.Department != "" && e.Department != f.Department {
			continue
		}
		if f.Status != "" && e.Status != f.Status {
			continue
		}
		if nameFilter != "" && !strings.Contains(strings.ToLower(e.Name), nameFilter) {
			continue
		}
		out = append(out, toResponse(e))
	}
	return out, nil
}

// Get localiza um registro pela chave.
func (uc *EmployeeUseCase) Get(email string) (*dto.EmployeeResponse, error) {
	list, err := uc.repo.ReadAll()
	if err != nil {
		return nil, err
	}
	for _, e := range list {
		if e.Email == email {
			return toResponse(e), nil
		}
	}
	return nil, domain.ErrNotFound
}

// Update mescla o patch sobre o registro com aquele email e devolve o
// resultado final. Aplicar o mesmo patch duas vezes produz o mesmo registro.
func (uc *EmployeeUseCase) Update(email string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	patch := repository.EmployeePatch{
		Name:       in.Name,
		Phone:      in.Phone,
		Department: in.Department,
		Title:      in.Title,
		Notes:      in.Notes,
	}
	if in.Salary != nil {
		salary, err := importer.ParseCurrency(*in.Salary)
		if err != nil {
			return nil, err
		}
		if salary.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		patch.Salary = &salary
	}
	if in.HireDate != nil {
		hireDate, err := importer.ParseDate(*in.HireDate)
		if err != nil {
			return nil, err
		}
		patch.HireDate = &hireDate
	}
	if in.Status != nil {
		if !entity.ValidStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		patch.Status = in.Status
	}

	if err := uc.repo.Update(email, patch); err != nil {
		return nil, err
	}
	return uc.Get(email)
}

// Delete remove o registro pela chave.
func (uc *EmployeeUseCase) Delete(email string) error {
	return uc.repo.Delete(email)
}

func toResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		Name:       e.Name,
		Email:      e.Email,
		Phone:      e.Phone,
		Department: e.Department,
		Title:      e.Title,
		Salary:     e.Salary,
		HireDate:   e.HireDate,
		Status:     e.Status,
		Notes:      e.Notes,
	}
}
