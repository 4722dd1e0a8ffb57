package usecase_test

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/painel-rh/funcionarios-api/internal/application/dto"
	"github.com/painel-rh/funcionarios-api/internal/application/usecase"
	"github.com/painel-rh/funcionarios-api/internal/domain"
	"github.com/painel-rh/funcionarios-api/internal/infrastructure/csvstore"
)

func newEmployeeUC(t *testing.T) *usecase.EmployeeUseCase {
	t.Helper()
	repo, err := csvstore.NewEmployeeRepository(filepath.Join(t.TempDir(), "funcionarios.csv"))
	require.NoError(t, err)
	return usecase.NewEmployeeUseCase(repo, "empresa.com")
}

func createRequest() dto.CreateEmployeeRequest {
	return dto.CreateEmployeeRequest{
		Name:       "Ana Souza",
		Department: "Tecnologia",
		Title:      "Analista",
		Salary:     "R$ 5.000,00",
		HireDate:   "15/01/2024",
	}
}

func TestEmployeeCreate_NormalizaEDerivaEmail(t *testing.T) {
	uc := newEmployeeUC(t)

	resp, err := uc.Create(createRequest())
	require.NoError(t, err)

	assert.Equal(t, "ana.souza@empresa.com", resp.Email)
	assert.True(t, resp.Salary.Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, "2024-01-15", resp.HireDate)
	assert.Equal(t, "Active", resp.Status, "status ausente entra como Active")
}

func TestEmployeeCreate_EmailInformadoTemPrioridade(t *testing.T) {
	uc := newEmployeeUC(t)

	in := createRequest()
	in.Email = "ana@outrodominio.com"
	resp, err := uc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, "ana@outrodominio.com", resp.Email)
}

func TestEmployeeCreate_ValidacaoEstrita(t *testing.T) {
	uc := newEmployeeUC(t)

	// Diferente do lote, o caminho individual rejeita em vez de aplicar default
	cases := []struct {
		label  string
		mutate func(*dto.CreateEmployeeRequest)
		want   error
	}{
		{"nome vazio", func(r *dto.CreateEmployeeRequest) { r.Name = "  " }, domain.ErrInvalidInput},
		{"departamento vazio", func(r *dto.CreateEmployeeRequest) { r.Department = "" }, domain.ErrInvalidInput},
		{"salário ilegível", func(r *dto.CreateEmployeeRequest) { r.Salary = "muito" }, domain.ErrMalformedCurrency},
		{"salário negativo", func(r *dto.CreateEmployeeRequest) { r.Salary = "-100" }, domain.ErrInvalidInput},
		{"data vazia", func(r *dto.CreateEmployeeRequest) { r.HireDate = "" }, domain.ErrInvalidInput},
		{"status desconhecido", func(r *dto.CreateEmployeeRequest) { r.Status = "Ferias" }, domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		in := createRequest()
		tc.mutate(&in)
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, tc.want, tc.label)
	}
}

func TestEmployeeCreate_Duplicado(t *testing.T) {
	uc := newEmployeeUC(t)

	_, err := uc.Create(createRequest())
	require.NoError(t, err)

	_, err = uc.Create(createRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestEmployeeList_Filtros(t *testing.T) {
	uc := newEmployeeUC(t)

	seed := []dto.CreateEmployeeRequest{
		{Name: "Ana Souza", Department: "Tecnologia", Title: "Analista", Salary: "5000", HireDate: "2024-01-15"},
		{Name: "Bruno Lima", Department: "Financeiro", Title: "Contador", Salary: "6000", HireDate: "2024-02-01"},
		{Name: "Carla Souza", Department: "Tecnologia", Title: "Dev", Salary: "7000", HireDate: "2024-03-01", Status: "OnLeave"},
	}
	for _, in := range seed {
		_, err := uc.Create(in)
		require.NoError(t, err)
	}

	all, err := uc.List(dto.EmployeeFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	tech, err := uc.List(dto.EmployeeFilter{Department: "Tecnologia"})
	require.NoError(t, err)
	assert.Len(t, tech, 2)

	onLeave, err := uc.List(dto.EmployeeFilter{Status: "OnLeave"})
	require.NoError(t, err)
	require.Len(t, onLeave, 1)
	assert.Equal(t, "Carla Souza", onLeave[0].Name)

	souza, err := uc.List(dto.EmployeeFilter{Name: "souza"})
	require.NoError(t, err)
	assert.Len(t, souza, 2, "filtro de nome é por trecho, sem diferenciar maiúsculas")

	both, err := uc.List(dto.EmployeeFilter{Department: "Tecnologia", Name: "carla"})
	require.NoError(t, err)
	assert.Len(t, both, 1)
}

func TestEmployeeUpdate_PatchParcial(t *testing.T) {
	uc := newEmployeeUC(t)
	_, err := uc.Create(createRequest())
	require.NoError(t, err)

	salary := "R$ 6.500,00"
	title := "Analista Sênior"
	resp, err := uc.Update("ana.souza@empresa.com", dto.UpdateEmployeeRequest{
		Salary: &salary,
		Title:  &title,
	})
	require.NoError(t, err)

	assert.True(t, resp.Salary.Equal(decimal.NewFromInt(6500)))
	assert.Equal(t, "Analista Sênior", resp.Title)
	assert.Equal(t, "Tecnologia", resp.Department, "campo fora do patch fica como estava")
}

func TestEmployeeUpdate_SalarioInvalidoNaoTocaNoRegistro(t *testing.T) {
	uc := newEmployeeUC(t)
	_, err := uc.Create(createRequest())
	require.NoError(t, err)

	bad := "muito"
	_, err = uc.Update("ana.souza@empresa.com", dto.UpdateEmployeeRequest{Salary: &bad})
	assert.ErrorIs(t, err, domain.ErrMalformedCurrency)

	resp, err := uc.Get("ana.souza@empresa.com")
	require.NoError(t, err)
	assert.True(t, resp.Salary.Equal(decimal.NewFromInt(5000)))
}

func TestEmployeeUpdate_Inexistente(t *testing.T) {
	uc := newEmployeeUC(t)

	name := "Outra"
	_, err := uc.Update("ninguem@empresa.com", dto.UpdateEmployeeRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEmployeeGetEDelete(t *testing.T) {
	uc := newEmployeeUC(t)
	_, err := uc.Create(createRequest())
	require.NoError(t, err)

	got, err := uc.Get("ana.souza@empresa.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", got.Name)

	require.NoError(t, uc.Delete("ana.souza@empresa.com"))

	_, err = uc.Get("ana.souza@empresa.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete("ana.souza@empresa.com"), domain.ErrNotFound)
}
