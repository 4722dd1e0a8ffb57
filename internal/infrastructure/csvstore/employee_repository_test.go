package csvstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/painel-rh/funcionarios-api/internal/domain"
	"github.com/painel-rh/funcionarios-api/internal/domain/entity"
	"github.com/painel-rh/funcionarios-api/internal/domain/repository"
	"github.com/painel-rh/funcionarios-api/internal/infrastructure/csvstore"
)

func newRepo(t *testing.T) *csvstore.EmployeeRepo {
	t.Helper()
	repo, err := csvstore.NewEmployeeRepository(filepath.Join(t.TempDir(), "data", "funcionarios.csv"))
	require.NoError(t, err)
	return repo
}

func sampleEmployee(email string) *entity.Employee {
	return &entity.Employee{
		Name:       "Ana Souza",
		Email:      email,
		Phone:      "(11) 99999-0000",
		Department: "Tecnologia",
		Title:      "Analista",
		Salary:     decimal.NewFromInt(5000),
		HireDate:   "2024-01-15",
		Status:     entity.StatusActive,
		Notes:      "",
	}
}

func TestNewEmployeeRepository_CriaArquivoComCabecalho(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "funcionarios.csv")
	_, err := csvstore.NewEmployeeRepository(path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name,email,phone,department,title,salary,hire_date,status,notes\n", string(raw))
}

func TestReadAll_TabelaVazia(t *testing.T) {
	repo := newRepo(t)

	list, err := repo.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, list, "tabela recém-criada devolve lista vazia, não erro")
}

func TestCreate_EmailDuplicadoRejeitado(t *testing.T) {
	repo := newRepo(t)

	require.NoError(t, repo.Create(sampleEmployee("ana.souza@empresa.com")))

	err := repo.Create(sampleEmployee("ana.souza@empresa.com"))
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

	list, err := repo.ReadAll()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCreate_PreservaOrdemDeInsercao(t *testing.T) {
	repo := newRepo(t)

	for _, email := range []string{"c@empresa.com", "a@empresa.com", "b@empresa.com"} {
		emp := sampleEmployee(email)
		require.NoError(t, repo.Create(emp))
	}

	list, err := repo.ReadAll()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "c@empresa.com", list[0].Email)
	assert.Equal(t, "a@empresa.com", list[1].Email)
	assert.Equal(t, "b@empresa.com", list[2].Email)
}

func TestUpdate_PatchParcialEIdempotente(t *testing.T) {
	repo := newRepo(t)
	require.NoError(t, repo.Create(sampleEmployee("ana.souza@empresa.com")))

	newSalary := decimal.NewFromFloat(6500.50)
	newTitle := "Analista Sênior"
	patch := repository.EmployeePatch{Title: &newTitle, Salary: &newSalary}

	require.NoError(t, repo.Update("ana.souza@empresa.com", patch))
	require.NoError(t, repo.Update("ana.souza@empresa.com", patch), "aplicar duas vezes dá no mesmo")

	list, err := repo.ReadAll()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Analista Sênior", list[0].Title)
	assert.True(t, list[0].Salary.Equal(newSalary))
	assert.Equal(t, "Tecnologia", list[0].Department, "campo fora do patch fica intacto")
	assert.Equal(t, "2024-01-15", list[0].HireDate)
}

func TestUpdate_EmailInexistente(t *testing.T) {
	repo := newRepo(t)

	name := "Outro Nome"
	err := repo.Update("ninguem@empresa.com", repository.EmployeePatch{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_RemoveESegundaChamadaFalha(t *testing.T) {
	repo := newRepo(t)
	require.NoError(t, repo.Create(sampleEmployee("ana.souza@empresa.com")))
	require.NoError(t, repo.Create(sampleEmployee("bia.costa@empresa.com")))

	require.NoError(t, repo.Delete("ana.souza@empresa.com"))

	list, err := repo.ReadAll()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "bia.costa@empresa.com", list[0].Email)

	err = repo.Delete("ana.souza@empresa.com")
	assert.ErrorIs(t, err, domain.ErrNotFound, "remoção não é idempotente: a segunda chamada é 404")
}

// ──────────────────────────────────────────────────────────────────────────────
// Backup e restauração
// ──────────────────────────────────────────────────────────────────────────────

func TestBackupRestore_RoundTrip(t *testing.T) {
	repo := newRepo(t)

	ana := sampleEmployee("ana.souza@empresa.com")
	ana.Notes = "nota com, vírgula e \"aspas\""
	require.NoError(t, repo.Create(ana))
	bia := sampleEmployee("bia.costa@empresa.com")
	bia.Name = "Bia Costa"
	bia.Salary = decimal.NewFromFloat(7200.33)
	bia.Status = entity.StatusOnLeave
	require.NoError(t, repo.Create(bia))

	blob, err := repo.Backup()
	require.NoError(t, err)

	// Restaura em cima de um estado diferente: a tabela é substituída inteira
	require.NoError(t, repo.Delete("ana.souza@empresa.com"))
	require.NoError(t, repo.Create(sampleEmployee("intruso@empresa.com")))

	require.NoError(t, repo.Restore(blob))

	list, err := repo.ReadAll()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "ana.souza@empresa.com", list[0].Email)
	assert.Equal(t, "nota com, vírgula e \"aspas\"", list[0].Notes)
	assert.Equal(t, "bia.costa@empresa.com", list[1].Email)
	assert.True(t, list[1].Salary.Equal(decimal.NewFromFloat(7200.33)))
	assert.Equal(t, entity.StatusOnLeave, list[1].Status)
}

func TestRestore_ColunasForaDeOrdemEExtras(t *testing.T) {
	repo := newRepo(t)

	blob := []byte("email,name,phone,department,title,salary,hire_date,status,notes,extra\n" +
		"ana.souza@empresa.com,Ana Souza,,Tecnologia,Analista,5000,2024-01-15,Active,,ignorado\n")

	require.NoError(t, repo.Restore(blob), "ordem livre e colunas extras são aceitas")

	list, err := repo.ReadAll()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ana Souza", list[0].Name)
	assert.Equal(t, "ana.souza@empresa.com", list[0].Email)
}

func TestRestore_CabecalhoComAliasRejeitado(t *testing.T) {
	repo := newRepo(t)
	require.NoError(t, repo.Create(sampleEmployee("ana.souza@empresa.com")))

	// Aliases valem só na importação; a restauração exige os nomes canônicos
	blob := []byte("nome,email,phone,department,cargo,salario,hire_date,status,notes\n" +
		"Ana,ana@empresa.com,,Tech,Dev,1000,2024-01-01,Active,\n")

	err := repo.Restore(blob)
	assert.ErrorIs(t, err, domain.ErrIncompatibleSchema)

	list, err := repo.ReadAll()
	require.NoError(t, err)
	assert.Len(t, list, 1, "restauração rejeitada não toca na tabela atual")
}

func TestRestore_BlobVazio(t *testing.T) {
	repo := newRepo(t)

	err := repo.Restore(nil)
	assert.ErrorIs(t, err, domain.ErrIncompatibleSchema)
}

func TestRestore_SalarioIlegivelRejeitaLinha(t *testing.T) {
	repo := newRepo(t)

	blob := []byte("name,email,phone,department,title,salary,hire_date,status,notes\n" +
		"Ana,ana@empresa.com,,Tech,Dev,muito,2024-01-01,Active,\n")

	err := repo.Restore(blob)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "linha 2")
}
