package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/painel-rh/funcionarios-api/internal/application/importer"
)

func TestNormalizeColumns_AliasesEmPortugues(t *testing.T) {
	headers := []string{"nome", "cargo", " salario ", "departamento", "data admissao"}

	cols, err := importer.NormalizeColumns(headers)
	require.NoError(t, err)

	assert.Equal(t, 0, cols[importer.FieldName])
	assert.Equal(t, 1, cols[importer.FieldTitle])
	assert.Equal(t, 2, cols[importer.FieldSalary], "trim antes do alias resolve \" salario \"")
	assert.Equal(t, 3, cols[importer.FieldDepartment])
	assert.Equal(t, 4, cols[importer.FieldHireDate])
}

func TestNormalizeColumns_NomesCanonicosPassamDireto(t *testing.T) {
	headers := []string{"name", "title", "salary", "department", "hire_date", "email"}

	cols, err := importer.NormalizeColumns(headers)
	require.NoError(t, err)
	assert.Equal(t, 5, cols[importer.FieldEmail])
}

func TestNormalizeColumns_FaltandoObrigatorias(t *testing.T) {
	headers := []string{"nome", "cargo"}

	_, err := importer.NormalizeColumns(headers)
	require.Error(t, err)

	var missing *importer.MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.ElementsMatch(t, []string{"salary", "department", "hire_date"}, missing.Missing,
		"a lista de ausentes volta completa, não só um booleano")
	assert.Equal(t, []string{"nome", "cargo"}, missing.Found)
}

func TestNormalizeColumns_AliasEhCaseSensitive(t *testing.T) {
	// "Nome" com maiúscula não está na tabela de aliases: a extensão do
	// mapeamento é deliberada, nunca por normalização implícita de caixa.
	_, err := importer.NormalizeColumns([]string{"Nome", "cargo", "salario", "departamento", "data_admissao"})

	var missing *importer.MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Contains(t, missing.Missing, "name")
}
