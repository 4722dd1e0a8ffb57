package importer

import (
	"fmt"
	"strings"
)

// Nomes canônicos das colunas da tabela de funcionários.
const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldDepartment = "department"
	FieldTitle      = "title"
	FieldSalary     = "salary"
	FieldHireDate   = "hire_date"
	FieldStatus     = "status"
	FieldNotes      = "notes"
)

// RequiredColumns campos que toda planilha importada precisa ter após o
// mapeamento de aliases. Email, telefone, status e observações são
// sintetizados ou recebem default na importação.
var RequiredColumns = []string{FieldName, FieldTitle, FieldSalary, FieldDepartment, FieldHireDate}

// columnAliases tabela fixa de cabeçalhos alternativos (exportações de
// planilha em português) para o nome canônico. Sensível a maiúsculas e
// deliberadamente pequena: estender aqui, nunca por heurística.
var columnAliases = map[string]string{
	"nome":          FieldName,
	"cargo":         FieldTitle,
	"salario":       FieldSalary,
	"departamento":  FieldDepartment,
	"data admissao": FieldHireDate,
	"data_admissao": FieldHireDate,
}

// MissingColumnsError importação abortada por colunas obrigatórias ausentes.
// Carrega as listas completas para o diagnóstico ao usuário.
type MissingColumnsError struct {
	Missing []string // canônicas ausentes
	Found   []string // cabeçalhos encontrados, já sem espaços nas bordas
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("colunas obrigatórias faltando: %s (encontradas: %s)",
		strings.Join(e.Missing, ", "), strings.Join(e.Found, ", "))
}

// NormalizeColumns limpa os cabeçalhos crus (trim), aplica a tabela de
// aliases e verifica a presença das colunas obrigatórias. Devolve o índice
// de cada campo canônico na linha; cabeçalhos repetidos ficam com a
// primeira ocorrência.
func NormalizeColumns(rawHeaders []string) (map[string]int, error) {
	found := make([]string, 0, len(rawHeaders))
	cols := make(map[string]int, len(rawHeaders))
	for i, h := range rawHeaders {
		name := strings.TrimSpace(h)
		found = append(found, name)
		if canonical, ok := columnAliases[name]; ok {
			name = canonical
		}
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}

	var missing []string
	for _, req := range RequiredColumns {
		if _, ok := cols[req]; !ok {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing, Found: found}
	}
	return cols, nil
}
