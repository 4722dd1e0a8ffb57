// Package csvstore implementa o porto EmployeeRepository sobre um arquivo
// CSV plano com cabeçalho fixo, no regime de reescrita total: toda mutação
// carrega a tabela inteira, altera em memória e regrava o arquivo completo.
//
// Modelo de um operador por vez: o mutex protege apenas este processo.
// Dois processos escrevendo o mesmo arquivo ainda podem se sobrescrever
// (última escrita vence) — limitação documentada do formato, não há lock
// de arquivo nem isolamento transacional.
package csvstore

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/painel-rh/funcionarios-api/internal/domain"
	"github.com/painel-rh/funcionarios-api/internal/domain/entity"
	"github.com/painel-rh/funcionarios-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// Header canônico da tabela persistida, na ordem fixa das nove colunas.
var Header = []string{
	"name", "email", "phone", "department", "title",
	"salary", "hire_date", "status", "notes",
}

// EmployeeRepo adaptador de persistência sobre CSV plano.
type EmployeeRepo struct {
	path string
	mu   sync.Mutex
}

// NewEmployeeRepository constrói o adaptador e garante que o arquivo exista
// com o cabeçalho canônico (tabela vazia é um estado válido).
func NewEmployeeRepository(path string) (*EmployeeRepo, error) {
	r := &EmployeeRepo{path: path}
	if err := r.ensureFile(); err != nil {
		return nil, fmt.Errorf("inicializar tabela: %w", err)
	}
	return r, nil
}

func (r *EmployeeRepo) ensureFile() error {
	if _, err := os.Stat(r.path); err == nil {
		return nil
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return r.writeAll(nil)
}

// Create acrescenta um registro, rejeitando email repetido.
func (r *EmployeeRepo) Create(emp *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return err
	}
	for _, e := range list {
		if e.Email == emp.Email {
			return domain.ErrDuplicateEmail
		}
	}
	list = append(list, emp)
	return r.writeAll(list)
}

// ReadAll devolve todos os registros na ordem de inserção persistida.
// Tabela vazia devolve slice vazio, nunca erro.
func (r *EmployeeRepo) ReadAll() ([]*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Update localiza o registro pelo email e mescla os campos não-nil do patch.
func (r *EmployeeRepo) Update(email string, patch repository.EmployeePatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return err
	}
	for _, e := range list {
		if e.Email != email {
			continue
		}
		applyPatch(e, patch)
		return r.writeAll(list)
	}
	return domain.ErrNotFound
}

// Delete remove o registro com o email dado e regrava o restante.
func (r *EmployeeRepo) Delete(email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return err
	}
	kept := make([]*entity.Employee, 0, len(list))
	for _, e := range list {
		if e.Email != email {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(list) {
		return domain.ErrNotFound
	}
	return r.writeAll(kept)
}

// Backup serializa a tabela inteira no formato canônico delimitado.
func (r *EmployeeRepo) Backup() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := writeTable(&buf, list); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Restore valida o blob como tabela canônica e substitui o arquivo por
// inteiro (destrutivo, sem merge). Este caminho NÃO aplica aliases de
// coluna: espera os nove nomes canônicos exatamente como persistidos.
func (r *EmployeeRepo) Restore(blob []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reader := csv.NewReader(bytes.NewReader(blob))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrIncompatibleSchema, err)
	}
	if len(records) == 0 {
		return fmt.Errorf("%w: arquivo vazio", domain.ErrIncompatibleSchema)
	}

	// Presença verbatim de todas as colunas canônicas; colunas extras são
	// ignoradas e a ordem do blob não precisa ser a canônica.
	cols := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		if _, dup := cols[h]; !dup {
			cols[h] = i
		}
	}
	for _, h := range Header {
		if _, ok := cols[h]; !ok {
			return fmt.Errorf("%w: falta a coluna %q", domain.ErrIncompatibleSchema, h)
		}
	}

	list := make([]*entity.Employee, 0, len(records)-1)
	for i, rec := range records[1:] {
		get := func(field string) string {
			idx := cols[field]
			if idx >= len(rec) {
				return ""
			}
			return rec[idx]
		}
		emp, err := fromFields(get)
		if err != nil {
			return fmt.Errorf("restaurar linha %d: %w", i+2, err)
		}
		list = append(list, emp)
	}
	return r.writeAll(list)
}

// ── Leitura e escrita do arquivo ──────────────────────────────────────────────

func (r *EmployeeRepo) load() ([]*entity.Employee, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("abrir tabela: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ler tabela: %w", err)
	}
	if len(records) == 0 {
		return []*entity.Employee{}, nil
	}

	list := make([]*entity.Employee, 0, len(records)-1)
	for i, rec := range records[1:] {
		row := rec
		get := func(field string) string {
			idx := indexOf(field)
			if idx < 0 || idx >= len(row) {
				return ""
			}
			return row[idx]
		}
		emp, err := fromFields(get)
		if err != nil {
			return nil, fmt.Errorf("tabela corrompida na linha %d: %w", i+2, err)
		}
		list = append(list, emp)
	}
	return list, nil
}

func (r *EmployeeRepo) writeAll(list []*entity.Employee) error {
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("gravar tabela: %w", err)
	}
	if err := writeTable(f, list); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeTable(dst io.Writer, list []*entity.Employee) error {
	w := csv.NewWriter(dst)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("gravar cabeçalho: %w", err)
	}
	for _, e := range list {
		rec := []string{
			e.Name, e.Email, e.Phone, e.Department, e.Title,
			e.Salary.String(), e.HireDate, e.Status, e.Notes,
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("gravar registro %s: %w", e.Email, err)
		}
	}
	w.Flush()
	return w.Error()
}

func fromFields(get func(string) string) (*entity.Employee, error) {
	salaryRaw := get("salary")
	salary := decimal.Zero
	if salaryRaw != "" {
		var err error
		salary, err = decimal.NewFromString(salaryRaw)
		if err != nil {
			return nil, fmt.Errorf("salário inválido %q", salaryRaw)
		}
	}
	status := get("status")
	if status == "" {
		status = entity.StatusActive
	}
	return &entity.Employee{
		Name:       get("name"),
		Email:      get("email"),
		Phone:      get("phone"),
		Department: get("department"),
		Title:      get("title"),
		Salary:     salary,
		HireDate:   get("hire_date"),
		Status:     status,
		Notes:      get("notes"),
	}, nil
}

func applyPatch(e *entity.Employee, p repository.EmployeePatch) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Phone != nil {
		e.Phone = *p.Phone
	}
	if p.Department != nil {
		e.Department = *p.Department
	}
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Salary != nil {
		e.Salary = *p.Salary
	}
	if p.HireDate != nil {
		e.HireDate = *p.HireDate
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
}

func indexOf(field string) int {
	for i, h := range Header {
		if h == field {
			return i
		}
	}
	return -1
}
