package usecase

import "github.com/painel-rh/funcionarios-api/internal/domain/repository"

// BackupUseCase backup e restauração da tabela canônica.
type BackupUseCase struct {
	repo repository.EmployeeRepository
}

// NewBackupUseCase constrói o caso de uso.
func NewBackupUseCase(repo repository.EmployeeRepository) *BackupUseCase {
	return &BackupUseCase{repo: repo}
}

// Backup serializa a tabela inteira no formato delimitado canônico.
func (uc *BackupUseCase) Backup() ([]byte, error) {
	return uc.repo.Backup()
}

// Restore substitui a tabela pelo conteúdo do blob após validar o esquema.
// Operação destrutiva: não há merge, ou aplica tudo ou não aplica nada.
func (uc *BackupUseCase) Restore(blob []byte) error {
	return uc.repo.Restore(blob)
}

// Template devolve um CSV mínimo de exemplo (cabeçalho + uma linha) para
// guiar o preenchimento de planilhas de importação.
func (uc *BackupUseCase) Template() []byte {
	return []byte("nome;cargo;departamento;salario;data admissao\n" +
		"Ana Souza;Analista;Tecnologia;R$ 5.000,00;15/01/2024\n")
}
