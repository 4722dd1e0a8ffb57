package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("funcionário não encontrado")
	ErrDuplicateEmail     = errors.New("email já existe")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrIncompatibleSchema = errors.New("backup com colunas incompatíveis")
	ErrMalformedCurrency  = errors.New("valor monetário mal formatado")
	ErrMalformedDate      = errors.New("data mal formatada")
)
