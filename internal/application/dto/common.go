package dto

// ErrorResponse corpo de erro HTTP. Details carrega listas de diagnóstico
// (tentativas de detecção, colunas faltando) quando a falha é de tabela.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
