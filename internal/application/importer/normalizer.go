package importer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/painel-rh/funcionarios-api/internal/domain"
)

// ParseCurrency converte um valor monetário em texto para decimal.
//
// Aceita tanto a convenção brasileira ("R$ 5.000,00", ponto = milhar e
// vírgula = decimal) quanto número puro com ponto decimal ("5000.00");
// ambos resultam em 5000.00. A função nunca aplica default: quem importa
// em lote decide explicitamente usar zero quando o parse falha.
func ParseCurrency(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrMalformedCurrency, raw)
	}
	if strings.Contains(s, ",") {
		// convenção brasileira: remove separador de milhar e troca a vírgula decimal
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrMalformedCurrency, raw)
	}
	return d, nil
}

// ParseDate normaliza uma data em texto para a forma ISO YYYY-MM-DD.
//
// "DD/MM/YYYY" vira "YYYY-MM-DD" com dia e mês completados com zero;
// qualquer outro texto não vazio passa adiante sem alteração (assume-se
// que já está em forma ISO). Não há validação de calendário: "31/02/2024"
// vira "2024-02-31" — comportamento leniente preservado de propósito.
func ParseDate(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("%w: data vazia", domain.ErrMalformedDate)
	}
	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		if len(parts) == 3 {
			return fmt.Sprintf("%s-%s-%s", parts[2], pad2(parts[1]), pad2(parts[0])), nil
		}
	}
	return s, nil
}

// DeriveEmail deriva o email determinístico a partir do nome:
// "Ana Souza" -> "ana.souza@<domínio>"; nome de um só token vira
// "<token>@<domínio>". Colisões não são verificadas aqui; aparecem
// depois como falha de unicidade na criação.
func DeriveEmail(name, domain string) string {
	parts := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	switch {
	case len(parts) >= 2:
		return parts[0] + "." + parts[len(parts)-1] + "@" + domain
	case len(parts) == 1:
		return parts[0] + "@" + domain
	default:
		return ""
	}
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
