// Package pdf gera o relatório salarial por departamento em PDF (A4) usando
// Maroto v2.
//
// Layout da página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nome da empresa  │  Relatório + data de geração    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Departamento | Funcionários | Total | Média        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: funcionários e folha salarial consolidados         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/painel-rh/funcionarios-api/internal/application/dto"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// PayrollReportGenerator gera o PDF do resumo salarial usando Maroto v2.
type PayrollReportGenerator struct{}

// NewPayrollReportGenerator constrói o gerador.
func NewPayrollReportGenerator() *PayrollReportGenerator { return &PayrollReportGenerator{} }

// GenerateSalaryReport gera o PDF e devolve seus bytes.
func (g *PayrollReportGenerator) GenerateSalaryReport(
	companyName string,
	generatedAt time.Time,
	rows []*dto.DepartmentSalaryResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Salários", true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(companyName, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: nome da empresa (esq) e título + data de geração (dir).
func headerRow(companyName string, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Painel de Funcionários", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RELATÓRIO DE SALÁRIOS POR DEPARTAMENTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Gerado em: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de departamentos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Departamento", 5, align.Left),
		h("Funcionários", 2, align.Center),
		h("Salário Total", 3, align.Right),
		h("Salário Médio", 2, align.Right),
	)
}

// tableRows: uma linha por departamento.
func tableRows(rows []*dto.DepartmentSalaryResponse) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(
				r.Department,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", r.Employees),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				"R$ "+formatMoney(r.TotalSalary),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+formatMoney(r.AvgSalary),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: consolidado geral alinhado à direita.
func totalsRow(rows []*dto.DepartmentSalaryResponse) core.Row {
	employees := 0
	total := decimal.Zero
	for _, r := range rows {
		employees += r.Employees
		total = total.Add(r.TotalSalary)
	}

	return row.New(10).Add(
		col.New(5).Add(text.New("TOTAL GERAL", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2, Left: 1,
		})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", employees), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 2,
		})),
		col.New(5).Add(text.New("R$ "+formatMoney(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney formata um decimal na convenção brasileira:
// 5000.00 → "5.000,00", 1234567.5 → "1.234.567,50".
func formatMoney(d decimal.Decimal) string {
	fixed := d.StringFixed(2) // ex: "5000.00"
	intPart, cents, _ := strings.Cut(fixed, ".")

	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, intPart[i])
	}

	out := string(buf) + "," + cents
	if neg {
		out = "-" + out
	}
	return out
}
