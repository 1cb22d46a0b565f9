// Package pdf implementa el renderizado de los reportes de inventario
// descargables (lista completa y reposición de stock).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  Tipo de reporte + Fecha     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Artículo | Precio | Cant.                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: total de filas del reporte                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

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
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/inventario-client/internal/application/report"
	"github.com/jhoicas/inventario-client/internal/application/view"
	"github.com/jhoicas/inventario-client/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 37, Green: 99, Blue: 235}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 190, Green: 30, Blue: 30}
)

// Los precios se muestran con agrupación de dígitos india, igual que en la UI.
var moneyPrinter = message.NewPrinter(language.MustParse("en-IN"))

// ── Renderer ──────────────────────────────────────────────────────────────────

// MarotoReportRenderer implementa report.Renderer usando Maroto v2.
type MarotoReportRenderer struct{}

// NewMarotoReportRenderer construye el renderer.
func NewMarotoReportRenderer() *MarotoReportRenderer { return &MarotoReportRenderer{} }

// Render genera el PDF tabular del reporte y devuelve sus bytes.
func (g *MarotoReportRenderer) Render(doc report.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.BusinessName+" — "+doc.Subtitle, true).
		WithAuthor(doc.BusinessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(doc.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(doc.Items)))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y tipo de reporte + fecha (der).
func headerRow(doc report.Document) core.Row {
	fecha := doc.GeneratedAt.Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(7).Add(
			text.New(doc.BusinessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(doc.Subtitle, props.Text{
				Size: 10, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de artículos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Artículo", 5, align.Left),
		h("Precio", 3, align.Right),
		h("Cant.", 2, align.Center),
	)
}

// tableItemRows: una fila por producto; la cantidad bajo el umbral se marca en rojo.
func tableItemRows(items []entity.Product) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, p := range items {
		qtyColor := colorGray
		if p.Quantity < view.LowStockThreshold {
			qtyColor = colorAlert
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				p.SKU,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(5).Add(text.New(
				p.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				formatPrice(p.Price),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", p.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: qtyColor},
			)),
		))
	}
	return result
}

// footerRow: recuento de filas incluidas en el reporte.
func footerRow(count int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%d artículo(s) en este reporte", count), props.Text{
			Size: 7.5, Color: colorGray, Top: 2,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatPrice formatea el precio con agrupación en-IN y dos decimales máximos.
// Ej: 1234567.5 → "Rs. 12,34,567.5"
func formatPrice(d decimal.Decimal) string {
	f, _ := d.Float64()
	return "Rs. " + moneyPrinter.Sprintf("%v", number.Decimal(f, number.MaxFractionDigits(2)))
}
