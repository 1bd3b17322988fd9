// Package pdf implementa la representación gráfica de una factura con
// Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: N° Factura  │  Fecha emisión + vencimiento          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre                                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Subtotal               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuesto 10% / TOTAL A PAGAR            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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

	appbilling "github.com/tu-usuario/crm-pro/internal/application/billing"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	lines []appbilling.InvoiceLineForPDF,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+invoice.InvoiceNumber, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(invoice)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF de factura %s: %w", invoice.InvoiceNumber, err)
	}
	return doc.GetBytes(), nil
}

func headerRow(invoice *entity.Invoice) core.Row {
	return row.New(14).Add(
		col.New(6).Add(
			text.New("FACTURA "+invoice.InvoiceNumber, props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
		),
		col.New(6).Add(
			text.New("Emitida: "+invoice.CreatedAt, props.Text{Size: 9, Align: align.Right}),
			text.New("Vence: "+invoice.DueDate, props.Text{Size: 9, Top: 5, Align: align.Right, Color: colorGray}),
		),
	)
}

func clientRow(invoice *entity.Invoice) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("Cliente", props.Text{Size: 8, Style: fontstyle.Bold, Color: colorGray}),
			text.New(invoice.ClientName, props.Text{Size: 10, Top: 4}),
		),
	)
}

func tableHeaderRow() core.Row {
	bold := props.Text{Size: 9, Style: fontstyle.Bold, Color: colorPrimary}
	boldRight := props.Text{Size: 9, Style: fontstyle.Bold, Color: colorPrimary, Align: align.Right}
	return row.New(8).Add(
		col.New(1).Add(text.New("Cant", bold)),
		col.New(6).Add(text.New("Descripción", bold)),
		col.New(2).Add(text.New("P. Unit", boldRight)),
		col.New(3).Add(text.New("Subtotal", boldRight)),
	)
}

func tableDetailRows(lines []appbilling.InvoiceLineForPDF) []core.Row {
	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", l.Item.Quantity), props.Text{Size: 9})),
			col.New(6).Add(text.New(l.ProductName, props.Text{Size: 9})),
			col.New(2).Add(text.New(l.Item.Price.StringFixed(2), props.Text{Size: 9, Align: align.Right})),
			col.New(3).Add(text.New(l.Item.Subtotal().StringFixed(2), props.Text{Size: 9, Align: align.Right})),
		))
	}
	return rows
}

func totalsRows(invoice *entity.Invoice) []core.Row {
	label := props.Text{Size: 9, Align: align.Right, Color: colorGray}
	value := props.Text{Size: 9, Align: align.Right}
	return []core.Row{
		row.New(6).Add(
			col.New(9).Add(text.New("Subtotal", label)),
			col.New(3).Add(text.New(invoice.TotalAmount.StringFixed(2), value)),
		),
		row.New(6).Add(
			col.New(9).Add(text.New("Impuesto (10%)", label)),
			col.New(3).Add(text.New(invoice.Tax.StringFixed(2), value)),
		),
		row.New(8).Add(
			col.New(9).Add(text.New("TOTAL A PAGAR", props.Text{
				Size: 11, Style: fontstyle.Bold, Align: align.Right, Color: colorPrimary,
			})),
			col.New(3).Add(text.New(invoice.GrandTotal().StringFixed(2), props.Text{
				Size: 11, Style: fontstyle.Bold, Align: align.Right, Color: colorPrimary,
			})),
		),
	}
}
