// Package pdf genera el comprobante imprimible de un movimiento de stock.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Almacén + tipo de movimiento │ Código + Fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ARTÍCULO: Código / Nombre / Unidad / Ubicación             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | P.Unit | Total | Stock antes | Stock después │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Referencia + Notas         │  QR con el código              │
//	│  Firmas: Entregó / Recibió                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/gudang-api/internal/application/report"
	"github.com/jhoicas/gudang-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorIn      = &props.Color{Red: 0, Green: 120, Blue: 60}
	colorOut     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// MarotoPDFGenerator implementa report.MovementReceiptGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	warehouseName string
}

// NewMarotoPDFGenerator construye el generador. warehouseName aparece en el encabezado.
func NewMarotoPDFGenerator(warehouseName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{warehouseName: warehouseName}
}

var _ report.MovementReceiptGenerator = (*MarotoPDFGenerator)(nil)

// GenerateMovementReceipt genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateMovementReceipt(
	_ context.Context,
	movement *entity.StockMovement,
	item *entity.Item,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de movimiento "+movement.TransactionCode, true).
		WithAuthor(g.warehouseName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.warehouseName, movement))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(itemRow(item))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRow(movement))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(detailsRow(movement))
	m.AddRows(line.NewRow(8))
	m.AddRows(signaturesRow(movement))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func movementTitle(typ string) (string, *props.Color) {
	if typ == entity.MovementTypeIn {
		return "ENTRADA DE ALMACÉN", colorIn
	}
	return "SALIDA DE ALMACÉN", colorOut
}

func headerRow(warehouse string, mov *entity.StockMovement) core.Row {
	title, color := movementTitle(mov.Type)
	return row.New(18).Add(
		col.New(7).Add(
			text.New(warehouse, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 9, Color: color,
			}),
		),
		col.New(5).Add(
			text.New(mov.TransactionCode, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+mov.TransactionDate.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Registrado por: "+nonEmpty(mov.UserName, mov.UserID), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func itemRow(item *entity.Item) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("ARTÍCULO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(item.Code+"  "+item.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Unidad: %s   |   Ubicación: %s   |   Código de barras: %s",
				nonEmpty(item.Unit, "-"),
				nonEmpty(item.Location, "-"),
				nonEmpty(item.Barcode, "-"),
			), props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cantidad", 2),
		h("Precio Unit.", 3),
		h("Total", 3),
		h("Stock antes", 2),
		h("Stock después", 2),
	)
}

func tableRow(mov *entity.StockMovement) core.Row {
	v := func(s string, size int) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1}))
	}
	return row.New(8).Add(
		v(fmt.Sprintf("%d", mov.Quantity), 2),
		v("$"+formatMoney(mov.UnitPrice), 3),
		v("$"+formatMoney(mov.TotalAmount), 3),
		v(fmt.Sprintf("%d", mov.StockBefore), 2),
		v(fmt.Sprintf("%d", mov.StockAfter), 2),
	)
}

func detailsRow(mov *entity.StockMovement) core.Row {
	return row.New(40).Add(
		col.New(8).Add(
			text.New("Documento de referencia: "+nonEmpty(mov.DocumentReference, "-"), props.Text{
				Size: 8, Top: 2,
			}),
			text.New("Notas: "+nonEmpty(mov.Notes, "-"), props.Text{
				Size: 8, Top: 8, Color: colorGray,
			}),
		),
		col.New(4).Add(code.NewQr(mov.TransactionCode, props.Rect{
			Percent: 90,
			Center:  true,
		})),
	)
}

func signaturesRow(mov *entity.StockMovement) core.Row {
	left, right := "Entregó", "Recibió"
	if mov.Type == entity.MovementTypeOut {
		left, right = "Despachó", "Recibió conforme"
	}
	sig := func(label string) core.Col {
		return col.New(6).Add(
			text.New("______________________________", props.Text{Size: 9, Align: align.Center}),
			text.New(label, props.Text{Size: 8, Align: align.Center, Top: 5, Color: colorGray}),
		)
	}
	return row.New(14).Add(sig(left), sig(right))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formatea con puntos de miles y coma decimal (2 decimales).
// Ej: 1234567.5 → "1.234.567,50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "," + frac
}
