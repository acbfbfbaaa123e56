// Package xmlexport genera la tarjeta de existencias (kardex) de un artículo en XML.
package xmlexport

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gudang-api/internal/application/report"
	"github.com/jhoicas/gudang-api/internal/domain/entity"
	"github.com/jhoicas/gudang-api/internal/domain/ledger"
)

// StockCardBuilder implementa report.StockCardGenerator con etree.
type StockCardBuilder struct {
	now func() time.Time
}

// NewStockCardBuilder crea el builder.
func NewStockCardBuilder() *StockCardBuilder {
	return &StockCardBuilder{now: time.Now}
}

var _ report.StockCardGenerator = (*StockCardBuilder)(nil)

// GenerateStockCard arma el documento:
//
//	<StockCard generatedAt="...">
//	  <Item .../>
//	  <Movements count="n"><Movement .../>...</Movements>
//	  <Summary>...</Summary>
//	</StockCard>
func (b *StockCardBuilder) GenerateStockCard(_ context.Context, item *entity.Item, movements []*entity.StockMovement) ([]byte, error) {
	if item == nil {
		return nil, fmt.Errorf("xmlexport: artículo nil")
	}
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("StockCard")
	root.CreateAttr("generatedAt", b.now().UTC().Format(time.RFC3339))

	it := root.CreateElement("Item")
	it.CreateAttr("id", item.ID)
	it.CreateAttr("code", item.Code)
	it.CreateElement("Name").SetText(item.Name)
	it.CreateElement("Unit").SetText(item.Unit)
	it.CreateElement("Location").SetText(item.Location)
	it.CreateElement("CurrentStock").SetText(itoa(item.CurrentStock))
	it.CreateElement("MinimumStock").SetText(itoa(item.MinimumStock))

	var (
		totalIn, totalOut int64
		valueIn, valueOut decimal.Decimal
		avgCost           decimal.Decimal
	)
	movs := root.CreateElement("Movements")
	movs.CreateAttr("count", strconv.Itoa(len(movements)))
	for _, m := range movements {
		el := movs.CreateElement("Movement")
		el.CreateAttr("code", m.TransactionCode)
		el.CreateAttr("type", m.Type)
		el.CreateAttr("date", m.TransactionDate.Format(time.DateOnly))
		el.CreateElement("Quantity").SetText(itoa(m.Quantity))
		el.CreateElement("UnitPrice").SetText(m.UnitPrice.StringFixed(2))
		el.CreateElement("TotalAmount").SetText(m.TotalAmount.StringFixed(2))
		el.CreateElement("StockBefore").SetText(itoa(m.StockBefore))
		el.CreateElement("StockAfter").SetText(itoa(m.StockAfter))
		if m.DocumentReference != "" {
			el.CreateElement("DocumentReference").SetText(m.DocumentReference)
		}
		if m.Notes != "" {
			el.CreateElement("Notes").SetText(m.Notes)
		}
		// costo promedio móvil: solo las entradas lo recalculan
		if m.Type == entity.MovementTypeIn {
			avgCost = ledger.AverageCost(m.StockBefore, avgCost, m.Quantity, m.UnitPrice)
		}
		el.CreateElement("AverageCost").SetText(avgCost.StringFixed(2))
		if m.Type == entity.MovementTypeIn {
			totalIn += m.Quantity
			valueIn = valueIn.Add(m.TotalAmount)
		} else {
			totalOut += m.Quantity
			valueOut = valueOut.Add(m.TotalAmount)
		}
	}

	opening := item.CurrentStock
	if len(movements) > 0 {
		opening = movements[0].StockBefore
	}
	sum := root.CreateElement("Summary")
	sum.CreateElement("OpeningStock").SetText(itoa(opening))
	sum.CreateElement("TotalIn").SetText(itoa(totalIn))
	sum.CreateElement("TotalOut").SetText(itoa(totalOut))
	sum.CreateElement("ValueIn").SetText(valueIn.StringFixed(2))
	sum.CreateElement("ValueOut").SetText(valueOut.StringFixed(2))
	sum.CreateElement("ClosingStock").SetText(itoa(item.CurrentStock))
	sum.CreateElement("AverageCost").SetText(avgCost.StringFixed(2))

	doc.Indent(2)
	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("xmlexport: escribir: %w", err)
	}
	return out.Bytes(), nil
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }
