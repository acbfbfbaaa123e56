package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gudang-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	tests := map[string]string{
		"0":          "0,00",
		"25":         "25,00",
		"1234.5":     "1.234,50",
		"1000000":    "1.000.000,00",
		"-98765.432": "-98.765,43",
	}
	for in, want := range tests {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestGenerateMovementReceipt(t *testing.T) {
	g := NewMarotoPDFGenerator("Gudang Central")
	mov := &entity.StockMovement{
		TransactionCode: "OUT-25-014", Type: entity.MovementTypeOut, Quantity: 3,
		UnitPrice: decimal.RequireFromString("12.50"), TotalAmount: decimal.RequireFromString("37.50"),
		StockBefore: 10, StockAfter: 7, TransactionDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		UserName: "Operario",
	}
	item := &entity.Item{Code: "ITM-001", Name: "Guantes de nitrilo", Unit: "pcs"}

	b, err := g.GenerateMovementReceipt(context.Background(), mov, item)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}
