package ledger_test

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gudang-api/internal/domain"
	"github.com/jhoicas/gudang-api/internal/domain/entity"
	"github.com/jhoicas/gudang-api/internal/domain/ledger"
)

func TestApply(t *testing.T) {
	cases := []struct {
		name      string
		before    int64
		direction string
		qty       int64
		want      int64
		err       error
	}{
		{"entrada suma", 100, entity.MovementTypeIn, 50, 150, nil},
		{"salida resta", 150, entity.MovementTypeOut, 30, 120, nil},
		{"salida exacta deja cero", 10, entity.MovementTypeOut, 10, 0, nil},
		{"salida mayor al saldo", 120, entity.MovementTypeOut, 200, 120, domain.ErrInsufficientStock},
		{"salida 15 sobre 10", 10, entity.MovementTypeOut, 15, 10, domain.ErrInsufficientStock},
		{"cantidad cero", 10, entity.MovementTypeIn, 0, 10, domain.ErrInvalidQuantity},
		{"cantidad negativa", 10, entity.MovementTypeOut, -1, 10, domain.ErrInvalidQuantity},
		{"tipo inválido", 10, "adjust", 1, 10, domain.ErrInvalidInput},
		{"entrada desborda int64", 10, entity.MovementTypeIn, math.MaxInt64, 10, domain.ErrInvalidQuantity},
		{"entrada hasta el máximo", 10, entity.MovementTypeIn, math.MaxInt64 - 10, math.MaxInt64, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ledger.Apply(tc.before, tc.direction, tc.qty)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReverse(t *testing.T) {
	got, err := ledger.Reverse(120, entity.MovementTypeOut, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(150), got)

	got, err = ledger.Reverse(150, entity.MovementTypeIn, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(100), got)

	// Entrada de 50 ya consumida por salidas posteriores: revertirla dejaría el saldo negativo.
	got, err = ledger.Reverse(20, entity.MovementTypeIn, 50)
	require.ErrorIs(t, err, domain.ErrWouldUnderflow)
	assert.Equal(t, int64(20), got)

	got, err = ledger.Reverse(math.MaxInt64-5, entity.MovementTypeOut, 10)
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Equal(t, int64(math.MaxInt64-5), got)
}

func TestTotalAmount_Exacto(t *testing.T) {
	price := decimal.RequireFromString("19.99")
	assert.True(t, ledger.TotalAmount(3, price).Equal(decimal.RequireFromString("59.97")))

	price = decimal.RequireFromString("0.10")
	assert.Equal(t, "1000.00", ledger.TotalAmount(10000, price).StringFixed(2))
}

func TestFormatCode(t *testing.T) {
	at := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "IN-25-001", ledger.FormatCode(ledger.PrefixIn, at, 1))
	assert.Equal(t, "OUT-25-042", ledger.FormatCode(ledger.CodePrefix(entity.MovementTypeOut), at, 42))
	assert.Equal(t, "REQ-25-1234", ledger.FormatCode(ledger.PrefixRequest, at, 1234))
	assert.Equal(t, "IN-05-007", ledger.FormatCode(ledger.PrefixIn, time.Date(2105, 1, 1, 0, 0, 0, 0, time.UTC), 7))
}
