// Package ledger contiene la aritmética del libro de stock (servicio de dominio puro):
// cálculo del saldo tras un movimiento, reversión y formato de códigos.
package ledger

import (
	"fmt"
	"math"
	"time"

	"github.com/jhoicas/gudang-api/internal/domain"
	"github.com/jhoicas/gudang-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Prefijos de código.
const (
	PrefixIn      = "IN"
	PrefixOut     = "OUT"
	PrefixRequest = "REQ"
)

// Nombres de secuencia usados por el generador de códigos.
const (
	SequenceIn      = entity.MovementTypeIn
	SequenceOut     = entity.MovementTypeOut
	SequenceRequest = "request"
)

// ValidDirection indica si el tipo de movimiento es in u out.
func ValidDirection(direction string) bool {
	return direction == entity.MovementTypeIn || direction == entity.MovementTypeOut
}

// Apply calcula el saldo posterior a un movimiento.
//
//	in:  after = before + qty
//	out: after = before - qty, falla con ErrInsufficientStock si qty > before
func Apply(before int64, direction string, qty int64) (int64, error) {
	if qty <= 0 {
		return before, domain.ErrInvalidQuantity
	}
	switch direction {
	case entity.MovementTypeIn:
		if qty > math.MaxInt64-before {
			return before, domain.ErrInvalidQuantity
		}
		return before + qty, nil
	case entity.MovementTypeOut:
		if qty > before {
			return before, domain.ErrInsufficientStock
		}
		return before - qty, nil
	}
	return before, domain.ErrInvalidInput
}

// Reverse deshace el efecto de un movimiento sobre el saldo ACTUAL del artículo
// (no sobre los snapshots guardados en el movimiento).
func Reverse(current int64, direction string, qty int64) (int64, error) {
	if qty <= 0 {
		return current, domain.ErrInvalidQuantity
	}
	var reversed int64
	switch direction {
	case entity.MovementTypeIn:
		reversed = current - qty
	case entity.MovementTypeOut:
		if qty > math.MaxInt64-current {
			return current, domain.ErrInvalidQuantity
		}
		reversed = current + qty
	default:
		return current, domain.ErrInvalidInput
	}
	if reversed < 0 {
		return current, domain.ErrWouldUnderflow
	}
	return reversed, nil
}

// TotalAmount = qty × unitPrice, exacto (decimal, sin redondeo).
func TotalAmount(qty int64, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(qty))
}

// CodePrefix devuelve IN u OUT según la dirección.
func CodePrefix(direction string) string {
	if direction == entity.MovementTypeIn {
		return PrefixIn
	}
	return PrefixOut
}

// FormatCode arma {PREFIX}-{YY}-{NNN}; NNN tiene al menos tres dígitos.
func FormatCode(prefix string, at time.Time, seq int64) string {
	return fmt.Sprintf("%s-%02d-%03d", prefix, at.Year()%100, seq)
}
