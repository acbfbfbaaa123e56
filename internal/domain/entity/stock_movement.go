package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direcciones de movimiento.
const (
	MovementTypeIn  = "in"  // entrada
	MovementTypeOut = "out" // salida
)

// StockMovement es una entrada del registro de transacciones de stock.
// Inmutable una vez creada; solo se elimina por la vía de reversión.
// Invariante: StockAfter = StockBefore ± Quantity según Type, y StockAfter >= 0.
type StockMovement struct {
	ID                string
	TransactionCode   string // IN-YY-NNN / OUT-YY-NNN
	ItemID            string
	UserID            string
	Type              string
	Quantity          int64
	UnitPrice         decimal.Decimal
	TotalAmount       decimal.Decimal // Quantity × UnitPrice
	StockBefore       int64
	StockAfter        int64
	Notes             string
	DocumentReference string // PO, nota de entrega, etc.
	TransactionDate   time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Datos de lectura (joins), vacíos en escritura.
	ItemCode string
	ItemName string
	UserName string
}
