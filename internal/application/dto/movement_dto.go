package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PostMovementRequest body para POST /api/stock-transactions.
// stock_before, stock_after, total_amount, transaction_code y user_id los calcula el servidor.
type PostMovementRequest struct {
	ItemID            string          `json:"item_id" validate:"required,uuid"`
	Type              string          `json:"type" validate:"required,oneof=in out"`
	Quantity          int64           `json:"quantity" validate:"required,min=1,max=1000000000"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	Notes             string          `json:"notes"`
	DocumentReference string          `json:"document_reference" validate:"max=100"`
	TransactionDate   string          `json:"transaction_date" validate:"required"` // RFC3339 o YYYY-MM-DD
}

// MovementResponse salida de un movimiento de stock.
type MovementResponse struct {
	ID                string          `json:"id"`
	TransactionCode   string          `json:"transaction_code"`
	ItemID            string          `json:"item_id"`
	ItemCode          string          `json:"item_code,omitempty"`
	ItemName          string          `json:"item_name,omitempty"`
	UserID            string          `json:"user_id"`
	UserName          string          `json:"user_name,omitempty"`
	Type              string          `json:"type"`
	Quantity          int64           `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	StockBefore       int64           `json:"stock_before"`
	StockAfter        int64           `json:"stock_after"`
	Notes             string          `json:"notes,omitempty"`
	DocumentReference string          `json:"document_reference,omitempty"`
	TransactionDate   time.Time       `json:"transaction_date"`
	CreatedAt         time.Time       `json:"created_at"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
