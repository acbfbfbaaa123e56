package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear un artículo. CurrentStock es el saldo de apertura.
type CreateItemRequest struct {
	Code          string          `json:"code" validate:"required,max=20"`
	Name          string          `json:"name" validate:"required,max=255"`
	Description   string          `json:"description"`
	CategoryID    string          `json:"category_id" validate:"required"`
	VendorID      string          `json:"vendor_id" validate:"required"`
	Type          string          `json:"type" validate:"required,oneof=consumable asset spare_part"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	CurrentStock  int64           `json:"current_stock" validate:"gte=0"`
	MinimumStock  int64           `json:"minimum_stock" validate:"gte=0"`
	Unit          string          `json:"unit" validate:"required,max=20"`
	Location      string          `json:"location" validate:"max=100"`
	Barcode       string          `json:"barcode" validate:"max=50"`
	Status        string          `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateItemRequest actualización parcial (sin stock: solo lo modifica el libro de stock).
type UpdateItemRequest struct {
	Code          *string          `json:"code" validate:"omitempty,min=1,max=20"`
	Name          *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Description   *string          `json:"description"`
	CategoryID    *string          `json:"category_id" validate:"omitempty,min=1"`
	VendorID      *string          `json:"vendor_id" validate:"omitempty,min=1"`
	Type          *string          `json:"type" validate:"omitempty,oneof=consumable asset spare_part"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SellingPrice  *decimal.Decimal `json:"selling_price"`
	MinimumStock  *int64           `json:"minimum_stock" validate:"omitempty,gte=0"`
	Unit          *string          `json:"unit" validate:"omitempty,min=1,max=20"`
	Location      *string          `json:"location" validate:"omitempty,max=100"`
	Barcode       *string          `json:"barcode" validate:"omitempty,max=50"`
	Status        *string          `json:"status" validate:"omitempty,oneof=active inactive"`
}

// ItemResponse salida de un artículo.
type ItemResponse struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	CategoryID    string          `json:"category_id"`
	VendorID      string          `json:"vendor_id"`
	Type          string          `json:"type"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	CurrentStock  int64           `json:"current_stock"`
	MinimumStock  int64           `json:"minimum_stock"`
	IsLowStock    bool            `json:"is_low_stock"`
	Unit          string          `json:"unit"`
	Location      string          `json:"location,omitempty"`
	Barcode       string          `json:"barcode,omitempty"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ItemDetailResponse artículo con sus movimientos recientes.
type ItemDetailResponse struct {
	ItemResponse
	RecentTransactions []MovementResponse `json:"recent_transactions"`
}

// ItemListResponse lista paginada de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// LowStockItemDTO artículo bajo mínimo con cantidad sugerida de reposición.
type LowStockItemDTO struct {
	ItemID       string `json:"item_id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Unit         string `json:"unit"`
	CurrentStock int64  `json:"current_stock"`
	MinimumStock int64  `json:"minimum_stock"`
	Deficit      int64  `json:"deficit"`       // minimum - current (puede ser 0)
	SuggestedQty int64  `json:"suggested_qty"` // minimum*2 - current
}
