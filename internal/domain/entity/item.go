package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de artículo.
const (
	ItemTypeConsumable = "consumable"
	ItemTypeAsset      = "asset"
	ItemTypeSparePart  = "spare_part"
)

// Estados de registros maestros (artículo, categoría, proveedor, usuario).
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Item representa un artículo del almacén. CurrentStock solo lo modifica el libro de stock;
// el resto de campos se editan por administración.
type Item struct {
	ID            string
	Code          string // único
	Name          string
	Description   string
	CategoryID    string
	VendorID      string
	Type          string // consumable, asset, spare_part
	PurchasePrice decimal.Decimal
	SellingPrice  decimal.Decimal
	CurrentStock  int64 // nunca negativo
	MinimumStock  int64
	Unit          string // pcs, kg, liter...
	Location      string
	Barcode       string // único si no está vacío
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsLowStock indica si el stock actual está en o por debajo del mínimo.
func (i *Item) IsLowStock() bool {
	return i.CurrentStock <= i.MinimumStock
}

// ValidItemType verifica el tipo de artículo.
func ValidItemType(t string) bool {
	switch t {
	case ItemTypeConsumable, ItemTypeAsset, ItemTypeSparePart:
		return true
	}
	return false
}
