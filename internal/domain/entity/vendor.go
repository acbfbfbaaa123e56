package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vendor proveedor de artículos.
type Vendor struct {
	ID            string
	Name          string
	Company       string
	Email         string // único
	Phone         string
	Address       string
	ContactPerson string
	Status        string
	Rating        decimal.Decimal // 0.0 – 5.0
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
