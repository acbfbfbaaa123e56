package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryRequest alta/edición de categoría.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Code        string `json:"code" validate:"required,max=20"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// CategoryResponse salida de categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// VendorRequest alta/edición de proveedor.
type VendorRequest struct {
	Name          string          `json:"name" validate:"required,max=255"`
	Company       string          `json:"company" validate:"required,max=255"`
	Email         string          `json:"email" validate:"required,email"`
	Phone         string          `json:"phone" validate:"required,max=50"`
	Address       string          `json:"address" validate:"required"`
	ContactPerson string          `json:"contact_person" validate:"required,max=255"`
	Status        string          `json:"status" validate:"omitempty,oneof=active inactive"`
	Rating        decimal.Decimal `json:"rating"`
	Notes         string          `json:"notes"`
}

// VendorResponse salida de proveedor.
type VendorResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Company       string          `json:"company"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	ContactPerson string          `json:"contact_person"`
	Status        string          `json:"status"`
	Rating        decimal.Decimal `json:"rating"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
