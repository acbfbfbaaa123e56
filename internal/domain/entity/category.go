package entity

import "time"

// Category agrupa artículos (solo lectura desde el libro de stock).
type Category struct {
	ID          string
	Name        string
	Code        string // único
	Description string
	Status      string // active, inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
