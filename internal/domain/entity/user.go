package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin          = "admin"
	RoleWarehouseStaff = "warehouse_staff"
	RolePurchasing     = "purchasing"
	RoleFinance        = "finance"
	RoleUser           = "user"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt
	Role         string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidRole verifica que el rol exista.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleWarehouseStaff, RolePurchasing, RoleFinance, RoleUser:
		return true
	}
	return false
}
