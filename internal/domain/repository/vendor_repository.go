package repository

import (
	"context"

	"github.com/jhoicas/gudang-api/internal/domain/entity"
)

// VendorRepository define el puerto de persistencia para Vendor (DIP).
type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	GetByID(ctx context.Context, id string) (*entity.Vendor, error)
	Update(ctx context.Context, vendor *entity.Vendor) error
	List(ctx context.Context, status string, limit, offset int) ([]*entity.Vendor, error)
	Delete(ctx context.Context, id string) error
}
