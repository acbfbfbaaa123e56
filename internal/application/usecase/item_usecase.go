package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/gudang-api/internal/application/dto"
	"github.com/jhoicas/gudang-api/internal/application/inventory"
	"github.com/jhoicas/gudang-api/internal/domain"
	"github.com/jhoicas/gudang-api/internal/domain/entity"
	"github.com/jhoicas/gudang-api/internal/domain/repository"
)

// recentMovements cantidad de movimientos que acompañan al detalle de un artículo.
const recentMovements = 10

// ItemUseCase casos de uso CRUD para artículos. El stock solo se modifica vía movimientos.
type ItemUseCase struct {
	repo       repository.ItemRepository
	movements  repository.StockMovementRepository
	categories repository.CategoryRepository
	vendors    repository.VendorRepository
	txRunner   inventory.TxRunner
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(
	repo repository.ItemRepository,
	movements repository.StockMovementRepository,
	categories repository.CategoryRepository,
	vendors repository.VendorRepository,
	txRunner inventory.TxRunner,
) *ItemUseCase {
	return &ItemUseCase{repo: repo, movements: movements, categories: categories, vendors: vendors, txRunner: txRunner}
}

// Create crea un artículo. current_stock es el saldo de apertura (>= 0).
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if !entity.ValidItemType(in.Type) || in.CurrentStock < 0 || in.MinimumStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.PurchasePrice.IsNegative() || in.SellingPrice.IsNegative() {
		return nil, domain.ErrInvalidPrice
	}
	existing, err := uc.repo.GetByCode(ctx, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.checkRefs(ctx, in.CategoryID, in.VendorID); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.StatusActive
	}
	now := time.Now()
	item := &entity.Item{
		ID:            uuid.New().String(),
		Code:          in.Code,
		Name:          in.Name,
		Description:   in.Description,
		CategoryID:    in.CategoryID,
		VendorID:      in.VendorID,
		Type:          in.Type,
		PurchasePrice: in.PurchasePrice,
		SellingPrice:  in.SellingPrice,
		CurrentStock:  in.CurrentStock,
		MinimumStock:  in.MinimumStock,
		Unit:          in.Unit,
		Location:      in.Location,
		Barcode:       in.Barcode,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	resp := dto.FromItem(item)
	return &resp, nil
}

func (uc *ItemUseCase) checkRefs(ctx context.Context, categoryID, vendorID string) error {
	c, err := uc.categories.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrInvalidInput
	}
	v, err := uc.vendors.GetByID(ctx, vendorID)
	if err != nil {
		return err
	}
	if v == nil {
		return domain.ErrInvalidInput
	}
	return nil
}

// Get obtiene el artículo con sus últimos movimientos.
func (uc *ItemUseCase) Get(ctx context.Context, id string) (*dto.ItemDetailResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	recent, err := uc.movements.ListByItem(ctx, id, recentMovements)
	if err != nil {
		return nil, err
	}
	return &dto.ItemDetailResponse{
		ItemResponse:       dto.FromItem(item),
		RecentTransactions: dto.FromMovements(recent),
	}, nil
}

// Update actualización parcial de datos maestros. current_stock no es editable.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	if in.Code != nil && *in.Code != item.Code {
		other, err := uc.repo.GetByCode(ctx, *in.Code)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrDuplicate
		}
		item.Code = *in.Code
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.CategoryID != nil {
		item.CategoryID = *in.CategoryID
	}
	if in.VendorID != nil {
		item.VendorID = *in.VendorID
	}
	if in.CategoryID != nil || in.VendorID != nil {
		if err := uc.checkRefs(ctx, item.CategoryID, item.VendorID); err != nil {
			return nil, err
		}
	}
	if in.Type != nil {
		if !entity.ValidItemType(*in.Type) {
			return nil, domain.ErrInvalidInput
		}
		item.Type = *in.Type
	}
	if in.PurchasePrice != nil {
		if in.PurchasePrice.IsNegative() {
			return nil, domain.ErrInvalidPrice
		}
		item.PurchasePrice = *in.PurchasePrice
	}
	if in.SellingPrice != nil {
		if in.SellingPrice.IsNegative() {
			return nil, domain.ErrInvalidPrice
		}
		item.SellingPrice = *in.SellingPrice
	}
	if in.MinimumStock != nil {
		if *in.MinimumStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.MinimumStock = *in.MinimumStock
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.Location != nil {
		item.Location = *in.Location
	}
	if in.Barcode != nil {
		item.Barcode = *in.Barcode
	}
	if in.Status != nil {
		item.Status = *in.Status
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	// Releer: Update no toca el stock y otro movimiento pudo cambiarlo.
	fresh, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fresh == nil {
		return nil, domain.ErrItemNotFound
	}
	resp := dto.FromItem(fresh)
	return &resp, nil
}

// List lista artículos con filtros y paginación.
func (uc *ItemUseCase) List(ctx context.Context, f repository.ItemFilter) (*dto.ItemListResponse, error) {
	list, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, dto.FromItem(it))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset, Total: total},
	}, nil
}

// Delete elimina un artículo solo si no tiene movimientos. La verificación y el borrado
// ocurren en la misma transacción con la fila bloqueada, así que no compite con un movimiento nuevo.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		items repository.ItemRepository,
		movements repository.StockMovementRepository,
		_ repository.SequenceRepository,
	) error {
		item, err := items.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNotFound
		}
		n, err := movements.CountByItem(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrDeleteBlocked
		}
		return items.Delete(ctx, id)
	})
}
