package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/gudang-api/internal/application/dto"
	"github.com/jhoicas/gudang-api/internal/domain"
	"github.com/jhoicas/gudang-api/internal/domain/entity"
	"github.com/jhoicas/gudang-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// CategoryUseCase CRUD de categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	now := time.Now()
	c := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Code:        in.Code,
		Description: in.Description,
		Status:      statusOrActive(in.Status),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

func (uc *CategoryUseCase) Get(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(c), nil
}

func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Name, c.Code, c.Description = in.Name, in.Code, in.Description
	if in.Status != "" {
		c.Status = in.Status
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

func (uc *CategoryUseCase) List(ctx context.Context, status string, limit, offset int) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// Delete falla con ErrDeleteBlocked si hay artículos en la categoría.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Code:        c.Code,
		Description: c.Description,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// VendorUseCase CRUD de proveedores.
type VendorUseCase struct {
	repo repository.VendorRepository
}

// NewVendorUseCase construye el caso de uso.
func NewVendorUseCase(repo repository.VendorRepository) *VendorUseCase {
	return &VendorUseCase{repo: repo}
}

var maxRating = decimal.NewFromInt(5)

func validRating(r decimal.Decimal) bool {
	return !r.IsNegative() && r.LessThanOrEqual(maxRating)
}

func (uc *VendorUseCase) Create(ctx context.Context, in dto.VendorRequest) (*dto.VendorResponse, error) {
	if !validRating(in.Rating) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	v := &entity.Vendor{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Company:       in.Company,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		ContactPerson: in.ContactPerson,
		Status:        statusOrActive(in.Status),
		Rating:        in.Rating,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return toVendorResponse(v), nil
}

func (uc *VendorUseCase) Get(ctx context.Context, id string) (*dto.VendorResponse, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return toVendorResponse(v), nil
}

func (uc *VendorUseCase) Update(ctx context.Context, id string, in dto.VendorRequest) (*dto.VendorResponse, error) {
	if !validRating(in.Rating) {
		return nil, domain.ErrInvalidInput
	}
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	v.Name, v.Company, v.Email, v.Phone = in.Name, in.Company, in.Email, in.Phone
	v.Address, v.ContactPerson, v.Rating, v.Notes = in.Address, in.ContactPerson, in.Rating, in.Notes
	if in.Status != "" {
		v.Status = in.Status
	}
	v.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return toVendorResponse(v), nil
}

func (uc *VendorUseCase) List(ctx context.Context, status string, limit, offset int) ([]dto.VendorResponse, error) {
	list, err := uc.repo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VendorResponse, 0, len(list))
	for _, v := range list {
		out = append(out, *toVendorResponse(v))
	}
	return out, nil
}

// Delete falla con ErrDeleteBlocked si hay artículos del proveedor.
func (uc *VendorUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toVendorResponse(v *entity.Vendor) *dto.VendorResponse {
	return &dto.VendorResponse{
		ID:            v.ID,
		Name:          v.Name,
		Company:       v.Company,
		Email:         v.Email,
		Phone:         v.Phone,
		Address:       v.Address,
		ContactPerson: v.ContactPerson,
		Status:        v.Status,
		Rating:        v.Rating,
		Notes:         v.Notes,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func statusOrActive(s string) string {
	if s == "" {
		return entity.StatusActive
	}
	return s
}
