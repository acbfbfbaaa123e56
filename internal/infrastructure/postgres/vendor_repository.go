package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/gudang-api/internal/domain"
	"github.com/jhoicas/gudang-api/internal/domain/entity"
	"github.com/jhoicas/gudang-api/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

// VendorRepo implementación de VendorRepository sobre PostgreSQL.
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador de proveedores.
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

const vendorColumns = `
	id, name, company, email, phone, address, contact_person, status, rating,
	COALESCE(notes, ''), created_at, updated_at`

func scanVendor(row pgx.Row) (*entity.Vendor, error) {
	var v entity.Vendor
	err := row.Scan(
		&v.ID, &v.Name, &v.Company, &v.Email, &v.Phone, &v.Address, &v.ContactPerson,
		&v.Status, &v.Rating, &v.Notes, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Create persiste un proveedor. Email repetido = ErrDuplicate.
func (r *VendorRepo) Create(ctx context.Context, v *entity.Vendor) error {
	query := `
		INSERT INTO vendors (id, name, company, email, phone, address, contact_person, status,
			rating, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		v.ID, v.Name, v.Company, v.Email, v.Phone, v.Address, v.ContactPerson, v.Status,
		v.Rating, nullIfEmpty(v.Notes), v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isCheckViolation(err):
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor; (nil, nil) si no existe.
func (r *VendorRepo) GetByID(ctx context.Context, id string) (*entity.Vendor, error) {
	v, err := scanVendor(r.q.QueryRow(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return v, nil
}

// Update actualiza todos los campos editables.
func (r *VendorRepo) Update(ctx context.Context, v *entity.Vendor) error {
	query := `
		UPDATE vendors SET name = $2, company = $3, email = $4, phone = $5, address = $6,
			contact_person = $7, status = $8, rating = $9, notes = $10, updated_at = $11
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		v.ID, v.Name, v.Company, v.Email, v.Phone, v.Address, v.ContactPerson, v.Status,
		v.Rating, nullIfEmpty(v.Notes), v.UpdatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isCheckViolation(err):
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update vendor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List proveedores ordenados por nombre; status vacío = todos.
func (r *VendorRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors
		WHERE ($1::text = '' OR status = $1) ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vendor
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// Delete elimina el proveedor. Artículos asociados = ErrDeleteBlocked.
func (r *VendorRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM vendors WHERE id = $1`, id)
	if err != nil {
		switch {
		case isForeignKeyViolation(err):
			return domain.ErrDeleteBlocked
		case isInvalidID(err):
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete vendor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
