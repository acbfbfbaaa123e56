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

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de artículos. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `
	id, code, name, COALESCE(description, ''), category_id, vendor_id, type,
	purchase_price, selling_price, current_stock, minimum_stock, unit,
	COALESCE(location, ''), COALESCE(barcode, ''), status, created_at, updated_at`

func scanItem(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(
		&it.ID, &it.Code, &it.Name, &it.Description, &it.CategoryID, &it.VendorID, &it.Type,
		&it.PurchasePrice, &it.SellingPrice, &it.CurrentStock, &it.MinimumStock, &it.Unit,
		&it.Location, &it.Barcode, &it.Status, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// Create persiste un nuevo artículo con su saldo de apertura.
func (r *ItemRepo) Create(ctx context.Context, it *entity.Item) error {
	query := `
		INSERT INTO items (id, code, name, description, category_id, vendor_id, type,
			purchase_price, selling_price, current_stock, minimum_stock, unit, location, barcode,
			status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		it.ID, it.Code, it.Name, nullIfEmpty(it.Description), it.CategoryID, it.VendorID, it.Type,
		it.PurchasePrice, it.SellingPrice, it.CurrentStock, it.MinimumStock, it.Unit,
		nullIfEmpty(it.Location), nullIfEmpty(it.Barcode), it.Status, it.CreatedAt, it.UpdatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err):
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

func (r *ItemRepo) getOne(ctx context.Context, query string, arg any) (*entity.Item, error) {
	it, err := scanItem(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// GetByID obtiene un artículo por ID; (nil, nil) si no existe.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	return r.getOne(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id)
}

// GetByCode obtiene un artículo por código.
func (r *ItemRepo) GetByCode(ctx context.Context, code string) (*entity.Item, error) {
	return r.getOne(ctx, `SELECT `+itemColumns+` FROM items WHERE code = $1`, code)
}

// GetForUpdate obtiene el artículo y bloquea la fila (SELECT FOR UPDATE) hasta el fin de la tx.
func (r *ItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.Item, error) {
	return r.getOne(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1 FOR UPDATE`, id)
}

// Update actualiza datos maestros. current_stock no se toca.
func (r *ItemRepo) Update(ctx context.Context, it *entity.Item) error {
	query := `
		UPDATE items SET code = $2, name = $3, description = $4, category_id = $5, vendor_id = $6,
			type = $7, purchase_price = $8, selling_price = $9, minimum_stock = $10, unit = $11,
			location = $12, barcode = $13, status = $14, updated_at = $15
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		it.ID, it.Code, it.Name, nullIfEmpty(it.Description), it.CategoryID, it.VendorID,
		it.Type, it.PurchasePrice, it.SellingPrice, it.MinimumStock, it.Unit,
		nullIfEmpty(it.Location), nullIfEmpty(it.Barcode), it.Status, it.UpdatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err):
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock fija el saldo. La CHECK current_stock >= 0 es la última barrera.
func (r *ItemRepo) UpdateStock(ctx context.Context, id string, stock int64) error {
	tag, err := r.q.Exec(ctx, `UPDATE items SET current_stock = $2, updated_at = now() WHERE id = $1`, id, stock)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInsufficientStock
		}
		return fmt.Errorf("update item stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// List lista artículos con filtros; devuelve también el total sin paginar.
func (r *ItemRepo) List(ctx context.Context, f repository.ItemFilter) ([]*entity.Item, int, error) {
	where := ` WHERE 1=1`
	args := []any{}
	pos := 1
	if f.Search != "" {
		where += fmt.Sprintf(" AND (name ILIKE $%d OR code ILIKE $%d)", pos, pos)
		args = append(args, "%"+f.Search+"%")
		pos++
	}
	if f.CategoryID != "" {
		where += fmt.Sprintf(" AND category_id::text = $%d", pos)
		args = append(args, f.CategoryID)
		pos++
	}
	if f.VendorID != "" {
		where += fmt.Sprintf(" AND vendor_id::text = $%d", pos)
		args = append(args, f.VendorID)
		pos++
	}
	if f.Type != "" {
		where += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, f.Type)
		pos++
	}
	if f.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, f.Status)
		pos++
	}
	if f.LowStock {
		where += " AND current_stock <= minimum_stock"
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM items`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	query := `SELECT ` + itemColumns + ` FROM items` + where +
		fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)
	list, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListLowStock artículos activos en o por debajo del mínimo, mayor déficit primero.
func (r *ItemRepo) ListLowStock(ctx context.Context, limit int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items
		WHERE status = 'active' AND current_stock <= minimum_stock
		ORDER BY (minimum_stock - current_stock) DESC, code
		LIMIT $1`
	return r.query(ctx, query, limit)
}

func (r *ItemRepo) query(ctx context.Context, query string, args ...any) ([]*entity.Item, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// Delete elimina el artículo. Si otra tabla lo referencia devuelve ErrDeleteBlocked.
func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrDeleteBlocked
		}
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
