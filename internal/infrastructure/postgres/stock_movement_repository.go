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

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del registro de transacciones sobre PostgreSQL.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// movementSelect incluye código/nombre del artículo y nombre del usuario.
const movementSelect = `
	SELECT t.id, t.transaction_code, t.item_id, t.user_id, t.type, t.quantity,
		t.unit_price, t.total_amount, t.stock_before, t.stock_after,
		COALESCE(t.notes, ''), COALESCE(t.document_reference, ''),
		t.transaction_date, t.created_at, t.updated_at,
		COALESCE(i.code, ''), COALESCE(i.name, ''), COALESCE(u.name, '')
	FROM stock_transactions t
	LEFT JOIN items i ON i.id = t.item_id
	LEFT JOIN users u ON u.id = t.user_id`

func scanMovement(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	err := row.Scan(
		&m.ID, &m.TransactionCode, &m.ItemID, &m.UserID, &m.Type, &m.Quantity,
		&m.UnitPrice, &m.TotalAmount, &m.StockBefore, &m.StockAfter,
		&m.Notes, &m.DocumentReference,
		&m.TransactionDate, &m.CreatedAt, &m.UpdatedAt,
		&m.ItemCode, &m.ItemName, &m.UserName,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserta el movimiento. El código duplicado se reporta como ErrDuplicate.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_transactions (id, transaction_code, item_id, user_id, type, quantity,
			unit_price, total_amount, stock_before, stock_after, notes, document_reference,
			transaction_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.TransactionCode, m.ItemID, m.UserID, m.Type, m.Quantity,
		m.UnitPrice, m.TotalAmount, m.StockBefore, m.StockAfter,
		nullIfEmpty(m.Notes), nullIfEmpty(m.DocumentReference),
		m.TransactionDate, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err):
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert stock transaction: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento; (nil, nil) si no existe.
func (r *StockMovementRepo) GetByID(ctx context.Context, id string) (*entity.StockMovement, error) {
	m, err := scanMovement(r.q.QueryRow(ctx, movementSelect+` WHERE t.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock transaction: %w", err)
	}
	return m, nil
}

// List movimientos filtrados, más recientes primero, con total.
func (r *StockMovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.StockMovement, int, error) {
	where := ` WHERE 1=1`
	args := []any{}
	pos := 1
	if f.Search != "" {
		where += fmt.Sprintf(" AND (t.transaction_code ILIKE $%d OR i.name ILIKE $%d)", pos, pos)
		args = append(args, "%"+f.Search+"%")
		pos++
	}
	if f.Type != "" {
		where += fmt.Sprintf(" AND t.type = $%d", pos)
		args = append(args, f.Type)
		pos++
	}
	if f.ItemID != "" {
		where += fmt.Sprintf(" AND t.item_id::text = $%d", pos)
		args = append(args, f.ItemID)
		pos++
	}
	if f.DateFrom != nil {
		where += fmt.Sprintf(" AND t.transaction_date >= $%d", pos)
		args = append(args, *f.DateFrom)
		pos++
	}
	if f.DateTo != nil {
		where += fmt.Sprintf(" AND t.transaction_date <= $%d", pos)
		args = append(args, *f.DateTo)
		pos++
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM stock_transactions t LEFT JOIN items i ON i.id = t.item_id` + where
	if err := r.q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stock transactions: %w", err)
	}

	query := movementSelect + where +
		fmt.Sprintf(" ORDER BY t.transaction_date DESC, t.created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)
	list, err := queryMovements(ctx, r.q, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListByItem movimientos de un artículo, más recientes primero.
func (r *StockMovementRepo) ListByItem(ctx context.Context, itemID string, limit int) ([]*entity.StockMovement, error) {
	query := movementSelect + ` WHERE t.item_id = $1 ORDER BY t.transaction_date DESC, t.created_at DESC LIMIT $2`
	return queryMovements(ctx, r.q, query, itemID, limit)
}

// CountByItem cantidad de movimientos del artículo (guardia de borrado).
func (r *StockMovementRepo) CountByItem(ctx context.Context, itemID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM stock_transactions WHERE item_id = $1`, itemID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count stock transactions by item: %w", err)
	}
	return n, nil
}

// Delete elimina el movimiento. 0 filas afectadas = ya no existe (ErrNotFound).
func (r *StockMovementRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM stock_transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func queryMovements(ctx context.Context, q Querier, query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock transaction: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
