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

var _ repository.StockRequestRepository = (*StockRequestRepo)(nil)

// StockRequestRepo implementación de solicitudes de stock sobre PostgreSQL.
type StockRequestRepo struct {
	q Querier
}

// NewStockRequestRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockRequestRepository(q Querier) *StockRequestRepo {
	return &StockRequestRepo{q: q}
}

const requestSelect = `
	SELECT r.id, r.request_code, r.item_id, r.requested_by, COALESCE(r.approved_by::text, ''),
		r.requested_quantity, r.approved_quantity, r.status, r.request_reason,
		COALESCE(r.approval_notes, ''), r.request_date, r.approval_date, r.created_at, r.updated_at,
		COALESCE(i.code, ''), COALESCE(i.name, ''), COALESCE(u.name, '')
	FROM stock_requests r
	LEFT JOIN items i ON i.id = r.item_id
	LEFT JOIN users u ON u.id = r.requested_by`

func scanRequest(row pgx.Row) (*entity.StockRequest, error) {
	var req entity.StockRequest
	err := row.Scan(
		&req.ID, &req.RequestCode, &req.ItemID, &req.RequestedBy, &req.ApprovedBy,
		&req.RequestedQuantity, &req.ApprovedQuantity, &req.Status, &req.RequestReason,
		&req.ApprovalNotes, &req.RequestDate, &req.ApprovalDate, &req.CreatedAt, &req.UpdatedAt,
		&req.ItemCode, &req.ItemName, &req.RequestedByName,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Create persiste la solicitud en estado pendiente.
func (r *StockRequestRepo) Create(ctx context.Context, req *entity.StockRequest) error {
	query := `
		INSERT INTO stock_requests (id, request_code, item_id, requested_by, requested_quantity,
			status, request_reason, request_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		req.ID, req.RequestCode, req.ItemID, req.RequestedBy, req.RequestedQuantity,
		req.Status, req.RequestReason, req.RequestDate, req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err):
			return domain.ErrItemNotFound
		}
		return fmt.Errorf("insert stock request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud; (nil, nil) si no existe.
func (r *StockRequestRepo) GetByID(ctx context.Context, id string) (*entity.StockRequest, error) {
	req, err := scanRequest(r.q.QueryRow(ctx, requestSelect+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock request: %w", err)
	}
	return req, nil
}

// UpdateStatus aplica la transición solo si la fila sigue en el estado previo
// (pending para approved/rejected, approved para fulfilled). Si otra transacción
// se adelantó no se actualiza nada y se devuelve ErrInvalidTransition.
func (r *StockRequestRepo) UpdateStatus(ctx context.Context, req *entity.StockRequest) error {
	from := entity.RequestStatusPending
	if req.Status == entity.RequestStatusFulfilled {
		from = entity.RequestStatusApproved
	}
	query := `
		UPDATE stock_requests
		SET status = $2, approved_by = $3, approved_quantity = $4, approval_notes = $5,
			approval_date = $6, updated_at = $7
		WHERE id = $1 AND status = $8`
	tag, err := r.q.Exec(ctx, query,
		req.ID, req.Status, nullIfEmpty(req.ApprovedBy), req.ApprovedQuantity,
		nullIfEmpty(req.ApprovalNotes), req.ApprovalDate, req.UpdatedAt, from,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update stock request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM stock_requests WHERE id = $1)`, req.ID).Scan(&exists); err != nil {
			return fmt.Errorf("check stock request: %w", err)
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrInvalidTransition
	}
	return nil
}

// List solicitudes filtradas, más recientes primero.
func (r *StockRequestRepo) List(ctx context.Context, f repository.StockRequestFilter) ([]*entity.StockRequest, error) {
	query := requestSelect + ` WHERE 1=1`
	args := []any{}
	pos := 1
	if f.Status != "" {
		query += fmt.Sprintf(" AND r.status = $%d", pos)
		args = append(args, f.Status)
		pos++
	}
	if f.ItemID != "" {
		query += fmt.Sprintf(" AND r.item_id::text = $%d", pos)
		args = append(args, f.ItemID)
		pos++
	}
	if f.RequestedBy != "" {
		query += fmt.Sprintf(" AND r.requested_by = $%d", pos)
		args = append(args, f.RequestedBy)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY r.request_date DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock request: %w", err)
		}
		list = append(list, req)
	}
	return list, rows.Err()
}
