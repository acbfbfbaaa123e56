package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/gudang-api/internal/domain/entity"
	"github.com/jhoicas/gudang-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para el panel.
type DashboardRepo struct {
	q         Querier
	items     *ItemRepo
	movements *StockMovementRepo
	requests  *StockRequestRepo
}

// NewDashboardRepository construye el adaptador del panel.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{
		q:         q,
		items:     NewItemRepository(q),
		movements: NewStockMovementRepository(q),
		requests:  NewStockRequestRepository(q),
	}
}

// Counts contadores de registros activos en una sola consulta.
func (r *DashboardRepo) Counts(ctx context.Context) (repository.DashboardCounts, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM items      WHERE status = 'active'),
	    (SELECT COUNT(*) FROM vendors    WHERE status = 'active'),
	    (SELECT COUNT(*) FROM categories WHERE status = 'active'),
	    (SELECT COUNT(*) FROM items      WHERE status = 'active' AND current_stock <= minimum_stock)`
	var c repository.DashboardCounts
	if err := r.q.QueryRow(ctx, query).Scan(&c.ActiveItems, &c.ActiveVendors, &c.ActiveCategories, &c.LowStockItems); err != nil {
		return c, fmt.Errorf("dashboard counts: %w", err)
	}
	return c, nil
}

func (r *DashboardRepo) RecentMovements(ctx context.Context, limit int) ([]*entity.StockMovement, error) {
	list, _, err := r.movements.List(ctx, repository.MovementFilter{Limit: limit})
	return list, err
}

func (r *DashboardRepo) PendingRequests(ctx context.Context, limit int) ([]*entity.StockRequest, error) {
	return r.requests.List(ctx, repository.StockRequestFilter{Status: entity.RequestStatusPending, Limit: limit})
}

func (r *DashboardRepo) LowStockItems(ctx context.Context, limit int) ([]*entity.Item, error) {
	return r.items.ListLowStock(ctx, limit)
}

// DailyTrends cantidades por día desde since. Los días sin movimientos no aparecen;
// el use case completa los huecos.
func (r *DashboardRepo) DailyTrends(ctx context.Context, since time.Time) ([]repository.DailyTrend, error) {
	const query = `
	SELECT
	    transaction_date::date                                           AS day,
	    COALESCE(SUM(quantity) FILTER (WHERE type = 'in'), 0)::bigint    AS stock_in,
	    COALESCE(SUM(quantity) FILTER (WHERE type = 'out'), 0)::bigint   AS stock_out
	FROM stock_transactions
	WHERE transaction_date >= $1
	GROUP BY day
	ORDER BY day`
	rows, err := r.q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("daily trends: %w", err)
	}
	defer rows.Close()
	var out []repository.DailyTrend
	for rows.Next() {
		var t repository.DailyTrend
		if err := rows.Scan(&t.Date, &t.StockIn, &t.StockOut); err != nil {
			return nil, fmt.Errorf("scan daily trend: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// TopCategories categorías por valor total movido (entradas y salidas).
func (r *DashboardRepo) TopCategories(ctx context.Context, limit int) ([]repository.CategoryValue, error) {
	const query = `
	SELECT c.name, COALESCE(SUM(t.total_amount), 0) AS total_value
	FROM stock_transactions t
	JOIN items i      ON i.id = t.item_id
	JOIN categories c ON c.id = i.category_id
	GROUP BY c.id, c.name
	ORDER BY total_value DESC, c.name
	LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top categories: %w", err)
	}
	defer rows.Close()
	var out []repository.CategoryValue
	for rows.Next() {
		var cv repository.CategoryValue
		if err := rows.Scan(&cv.CategoryName, &cv.TotalValue); err != nil {
			return nil, fmt.Errorf("scan category value: %w", err)
		}
		out = append(out, cv)
	}
	return out, rows.Err()
}

// MonthlySummaries importes por año/mes desde since, más reciente primero.
func (r *DashboardRepo) MonthlySummaries(ctx context.Context, since time.Time) ([]repository.MonthlySummary, error) {
	const query = `
	SELECT
	    EXTRACT(YEAR FROM transaction_date)::int                              AS year,
	    EXTRACT(MONTH FROM transaction_date)::int                             AS month,
	    COALESCE(SUM(total_amount) FILTER (WHERE type = 'in'), 0)            AS total_in,
	    COALESCE(SUM(total_amount) FILTER (WHERE type = 'out'), 0)           AS total_out,
	    COUNT(*)::int                                                        AS transaction_count
	FROM stock_transactions
	WHERE transaction_date >= $1
	GROUP BY year, month
	ORDER BY year DESC, month DESC`
	rows, err := r.q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("monthly summaries: %w", err)
	}
	defer rows.Close()
	var out []repository.MonthlySummary
	for rows.Next() {
		var m repository.MonthlySummary
		if err := rows.Scan(&m.Year, &m.Month, &m.TotalIn, &m.TotalOut, &m.TransactionCount); err != nil {
			return nil, fmt.Errorf("scan monthly summary: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
