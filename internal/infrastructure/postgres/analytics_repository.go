package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/gudang-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el reporte de consumo.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// ItemConsumption agrupa las salidas por artículo en [start, end].
func (r *AnalyticsRepo) ItemConsumption(ctx context.Context, start, end time.Time, limit int) ([]repository.ItemConsumptionResult, error) {
	const query = `
	SELECT
	    i.id,
	    i.code,
	    i.name,
	    SUM(t.quantity)::bigint          AS units_out,
	    COALESCE(SUM(t.total_amount), 0) AS value_out,
	    COUNT(*)::int                    AS movement_count
	FROM stock_transactions t
	JOIN items i ON i.id = t.item_id
	WHERE t.type = 'out'
	  AND t.transaction_date BETWEEN $1 AND $2
	GROUP BY i.id, i.code, i.name
	ORDER BY value_out DESC, units_out DESC, i.code
	LIMIT $3`

	rows, err := r.q.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("item consumption: %w", err)
	}
	defer rows.Close()

	var out []repository.ItemConsumptionResult
	for rows.Next() {
		var c repository.ItemConsumptionResult
		if err := rows.Scan(&c.ItemID, &c.Code, &c.Name, &c.UnitsOut, &c.ValueOut, &c.MovementCount); err != nil {
			return nil, fmt.Errorf("scan item consumption: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
