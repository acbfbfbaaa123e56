package repository

import (
	"context"
	"time"

	"github.com/jhoicas/gudang-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// DashboardCounts contadores de registros activos.
type DashboardCounts struct {
	ActiveItems      int
	ActiveVendors    int
	ActiveCategories int
	LowStockItems    int
}

// DailyTrend cantidades entradas/salidas de un día.
type DailyTrend struct {
	Date     time.Time
	StockIn  int64
	StockOut int64
}

// CategoryValue valor total movido por categoría.
type CategoryValue struct {
	CategoryName string
	TotalValue   decimal.Decimal
}

// MonthlySummary importes por mes.
type MonthlySummary struct {
	Year             int
	Month            int
	TotalIn          decimal.Decimal
	TotalOut         decimal.Decimal
	TransactionCount int
}

// DashboardRepository consultas de solo lectura para el panel (no modifican datos).
type DashboardRepository interface {
	Counts(ctx context.Context) (DashboardCounts, error)
	RecentMovements(ctx context.Context, limit int) ([]*entity.StockMovement, error)
	PendingRequests(ctx context.Context, limit int) ([]*entity.StockRequest, error)
	LowStockItems(ctx context.Context, limit int) ([]*entity.Item, error)
	// DailyTrends agrupa por día las cantidades desde `since` (inclusive).
	DailyTrends(ctx context.Context, since time.Time) ([]DailyTrend, error)
	TopCategories(ctx context.Context, limit int) ([]CategoryValue, error)
	// MonthlySummaries agrupa por año/mes desde `since`, más reciente primero.
	MonthlySummaries(ctx context.Context, since time.Time) ([]MonthlySummary, error)
}
