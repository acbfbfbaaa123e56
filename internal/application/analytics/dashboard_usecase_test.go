package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gudang-api/internal/domain/entity"
	"github.com/jhoicas/gudang-api/internal/domain/repository"
)

type stubDashboardRepo struct {
	trendSince time.Time
	monthSince time.Time
	failOn     string
}

func (s *stubDashboardRepo) fail(name string) error {
	if s.failOn == name {
		return errors.New("db caída")
	}
	return nil
}

func (s *stubDashboardRepo) Counts(context.Context) (repository.DashboardCounts, error) {
	return repository.DashboardCounts{ActiveItems: 12, ActiveVendors: 3, ActiveCategories: 4, LowStockItems: 2}, s.fail("counts")
}

func (s *stubDashboardRepo) RecentMovements(context.Context, int) ([]*entity.StockMovement, error) {
	return []*entity.StockMovement{{ID: "m1", TransactionCode: "IN-25-001"}}, nil
}

func (s *stubDashboardRepo) PendingRequests(context.Context, int) ([]*entity.StockRequest, error) {
	return []*entity.StockRequest{{ID: "r1", RequestCode: "REQ-25-001", Status: entity.RequestStatusPending}}, nil
}

func (s *stubDashboardRepo) LowStockItems(context.Context, int) ([]*entity.Item, error) {
	return []*entity.Item{{ID: "i1", CurrentStock: 1, MinimumStock: 5}}, nil
}

func (s *stubDashboardRepo) DailyTrends(_ context.Context, since time.Time) ([]repository.DailyTrend, error) {
	s.trendSince = since
	return []repository.DailyTrend{{Date: since.AddDate(0, 0, 2), StockIn: 40, StockOut: 5}}, s.fail("trends")
}

func (s *stubDashboardRepo) TopCategories(context.Context, int) ([]repository.CategoryValue, error) {
	return []repository.CategoryValue{{CategoryName: "Electrónica", TotalValue: decimal.RequireFromString("1234.567")}}, nil
}

func (s *stubDashboardRepo) MonthlySummaries(_ context.Context, since time.Time) ([]repository.MonthlySummary, error) {
	s.monthSince = since
	return []repository.MonthlySummary{{Year: 2025, Month: 3, TotalIn: decimal.NewFromInt(10), TransactionCount: 4}}, nil
}

func TestGetSummary(t *testing.T) {
	repo := &stubDashboardRepo{}
	uc := NewDashboardUseCase(repo)
	uc.now = func() time.Time { return time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC) }

	d, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, d.Statistics.TotalItems)
	assert.Equal(t, 2, d.Statistics.LowStockItems)
	assert.Len(t, d.RecentTransactions, 1)
	assert.Len(t, d.PendingRequests, 1)
	require.Len(t, d.LowStockItemsDetail, 1)
	assert.True(t, d.LowStockItemsDetail[0].IsLowStock)

	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), repo.trendSince)
	assert.Equal(t, time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC), repo.monthSince)

	require.Len(t, d.TransactionTrends, 7)
	assert.Equal(t, "2025-03-14", d.TransactionTrends[0].Date)
	assert.Equal(t, int64(40), d.TransactionTrends[2].StockIn)
	assert.Equal(t, int64(0), d.TransactionTrends[3].StockIn)
	assert.Equal(t, "2025-03-20", d.TransactionTrends[6].Date)

	require.Len(t, d.TopCategories, 1)
	assert.Equal(t, "1234.57", d.TopCategories[0].TotalValue.String())
	require.Len(t, d.MonthlyTransactions, 1)
	assert.Equal(t, "Marzo 2025", d.MonthlyTransactions[0].Label)
}

func TestGetSummary_PropagaError(t *testing.T) {
	uc := NewDashboardUseCase(&stubDashboardRepo{failOn: "trends"})

	_, err := uc.GetSummary(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tendencias")
}
