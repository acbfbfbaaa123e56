package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gudang-api/internal/application/dto"
	"github.com/jhoicas/gudang-api/internal/domain"
	"github.com/jhoicas/gudang-api/internal/domain/repository"
)

type stubAnalyticsRepo struct {
	rows       []repository.ItemConsumptionResult
	start, end time.Time
	limit      int
}

func (s *stubAnalyticsRepo) ItemConsumption(_ context.Context, start, end time.Time, limit int) ([]repository.ItemConsumptionResult, error) {
	s.start, s.end, s.limit = start, end, limit
	return s.rows, nil
}

func TestConsumptionReport_ClasificacionABC(t *testing.T) {
	repo := &stubAnalyticsRepo{rows: []repository.ItemConsumptionResult{
		{ItemID: "1", Code: "A1", UnitsOut: 10, ValueOut: decimal.NewFromInt(700)},
		{ItemID: "2", Code: "A2", UnitsOut: 5, ValueOut: decimal.NewFromInt(150)},
		{ItemID: "3", Code: "B1", UnitsOut: 3, ValueOut: decimal.NewFromInt(100)},
		{ItemID: "4", Code: "C1", UnitsOut: 1, ValueOut: decimal.NewFromInt(50)},
	}}
	uc := NewAnalyticsUseCase(repo)
	uc.now = func() time.Time { return time.Date(2025, 3, 20, 15, 0, 0, 0, time.UTC) }

	rep, err := uc.GetConsumptionReport(context.Background(), dto.ConsumptionReportRequest{})
	require.NoError(t, err)

	assert.Equal(t, "2025-03-01", rep.Period.StartDate)
	assert.Equal(t, "2025-03-20", rep.Period.EndDate)
	assert.Equal(t, defaultTopN, repo.limit)
	assert.True(t, decimal.NewFromInt(1000).Equal(rep.TotalValue))
	assert.Equal(t, int64(19), rep.TotalUnits)

	require.Len(t, rep.Ranking, 4)
	classes := []string{}
	for _, r := range rep.Ranking {
		classes = append(classes, r.Classification)
	}
	// acumulados: 70, 85, 95, 100
	assert.Equal(t, []string{"A", "A", "B", "C"}, classes)
	assert.True(t, decimal.NewFromInt(70).Equal(rep.Ranking[0].ValuePct))
	assert.True(t, decimal.NewFromInt(100).Equal(rep.Ranking[3].CumulativePct))
}

func TestConsumptionReport_PeriodoInvalido(t *testing.T) {
	uc := NewAnalyticsUseCase(&stubAnalyticsRepo{})

	_, err := uc.GetConsumptionReport(context.Background(), dto.ConsumptionReportRequest{StartDate: "2025-05-01", EndDate: "2025-04-01"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = uc.GetConsumptionReport(context.Background(), dto.ConsumptionReportRequest{StartDate: "01/05/2025"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
