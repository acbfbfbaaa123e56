package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/gudang-api/internal/application/dto"
	"github.com/jhoicas/gudang-api/internal/domain"
	"github.com/jhoicas/gudang-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

const (
	defaultTopN = 20
	maxTopN     = 200
)

var (
	hundred    = decimal.NewFromInt(100)
	thresholdA = decimal.NewFromInt(80) // clase A: primer 80% del valor consumido
	thresholdB = decimal.NewFromInt(95) // clase B: hasta 95%
)

// AnalyticsUseCase genera el reporte de consumo con clasificación ABC (Pareto sobre valor de salidas).
type AnalyticsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(analyticsRepo repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{analyticsRepo: analyticsRepo, now: time.Now}
}

// GetConsumptionReport genera el ranking de consumo para un período.
func (uc *AnalyticsUseCase) GetConsumptionReport(ctx context.Context, req dto.ConsumptionReportRequest) (*dto.ConsumptionReportDTO, error) {
	start, end, err := parsePeriod(uc.now(), req.StartDate, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	topN := req.TopN
	if topN <= 0 {
		topN = defaultTopN
	}
	if topN > maxTopN {
		topN = maxTopN
	}
	rows, err := uc.analyticsRepo.ItemConsumption(ctx, start, end, topN)
	if err != nil {
		return nil, fmt.Errorf("analytics: consumo: %w", err)
	}

	var totalValue decimal.Decimal
	var totalUnits int64
	for _, r := range rows {
		totalValue = totalValue.Add(r.ValueOut)
		totalUnits += r.UnitsOut
	}
	return &dto.ConsumptionReportDTO{
		Period: dto.PeriodDTO{
			StartDate: start.Format(time.DateOnly),
			EndDate:   end.Format(time.DateOnly),
		},
		TotalValue: totalValue.Round(2),
		TotalUnits: totalUnits,
		Ranking:    buildConsumptionRanking(rows, totalValue),
	}, nil
}

// buildConsumptionRanking asigna posición, porcentaje, acumulado y clase ABC.
// Las filas llegan ordenadas por valor descendente.
func buildConsumptionRanking(rows []repository.ItemConsumptionResult, total decimal.Decimal) []dto.ConsumptionRankingDTO {
	ranking := make([]dto.ConsumptionRankingDTO, 0, len(rows))
	var cumulative decimal.Decimal
	for i, r := range rows {
		pct := decimal.Zero
		if total.IsPositive() {
			pct = r.ValueOut.Div(total).Mul(hundred).Round(2)
		}
		// La clase se decide con el acumulado previo: el artículo que cruza el umbral queda dentro.
		class := "C"
		switch {
		case i == 0 || cumulative.LessThan(thresholdA):
			class = "A"
		case cumulative.LessThan(thresholdB):
			class = "B"
		}
		cumulative = cumulative.Add(pct)
		ranking = append(ranking, dto.ConsumptionRankingDTO{
			Rank:           i + 1,
			ItemID:         r.ItemID,
			Code:           r.Code,
			Name:           r.Name,
			UnitsOut:       r.UnitsOut,
			ValueOut:       r.ValueOut.Round(2),
			MovementCount:  r.MovementCount,
			ValuePct:       pct,
			CumulativePct:  cumulative.Round(2),
			Classification: class,
		})
	}
	return ranking
}

// parsePeriod convierte los strings de fecha; por defecto desde el día 1 del mes hasta hoy.
func parsePeriod(now time.Time, startStr, endStr string) (start, end time.Time, err error) {
	if endStr == "" {
		end = now
	} else {
		end, err = time.ParseInLocation(time.DateOnly, endStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("end_date inválido: %w", err)
		}
		end = end.Add(24*time.Hour - time.Second) // inclusive hasta el final del día
	}
	if startStr == "" {
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	} else {
		start, err = time.ParseInLocation(time.DateOnly, startStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("start_date inválido: %w", err)
		}
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date no puede ser posterior a end_date")
	}
	return start, end, nil
}
