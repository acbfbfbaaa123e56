// Package analytics contiene el caso de uso del panel de almacén (dashboard).
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/gudang-api/internal/application/dto"
	"github.com/jhoicas/gudang-api/internal/domain/entity"
	"github.com/jhoicas/gudang-api/internal/domain/repository"
	"golang.org/x/sync/errgroup"
)

const (
	dashboardRecent     = 10 // últimas transacciones y solicitudes pendientes
	dashboardLowStock   = 10
	dashboardTrendDays  = 7
	dashboardTopN       = 5
	dashboardMonthsBack = 6
)

// DashboardUseCase arma el resumen del panel.
//
// Fuente de datos: DashboardRepository (consultas read-only).
type DashboardUseCase struct {
	repo repository.DashboardRepository
	now  func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, now: time.Now}
}

// GetSummary ejecuta las siete consultas en paralelo; la primera que falle cancela las demás.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardDTO, error) {
	now := uc.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	trendSince := today.AddDate(0, 0, -(dashboardTrendDays - 1))
	monthSince := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(dashboardMonthsBack - 1), 0)

	var (
		counts   repository.DashboardCounts
		recent   []*entity.StockMovement
		pending  []*entity.StockRequest
		lowStock []*entity.Item
		trends   []repository.DailyTrend
		top      []repository.CategoryValue
		monthly  []repository.MonthlySummary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts, err = uc.repo.Counts(gctx)
		return wrap("contadores", err)
	})
	g.Go(func() (err error) {
		recent, err = uc.repo.RecentMovements(gctx, dashboardRecent)
		return wrap("transacciones recientes", err)
	})
	g.Go(func() (err error) {
		pending, err = uc.repo.PendingRequests(gctx, dashboardRecent)
		return wrap("solicitudes pendientes", err)
	})
	g.Go(func() (err error) {
		lowStock, err = uc.repo.LowStockItems(gctx, dashboardLowStock)
		return wrap("stock bajo", err)
	})
	g.Go(func() (err error) {
		trends, err = uc.repo.DailyTrends(gctx, trendSince)
		return wrap("tendencias", err)
	})
	g.Go(func() (err error) {
		top, err = uc.repo.TopCategories(gctx, dashboardTopN)
		return wrap("categorías", err)
	})
	g.Go(func() (err error) {
		monthly, err = uc.repo.MonthlySummaries(gctx, monthSince)
		return wrap("resumen mensual", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &dto.DashboardDTO{
		Statistics: dto.DashboardStatistics{
			TotalItems:      counts.ActiveItems,
			TotalVendors:    counts.ActiveVendors,
			TotalCategories: counts.ActiveCategories,
			LowStockItems:   counts.LowStockItems,
		},
		RecentTransactions:  dto.FromMovements(recent),
		PendingRequests:     make([]dto.StockRequestResponse, 0, len(pending)),
		LowStockItemsDetail: make([]dto.ItemResponse, 0, len(lowStock)),
		TransactionTrends:   fillTrends(trends, trendSince, dashboardTrendDays),
		TopCategories:       make([]dto.CategoryValueDTO, 0, len(top)),
		MonthlyTransactions: make([]dto.MonthlySummaryDTO, 0, len(monthly)),
		GeneratedAt:         now,
	}
	for _, r := range pending {
		out.PendingRequests = append(out.PendingRequests, dto.FromStockRequest(r))
	}
	for _, it := range lowStock {
		out.LowStockItemsDetail = append(out.LowStockItemsDetail, dto.FromItem(it))
	}
	for _, c := range top {
		out.TopCategories = append(out.TopCategories, dto.CategoryValueDTO{Name: c.CategoryName, TotalValue: c.TotalValue.Round(2)})
	}
	for _, m := range monthly {
		out.MonthlyTransactions = append(out.MonthlyTransactions, dto.MonthlySummaryDTO{
			Year:             m.Year,
			Month:            m.Month,
			Label:            monthLabel(time.Month(m.Month), m.Year),
			TotalIn:          m.TotalIn.Round(2),
			TotalOut:         m.TotalOut.Round(2),
			TransactionCount: m.TransactionCount,
		})
	}
	return out, nil
}

func wrap(what string, err error) error {
	if err != nil {
		return fmt.Errorf("dashboard: %s: %w", what, err)
	}
	return nil
}

// fillTrends devuelve exactamente `days` puntos, con ceros en los días sin movimientos.
func fillTrends(rows []repository.DailyTrend, since time.Time, days int) []dto.TrendDTO {
	byDay := make(map[string]repository.DailyTrend, len(rows))
	for _, r := range rows {
		byDay[r.Date.Format(time.DateOnly)] = r
	}
	out := make([]dto.TrendDTO, 0, days)
	for i := 0; i < days; i++ {
		d := since.AddDate(0, 0, i).Format(time.DateOnly)
		r := byDay[d]
		out = append(out, dto.TrendDTO{Date: d, StockIn: r.StockIn, StockOut: r.StockOut})
	}
	return out
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(m time.Month, year int) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	if m < time.January || m > time.December {
		return fmt.Sprintf("%d", year)
	}
	return fmt.Sprintf("%s %d", months[m-1], year)
}
