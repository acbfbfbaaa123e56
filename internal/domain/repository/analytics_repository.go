package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ItemConsumptionResult consumo (salidas) de un artículo en un período.
// Lo produce la DB; el use case lo convierte en DTO.
type ItemConsumptionResult struct {
	ItemID        string
	Code          string
	Name          string
	UnitsOut      int64
	ValueOut      decimal.Decimal // suma de total_amount de las salidas
	MovementCount int
}

// AnalyticsRepository consultas de lectura para el reporte de consumo.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// ItemConsumption devuelve los artículos con salidas en [start, end],
	// ordenados por valor consumido descendente. limit controla el máximo de filas.
	ItemConsumption(ctx context.Context, start, end time.Time, limit int) ([]ItemConsumptionResult, error)
}
