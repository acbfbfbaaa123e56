package dto

import "github.com/shopspring/decimal"

// ConsumptionReportRequest parámetros de GET /api/reports/consumption.
type ConsumptionReportRequest struct {
	StartDate string `query:"start_date"` // YYYY-MM-DD, por defecto inicio del mes
	EndDate   string `query:"end_date"`   // YYYY-MM-DD, por defecto hoy
	TopN      int    `query:"top_n"`
}

// PeriodDTO rango del reporte.
type PeriodDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ConsumptionRankingDTO fila del ranking ABC de consumo.
type ConsumptionRankingDTO struct {
	Rank           int             `json:"rank"`
	ItemID         string          `json:"item_id"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	UnitsOut       int64           `json:"units_out"`
	ValueOut       decimal.Decimal `json:"value_out"`
	MovementCount  int             `json:"movement_count"`
	ValuePct       decimal.Decimal `json:"value_pct"`
	CumulativePct  decimal.Decimal `json:"cumulative_pct"`
	Classification string          `json:"classification"` // A, B o C
}

// ConsumptionReportDTO respuesta del reporte de consumo.
type ConsumptionReportDTO struct {
	Period     PeriodDTO               `json:"period"`
	TotalValue decimal.Decimal         `json:"total_value"`
	TotalUnits int64                   `json:"total_units"`
	Ranking    []ConsumptionRankingDTO `json:"ranking"`
}
