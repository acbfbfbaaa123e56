package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardDTO respuesta de GET /api/dashboard.
type DashboardDTO struct {
	Statistics          DashboardStatistics    `json:"statistics"`
	RecentTransactions  []MovementResponse     `json:"recent_transactions"`
	PendingRequests     []StockRequestResponse `json:"pending_requests"`
	LowStockItemsDetail []ItemResponse         `json:"low_stock_items_detail"`
	TransactionTrends   []TrendDTO             `json:"transaction_trends"`   // últimos 7 días
	TopCategories       []CategoryValueDTO     `json:"top_categories"`       // top 5 por valor
	MonthlyTransactions []MonthlySummaryDTO    `json:"monthly_transactions"` // últimos 6 meses
	GeneratedAt         time.Time              `json:"generated_at"`
}

// DashboardStatistics contadores del panel.
type DashboardStatistics struct {
	TotalItems      int `json:"total_items"`
	TotalVendors    int `json:"total_vendors"`
	TotalCategories int `json:"total_categories"`
	LowStockItems   int `json:"low_stock_items"`
}

// TrendDTO entradas/salidas de un día.
type TrendDTO struct {
	Date     string `json:"date"` // YYYY-MM-DD
	StockIn  int64  `json:"stock_in"`
	StockOut int64  `json:"stock_out"`
}

// CategoryValueDTO valor movido por categoría.
type CategoryValueDTO struct {
	Name       string          `json:"name"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// MonthlySummaryDTO resumen mensual.
type MonthlySummaryDTO struct {
	Year             int             `json:"year"`
	Month            int             `json:"month"`
	Label            string          `json:"label"` // ej: "Marzo 2025"
	TotalIn          decimal.Decimal `json:"total_in"`
	TotalOut         decimal.Decimal `json:"total_out"`
	TransactionCount int             `json:"transaction_count"`
}
