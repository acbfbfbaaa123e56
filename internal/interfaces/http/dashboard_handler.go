package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/gudang-api/internal/application/analytics"
)

// DashboardHandler maneja el endpoint del panel.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve contadores, movimientos recientes, solicitudes pendientes,
// artículos bajo mínimo, tendencia de 7 días, top de categorías y resumen de 6 meses.
// GET /api/dashboard
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
