package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gudang-api/internal/application/dto"
	"github.com/jhoicas/gudang-api/internal/application/usecase"
)

// AnalyticsHandler reporte de consumo por artículo.
type AnalyticsHandler struct {
	uc *usecase.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// GetConsumption godoc
// @Summary      Reporte de consumo con clasificación ABC
// @Description  Salidas agrupadas por artículo, ordenadas por valor, con porcentaje acumulado
//               y clase A (hasta 80%), B (hasta 95%) o C.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "Inicio del período (YYYY-MM-DD). Default: primer día del mes."
// @Param        end_date    query  string  false  "Fin del período (YYYY-MM-DD). Default: hoy."
// @Param        top_n       query  int     false  "Máx. artículos en el ranking (default 20, max 200)."
// @Success      200  {object}  dto.ConsumptionReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/consumption [get]
func (h *AnalyticsHandler) GetConsumption(c *fiber.Ctx) error {
	var req dto.ConsumptionReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}
	report, err := h.uc.GetConsumptionReport(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}
