package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gudang-api/internal/application/dto"
	"github.com/jhoicas/gudang-api/internal/application/requests"
	"github.com/jhoicas/gudang-api/internal/domain"
	"github.com/jhoicas/gudang-api/internal/domain/repository"
)

// StockRequestHandler flujo de solicitudes de stock. No modifica saldos.
type StockRequestHandler struct {
	uc *requests.UseCase
}

// NewStockRequestHandler construye el handler.
func NewStockRequestHandler(uc *requests.UseCase) *StockRequestHandler {
	return &StockRequestHandler{uc: uc}
}

// Create godoc
// @Summary      Crear solicitud de stock
// @Tags         stock-requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockRequestRequest  true  "item_id, requested_quantity, request_reason"
// @Success      201   {object}  dto.StockRequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-requests [post]
func (h *StockRequestHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockRequestRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Obtener solicitud
// @Tags         stock-requests
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.StockRequestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-requests/{id} [get]
func (h *StockRequestHandler) Get(c *fiber.Ctx) error {
	id, err := uuidParam(c, domain.ErrNotFound)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar solicitudes
// @Tags         stock-requests
// @Security     Bearer
// @Produce      json
// @Param        status   query  string  false  "pending, approved, rejected o fulfilled"
// @Param        item_id  query  string  false  "Artículo"
// @Param        mine     query  bool    false  "Solo las del usuario autenticado"
// @Param        limit    query  int     false  "Límite"  default(15)
// @Param        offset   query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.StockRequestResponse
// @Router       /api/stock-requests [get]
func (h *StockRequestHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	page.DefaultPage(15)
	f := repository.StockRequestFilter{
		Status: c.Query("status"),
		ItemID: c.Query("item_id"),
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	if c.QueryBool("mine") {
		f.RequestedBy = GetUserID(c)
	}
	out, err := h.uc.List(c.UserContext(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar solicitud pendiente
// @Tags         stock-requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID de la solicitud"
// @Param        body  body  dto.ApproveStockRequestRequest  false "Cantidad aprobada y notas"
// @Success      200   {object}  dto.StockRequestResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock-requests/{id}/approve [post]
func (h *StockRequestHandler) Approve(c *fiber.Ctx) error {
	var in dto.ApproveStockRequestRequest
	if len(c.Body()) > 0 {
		if ok, err := parseAndValidate(c, &in); !ok {
			return err
		}
	}
	id, err := uuidParam(c, domain.ErrNotFound)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Approve(c.UserContext(), id, GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rechazar solicitud pendiente
// @Tags         stock-requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "ID de la solicitud"
// @Param        body  body  dto.RejectStockRequestRequest  false "Notas"
// @Success      200   {object}  dto.StockRequestResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock-requests/{id}/reject [post]
func (h *StockRequestHandler) Reject(c *fiber.Ctx) error {
	var in dto.RejectStockRequestRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	id, err := uuidParam(c, domain.ErrNotFound)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Reject(c.UserContext(), id, GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Fulfill godoc
// @Summary      Marcar solicitud aprobada como entregada
// @Tags         stock-requests
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.StockRequestResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stock-requests/{id}/fulfill [post]
func (h *StockRequestHandler) Fulfill(c *fiber.Ctx) error {
	id, err := uuidParam(c, domain.ErrNotFound)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Fulfill(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
