package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gudang-api/internal/application/dto"
	"github.com/jhoicas/gudang-api/internal/application/inventory"
	"github.com/jhoicas/gudang-api/internal/application/report"
	"github.com/jhoicas/gudang-api/internal/domain"
	"github.com/jhoicas/gudang-api/internal/domain/repository"
)

// MovementHandler endpoints del libro de stock: registrar, consultar y revertir movimientos.
type MovementHandler struct {
	ledger  *inventory.LedgerUseCase
	reports *report.UseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(ledger *inventory.LedgerUseCase, reports *report.UseCase) *MovementHandler {
	return &MovementHandler{ledger: ledger, reports: reports}
}

type movementListQuery struct {
	dto.PageRequest
	Search   string `query:"search"`
	Type     string `query:"type"`
	ItemID   string `query:"item_id"`
	DateFrom string `query:"date_from"`
	DateTo   string `query:"date_to"`
}

// Post godoc
// @Summary      Registrar movimiento de stock (entrada o salida)
// @Description  El servidor calcula stock_before, stock_after, total_amount y transaction_code.
// @Tags         stock-transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PostMovementRequest  true  "item_id, type, quantity, unit_price, transaction_date"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/stock-transactions [post]
func (h *MovementHandler) Post(c *fiber.Ctx) error {
	var in dto.PostMovementRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	mov, err := h.ledger.PostMovementFromRequest(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromMovement(mov))
}

// Get godoc
// @Summary      Obtener movimiento
// @Tags         stock-transactions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-transactions/{id} [get]
func (h *MovementHandler) Get(c *fiber.Ctx) error {
	id, err := uuidParam(c, domain.ErrNotFound)
	if err != nil {
		return respondError(c, err)
	}
	mov, err := h.ledger.GetMovement(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromMovement(mov))
}

// List godoc
// @Summary      Listar movimientos (más recientes primero)
// @Tags         stock-transactions
// @Security     Bearer
// @Produce      json
// @Param        search     query  string  false  "Código de transacción o nombre del artículo"
// @Param        type       query  string  false  "in u out"
// @Param        item_id    query  string  false  "Artículo"
// @Param        date_from  query  string  false  "YYYY-MM-DD"
// @Param        date_to    query  string  false  "YYYY-MM-DD (inclusive)"
// @Param        limit      query  int     false  "Límite"  default(15)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock-transactions [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var q movementListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	q.DefaultPage(15)
	f := repository.MovementFilter{
		Search: q.Search,
		Type:   q.Type,
		ItemID: q.ItemID,
		Limit:  q.Limit,
		Offset: q.Offset,
	}
	fields := map[string]string{}
	if q.DateFrom != "" {
		if t, err := time.Parse(time.DateOnly, q.DateFrom); err == nil {
			f.DateFrom = &t
		} else {
			fields["date_from"] = "formato esperado YYYY-MM-DD"
		}
	}
	if q.DateTo != "" {
		if t, err := time.Parse(time.DateOnly, q.DateTo); err == nil {
			end := t.Add(24*time.Hour - time.Nanosecond)
			f.DateTo = &end
		} else {
			fields["date_to"] = "formato esperado YYYY-MM-DD"
		}
	}
	if len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Fields: fields})
	}

	list, total, err := h.ledger.ListMovements(c.UserContext(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MovementListResponse{
		Items: dto.FromMovements(list),
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset, Total: total},
	})
}

// Delete godoc
// @Summary      Eliminar movimiento y revertir su efecto sobre el saldo actual
// @Tags         stock-transactions
// @Security     Bearer
// @Param        id   path  string  true  "ID del movimiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stock-transactions/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	id, err := uuidParam(c, domain.ErrNotFound)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.ledger.ReverseMovement(c.UserContext(), id, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Receipt godoc
// @Summary      Comprobante PDF del movimiento
// @Tags         stock-transactions
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-transactions/{id}/pdf [get]
func (h *MovementHandler) Receipt(c *fiber.Ctx) error {
	id, err := uuidParam(c, domain.ErrNotFound)
	if err != nil {
		return respondError(c, err)
	}
	pdf, filename, err := h.reports.MovementReceiptPDF(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(pdf)
}
