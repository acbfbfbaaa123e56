package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gudang-api/internal/application/dto"
	"github.com/jhoicas/gudang-api/internal/application/inventory"
	"github.com/jhoicas/gudang-api/internal/application/report"
	"github.com/jhoicas/gudang-api/internal/domain"
	"github.com/jhoicas/gudang-api/internal/application/usecase"
	"github.com/jhoicas/gudang-api/internal/domain/repository"
)

// ItemHandler maneja las peticiones HTTP de artículos (protegido).
type ItemHandler struct {
	uc       *usecase.ItemUseCase
	lowStock *inventory.LowStockUseCase
	reports  *report.UseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase, lowStock *inventory.LowStockUseCase, reports *report.UseCase) *ItemHandler {
	return &ItemHandler{uc: uc, lowStock: lowStock, reports: reports}
}

type itemListQuery struct {
	dto.PageRequest
	Search     string `query:"search"`
	CategoryID string `query:"category_id"`
	VendorID   string `query:"vendor_id"`
	Type       string `query:"type"`
	Status     string `query:"status"`
	LowStock   bool   `query:"low_stock"`
}

// Create godoc
// @Summary      Crear artículo
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Datos del artículo; current_stock es el saldo de apertura"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Obtener artículo con sus últimos movimientos
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {object}  dto.ItemDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) Get(c *fiber.Ctx) error {
	id, err := uuidParam(c, domain.ErrItemNotFound)
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
// @Summary      Listar artículos
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        search       query  string  false  "Nombre o código"
// @Param        category_id  query  string  false  "Categoría"
// @Param        vendor_id    query  string  false  "Proveedor"
// @Param        type         query  string  false  "consumable, asset o spare_part"
// @Param        status       query  string  false  "active o inactive"
// @Param        low_stock    query  bool    false  "Solo bajo mínimo"
// @Param        limit        query  int     false  "Límite"  default(15)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.ItemListResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	var q itemListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	q.DefaultPage(15)
	out, err := h.uc.List(c.UserContext(), repository.ItemFilter{
		Search:     q.Search,
		CategoryID: q.CategoryID,
		VendorID:   q.VendorID,
		Type:       q.Type,
		Status:     q.Status,
		LowStock:   q.LowStock,
		Limit:      q.Limit,
		Offset:     q.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar artículo (no modifica el stock)
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del artículo"
// @Param        body  body  dto.UpdateItemRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	id, err := uuidParam(c, domain.ErrItemNotFound)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar artículo sin movimientos
// @Tags         items
// @Security     Bearer
// @Param        id   path  string  true  "ID del artículo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id, err := uuidParam(c, domain.ErrItemNotFound)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LowStock godoc
// @Summary      Artículos bajo el stock mínimo con cantidad sugerida de reposición
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(50)
// @Success      200  {object}  map[string]interface{}
// @Router       /api/items/low-stock [get]
func (h *ItemHandler) LowStock(c *fiber.Ctx) error {
	list, err := h.lowStock.List(c.UserContext(), c.QueryInt("limit", 50))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"total": len(list),
		"items": list,
	})
}

// StockCard godoc
// @Summary      Tarjeta de existencias (kardex) en XML
// @Tags         items
// @Security     Bearer
// @Produce      xml
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/stock-card [get]
func (h *ItemHandler) StockCard(c *fiber.Ctx) error {
	id, err := uuidParam(c, domain.ErrItemNotFound)
	if err != nil {
		return respondError(c, err)
	}
	body, filename, err := h.reports.StockCardXML(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(body)
}
