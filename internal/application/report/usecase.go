// Package report genera los documentos descargables del almacén: comprobante PDF de un
// movimiento y tarjeta de existencias en XML.
package report

import (
	"context"
	"fmt"

	"github.com/jhoicas/gudang-api/internal/domain"
	"github.com/jhoicas/gudang-api/internal/domain/entity"
	"github.com/jhoicas/gudang-api/internal/domain/repository"
)

// maxStockCardMovements tope de movimientos incluidos en la tarjeta.
const maxStockCardMovements = 500

// UseCase casos de uso de documentos.
type UseCase struct {
	items     repository.ItemRepository
	movements repository.StockMovementRepository
	receipts  MovementReceiptGenerator
	cards     StockCardGenerator
}

// NewUseCase construye el caso de uso inyectando los generadores.
func NewUseCase(
	items repository.ItemRepository,
	movements repository.StockMovementRepository,
	receipts MovementReceiptGenerator,
	cards StockCardGenerator,
) *UseCase {
	return &UseCase{items: items, movements: movements, receipts: receipts, cards: cards}
}

// MovementReceiptPDF devuelve el PDF del movimiento y el nombre de archivo sugerido.
func (uc *UseCase) MovementReceiptPDF(ctx context.Context, movementID string) (pdfBytes []byte, filename string, err error) {
	mov, err := uc.movements.GetByID(ctx, movementID)
	if err != nil {
		return nil, "", fmt.Errorf("report: obtener movimiento: %w", err)
	}
	if mov == nil {
		return nil, "", domain.ErrNotFound
	}
	item, err := uc.items.GetByID(ctx, mov.ItemID)
	if err != nil {
		return nil, "", fmt.Errorf("report: obtener artículo: %w", err)
	}
	if item == nil {
		return nil, "", domain.ErrItemNotFound
	}
	pdfBytes, err = uc.receipts.GenerateMovementReceipt(ctx, mov, item)
	if err != nil {
		return nil, "", fmt.Errorf("report: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("comprobante_%s.pdf", mov.TransactionCode), nil
}

// StockCardXML devuelve la tarjeta de existencias del artículo.
func (uc *UseCase) StockCardXML(ctx context.Context, itemID string) (xmlBytes []byte, filename string, err error) {
	item, err := uc.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, "", fmt.Errorf("report: obtener artículo: %w", err)
	}
	if item == nil {
		return nil, "", domain.ErrItemNotFound
	}
	recentFirst, err := uc.movements.ListByItem(ctx, itemID, maxStockCardMovements)
	if err != nil {
		return nil, "", fmt.Errorf("report: obtener movimientos: %w", err)
	}
	chrono := make([]*entity.StockMovement, len(recentFirst))
	for i, m := range recentFirst {
		chrono[len(recentFirst)-1-i] = m
	}
	xmlBytes, err = uc.cards.GenerateStockCard(ctx, item, chrono)
	if err != nil {
		return nil, "", fmt.Errorf("report: generación fallida: %w", err)
	}
	return xmlBytes, fmt.Sprintf("kardex_%s.xml", item.Code), nil
}
