package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/gudang-api/internal/application/dto"
	"github.com/jhoicas/gudang-api/internal/domain"
	"github.com/jhoicas/gudang-api/internal/domain/entity"
	"github.com/jhoicas/gudang-api/internal/domain/event"
	"github.com/jhoicas/gudang-api/internal/domain/ledger"
	"github.com/jhoicas/gudang-api/internal/domain/repository"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// LedgerUseCase registra y revierte movimientos de stock de forma transaccional,
// con bloqueo de la fila del artículo (SELECT FOR UPDATE) y Commit/Rollback.
type LedgerUseCase struct {
	txRunner  TxRunner
	movements repository.StockMovementRepository
	publisher event.Publisher
	log       zerolog.Logger
	now       func() time.Time
}

// NewLedgerUseCase construye el caso de uso. publisher puede ser nil (no se publica nada).
func NewLedgerUseCase(
	txRunner TxRunner,
	movements repository.StockMovementRepository,
	publisher event.Publisher,
	log zerolog.Logger,
) *LedgerUseCase {
	if publisher == nil {
		publisher = event.NopPublisher{}
	}
	return &LedgerUseCase{
		txRunner:  txRunner,
		movements: movements,
		publisher: publisher,
		log:       log.With().Str("component", "ledger").Logger(),
		now:       time.Now,
	}
}

// PostMovementInput entrada para registrar un movimiento. UserID es el usuario que actúa
// (viene del token, nunca del body).
type PostMovementInput struct {
	ItemID            string
	UserID            string
	Type              string
	Quantity          int64
	UnitPrice         decimal.Decimal
	Notes             string
	DocumentReference string
	TransactionDate   time.Time
}

func (in PostMovementInput) validate() error {
	if in.ItemID == "" || in.UserID == "" || !ledger.ValidDirection(in.Type) {
		return domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	if in.UnitPrice.IsNegative() {
		return domain.ErrInvalidPrice
	}
	return nil
}

// PostMovement valida, bloquea el artículo, calcula el saldo nuevo y dentro de una sola
// transacción guarda el movimiento y actualiza current_stock. Si algo falla no se escribe nada.
func (uc *LedgerUseCase) PostMovement(ctx context.Context, in PostMovementInput) (*entity.StockMovement, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	now := uc.now()
	date := in.TransactionDate
	if date.IsZero() {
		date = now
	}

	var posted *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(
		items repository.ItemRepository,
		movements repository.StockMovementRepository,
		sequences repository.SequenceRepository,
	) error {
		item, err := items.GetForUpdate(ctx, in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNotFound
		}
		after, err := ledger.Apply(item.CurrentStock, in.Type, in.Quantity)
		if err != nil {
			return err
		}
		seq, err := sequences.Next(ctx, in.Type)
		if err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:                uuid.New().String(),
			TransactionCode:   ledger.FormatCode(ledger.CodePrefix(in.Type), now, seq),
			ItemID:            item.ID,
			UserID:            in.UserID,
			Type:              in.Type,
			Quantity:          in.Quantity,
			UnitPrice:         in.UnitPrice,
			TotalAmount:       ledger.TotalAmount(in.Quantity, in.UnitPrice),
			StockBefore:       item.CurrentStock,
			StockAfter:        after,
			Notes:             in.Notes,
			DocumentReference: in.DocumentReference,
			TransactionDate:   date,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if err := movements.Create(ctx, mov); err != nil {
			return err
		}
		if err := items.UpdateStock(ctx, item.ID, after); err != nil {
			return err
		}
		mov.ItemCode, mov.ItemName = item.Code, item.Name
		posted = mov
		return nil
	})
	if err != nil {
		uc.log.Debug().Err(err).Str("item_id", in.ItemID).Str("type", in.Type).Int64("quantity", in.Quantity).Msg("movimiento rechazado")
		return nil, err
	}

	uc.log.Info().
		Str("code", posted.TransactionCode).
		Str("item_id", posted.ItemID).
		Int64("before", posted.StockBefore).
		Int64("after", posted.StockAfter).
		Msg("movimiento registrado")
	uc.publish(ctx, event.TypeMovementPosted, posted.ItemID, dto.FromMovement(posted))
	return posted, nil
}

// ReverseMovement elimina un movimiento y revierte su efecto sobre el saldo ACTUAL del artículo.
// Falla con ErrWouldUnderflow si el saldo quedaría negativo; en ese caso no se modifica nada.
func (uc *LedgerUseCase) ReverseMovement(ctx context.Context, movementID, userID string) error {
	if movementID == "" {
		return domain.ErrInvalidInput
	}
	var (
		reversed *entity.StockMovement
		newStock int64
	)
	err := uc.txRunner.Run(ctx, func(
		items repository.ItemRepository,
		movements repository.StockMovementRepository,
		_ repository.SequenceRepository,
	) error {
		mov, err := movements.GetByID(ctx, movementID)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		item, err := items.GetForUpdate(ctx, mov.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNotFound
		}
		newStock, err = ledger.Reverse(item.CurrentStock, mov.Type, mov.Quantity)
		if err != nil {
			return err
		}
		if err := items.UpdateStock(ctx, item.ID, newStock); err != nil {
			return err
		}
		// Delete devuelve ErrNotFound si otra transacción ya lo eliminó: se revierte el saldo.
		if err := movements.Delete(ctx, mov.ID); err != nil {
			return err
		}
		reversed = mov
		return nil
	})
	if err != nil {
		uc.log.Debug().Err(err).Str("movement_id", movementID).Msg("reversión rechazada")
		return err
	}

	uc.log.Info().
		Str("code", reversed.TransactionCode).
		Str("item_id", reversed.ItemID).
		Str("user_id", userID).
		Int64("stock", newStock).
		Msg("movimiento revertido")
	uc.publish(ctx, event.TypeMovementReversed, reversed.ItemID, map[string]any{
		"movement":    dto.FromMovement(reversed),
		"reversed_by": userID,
		"new_stock":   newStock,
	})
	return nil
}

// GetMovement obtiene un movimiento por ID.
func (uc *LedgerUseCase) GetMovement(ctx context.Context, id string) (*entity.StockMovement, error) {
	mov, err := uc.movements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	return mov, nil
}

// ListMovements lista movimientos con filtros, más recientes primero.
func (uc *LedgerUseCase) ListMovements(ctx context.Context, f repository.MovementFilter) ([]*entity.StockMovement, int, error) {
	if f.Limit <= 0 {
		f.Limit = 15
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return uc.movements.List(ctx, f)
}

// ItemMovements devuelve los movimientos de un artículo (más recientes primero).
func (uc *LedgerUseCase) ItemMovements(ctx context.Context, itemID string, limit int) ([]*entity.StockMovement, error) {
	return uc.movements.ListByItem(ctx, itemID, limit)
}

func (uc *LedgerUseCase) publish(ctx context.Context, typ, key string, payload any) {
	err := uc.publisher.Publish(ctx, event.Event{
		Type:       typ,
		Key:        key,
		OccurredAt: uc.now(),
		Payload:    payload,
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("event", typ).Msg("no se pudo publicar el evento")
	}
}
