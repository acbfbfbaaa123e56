// Package requests implementa el flujo de solicitudes de stock:
// pending -> approved | rejected, approved -> fulfilled. No modifica saldos.
package requests

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
)

// TxRunner ejecuta fn en una transacción con repositorios atados a ella.
type TxRunner interface {
	RunRequests(ctx context.Context, fn func(
		requests repository.StockRequestRepository,
		sequences repository.SequenceRepository,
	) error) error
}

// UseCase casos de uso de solicitudes de stock.
type UseCase struct {
	txRunner  TxRunner
	requests  repository.StockRequestRepository
	items     repository.ItemRepository
	publisher event.Publisher
	log       zerolog.Logger
	now       func() time.Time
}

// NewUseCase construye el caso de uso. publisher puede ser nil.
func NewUseCase(
	txRunner TxRunner,
	requests repository.StockRequestRepository,
	items repository.ItemRepository,
	publisher event.Publisher,
	log zerolog.Logger,
) *UseCase {
	if publisher == nil {
		publisher = event.NopPublisher{}
	}
	return &UseCase{
		txRunner:  txRunner,
		requests:  requests,
		items:     items,
		publisher: publisher,
		log:       log.With().Str("component", "stock_requests").Logger(),
		now:       time.Now,
	}
}

// Create registra una solicitud pendiente con código REQ-YY-NNN.
func (uc *UseCase) Create(ctx context.Context, userID string, in dto.CreateStockRequestRequest) (*dto.StockRequestResponse, error) {
	if userID == "" || in.ItemID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.RequestedQuantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	item, err := uc.items.GetByID(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}

	now := uc.now()
	req := &entity.StockRequest{
		ID:                uuid.New().String(),
		ItemID:            item.ID,
		RequestedBy:       userID,
		RequestedQuantity: in.RequestedQuantity,
		Status:            entity.RequestStatusPending,
		RequestReason:     in.RequestReason,
		RequestDate:       now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	err = uc.txRunner.RunRequests(ctx, func(requests repository.StockRequestRepository, sequences repository.SequenceRepository) error {
		seq, err := sequences.Next(ctx, ledger.SequenceRequest)
		if err != nil {
			return err
		}
		req.RequestCode = ledger.FormatCode(ledger.PrefixRequest, now, seq)
		return requests.Create(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	req.ItemCode, req.ItemName = item.Code, item.Name
	uc.log.Info().Str("code", req.RequestCode).Str("item_id", req.ItemID).Int64("quantity", req.RequestedQuantity).Msg("solicitud creada")
	resp := dto.FromStockRequest(req)
	return &resp, nil
}

// Approve aprueba una solicitud pendiente. Sin cantidad explícita se aprueba lo solicitado.
func (uc *UseCase) Approve(ctx context.Context, id, approverID string, in dto.ApproveStockRequestRequest) (*dto.StockRequestResponse, error) {
	if in.ApprovedQuantity != nil && *in.ApprovedQuantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	return uc.transition(ctx, id, entity.RequestStatusPending, func(req *entity.StockRequest, now time.Time) {
		qty := req.RequestedQuantity
		if in.ApprovedQuantity != nil {
			qty = *in.ApprovedQuantity
		}
		req.Status = entity.RequestStatusApproved
		req.ApprovedBy = approverID
		req.ApprovedQuantity = &qty
		req.ApprovalNotes = in.ApprovalNotes
		req.ApprovalDate = &now
	})
}

// Reject rechaza una solicitud pendiente.
func (uc *UseCase) Reject(ctx context.Context, id, approverID string, in dto.RejectStockRequestRequest) (*dto.StockRequestResponse, error) {
	return uc.transition(ctx, id, entity.RequestStatusPending, func(req *entity.StockRequest, now time.Time) {
		req.Status = entity.RequestStatusRejected
		req.ApprovedBy = approverID
		req.ApprovalNotes = in.ApprovalNotes
		req.ApprovalDate = &now
	})
}

// Fulfill marca una solicitud aprobada como entregada. La salida de stock se registra
// aparte con POST /stock-transactions.
func (uc *UseCase) Fulfill(ctx context.Context, id string) (*dto.StockRequestResponse, error) {
	return uc.transition(ctx, id, entity.RequestStatusApproved, func(req *entity.StockRequest, _ time.Time) {
		req.Status = entity.RequestStatusFulfilled
	})
}

func (uc *UseCase) transition(ctx context.Context, id, from string, apply func(*entity.StockRequest, time.Time)) (*dto.StockRequestResponse, error) {
	var updated *entity.StockRequest
	err := uc.txRunner.RunRequests(ctx, func(requests repository.StockRequestRepository, _ repository.SequenceRepository) error {
		req, err := requests.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if req == nil {
			return domain.ErrNotFound
		}
		if req.Status != from {
			return domain.ErrInvalidTransition
		}
		now := uc.now()
		apply(req, now)
		req.UpdatedAt = now
		if err := requests.UpdateStatus(ctx, req); err != nil {
			return err
		}
		updated = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("code", updated.RequestCode).Str("status", updated.Status).Msg("solicitud actualizada")
	if err := uc.publisher.Publish(ctx, event.Event{
		Type:       event.TypeRequestStatusChanged,
		Key:        updated.ItemID,
		OccurredAt: updated.UpdatedAt,
		Payload:    dto.FromStockRequest(updated),
	}); err != nil {
		uc.log.Warn().Err(err).Str("code", updated.RequestCode).Msg("no se pudo publicar el evento")
	}
	resp := dto.FromStockRequest(updated)
	return &resp, nil
}

// Get obtiene una solicitud.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.StockRequestResponse, error) {
	req, err := uc.requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.FromStockRequest(req)
	return &resp, nil
}

// List lista solicitudes filtradas, más recientes primero.
func (uc *UseCase) List(ctx context.Context, f repository.StockRequestFilter) ([]dto.StockRequestResponse, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 15
	}
	list, err := uc.requests.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockRequestResponse, 0, len(list))
	for _, r := range list {
		out = append(out, dto.FromStockRequest(r))
	}
	return out, nil
}
