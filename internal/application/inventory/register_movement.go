package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/gudang-api/internal/application/dto"
	"github.com/jhoicas/gudang-api/internal/domain"
	"github.com/jhoicas/gudang-api/internal/domain/entity"
)

// PostMovementFromRequest adapta el request HTTP al caso de uso PostMovement.
// userID es el usuario autenticado.
func (uc *LedgerUseCase) PostMovementFromRequest(ctx context.Context, userID string, in dto.PostMovementRequest) (*entity.StockMovement, error) {
	date, err := ParseTransactionDate(in.TransactionDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return uc.PostMovement(ctx, PostMovementInput{
		ItemID:            in.ItemID,
		UserID:            userID,
		Type:              in.Type,
		Quantity:          in.Quantity,
		UnitPrice:         in.UnitPrice,
		Notes:             in.Notes,
		DocumentReference: in.DocumentReference,
		TransactionDate:   date,
	})
}

// ParseTransactionDate acepta RFC3339 o YYYY-MM-DD (medianoche UTC).
func ParseTransactionDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}
