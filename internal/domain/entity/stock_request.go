package entity

import "time"

// Estados de una solicitud de stock.
const (
	RequestStatusPending   = "pending"
	RequestStatusApproved  = "approved"
	RequestStatusRejected  = "rejected"
	RequestStatusFulfilled = "fulfilled"
)

// StockRequest solicitud de artículos con flujo de aprobación.
// No afecta el stock del artículo: el movimiento se registra aparte.
type StockRequest struct {
	ID                string
	RequestCode       string
	ItemID            string
	RequestedBy       string
	ApprovedBy        string // vacío mientras está pendiente
	RequestedQuantity int64
	ApprovedQuantity  *int64
	Status            string
	RequestReason     string
	ApprovalNotes     string
	RequestDate       time.Time
	ApprovalDate      *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	ItemCode        string
	ItemName        string
	RequestedByName string
}
