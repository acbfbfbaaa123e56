package dto

import "time"

// CreateStockRequestRequest body para POST /api/stock-requests.
type CreateStockRequestRequest struct {
	ItemID            string `json:"item_id" validate:"required,uuid"`
	RequestedQuantity int64  `json:"requested_quantity" validate:"required,min=1,max=1000000000"`
	RequestReason     string `json:"request_reason" validate:"required"`
}

// ApproveStockRequestRequest body de aprobación. Sin approved_quantity se aprueba lo solicitado.
type ApproveStockRequestRequest struct {
	ApprovedQuantity *int64 `json:"approved_quantity" validate:"omitempty,min=1,max=1000000000"`
	ApprovalNotes    string `json:"approval_notes"`
}

// RejectStockRequestRequest body de rechazo.
type RejectStockRequestRequest struct {
	ApprovalNotes string `json:"approval_notes"`
}

// StockRequestResponse salida de una solicitud.
type StockRequestResponse struct {
	ID                string     `json:"id"`
	RequestCode       string     `json:"request_code"`
	ItemID            string     `json:"item_id"`
	ItemCode          string     `json:"item_code,omitempty"`
	ItemName          string     `json:"item_name,omitempty"`
	RequestedBy       string     `json:"requested_by"`
	RequestedByName   string     `json:"requested_by_name,omitempty"`
	ApprovedBy        string     `json:"approved_by,omitempty"`
	RequestedQuantity int64      `json:"requested_quantity"`
	ApprovedQuantity  *int64     `json:"approved_quantity,omitempty"`
	Status            string     `json:"status"`
	RequestReason     string     `json:"request_reason"`
	ApprovalNotes     string     `json:"approval_notes,omitempty"`
	RequestDate       time.Time  `json:"request_date"`
	ApprovalDate      *time.Time `json:"approval_date,omitempty"`
}
