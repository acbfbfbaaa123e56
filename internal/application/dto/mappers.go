package dto

import "github.com/jhoicas/gudang-api/internal/domain/entity"

// Conversión entidad → DTO compartida entre casos de uso.

func FromItem(i *entity.Item) ItemResponse {
	return ItemResponse{
		ID:            i.ID,
		Code:          i.Code,
		Name:          i.Name,
		Description:   i.Description,
		CategoryID:    i.CategoryID,
		VendorID:      i.VendorID,
		Type:          i.Type,
		PurchasePrice: i.PurchasePrice,
		SellingPrice:  i.SellingPrice,
		CurrentStock:  i.CurrentStock,
		MinimumStock:  i.MinimumStock,
		IsLowStock:    i.IsLowStock(),
		Unit:          i.Unit,
		Location:      i.Location,
		Barcode:       i.Barcode,
		Status:        i.Status,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func FromMovement(m *entity.StockMovement) MovementResponse {
	return MovementResponse{
		ID:                m.ID,
		TransactionCode:   m.TransactionCode,
		ItemID:            m.ItemID,
		ItemCode:          m.ItemCode,
		ItemName:          m.ItemName,
		UserID:            m.UserID,
		UserName:          m.UserName,
		Type:              m.Type,
		Quantity:          m.Quantity,
		UnitPrice:         m.UnitPrice,
		TotalAmount:       m.TotalAmount,
		StockBefore:       m.StockBefore,
		StockAfter:        m.StockAfter,
		Notes:             m.Notes,
		DocumentReference: m.DocumentReference,
		TransactionDate:   m.TransactionDate,
		CreatedAt:         m.CreatedAt,
	}
}

func FromMovements(list []*entity.StockMovement) []MovementResponse {
	out := make([]MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromMovement(m))
	}
	return out
}

func FromStockRequest(r *entity.StockRequest) StockRequestResponse {
	return StockRequestResponse{
		ID:                r.ID,
		RequestCode:       r.RequestCode,
		ItemID:            r.ItemID,
		ItemCode:          r.ItemCode,
		ItemName:          r.ItemName,
		RequestedBy:       r.RequestedBy,
		RequestedByName:   r.RequestedByName,
		ApprovedBy:        r.ApprovedBy,
		RequestedQuantity: r.RequestedQuantity,
		ApprovedQuantity:  r.ApprovedQuantity,
		Status:            r.Status,
		RequestReason:     r.RequestReason,
		ApprovalNotes:     r.ApprovalNotes,
		RequestDate:       r.RequestDate,
		ApprovalDate:      r.ApprovalDate,
	}
}

func FromUser(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
