package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sparepos/backend/internal/domain/inventory"
)

// RecordPurchaseRequest carries a supplier purchase.
type RecordPurchaseRequest struct {
	SupplierID uuid.UUID
	Items      []PurchaseItemRequest
	Date       *time.Time
}

// PurchaseItemRequest is one received line.
type PurchaseItemRequest struct {
	ProductID uuid.UUID
	Qty       int
	Price     decimal.Decimal
}

// AdjustStockRequest carries a manual stock correction.
type AdjustStockRequest struct {
	ProductID uuid.UUID
	Type      string
	Qty       int
	Reason    string
}

// PurchaseResponse is the application-level view of a purchase.
type PurchaseResponse struct {
	ID          uuid.UUID              `json:"id"`
	SupplierID  uuid.UUID              `json:"supplier_id"`
	Items       []PurchaseItemResponse `json:"items"`
	TotalAmount decimal.Decimal        `json:"total_amount"`
	Date        time.Time              `json:"date"`
}

// PurchaseItemResponse is one line of a purchase response.
type PurchaseItemResponse struct {
	ProductID uuid.UUID       `json:"product_id"`
	Qty       int             `json:"qty"`
	Price     decimal.Decimal `json:"price"`
	Amount    decimal.Decimal `json:"amount"`
}

// StockAdjustmentResponse is the application-level view of an adjustment.
type StockAdjustmentResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Type      string    `json:"type"`
	Qty       int       `json:"qty"`
	Reason    string    `json:"reason,omitempty"`
	Date      time.Time `json:"date"`
}

// ToPurchaseResponse converts a domain purchase to its response form
func ToPurchaseResponse(p *inventory.Purchase) PurchaseResponse {
	resp := PurchaseResponse{
		ID:          p.ID,
		SupplierID:  p.SupplierID,
		TotalAmount: p.TotalAmount,
		Date:        p.Date,
	}
	for _, item := range p.Items {
		resp.Items = append(resp.Items, PurchaseItemResponse{
			ProductID: item.ProductID,
			Qty:       item.Qty,
			Price:     item.Price,
			Amount:    item.Amount,
		})
	}
	return resp
}

// ToPurchaseResponses converts a slice of domain purchases
func ToPurchaseResponses(purchases []inventory.Purchase) []PurchaseResponse {
	responses := make([]PurchaseResponse, len(purchases))
	for i := range purchases {
		responses[i] = ToPurchaseResponse(&purchases[i])
	}
	return responses
}

// ToStockAdjustmentResponse converts a domain adjustment to its response form
func ToStockAdjustmentResponse(a *inventory.StockAdjustment) StockAdjustmentResponse {
	return StockAdjustmentResponse{
		ID:        a.ID,
		ProductID: a.ProductID,
		Type:      string(a.Type),
		Qty:       a.Qty,
		Reason:    a.Reason,
		Date:      a.Date,
	}
}

// ToStockAdjustmentResponses converts a slice of domain adjustments
func ToStockAdjustmentResponses(adjustments []inventory.StockAdjustment) []StockAdjustmentResponse {
	responses := make([]StockAdjustmentResponse, len(adjustments))
	for i := range adjustments {
		responses[i] = ToStockAdjustmentResponse(&adjustments[i])
	}
	return responses
}
