package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sparepos/backend/internal/domain/billing"
)

// CreateBillRequest carries everything needed to cut a bill. CustomerName and
// CustomerMobile are snapshotted onto the bill as-is; prices are taken from
// the request, not re-read from the catalog.
type CreateBillRequest struct {
	CustomerID      *uuid.UUID
	CustomerName    string
	CustomerMobile  string
	Items           []BillItemRequest
	Discount        decimal.Decimal
	TransportCharge decimal.Decimal
	PaymentMode     string
	Date            *time.Time
}

// BillItemRequest is one line of a create request.
type BillItemRequest struct {
	ProductID uuid.UUID
	Qty       int
	Price     decimal.Decimal
}

// UpdateBillRequest patches header fields only. Nil fields are left
// untouched; line items are immutable after creation.
type UpdateBillRequest struct {
	CustomerID  *uuid.UUID
	PaymentMode *string
	Date        *time.Time
}

// CreateReturnRequest carries a sales return. Bill and customer references
// are both optional.
type CreateReturnRequest struct {
	BillID     *int64
	CustomerID *uuid.UUID
	Items      []ReturnItemRequest
}

// ReturnItemRequest is one returned line, re-priced at return time.
type ReturnItemRequest struct {
	ProductID uuid.UUID
	Qty       int
	Price     decimal.Decimal
}

// RecordPaymentRequest carries a customer payment in.
type RecordPaymentRequest struct {
	CustomerID uuid.UUID
	Amount     decimal.Decimal
	Mode       string
	Notes      string
}

// BillResponse is the application-level view of a bill.
type BillResponse struct {
	ID              int64              `json:"id"`
	CustomerID      *uuid.UUID         `json:"customer_id,omitempty"`
	CustomerName    string             `json:"customer_name"`
	CustomerMobile  string             `json:"customer_mobile"`
	Items           []BillItemResponse `json:"items"`
	Discount        decimal.Decimal    `json:"discount"`
	TransportCharge decimal.Decimal    `json:"transport_charge"`
	TotalAmount     decimal.Decimal    `json:"total_amount"`
	PaymentMode     string             `json:"payment_mode"`
	Date            time.Time          `json:"date"`
	CreatedAt       time.Time          `json:"created_at"`
}

// BillItemResponse is one line of a bill response.
type BillItemResponse struct {
	ID        int64           `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Qty       int             `json:"qty"`
	Price     decimal.Decimal `json:"price"`
	Amount    decimal.Decimal `json:"amount"`
}

// SalesReturnResponse is the application-level view of a sales return.
type SalesReturnResponse struct {
	ID          uuid.UUID            `json:"id"`
	BillID      *int64               `json:"bill_id,omitempty"`
	CustomerID  *uuid.UUID           `json:"customer_id,omitempty"`
	Items       []ReturnItemResponse `json:"items"`
	TotalAmount decimal.Decimal      `json:"total_amount"`
	Date        time.Time            `json:"date"`
}

// ReturnItemResponse is one line of a sales return response.
type ReturnItemResponse struct {
	ProductID uuid.UUID       `json:"product_id"`
	Qty       int             `json:"qty"`
	Price     decimal.Decimal `json:"price"`
	Amount    decimal.Decimal `json:"amount"`
}

// PaymentResponse is the application-level view of a payment in.
type PaymentResponse struct {
	ID         uuid.UUID       `json:"id"`
	CustomerID uuid.UUID       `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Mode       string          `json:"mode"`
	Notes      string          `json:"notes,omitempty"`
	Date       time.Time       `json:"date"`
}

// ToBillResponse converts a domain bill to its response form
func ToBillResponse(b *billing.Bill) BillResponse {
	resp := BillResponse{
		ID:              b.ID,
		CustomerID:      b.CustomerID,
		CustomerName:    b.CustomerName,
		CustomerMobile:  b.CustomerMobile,
		Discount:        b.Discount,
		TransportCharge: b.TransportCharge,
		TotalAmount:     b.TotalAmount,
		PaymentMode:     b.PaymentMode.String(),
		Date:            b.Date,
		CreatedAt:       b.CreatedAt,
	}
	for _, item := range b.Items {
		resp.Items = append(resp.Items, BillItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Qty:       item.Qty,
			Price:     item.Price,
			Amount:    item.Amount,
		})
	}
	return resp
}

// ToBillResponses converts a slice of domain bills
func ToBillResponses(bills []billing.Bill) []BillResponse {
	responses := make([]BillResponse, len(bills))
	for i := range bills {
		responses[i] = ToBillResponse(&bills[i])
	}
	return responses
}

// ToSalesReturnResponse converts a domain sales return to its response form
func ToSalesReturnResponse(r *billing.SalesReturn) SalesReturnResponse {
	resp := SalesReturnResponse{
		ID:          r.ID,
		BillID:      r.BillID,
		CustomerID:  r.CustomerID,
		TotalAmount: r.TotalAmount,
		Date:        r.Date,
	}
	for _, item := range r.Items {
		resp.Items = append(resp.Items, ReturnItemResponse{
			ProductID: item.ProductID,
			Qty:       item.Qty,
			Price:     item.Price,
			Amount:    item.Amount,
		})
	}
	return resp
}

// ToSalesReturnResponses converts a slice of domain sales returns
func ToSalesReturnResponses(returns []billing.SalesReturn) []SalesReturnResponse {
	responses := make([]SalesReturnResponse, len(returns))
	for i := range returns {
		responses[i] = ToSalesReturnResponse(&returns[i])
	}
	return responses
}

// ToPaymentResponse converts a domain payment to its response form
func ToPaymentResponse(p *billing.Payment) PaymentResponse {
	return PaymentResponse{
		ID:         p.ID,
		CustomerID: p.CustomerID,
		Amount:     p.Amount,
		Mode:       p.Mode.String(),
		Notes:      p.Notes,
		Date:       p.Date,
	}
}

// ToPaymentResponses converts a slice of domain payments
func ToPaymentResponses(payments []billing.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentResponse(&payments[i])
	}
	return responses
}
