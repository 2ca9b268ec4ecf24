package handler

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	billingapp "github.com/sparepos/backend/internal/application/billing"
)

// DashboardInvalidator drops cached dashboard figures after a mutation that
// changes sales totals or ledger balances.
type DashboardInvalidator interface {
	Invalidate(ctx context.Context)
}

// BillHandler handles billing API endpoints
type BillHandler struct {
	BaseHandler
	billingService *billingapp.BillingService
	dashboards     DashboardInvalidator
}

// NewBillHandler creates a new BillHandler
func NewBillHandler(billingService *billingapp.BillingService, dashboards DashboardInvalidator) *BillHandler {
	return &BillHandler{
		billingService: billingService,
		dashboards:     dashboards,
	}
}

// RegisterRoutes registers billing routes
func (h *BillHandler) RegisterRoutes(rg *gin.RouterGroup) {
	bills := rg.Group("/bills")
	bills.POST("", h.Create)
	bills.GET("", h.List)
	bills.GET("/:id", h.Get)
	bills.PUT("/:id", h.Update)
	bills.DELETE("/:id", h.Delete)
}

// CreateBillBody is the request body for creating a bill
type CreateBillBody struct {
	CustomerID      *string        `json:"customer_id"`
	CustomerName    string         `json:"customer_name"`
	CustomerMobile  string         `json:"customer_mobile"`
	Items           []BillItemBody `json:"items" binding:"required,min=1,dive"`
	Discount        float64        `json:"discount" binding:"gte=0"`
	TransportCharge float64        `json:"transport_charge" binding:"gte=0"`
	PaymentMode     string         `json:"payment_mode" binding:"required,oneof=CASH UPI CREDIT BANK"`
	Date            string         `json:"date"`
}

// BillItemBody is one line of a bill request
type BillItemBody struct {
	ProductID string  `json:"product_id" binding:"required,uuid"`
	Qty       int     `json:"qty" binding:"required,gt=0"`
	Price     float64 `json:"price" binding:"gte=0"`
}

// UpdateBillBody is the request body for patching bill header fields
type UpdateBillBody struct {
	CustomerID  *string `json:"customer_id"`
	PaymentMode *string `json:"payment_mode" binding:"omitempty,oneof=CASH UPI CREDIT BANK"`
	Date        *string `json:"date"`
}

// Create handles POST /bills
func (h *BillHandler) Create(c *gin.Context) {
	var body CreateBillBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BindingError(c, err)
		return
	}

	req := billingapp.CreateBillRequest{
		CustomerName:    body.CustomerName,
		CustomerMobile:  body.CustomerMobile,
		Discount:        toDecimal(body.Discount),
		TransportCharge: toDecimal(body.TransportCharge),
		PaymentMode:     body.PaymentMode,
	}
	if body.CustomerID != nil {
		id, err := uuid.Parse(*body.CustomerID)
		if err != nil {
			h.BadRequest(c, "Invalid customer_id")
			return
		}
		req.CustomerID = &id
	}
	date, err := parseOptionalDate(body.Date)
	if err != nil {
		h.BadRequest(c, "Invalid date")
		return
	}
	req.Date = date
	for _, item := range body.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			h.BadRequest(c, "Invalid product_id")
			return
		}
		req.Items = append(req.Items, billingapp.BillItemRequest{
			ProductID: productID,
			Qty:       item.Qty,
			Price:     toDecimal(item.Price),
		})
	}

	bill, err := h.billingService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.dashboards.Invalidate(c.Request.Context())
	h.Created(c, bill)
}

// Get handles GET /bills/:id
func (h *BillHandler) Get(c *gin.Context) {
	id, err := parseBillID(c)
	if err != nil {
		h.BadRequest(c, "Invalid bill id")
		return
	}
	bill, err := h.billingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, bill)
}

// List handles GET /bills
func (h *BillHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}
	bills, total, err := h.billingService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, bills, total, pageOrDefault(filter.Page), pageSizeOrDefault(filter.PageSize))
}

// Update handles PUT /bills/:id
func (h *BillHandler) Update(c *gin.Context) {
	id, err := parseBillID(c)
	if err != nil {
		h.BadRequest(c, "Invalid bill id")
		return
	}
	var body UpdateBillBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BindingError(c, err)
		return
	}

	req := billingapp.UpdateBillRequest{PaymentMode: body.PaymentMode}
	if body.CustomerID != nil {
		customerID, err := uuid.Parse(*body.CustomerID)
		if err != nil {
			h.BadRequest(c, "Invalid customer_id")
			return
		}
		req.CustomerID = &customerID
	}
	if body.Date != nil {
		date, err := parseOptionalDate(*body.Date)
		if err != nil {
			h.BadRequest(c, "Invalid date")
			return
		}
		req.Date = date
	}

	bill, err := h.billingService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.dashboards.Invalidate(c.Request.Context())
	h.Success(c, bill)
}

// Delete handles DELETE /bills/:id
func (h *BillHandler) Delete(c *gin.Context) {
	id, err := parseBillID(c)
	if err != nil {
		h.BadRequest(c, "Invalid bill id")
		return
	}
	if err := h.billingService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.dashboards.Invalidate(c.Request.Context())
	h.NoContent(c)
}

func parseBillID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func pageOrDefault(page int) int {
	if page <= 0 {
		return 1
	}
	return page
}

func pageSizeOrDefault(size int) int {
	if size <= 0 {
		return 50
	}
	return size
}
