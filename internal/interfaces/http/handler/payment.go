package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	billingapp "github.com/sparepos/backend/internal/application/billing"
	financeapp "github.com/sparepos/backend/internal/application/finance"
)

// PaymentHandler handles customer payment (in) and supplier payment (out)
// API endpoints
type PaymentHandler struct {
	BaseHandler
	paymentService    *billingapp.PaymentService
	paymentOutService *financeapp.PaymentOutService
	dashboards        DashboardInvalidator
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *billingapp.PaymentService, paymentOutService *financeapp.PaymentOutService, dashboards DashboardInvalidator) *PaymentHandler {
	return &PaymentHandler{
		paymentService:    paymentService,
		paymentOutService: paymentOutService,
		dashboards:        dashboards,
	}
}

// RegisterRoutes registers payment routes
func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	in := rg.Group("/payments-in")
	in.POST("", h.RecordIn)
	in.GET("", h.ListIn)

	out := rg.Group("/payments-out")
	out.POST("", h.RecordOut)
	out.GET("", h.ListOut)
}

// PaymentInBody is the request body for recording a customer payment
type PaymentInBody struct {
	CustomerID string  `json:"customer_id" binding:"required,uuid"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	Mode       string  `json:"mode" binding:"required,oneof=CASH UPI BANK"`
	Notes      string  `json:"notes"`
}

// PaymentOutBody is the request body for recording a supplier payment
type PaymentOutBody struct {
	SupplierID string  `json:"supplier_id" binding:"required,uuid"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	Mode       string  `json:"mode" binding:"required,oneof=CASH UPI BANK"`
	Notes      string  `json:"notes"`
	Date       string  `json:"date"`
}

// RecordIn handles POST /payments-in
func (h *PaymentHandler) RecordIn(c *gin.Context) {
	var body PaymentInBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BindingError(c, err)
		return
	}
	customerID, err := uuid.Parse(body.CustomerID)
	if err != nil {
		h.BadRequest(c, "Invalid customer_id")
		return
	}

	payment, err := h.paymentService.Record(c.Request.Context(), billingapp.RecordPaymentRequest{
		CustomerID: customerID,
		Amount:     toDecimal(body.Amount),
		Mode:       body.Mode,
		Notes:      body.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.dashboards.Invalidate(c.Request.Context())
	h.Created(c, payment)
}

// ListIn handles GET /payments-in
func (h *PaymentHandler) ListIn(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}
	payments, total, err := h.paymentService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, payments, total, pageOrDefault(filter.Page), pageSizeOrDefault(filter.PageSize))
}

// RecordOut handles POST /payments-out
func (h *PaymentHandler) RecordOut(c *gin.Context) {
	var body PaymentOutBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BindingError(c, err)
		return
	}
	supplierID, err := uuid.Parse(body.SupplierID)
	if err != nil {
		h.BadRequest(c, "Invalid supplier_id")
		return
	}
	date, err := parseOptionalDate(body.Date)
	if err != nil {
		h.BadRequest(c, "Invalid date")
		return
	}

	payment, err := h.paymentOutService.Record(c.Request.Context(), financeapp.RecordPaymentOutRequest{
		SupplierID: supplierID,
		Amount:     toDecimal(body.Amount),
		Mode:       body.Mode,
		Notes:      body.Notes,
		Date:       date,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, payment)
}

// ListOut handles GET /payments-out
func (h *PaymentHandler) ListOut(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}
	payments, total, err := h.paymentOutService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, payments, total, pageOrDefault(filter.Page), pageSizeOrDefault(filter.PageSize))
}
