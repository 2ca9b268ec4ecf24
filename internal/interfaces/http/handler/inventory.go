package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	inventoryapp "github.com/sparepos/backend/internal/application/inventory"
)

// InventoryHandler handles purchase and stock adjustment API endpoints
type InventoryHandler struct {
	BaseHandler
	inventoryService *inventoryapp.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventoryService *inventoryapp.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// RegisterRoutes registers inventory routes
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	purchases := rg.Group("/purchases")
	purchases.POST("", h.RecordPurchase)
	purchases.GET("", h.ListPurchases)

	adjustments := rg.Group("/stock-adjustments")
	adjustments.POST("", h.AdjustStock)
	adjustments.GET("", h.ListAdjustments)
}

// RecordPurchaseBody is the request body for recording a supplier purchase
type RecordPurchaseBody struct {
	SupplierID string             `json:"supplier_id" binding:"required,uuid"`
	Items      []PurchaseItemBody `json:"items" binding:"required,min=1,dive"`
	Date       string             `json:"date"`
}

// PurchaseItemBody is one received line
type PurchaseItemBody struct {
	ProductID string  `json:"product_id" binding:"required,uuid"`
	Qty       int     `json:"qty" binding:"required,gt=0"`
	Price     float64 `json:"price" binding:"gte=0"`
}

// AdjustStockBody is the request body for a manual stock correction
type AdjustStockBody struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Type      string `json:"type" binding:"required,oneof=ADD REMOVE"`
	Qty       int    `json:"qty" binding:"required,gt=0"`
	Reason    string `json:"reason"`
}

// RecordPurchase handles POST /purchases
func (h *InventoryHandler) RecordPurchase(c *gin.Context) {
	var body RecordPurchaseBody
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

	req := inventoryapp.RecordPurchaseRequest{
		SupplierID: supplierID,
		Date:       date,
	}
	for _, item := range body.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			h.BadRequest(c, "Invalid product_id")
			return
		}
		req.Items = append(req.Items, inventoryapp.PurchaseItemRequest{
			ProductID: productID,
			Qty:       item.Qty,
			Price:     toDecimal(item.Price),
		})
	}

	purchase, err := h.inventoryService.RecordPurchase(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, purchase)
}

// ListPurchases handles GET /purchases
func (h *InventoryHandler) ListPurchases(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}
	purchases, total, err := h.inventoryService.ListPurchases(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, purchases, total, pageOrDefault(filter.Page), pageSizeOrDefault(filter.PageSize))
}

// AdjustStock handles POST /stock-adjustments
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	var body AdjustStockBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BindingError(c, err)
		return
	}
	productID, err := uuid.Parse(body.ProductID)
	if err != nil {
		h.BadRequest(c, "Invalid product_id")
		return
	}

	adjustment, err := h.inventoryService.AdjustStock(c.Request.Context(), inventoryapp.AdjustStockRequest{
		ProductID: productID,
		Type:      body.Type,
		Qty:       body.Qty,
		Reason:    body.Reason,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, adjustment)
}

// ListAdjustments handles GET /stock-adjustments
func (h *InventoryHandler) ListAdjustments(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}
	adjustments, total, err := h.inventoryService.ListAdjustments(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, adjustments, total, pageOrDefault(filter.Page), pageSizeOrDefault(filter.PageSize))
}
