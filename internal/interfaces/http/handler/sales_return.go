package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	billingapp "github.com/sparepos/backend/internal/application/billing"
)

// SalesReturnHandler handles sales return API endpoints
type SalesReturnHandler struct {
	BaseHandler
	returnService *billingapp.SalesReturnService
	dashboards    DashboardInvalidator
}

// NewSalesReturnHandler creates a new SalesReturnHandler
func NewSalesReturnHandler(returnService *billingapp.SalesReturnService, dashboards DashboardInvalidator) *SalesReturnHandler {
	return &SalesReturnHandler{
		returnService: returnService,
		dashboards:    dashboards,
	}
}

// RegisterRoutes registers sales return routes
func (h *SalesReturnHandler) RegisterRoutes(rg *gin.RouterGroup) {
	returns := rg.Group("/sales-returns")
	returns.POST("", h.Create)
	returns.GET("", h.List)
	returns.GET("/:id", h.Get)
}

// CreateReturnBody is the request body for recording a sales return
type CreateReturnBody struct {
	BillID     *int64           `json:"bill_id"`
	CustomerID *string          `json:"customer_id"`
	Items      []ReturnItemBody `json:"items" binding:"required,min=1,dive"`
}

// ReturnItemBody is one returned line
type ReturnItemBody struct {
	ProductID string  `json:"product_id" binding:"required,uuid"`
	Qty       int     `json:"qty" binding:"required,gt=0"`
	Price     float64 `json:"price" binding:"gte=0"`
}

// Create handles POST /sales-returns
func (h *SalesReturnHandler) Create(c *gin.Context) {
	var body CreateReturnBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BindingError(c, err)
		return
	}

	req := billingapp.CreateReturnRequest{BillID: body.BillID}
	if body.CustomerID != nil {
		customerID, err := uuid.Parse(*body.CustomerID)
		if err != nil {
			h.BadRequest(c, "Invalid customer_id")
			return
		}
		req.CustomerID = &customerID
	}
	for _, item := range body.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			h.BadRequest(c, "Invalid product_id")
			return
		}
		req.Items = append(req.Items, billingapp.ReturnItemRequest{
			ProductID: productID,
			Qty:       item.Qty,
			Price:     toDecimal(item.Price),
		})
	}

	ret, err := h.returnService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.dashboards.Invalidate(c.Request.Context())
	h.Created(c, ret)
}

// Get handles GET /sales-returns/:id
func (h *SalesReturnHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid sales return id")
		return
	}
	ret, err := h.returnService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ret)
}

// List handles GET /sales-returns
func (h *SalesReturnHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}
	returns, total, err := h.returnService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, returns, total, pageOrDefault(filter.Page), pageSizeOrDefault(filter.PageSize))
}
