package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	partnerapp "github.com/sparepos/backend/internal/application/partner"
)

// CustomerHandler handles customer API endpoints
type CustomerHandler struct {
	BaseHandler
	customerService *partnerapp.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *partnerapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// RegisterRoutes registers customer routes
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	customers.POST("", h.Create)
	customers.GET("", h.List)
	customers.GET("/:id", h.Get)
	customers.PUT("/:id", h.Update)
	customers.DELETE("/:id", h.Delete)
}

// CreateCustomerBody is the request body for creating a customer
type CreateCustomerBody struct {
	Name    string `json:"name" binding:"required"`
	Mobile  string `json:"mobile" binding:"required"`
	Address string `json:"address"`
	GST     string `json:"gst"`
}

// UpdateCustomerBody is the request body for updating a customer. Balance,
// when present, overrides the running ledger value.
type UpdateCustomerBody struct {
	Name    string   `json:"name" binding:"required"`
	Mobile  string   `json:"mobile" binding:"required"`
	Address string   `json:"address"`
	GST     string   `json:"gst"`
	Balance *float64 `json:"balance"`
}

// Create handles POST /customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var body CreateCustomerBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BindingError(c, err)
		return
	}
	customer, err := h.customerService.Create(c.Request.Context(), partnerapp.CreateCustomerRequest{
		Name:    body.Name,
		Mobile:  body.Mobile,
		Address: body.Address,
		GST:     body.GST,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, customer)
}

// Get handles GET /customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer id")
		return
	}
	customer, err := h.customerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customer)
}

// List handles GET /customers
func (h *CustomerHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}
	customers, total, err := h.customerService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, customers, total, pageOrDefault(filter.Page), pageSizeOrDefault(filter.PageSize))
}

// Update handles PUT /customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer id")
		return
	}
	var body UpdateCustomerBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BindingError(c, err)
		return
	}
	req := partnerapp.UpdateCustomerRequest{
		Name:    body.Name,
		Mobile:  body.Mobile,
		Address: body.Address,
		GST:     body.GST,
	}
	if body.Balance != nil {
		balance := decimal.NewFromFloat(*body.Balance)
		req.Balance = &balance
	}
	customer, err := h.customerService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customer)
}

// Delete handles DELETE /customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer id")
		return
	}
	if err := h.customerService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
