package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/sparepos/backend/internal/application/catalog"
)

// ProductHandler handles catalog API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// RegisterRoutes registers catalog routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	products.POST("", h.Create)
	products.GET("", h.List)
	products.GET("/low-stock", h.ListLowStock)
	products.GET("/code/:code", h.GetByCode)
	products.GET("/:id", h.Get)
	products.PUT("/:id", h.Update)
	products.DELETE("/:id", h.Delete)
}

// CreateProductBody is the request body for creating a product
type CreateProductBody struct {
	Code          string  `json:"code" binding:"required"`
	Name          string  `json:"name" binding:"required"`
	Category      string  `json:"category"`
	Unit          string  `json:"unit"`
	PurchasePrice float64 `json:"purchase_price" binding:"gte=0"`
	SellingPrice  float64 `json:"selling_price" binding:"gte=0"`
}

// UpdateProductBody is the request body for updating a product
type UpdateProductBody struct {
	Name          string  `json:"name" binding:"required"`
	Category      string  `json:"category"`
	Unit          string  `json:"unit"`
	PurchasePrice float64 `json:"purchase_price" binding:"gte=0"`
	SellingPrice  float64 `json:"selling_price" binding:"gte=0"`
}

// Create handles POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var body CreateProductBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BindingError(c, err)
		return
	}
	product, err := h.productService.Create(c.Request.Context(), catalogapp.CreateProductRequest{
		Code:          body.Code,
		Name:          body.Name,
		Category:      body.Category,
		Unit:          body.Unit,
		PurchasePrice: toDecimal(body.PurchasePrice),
		SellingPrice:  toDecimal(body.SellingPrice),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product id")
		return
	}
	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// GetByCode handles GET /products/code/:code
func (h *ProductHandler) GetByCode(c *gin.Context) {
	product, err := h.productService.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// List handles GET /products
func (h *ProductHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}
	products, total, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, products, total, pageOrDefault(filter.Page), pageSizeOrDefault(filter.PageSize))
}

// ListLowStock handles GET /products/low-stock
func (h *ProductHandler) ListLowStock(c *gin.Context) {
	products, err := h.productService.ListLowStock(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}

// Update handles PUT /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product id")
		return
	}
	var body UpdateProductBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BindingError(c, err)
		return
	}
	product, err := h.productService.Update(c.Request.Context(), id, catalogapp.UpdateProductRequest{
		Name:          body.Name,
		Category:      body.Category,
		Unit:          body.Unit,
		PurchasePrice: toDecimal(body.PurchasePrice),
		SellingPrice:  toDecimal(body.SellingPrice),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product id")
		return
	}
	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
