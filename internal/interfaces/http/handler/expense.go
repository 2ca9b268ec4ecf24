package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	financeapp "github.com/sparepos/backend/internal/application/finance"
)

// ExpenseHandler handles expense API endpoints
type ExpenseHandler struct {
	BaseHandler
	expenseService *financeapp.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService *financeapp.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// RegisterRoutes registers expense routes
func (h *ExpenseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	expenses := rg.Group("/expenses")
	expenses.POST("", h.Create)
	expenses.GET("", h.List)
	expenses.GET("/categories", h.ListCategories)
	expenses.DELETE("/:id", h.Delete)
}

// CreateExpenseBody is the request body for recording an expense
type CreateExpenseBody struct {
	Title    string  `json:"title" binding:"required"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Notes    string  `json:"notes"`
	Date     string  `json:"date"`
}

// Create handles POST /expenses
func (h *ExpenseHandler) Create(c *gin.Context) {
	var body CreateExpenseBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BindingError(c, err)
		return
	}
	date, err := parseOptionalDate(body.Date)
	if err != nil {
		h.BadRequest(c, "Invalid date")
		return
	}
	expense, err := h.expenseService.Create(c.Request.Context(), financeapp.CreateExpenseRequest{
		Title:    body.Title,
		Category: body.Category,
		Amount:   toDecimal(body.Amount),
		Notes:    body.Notes,
		Date:     date,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, expense)
}

// List handles GET /expenses
func (h *ExpenseHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}
	expenses, total, err := h.expenseService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, expenses, total, pageOrDefault(filter.Page), pageSizeOrDefault(filter.PageSize))
}

// ListCategories handles GET /expenses/categories
func (h *ExpenseHandler) ListCategories(c *gin.Context) {
	categories, err := h.expenseService.ListCategories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, categories)
}

// Delete handles DELETE /expenses/:id
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid expense id")
		return
	}
	if err := h.expenseService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
