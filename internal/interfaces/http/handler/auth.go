package handler

import (
	"github.com/gin-gonic/gin"
	identityapp "github.com/sparepos/backend/internal/application/identity"
	"github.com/sparepos/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles authentication API endpoints
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identityapp.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterPublicRoutes registers routes reachable without a token
func (h *AuthHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", h.Login)
}

// RegisterRoutes registers routes behind authentication
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/register", middleware.RequireAdmin(), h.Register)
	rg.GET("/auth/me", h.Me)
}

// LoginBody is the request body for login
type LoginBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterBody is the request body for creating a staff account
type RegisterBody struct {
	Username string `json:"username" binding:"required,min=3"`
	Name     string `json:"name"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=admin staff"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var body LoginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BindingError(c, err)
		return
	}
	resp, err := h.authService.Login(c.Request.Context(), identityapp.LoginRequest{
		Username: body.Username,
		Password: body.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var body RegisterBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BindingError(c, err)
		return
	}
	err := h.authService.Register(c.Request.Context(), identityapp.RegisterUserRequest{
		Username: body.Username,
		Name:     body.Name,
		Password: body.Password,
		Role:     body.Role,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, gin.H{"username": body.Username})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	h.Success(c, gin.H{
		"user_id":  middleware.GetUserID(c),
		"username": middleware.GetUsername(c),
		"role":     c.GetString(middleware.ContextKeyRole),
	})
}
