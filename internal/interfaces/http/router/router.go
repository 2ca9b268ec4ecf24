// Package router assembles the gin engine from handlers and middleware.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sparepos/backend/internal/infrastructure/auth"
	"github.com/sparepos/backend/internal/infrastructure/logger"
	"github.com/sparepos/backend/internal/interfaces/http/handler"
	"github.com/sparepos/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// RouteRegistrar registers a handler's routes on an API group
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Handlers bundles everything the router mounts
type Handlers struct {
	System *handler.SystemHandler
	Auth   *handler.AuthHandler

	Bills        *handler.BillHandler
	Products     *handler.ProductHandler
	Customers    *handler.CustomerHandler
	Suppliers    *handler.SupplierHandler
	SalesReturns *handler.SalesReturnHandler
	Payments     *handler.PaymentHandler
	Inventory    *handler.InventoryHandler
	Expenses     *handler.ExpenseHandler
	Reports      *handler.ReportHandler
}

// New builds the gin engine with logging, recovery, request IDs and all
// API routes under /api/v1. Everything except login and health checks
// sits behind JWT auth.
func New(log *zap.Logger, jwtService *auth.JWTService, h Handlers) *gin.Engine {
	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))

	h.System.RegisterRoutes(engine)

	api := engine.Group("/api/v1")
	h.Auth.RegisterPublicRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(jwtService))
	h.Auth.RegisterRoutes(protected)

	for _, registrar := range []RouteRegistrar{
		h.Bills,
		h.Products,
		h.Customers,
		h.Suppliers,
		h.SalesReturns,
		h.Payments,
		h.Inventory,
		h.Expenses,
		h.Reports,
	} {
		registrar.RegisterRoutes(protected)
	}

	return engine
}
