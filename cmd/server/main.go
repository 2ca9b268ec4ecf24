package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	billingapp "github.com/sparepos/backend/internal/application/billing"
	catalogapp "github.com/sparepos/backend/internal/application/catalog"
	financeapp "github.com/sparepos/backend/internal/application/finance"
	identityapp "github.com/sparepos/backend/internal/application/identity"
	inventoryapp "github.com/sparepos/backend/internal/application/inventory"
	partnerapp "github.com/sparepos/backend/internal/application/partner"
	reportapp "github.com/sparepos/backend/internal/application/report"
	"github.com/sparepos/backend/internal/infrastructure/auth"
	"github.com/sparepos/backend/internal/infrastructure/cache"
	"github.com/sparepos/backend/internal/infrastructure/config"
	"github.com/sparepos/backend/internal/infrastructure/logger"
	"github.com/sparepos/backend/internal/infrastructure/persistence"
	"github.com/sparepos/backend/internal/interfaces/http/handler"
	"github.com/sparepos/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting SparePOS backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	if err := persistence.AutoMigrate(db.DB); err != nil {
		log.Fatal("Failed to run schema migration", zap.Error(err))
	}

	// Redis is optional; without it the dashboard recomputes on every call.
	var reportCache reportapp.Cache
	redisCache, err := cache.NewRedisCache(cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, dashboard caching disabled", zap.Error(err))
	} else {
		reportCache = redisCache
		defer func() {
			_ = redisCache.Close()
		}()
		log.Info("Redis connected", zap.String("addr", cfg.Redis.Addr()))
	}

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	billRepo := persistence.NewGormBillRepository(db.DB)
	salesReturnRepo := persistence.NewGormSalesReturnRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	paymentOutRepo := persistence.NewGormPaymentOutRepository(db.DB)
	purchaseRepo := persistence.NewGormPurchaseRepository(db.DB)
	adjustmentRepo := persistence.NewGormStockAdjustmentRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	scope := persistence.NewGormTransactionScope(db.DB)

	// Services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)
	billingService := billingapp.NewBillingService(scope, billRepo, log)
	salesReturnService := billingapp.NewSalesReturnService(scope, salesReturnRepo, log)
	paymentService := billingapp.NewPaymentService(scope, paymentRepo, log)
	productService := catalogapp.NewProductService(productRepo, log)
	customerService := partnerapp.NewCustomerService(customerRepo, log)
	supplierService := partnerapp.NewSupplierService(supplierRepo, log)
	inventoryService := inventoryapp.NewInventoryService(scope, purchaseRepo, adjustmentRepo, log)
	expenseService := financeapp.NewExpenseService(expenseRepo, log)
	paymentOutService := financeapp.NewPaymentOutService(paymentOutRepo, supplierRepo, log)
	reportService := reportapp.NewReportService(billRepo, productRepo, customerRepo, reportCache, log)

	// Seed the first admin account on a fresh install
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authService.EnsureAdmin(seedCtx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		cancelSeed()
		log.Fatal("Failed to seed admin account", zap.Error(err))
	}
	cancelSeed()

	engine := router.New(log, jwtService, router.Handlers{
		System:       handler.NewSystemHandler(db),
		Auth:         handler.NewAuthHandler(authService),
		Bills:        handler.NewBillHandler(billingService, reportService),
		Products:     handler.NewProductHandler(productService),
		Customers:    handler.NewCustomerHandler(customerService),
		Suppliers:    handler.NewSupplierHandler(supplierService),
		SalesReturns: handler.NewSalesReturnHandler(salesReturnService, reportService),
		Payments:     handler.NewPaymentHandler(paymentService, paymentOutService, reportService),
		Inventory:    handler.NewInventoryHandler(inventoryService),
		Expenses:     handler.NewExpenseHandler(expenseService),
		Reports:      handler.NewReportHandler(reportService),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
