// Package inventory hosts the purchase and stock adjustment coordinators.
// Like billing, every stock-moving operation runs inside the shared ledger
// transaction scope.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/sparepos/backend/internal/application/ledger"
	"github.com/sparepos/backend/internal/domain/inventory"
	"github.com/sparepos/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// InventoryService coordinates purchases and manual stock adjustments
type InventoryService struct {
	scope          ledger.TransactionScope
	purchaseRepo   inventory.PurchaseRepository
	adjustmentRepo inventory.StockAdjustmentRepository
	logger         *zap.Logger
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(
	scope ledger.TransactionScope,
	purchaseRepo inventory.PurchaseRepository,
	adjustmentRepo inventory.StockAdjustmentRepository,
	logger *zap.Logger,
) *InventoryService {
	return &InventoryService{
		scope:          scope,
		purchaseRepo:   purchaseRepo,
		adjustmentRepo: adjustmentRepo,
		logger:         logger,
	}
}

// RecordPurchase persists a purchase and, per line, increments product stock
// and overwrites the stored purchase price with the latest cost, all in one
// transaction. The supplier must exist; suppliers carry no ledger so the
// purchase has no balance side effect.
func (s *InventoryService) RecordPurchase(ctx context.Context, req RecordPurchaseRequest) (*PurchaseResponse, error) {
	items := make([]inventory.PurchaseItemInput, len(req.Items))
	for i, in := range req.Items {
		items[i] = inventory.PurchaseItemInput{ProductID: in.ProductID, Qty: in.Qty, Price: in.Price}
	}

	var date time.Time
	if req.Date != nil {
		date = *req.Date
	}
	purchase, err := inventory.NewPurchase(req.SupplierID, items, date)
	if err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos ledger.TransactionalRepositories) error {
		if err := repos.Purchases().Create(ctx, purchase); err != nil {
			return fmt.Errorf("create purchase: %w", err)
		}
		for _, item := range purchase.Items {
			if err := repos.Products().AdjustStock(ctx, item.ProductID, item.Qty); err != nil {
				return fmt.Errorf("increment stock for product %s: %w", item.ProductID, err)
			}
			if err := repos.Products().SetPurchasePrice(ctx, item.ProductID, item.Price); err != nil {
				return fmt.Errorf("update purchase price for product %s: %w", item.ProductID, err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("purchase recording failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("purchase recorded",
		zap.String("purchase_id", purchase.ID.String()),
		zap.String("supplier_id", purchase.SupplierID.String()),
		zap.String("total", purchase.TotalAmount.String()))

	resp := ToPurchaseResponse(purchase)
	return &resp, nil
}

// AdjustStock records a manual correction and applies its signed delta to the
// product's stock in the same transaction. REMOVE may push stock negative;
// the catalog reports it rather than rejecting it.
func (s *InventoryService) AdjustStock(ctx context.Context, req AdjustStockRequest) (*StockAdjustmentResponse, error) {
	adjustment, err := inventory.NewStockAdjustment(req.ProductID, inventory.AdjustmentType(req.Type), req.Qty, req.Reason)
	if err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos ledger.TransactionalRepositories) error {
		if _, err := repos.Products().FindByID(ctx, adjustment.ProductID); err != nil {
			return err
		}
		if err := repos.Adjustments().Create(ctx, adjustment); err != nil {
			return fmt.Errorf("create stock adjustment: %w", err)
		}
		if err := repos.Products().AdjustStock(ctx, adjustment.ProductID, adjustment.StockDelta()); err != nil {
			return fmt.Errorf("apply stock delta: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("stock adjustment failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("stock adjusted",
		zap.String("product_id", adjustment.ProductID.String()),
		zap.Int("delta", adjustment.StockDelta()),
		zap.String("reason", adjustment.Reason))

	resp := ToStockAdjustmentResponse(adjustment)
	return &resp, nil
}

// ListPurchases retrieves purchases matching the filter
func (s *InventoryService) ListPurchases(ctx context.Context, filter shared.Filter) ([]PurchaseResponse, int64, error) {
	purchases, total, err := s.purchaseRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return ToPurchaseResponses(purchases), total, nil
}

// ListAdjustments retrieves manual stock adjustments matching the filter
func (s *InventoryService) ListAdjustments(ctx context.Context, filter shared.Filter) ([]StockAdjustmentResponse, int64, error) {
	adjustments, total, err := s.adjustmentRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return ToStockAdjustmentResponses(adjustments), total, nil
}
