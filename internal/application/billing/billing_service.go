// Package billing hosts the transaction coordinator for bills, sales returns
// and customer payments. Every operation that moves money or goods runs its
// side effects (bill rows, stock deltas, balance deltas) inside one
// transaction scope so the three ledgers stay consistent.
package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/sparepos/backend/internal/application/ledger"
	"github.com/sparepos/backend/internal/domain/billing"
	"github.com/sparepos/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// BillingService coordinates bill lifecycle operations
type BillingService struct {
	scope    ledger.TransactionScope
	billRepo billing.BillRepository
	logger   *zap.Logger
}

// NewBillingService creates a new BillingService
func NewBillingService(scope ledger.TransactionScope, billRepo billing.BillRepository, logger *zap.Logger) *BillingService {
	return &BillingService{
		scope:    scope,
		billRepo: billRepo,
		logger:   logger,
	}
}

// Create cuts a new bill. In one transaction it persists the bill with its
// items, decrements stock for every line, and, for CREDIT bills with a
// customer attached, increments that customer's balance by the bill total.
// A supplied customer must exist regardless of payment mode.
func (s *BillingService) Create(ctx context.Context, req CreateBillRequest) (*BillResponse, error) {
	items := make([]billing.BillItemInput, len(req.Items))
	for i, in := range req.Items {
		items[i] = billing.BillItemInput{ProductID: in.ProductID, Qty: in.Qty, Price: in.Price}
	}

	bill, err := billing.NewBill(
		req.CustomerID,
		req.CustomerName,
		req.CustomerMobile,
		items,
		req.Discount,
		req.TransportCharge,
		billing.PaymentMode(req.PaymentMode),
		timeOrZero(req.Date),
	)
	if err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos ledger.TransactionalRepositories) error {
		if bill.CustomerID != nil {
			if _, err := repos.Customers().FindByID(ctx, *bill.CustomerID); err != nil {
				return err
			}
		}
		if err := repos.Bills().Create(ctx, bill); err != nil {
			return fmt.Errorf("create bill: %w", err)
		}
		for _, item := range bill.Items {
			if err := repos.Products().AdjustStock(ctx, item.ProductID, -item.Qty); err != nil {
				return fmt.Errorf("decrement stock for product %s: %w", item.ProductID, err)
			}
		}
		if bill.AffectsCustomerBalance() {
			if err := repos.Customers().AdjustBalance(ctx, *bill.CustomerID, bill.TotalAmount); err != nil {
				return fmt.Errorf("increment customer balance: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("bill creation failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("bill created",
		zap.Int64("bill_id", bill.ID),
		zap.String("total", bill.TotalAmount.String()),
		zap.String("payment_mode", bill.PaymentMode.String()))

	resp := ToBillResponse(bill)
	return &resp, nil
}

// Update patches a bill's header fields. Line items and the total are never
// recomputed here.
//
// Repointing the bill at a different customer reverses the old balance effect
// and applies the new one: if the stored mode was CREDIT the previous
// customer's balance drops by the total, and if the final mode is CREDIT the
// new customer's balance rises by it. A mode change without a customer change
// moves the attached customer's balance once, in whichever direction the
// CREDIT boundary was crossed.
func (s *BillingService) Update(ctx context.Context, id int64, req UpdateBillRequest) (*BillResponse, error) {
	var updated *billing.Bill

	err := s.scope.Execute(ctx, func(repos ledger.TransactionalRepositories) error {
		bill, err := repos.Bills().FindByID(ctx, id)
		if err != nil {
			return err
		}

		oldMode := bill.PaymentMode
		oldCustomerID := bill.CustomerID

		finalMode := oldMode
		if req.PaymentMode != nil {
			finalMode = billing.PaymentMode(*req.PaymentMode)
			if !finalMode.IsValid() {
				return shared.NewDomainError("VALIDATION_ERROR", "Invalid payment mode")
			}
		}

		customerChanged := req.CustomerID != nil &&
			(oldCustomerID == nil || *req.CustomerID != *oldCustomerID)

		switch {
		case customerChanged:
			if oldMode == billing.PaymentModeCredit && oldCustomerID != nil {
				if err := repos.Customers().AdjustBalance(ctx, *oldCustomerID, bill.TotalAmount.Neg()); err != nil {
					return fmt.Errorf("reverse balance on previous customer: %w", err)
				}
			}
			customer, err := repos.Customers().FindByID(ctx, *req.CustomerID)
			if err != nil {
				return err
			}
			if finalMode == billing.PaymentModeCredit {
				if err := repos.Customers().AdjustBalance(ctx, customer.ID, bill.TotalAmount); err != nil {
					return fmt.Errorf("apply balance on new customer: %w", err)
				}
			}
			bill.SetCustomer(customer.ID, customer.Name, customer.Mobile)

		case finalMode != oldMode && bill.CustomerID != nil:
			if oldMode == billing.PaymentModeCredit {
				if err := repos.Customers().AdjustBalance(ctx, *bill.CustomerID, bill.TotalAmount.Neg()); err != nil {
					return fmt.Errorf("reverse credit balance: %w", err)
				}
			} else if finalMode == billing.PaymentModeCredit {
				if err := repos.Customers().AdjustBalance(ctx, *bill.CustomerID, bill.TotalAmount); err != nil {
					return fmt.Errorf("apply credit balance: %w", err)
				}
			}
		}

		if req.CustomerID != nil && !customerChanged {
			// Re-supplying the attached customer still refreshes the
			// denormalized name/mobile from the current customer record.
			customer, err := repos.Customers().FindByID(ctx, *req.CustomerID)
			if err != nil {
				return err
			}
			bill.SetCustomer(customer.ID, customer.Name, customer.Mobile)
		}

		if err := bill.SetPaymentMode(finalMode); err != nil {
			return err
		}
		if req.Date != nil {
			bill.SetDate(*req.Date)
		}

		if err := repos.Bills().UpdateHeader(ctx, bill); err != nil {
			return fmt.Errorf("update bill header: %w", err)
		}
		updated = bill
		return nil
	})
	if err != nil {
		s.logger.Error("bill update failed", zap.Int64("bill_id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("bill updated", zap.Int64("bill_id", id))

	resp := ToBillResponse(updated)
	return &resp, nil
}

// Delete removes a bill and unwinds its side effects: stock for every line is
// restored and, if the bill had affected a customer balance, the increment is
// reversed.
func (s *BillingService) Delete(ctx context.Context, id int64) error {
	err := s.scope.Execute(ctx, func(repos ledger.TransactionalRepositories) error {
		bill, err := repos.Bills().FindByID(ctx, id)
		if err != nil {
			return err
		}
		for _, item := range bill.Items {
			if err := repos.Products().AdjustStock(ctx, item.ProductID, item.Qty); err != nil {
				return fmt.Errorf("restore stock for product %s: %w", item.ProductID, err)
			}
		}
		if bill.AffectsCustomerBalance() {
			if err := repos.Customers().AdjustBalance(ctx, *bill.CustomerID, bill.TotalAmount.Neg()); err != nil {
				return fmt.Errorf("reverse customer balance: %w", err)
			}
		}
		if err := repos.Bills().DeleteWithItems(ctx, bill.ID); err != nil {
			return fmt.Errorf("delete bill: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("bill deletion failed", zap.Int64("bill_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("bill deleted", zap.Int64("bill_id", id))
	return nil
}

// GetByID retrieves a bill with its items
func (s *BillingService) GetByID(ctx context.Context, id int64) (*BillResponse, error) {
	bill, err := s.billRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToBillResponse(bill)
	return &resp, nil
}

// List retrieves bills matching the filter along with the total count
func (s *BillingService) List(ctx context.Context, filter shared.Filter) ([]BillResponse, int64, error) {
	bills, total, err := s.billRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return ToBillResponses(bills), total, nil
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
