package billing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sparepos/backend/internal/application/ledger"
	"github.com/sparepos/backend/internal/domain/billing"
	"github.com/sparepos/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// SalesReturnService coordinates sales returns
type SalesReturnService struct {
	scope      ledger.TransactionScope
	returnRepo billing.SalesReturnRepository
	logger     *zap.Logger
}

// NewSalesReturnService creates a new SalesReturnService
func NewSalesReturnService(scope ledger.TransactionScope, returnRepo billing.SalesReturnRepository, logger *zap.Logger) *SalesReturnService {
	return &SalesReturnService{
		scope:      scope,
		returnRepo: returnRepo,
		logger:     logger,
	}
}

// Create records a sales return. In one transaction it persists the return,
// restores stock for every returned line, and, when a customer is attached,
// decrements that customer's balance by the return total. The balance credit
// is unconditional on the original bill's payment mode.
func (s *SalesReturnService) Create(ctx context.Context, req CreateReturnRequest) (*SalesReturnResponse, error) {
	items := make([]billing.ReturnItemInput, len(req.Items))
	for i, in := range req.Items {
		items[i] = billing.ReturnItemInput{ProductID: in.ProductID, Qty: in.Qty, Price: in.Price}
	}

	ret, err := billing.NewSalesReturn(req.BillID, req.CustomerID, items)
	if err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos ledger.TransactionalRepositories) error {
		if err := repos.Returns().Create(ctx, ret); err != nil {
			return fmt.Errorf("create sales return: %w", err)
		}
		for _, item := range ret.Items {
			if err := repos.Products().AdjustStock(ctx, item.ProductID, item.Qty); err != nil {
				return fmt.Errorf("restore stock for product %s: %w", item.ProductID, err)
			}
		}
		if ret.RefundsCustomer() {
			if err := repos.Customers().AdjustBalance(ctx, *ret.CustomerID, ret.TotalAmount.Neg()); err != nil {
				return fmt.Errorf("credit customer balance: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("sales return failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("sales return recorded",
		zap.String("return_id", ret.ID.String()),
		zap.String("total", ret.TotalAmount.String()))

	resp := ToSalesReturnResponse(ret)
	return &resp, nil
}

// GetByID retrieves a sales return with its items
func (s *SalesReturnService) GetByID(ctx context.Context, id uuid.UUID) (*SalesReturnResponse, error) {
	ret, err := s.returnRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToSalesReturnResponse(ret)
	return &resp, nil
}

// List retrieves sales returns matching the filter
func (s *SalesReturnService) List(ctx context.Context, filter shared.Filter) ([]SalesReturnResponse, int64, error) {
	returns, total, err := s.returnRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return ToSalesReturnResponses(returns), total, nil
}
