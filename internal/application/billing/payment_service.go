package billing

import (
	"context"
	"fmt"

	"github.com/sparepos/backend/internal/application/ledger"
	"github.com/sparepos/backend/internal/domain/billing"
	"github.com/sparepos/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// PaymentService coordinates customer payments in
type PaymentService struct {
	scope       ledger.TransactionScope
	paymentRepo billing.PaymentRepository
	logger      *zap.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(scope ledger.TransactionScope, paymentRepo billing.PaymentRepository, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		scope:       scope,
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// Record persists a payment in and decrements the customer's balance by the
// amount in the same transaction. Overpayment is allowed; the balance goes
// negative and reads as an advance held for the customer.
func (s *PaymentService) Record(ctx context.Context, req RecordPaymentRequest) (*PaymentResponse, error) {
	payment, err := billing.NewPayment(req.CustomerID, req.Amount, billing.PaymentMode(req.Mode), req.Notes)
	if err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos ledger.TransactionalRepositories) error {
		if _, err := repos.Customers().FindByID(ctx, payment.CustomerID); err != nil {
			return err
		}
		if err := repos.Payments().Create(ctx, payment); err != nil {
			return fmt.Errorf("create payment: %w", err)
		}
		if err := repos.Customers().AdjustBalance(ctx, payment.CustomerID, payment.Amount.Neg()); err != nil {
			return fmt.Errorf("decrement customer balance: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("payment recording failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("customer_id", payment.CustomerID.String()),
		zap.String("amount", payment.Amount.String()))

	resp := ToPaymentResponse(payment)
	return &resp, nil
}

// List retrieves payments matching the filter
func (s *PaymentService) List(ctx context.Context, filter shared.Filter) ([]PaymentResponse, int64, error) {
	payments, total, err := s.paymentRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return ToPaymentResponses(payments), total, nil
}
