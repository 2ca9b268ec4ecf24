package finance

import (
	"context"
	"time"

	"github.com/sparepos/backend/internal/domain/billing"
	"github.com/sparepos/backend/internal/domain/partner"
	"github.com/sparepos/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// PaymentOutService records payments made to suppliers. Suppliers carry no
// running ledger, so this is plain record keeping with a supplier existence
// check; no transaction scope is needed.
type PaymentOutService struct {
	paymentOutRepo billing.PaymentOutRepository
	supplierRepo   partner.SupplierRepository
	logger         *zap.Logger
}

// NewPaymentOutService creates a new PaymentOutService
func NewPaymentOutService(paymentOutRepo billing.PaymentOutRepository, supplierRepo partner.SupplierRepository, logger *zap.Logger) *PaymentOutService {
	return &PaymentOutService{
		paymentOutRepo: paymentOutRepo,
		supplierRepo:   supplierRepo,
		logger:         logger,
	}
}

// Record persists a supplier payment
func (s *PaymentOutService) Record(ctx context.Context, req RecordPaymentOutRequest) (*PaymentOutResponse, error) {
	var date time.Time
	if req.Date != nil {
		date = *req.Date
	}
	payment, err := billing.NewPaymentOut(req.SupplierID, req.Amount, billing.PaymentMode(req.Mode), req.Notes, date)
	if err != nil {
		return nil, err
	}

	if _, err := s.supplierRepo.FindByID(ctx, payment.SupplierID); err != nil {
		return nil, err
	}

	if err := s.paymentOutRepo.Create(ctx, payment); err != nil {
		s.logger.Error("payment out recording failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("payment out recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("supplier_id", payment.SupplierID.String()),
		zap.String("amount", payment.Amount.String()))

	resp := ToPaymentOutResponse(payment)
	return &resp, nil
}

// List retrieves supplier payments matching the filter
func (s *PaymentOutService) List(ctx context.Context, filter shared.Filter) ([]PaymentOutResponse, int64, error) {
	payments, total, err := s.paymentOutRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return ToPaymentOutResponses(payments), total, nil
}
