// Package report builds the dashboard projections: day sales totals, growth
// against the previous day, low stock and outstanding credit. Projections are
// read-only aggregates and are cached briefly since the dashboard polls.
package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sparepos/backend/internal/domain/billing"
	"github.com/sparepos/backend/internal/domain/catalog"
	"github.com/sparepos/backend/internal/domain/partner"
	"go.uber.org/zap"
)

const (
	dashboardCacheKey = "report:dashboard"
	dashboardCacheTTL = 60 * time.Second
)

// Cache is the small caching surface the report service needs. Get reports a
// miss with false and no error.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// DashboardResponse is the daily overview projection.
type DashboardResponse struct {
	TodaySales        decimal.Decimal `json:"today_sales"`
	TodayBills        int64           `json:"today_bills"`
	YesterdaySales    decimal.Decimal `json:"yesterday_sales"`
	GrowthPercent     decimal.Decimal `json:"growth_percent"`
	LowStockCount     int64           `json:"low_stock_count"`
	OutstandingCredit decimal.Decimal `json:"outstanding_credit"`
	GeneratedAt       time.Time       `json:"generated_at"`
}

// ReportService aggregates dashboard figures
type ReportService struct {
	billRepo     billing.BillRepository
	productRepo  catalog.ProductRepository
	customerRepo partner.CustomerRepository
	cache        Cache
	logger       *zap.Logger
	now          func() time.Time
}

// NewReportService creates a new ReportService. Cache may be nil, in which
// case every call recomputes.
func NewReportService(
	billRepo billing.BillRepository,
	productRepo catalog.ProductRepository,
	customerRepo partner.CustomerRepository,
	cache Cache,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		billRepo:     billRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		cache:        cache,
		logger:       logger,
		now:          time.Now,
	}
}

// Dashboard returns the daily overview. Growth is the percentage change of
// today's sales over yesterday's; with no sales yesterday it is 100 when
// today has sales and 0 otherwise.
func (s *ReportService) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	if s.cache != nil {
		var cached DashboardResponse
		hit, err := s.cache.Get(ctx, dashboardCacheKey, &cached)
		if err != nil {
			s.logger.Warn("dashboard cache read failed", zap.Error(err))
		} else if hit {
			return &cached, nil
		}
	}

	now := s.now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterdayStart := todayStart.AddDate(0, 0, -1)
	tomorrowStart := todayStart.AddDate(0, 0, 1)

	todaySales, todayBills, err := s.billRepo.SumTotalsBetween(ctx, todayStart, tomorrowStart)
	if err != nil {
		return nil, err
	}
	yesterdaySales, _, err := s.billRepo.SumTotalsBetween(ctx, yesterdayStart, todayStart)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.productRepo.CountLowStock(ctx, catalog.LowStockThreshold)
	if err != nil {
		return nil, err
	}

	outstanding, err := s.customerRepo.SumOutstanding(ctx)
	if err != nil {
		return nil, err
	}

	resp := &DashboardResponse{
		TodaySales:        todaySales,
		TodayBills:        todayBills,
		YesterdaySales:    yesterdaySales,
		GrowthPercent:     growthPercent(todaySales, yesterdaySales),
		LowStockCount:     lowStock,
		OutstandingCredit: outstanding,
		GeneratedAt:       now,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, dashboardCacheKey, resp, dashboardCacheTTL); err != nil {
			s.logger.Warn("dashboard cache write failed", zap.Error(err))
		}
	}

	return resp, nil
}

// Invalidate drops the cached dashboard so the next read recomputes. The
// ledger coordinators call this after any sale-affecting write.
func (s *ReportService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, dashboardCacheKey); err != nil {
		s.logger.Warn("dashboard cache invalidation failed", zap.Error(err))
	}
}

func growthPercent(today, yesterday decimal.Decimal) decimal.Decimal {
	if yesterday.IsZero() {
		if today.IsPositive() {
			return decimal.NewFromInt(100)
		}
		return decimal.Zero
	}
	return today.Sub(yesterday).Div(yesterday).Mul(decimal.NewFromInt(100)).Round(2)
}
