package impl

import (
	"context"
	"time"

	"storehub/internal/binding"
	domainerrors "storehub/internal/domain/errors"
	"storehub/internal/domain/stats"
	"storehub/internal/usecase"
)

type dashboardService struct {
	bindings *binding.Manager
	now      func() time.Time
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(bindings *binding.Manager) usecase.DashboardUsecase {
	return &dashboardService{
		bindings: bindings,
		now:      time.Now,
	}
}

// Overview computes the headline figures from the current slice values
func (s *dashboardService) Overview(ctx context.Context, storeID string) (*stats.Dashboard, error) {
	if storeID == "" {
		return nil, domainerrors.ErrStoreIDRequired
	}

	b := s.bindings.Store(storeID)

	ledger, err := b.Sales.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	products, err := b.Products.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	reservations, err := b.Reservations.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := b.Customers.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	dashboard := stats.Compute(ledger, products, reservations, customers, s.now())

	return &dashboard, nil
}

// SalesByCategory aggregates lifetime product revenue per category
func (s *dashboardService) SalesByCategory(ctx context.Context, storeID string) ([]stats.CategoryRevenue, error) {
	if storeID == "" {
		return nil, domainerrors.ErrStoreIDRequired
	}

	products, err := s.bindings.Store(storeID).Products.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return stats.ByCategory(products), nil
}
