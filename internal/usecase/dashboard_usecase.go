package usecase

import (
	"context"

	"storehub/internal/domain/stats"
)

// DashboardUsecase defines the interface for dashboard statistics use cases
type DashboardUsecase interface {
	// Overview computes the headline figures from the current slice values
	Overview(ctx context.Context, storeID string) (*stats.Dashboard, error)

	// SalesByCategory aggregates lifetime product revenue per category
	SalesByCategory(ctx context.Context, storeID string) ([]stats.CategoryRevenue, error)
}
