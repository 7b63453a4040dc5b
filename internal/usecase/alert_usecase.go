package usecase

import (
	"context"

	"storehub/internal/domain/entity"
)

// AlertUsecase defines the interface for derived notification use cases
type AlertUsecase interface {
	// Alerts returns the alerts derived from the store's current slice
	// values. The list is recomputed, never persisted.
	Alerts(ctx context.Context, storeID string) ([]entity.Alert, error)
}
