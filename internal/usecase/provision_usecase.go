package usecase

import (
	"context"

	"storehub/internal/domain/entity"
)

// ProvisionUsecase defines the interface for first-run store provisioning
type ProvisionUsecase interface {
	// ProvisionStore creates the owner document seeded from the business type
	// template, recording the store profile when one is supplied.
	// Provisioning an existing store is rejected.
	ProvisionStore(ctx context.Context, storeID string, businessType entity.BusinessType, profile *entity.StoreProfile) error

	// GetProfile reads the profile recorded at provisioning time.
	GetProfile(ctx context.Context, storeID string) (*entity.StoreProfile, error)
}
