package usecase

import (
	"context"

	"storehub/internal/domain/entity"
)

// CustomerInput carries the caller-editable fields of a customer record.
type CustomerInput struct {
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Tier       string  `json:"tier"`
	Visits     int     `json:"visits"`
	TotalSpent float64 `json:"totalSpent"`
	LastVisit  string  `json:"lastVisit"`
}

// CustomerUsecase defines the interface for customer management use cases
type CustomerUsecase interface {
	ListCustomers(ctx context.Context, storeID string) ([]entity.Customer, error)
	CreateCustomer(ctx context.Context, storeID string, input *CustomerInput) (*entity.Customer, error)
	UpdateCustomer(ctx context.Context, storeID, customerID string, input *CustomerInput) (*entity.Customer, error)
	DeleteCustomer(ctx context.Context, storeID, customerID string) error
}
