package usecase

import (
	"context"

	"storehub/internal/domain/entity"
)

// StaffInput carries the caller-editable fields of a staff record.
type StaffInput struct {
	Name   string  `json:"name"`
	Role   string  `json:"role"`
	Phone  string  `json:"phone"`
	Salary float64 `json:"salary"`
	Status string  `json:"status"`
	Color  string  `json:"color"`
}

// StaffUsecase defines the interface for staff management use cases
type StaffUsecase interface {
	ListStaff(ctx context.Context, storeID string) ([]entity.Staff, error)
	CreateStaff(ctx context.Context, storeID string, input *StaffInput) (*entity.Staff, error)
	UpdateStaff(ctx context.Context, storeID, staffID string, input *StaffInput) (*entity.Staff, error)
	DeleteStaff(ctx context.Context, storeID, staffID string) error
}
