package impl

import (
	"context"
	"time"

	"storehub/internal/binding"
	"storehub/internal/domain/constants"
	"storehub/internal/domain/entity"
	domainerrors "storehub/internal/domain/errors"
	"storehub/internal/usecase"

	"github.com/google/uuid"
)

const staffStatusActive = "active"

type staffService struct {
	bindings *binding.Manager
	now      func() time.Time
}

// NewStaffService creates a new staff service instance
func NewStaffService(bindings *binding.Manager) usecase.StaffUsecase {
	return &staffService{
		bindings: bindings,
		now:      time.Now,
	}
}

func (s *staffService) ListStaff(ctx context.Context, storeID string) ([]entity.Staff, error) {
	if storeID == "" {
		return nil, domainerrors.ErrStoreIDRequired
	}

	return s.bindings.Store(storeID).Staff.Snapshot(ctx)
}

func (s *staffService) CreateStaff(ctx context.Context, storeID string, input *usecase.StaffInput) (*entity.Staff, error) {
	if storeID == "" {
		return nil, domainerrors.ErrStoreIDRequired
	}

	member := entity.Staff{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Role:      input.Role,
		Phone:     input.Phone,
		Salary:    input.Salary,
		Status:    input.Status,
		Color:     input.Color,
		CreatedAt: s.now().Format(constants.DateLayout),
	}
	if member.Status == "" {
		member.Status = staffStatusActive
	}

	err := s.bindings.Store(storeID).Staff.Update(ctx, func(staff []entity.Staff) []entity.Staff {
		out := make([]entity.Staff, 0, len(staff)+1)
		out = append(out, staff...)

		return append(out, member)
	})
	if err != nil {
		return nil, err
	}

	return &member, nil
}

func (s *staffService) UpdateStaff(ctx context.Context, storeID, staffID string, input *usecase.StaffInput) (*entity.Staff, error) {
	if storeID == "" {
		return nil, domainerrors.ErrStoreIDRequired
	}

	slice := s.bindings.Store(storeID).Staff
	current, err := slice.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if !containsStaff(current, staffID) {
		return nil, domainerrors.ErrEntityNotFound
	}

	var updated entity.Staff
	err = slice.Update(ctx, func(staff []entity.Staff) []entity.Staff {
		out := make([]entity.Staff, len(staff))
		copy(out, staff)
		for i := range out {
			if out[i].ID != staffID {
				continue
			}
			out[i].Name = input.Name
			out[i].Role = input.Role
			out[i].Phone = input.Phone
			out[i].Salary = input.Salary
			out[i].Status = input.Status
			out[i].Color = input.Color
			updated = out[i]

			break
		}

		return out
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *staffService) DeleteStaff(ctx context.Context, storeID, staffID string) error {
	if storeID == "" {
		return domainerrors.ErrStoreIDRequired
	}

	slice := s.bindings.Store(storeID).Staff
	current, err := slice.Snapshot(ctx)
	if err != nil {
		return err
	}
	if !containsStaff(current, staffID) {
		return domainerrors.ErrEntityNotFound
	}

	return slice.Update(ctx, func(staff []entity.Staff) []entity.Staff {
		out := make([]entity.Staff, 0, len(staff))
		for _, member := range staff {
			if member.ID == staffID {
				continue
			}
			out = append(out, member)
		}

		return out
	})
}

func containsStaff(staff []entity.Staff, id string) bool {
	for i := range staff {
		if staff[i].ID == id {
			return true
		}
	}

	return false
}
