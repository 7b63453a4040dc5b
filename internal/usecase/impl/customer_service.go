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

type customerService struct {
	bindings *binding.Manager
	now      func() time.Time
}

// NewCustomerService creates a new customer service instance
func NewCustomerService(bindings *binding.Manager) usecase.CustomerUsecase {
	return &customerService{
		bindings: bindings,
		now:      time.Now,
	}
}

func (s *customerService) ListCustomers(ctx context.Context, storeID string) ([]entity.Customer, error) {
	if storeID == "" {
		return nil, domainerrors.ErrStoreIDRequired
	}

	return s.bindings.Store(storeID).Customers.Snapshot(ctx)
}

func (s *customerService) CreateCustomer(ctx context.Context, storeID string, input *usecase.CustomerInput) (*entity.Customer, error) {
	if storeID == "" {
		return nil, domainerrors.ErrStoreIDRequired
	}

	customer := entity.Customer{
		ID:         uuid.NewString(),
		Name:       input.Name,
		Phone:      input.Phone,
		Tier:       input.Tier,
		Visits:     input.Visits,
		TotalSpent: input.TotalSpent,
		LastVisit:  input.LastVisit,
		CreatedAt:  s.now().Format(constants.DateLayout),
	}
	if customer.Tier == "" {
		customer.Tier = entity.TierRegular
	}

	err := s.bindings.Store(storeID).Customers.Update(ctx, func(customers []entity.Customer) []entity.Customer {
		out := make([]entity.Customer, 0, len(customers)+1)
		out = append(out, customers...)

		return append(out, customer)
	})
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, storeID, customerID string, input *usecase.CustomerInput) (*entity.Customer, error) {
	if storeID == "" {
		return nil, domainerrors.ErrStoreIDRequired
	}

	slice := s.bindings.Store(storeID).Customers
	current, err := slice.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if !containsCustomer(current, customerID) {
		return nil, domainerrors.ErrEntityNotFound
	}

	var updated entity.Customer
	err = slice.Update(ctx, func(customers []entity.Customer) []entity.Customer {
		out := make([]entity.Customer, len(customers))
		copy(out, customers)
		for i := range out {
			if out[i].ID != customerID {
				continue
			}
			out[i].Name = input.Name
			out[i].Phone = input.Phone
			out[i].Tier = input.Tier
			out[i].Visits = input.Visits
			out[i].TotalSpent = input.TotalSpent
			out[i].LastVisit = input.LastVisit
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

func (s *customerService) DeleteCustomer(ctx context.Context, storeID, customerID string) error {
	if storeID == "" {
		return domainerrors.ErrStoreIDRequired
	}

	slice := s.bindings.Store(storeID).Customers
	current, err := slice.Snapshot(ctx)
	if err != nil {
		return err
	}
	if !containsCustomer(current, customerID) {
		return domainerrors.ErrEntityNotFound
	}

	return slice.Update(ctx, func(customers []entity.Customer) []entity.Customer {
		out := make([]entity.Customer, 0, len(customers))
		for _, customer := range customers {
			if customer.ID == customerID {
				continue
			}
			out = append(out, customer)
		}

		return out
	})
}

func containsCustomer(customers []entity.Customer, id string) bool {
	for i := range customers {
		if customers[i].ID == id {
			return true
		}
	}

	return false
}
