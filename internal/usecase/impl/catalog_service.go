package impl

import (
	"context"
	"math"
	"time"

	"storehub/internal/binding"
	"storehub/internal/domain/constants"
	"storehub/internal/domain/entity"
	domainerrors "storehub/internal/domain/errors"
	"storehub/internal/usecase"

	"github.com/google/uuid"
)

type catalogService struct {
	bindings *binding.Manager
	now      func() time.Time
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(bindings *binding.Manager) usecase.CatalogUsecase {
	return &catalogService{
		bindings: bindings,
		now:      time.Now,
	}
}

// ListProducts returns the current catalog of the store
func (s *catalogService) ListProducts(ctx context.Context, storeID string) ([]entity.Product, error) {
	if storeID == "" {
		return nil, domainerrors.ErrStoreIDRequired
	}

	return s.bindings.Store(storeID).Products.Snapshot(ctx)
}

// CreateProduct appends a new record to the catalog. Quantities are rounded
// to two decimals on the way in, matching how the sale cascade rounds them on
// the way out.
func (s *catalogService) CreateProduct(ctx context.Context, storeID string, input *usecase.ProductInput) (*entity.Product, error) {
	if storeID == "" {
		return nil, domainerrors.ErrStoreIDRequired
	}

	product := entity.Product{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Category:     input.Category,
		Price:        input.Price,
		Cost:         input.Cost,
		Quantity:     round2(input.Quantity),
		MinStock:     round2(input.MinStock),
		Unit:         input.Unit,
		IsIngredient: input.IsIngredient,
		Ingredients:  input.Ingredients,
		Sales:        0,
		CreatedAt:    s.now().Format(constants.DateLayout),
	}
	// Raw materials never carry a bill of materials of their own.
	if product.IsIngredient {
		product.Ingredients = nil
	}

	err := s.bindings.Store(storeID).Products.Update(ctx, func(products []entity.Product) []entity.Product {
		out := make([]entity.Product, 0, len(products)+1)
		out = append(out, products...)

		return append(out, product)
	})
	if err != nil {
		return nil, err
	}

	return &product, nil
}

// UpdateProduct overwrites the editable fields of an existing record, keeping
// its lifetime sales counter and creation date.
func (s *catalogService) UpdateProduct(ctx context.Context, storeID, productID string, input *usecase.ProductInput) (*entity.Product, error) {
	if storeID == "" {
		return nil, domainerrors.ErrStoreIDRequired
	}

	slice := s.bindings.Store(storeID).Products
	current, err := slice.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if !containsProduct(current, productID) {
		return nil, domainerrors.ErrProductNotFound
	}

	var updated entity.Product
	err = slice.Update(ctx, func(products []entity.Product) []entity.Product {
		out := make([]entity.Product, len(products))
		copy(out, products)
		for i := range out {
			if out[i].ID != productID {
				continue
			}
			out[i].Name = input.Name
			out[i].Category = input.Category
			out[i].Price = input.Price
			out[i].Cost = input.Cost
			out[i].Quantity = round2(input.Quantity)
			out[i].MinStock = round2(input.MinStock)
			out[i].Unit = input.Unit
			out[i].IsIngredient = input.IsIngredient
			out[i].Ingredients = input.Ingredients
			if out[i].IsIngredient {
				out[i].Ingredients = nil
			}
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

// DeleteProduct removes a record from the catalog
func (s *catalogService) DeleteProduct(ctx context.Context, storeID, productID string) error {
	if storeID == "" {
		return domainerrors.ErrStoreIDRequired
	}

	slice := s.bindings.Store(storeID).Products
	current, err := slice.Snapshot(ctx)
	if err != nil {
		return err
	}
	if !containsProduct(current, productID) {
		return domainerrors.ErrProductNotFound
	}

	return slice.Update(ctx, func(products []entity.Product) []entity.Product {
		out := make([]entity.Product, 0, len(products))
		for _, p := range products {
			if p.ID == productID {
				continue
			}
			out = append(out, p)
		}

		return out
	})
}

func containsProduct(products []entity.Product, id string) bool {
	for i := range products {
		if products[i].ID == id {
			return true
		}
	}

	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
