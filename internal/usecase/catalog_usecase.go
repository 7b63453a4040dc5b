package usecase

import (
	"context"

	"storehub/internal/domain/entity"
)

// ProductInput carries the caller-editable fields of a catalog record.
type ProductInput struct {
	Name         string                 `json:"name"`
	Category     string                 `json:"category"`
	Price        float64                `json:"price"`
	Cost         float64                `json:"cost"`
	Quantity     float64                `json:"quantity"`
	MinStock     float64                `json:"minStock"`
	Unit         string                 `json:"unit"`
	IsIngredient bool                   `json:"isIngredient"`
	Ingredients  []entity.IngredientRef `json:"ingredients"`
}

// CatalogUsecase defines the interface for product catalog use cases
type CatalogUsecase interface {
	// ListProducts returns the current catalog of the store
	ListProducts(ctx context.Context, storeID string) ([]entity.Product, error)

	// CreateProduct appends a new record to the catalog
	CreateProduct(ctx context.Context, storeID string, input *ProductInput) (*entity.Product, error)

	// UpdateProduct overwrites the editable fields of an existing record
	UpdateProduct(ctx context.Context, storeID, productID string, input *ProductInput) (*entity.Product, error)

	// DeleteProduct removes a record from the catalog
	DeleteProduct(ctx context.Context, storeID, productID string) error
}
