package handler

import (
	"log/slog"
	"net/http"

	"storehub/internal/delivery/http/response"
	"storehub/internal/domain/entity"
	"storehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for product catalog handlers
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ProductRequest represents the request body for creating or updating a product
type ProductRequest struct {
	Name         string                 `json:"name" validate:"required"`
	Category     string                 `json:"category"`
	Price        float64                `json:"price" validate:"gte=0"`
	Cost         float64                `json:"cost" validate:"gte=0"`
	Quantity     float64                `json:"quantity" validate:"gte=0"`
	MinStock     float64                `json:"minStock" validate:"gte=0"`
	Unit         string                 `json:"unit"`
	IsIngredient bool                   `json:"isIngredient"`
	Ingredients  []entity.IngredientRef `json:"ingredients"`
}

func (r *ProductRequest) toInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:         r.Name,
		Category:     r.Category,
		Price:        r.Price,
		Cost:         r.Cost,
		Quantity:     r.Quantity,
		MinStock:     r.MinStock,
		Unit:         r.Unit,
		IsIngredient: r.IsIngredient,
		Ingredients:  r.Ingredients,
	}
}

// ListProducts handles listing the product catalog
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogUC.ListProducts(c.Request().Context(), c.Param("storeID"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// CreateProduct handles adding a catalog record
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), c.Param("storeID"), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// UpdateProduct handles updating a catalog record
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), c.Param("storeID"), c.Param("productID"), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// DeleteProduct handles removing a catalog record
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	if err := h.catalogUC.DeleteProduct(c.Request().Context(), c.Param("storeID"), c.Param("productID")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}
