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

// SaleHandlerParams holds dependencies for SaleHandler, injected by Fx.
type SaleHandlerParams struct {
	fx.In

	SaleUC usecase.SaleUsecase
	Logger *slog.Logger
}

// SaleHandler holds dependencies for sale-related handlers
type SaleHandler struct {
	saleUC usecase.SaleUsecase
	logger *slog.Logger
}

// NewSaleHandler is the constructor for SaleHandler
func NewSaleHandler(params SaleHandlerParams) *SaleHandler {
	return &SaleHandler{
		saleUC: params.SaleUC,
		logger: params.Logger,
	}
}

// SubmitSaleRequest represents the request body for submitting a sale
type SubmitSaleRequest struct {
	Cart          []entity.CartItem `json:"cart" validate:"required,min=1"`
	PaymentMethod string            `json:"paymentMethod" validate:"required,oneof=card cash transfer"`
}

// SubmitSale handles cart submission from the register
func (h *SaleHandler) SubmitSale(c echo.Context) error {
	var req SubmitSaleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sale input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	receipt, err := h.saleUC.SubmitSale(c.Request().Context(), c.Param("storeID"), &usecase.SaleInput{
		Cart:          req.Cart,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, receipt, "Sale recorded successfully")
}
