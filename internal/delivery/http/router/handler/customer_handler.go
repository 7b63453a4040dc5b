package handler

import (
	"log/slog"
	"net/http"

	"storehub/internal/delivery/http/response"
	"storehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
	Logger     *slog.Logger
}

// CustomerHandler holds dependencies for customer management handlers
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
	logger     *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC: params.CustomerUC,
		logger:     params.Logger,
	}
}

// CustomerRequest represents the request body for creating or updating a customer
type CustomerRequest struct {
	Name       string  `json:"name" validate:"required"`
	Phone      string  `json:"phone"`
	Tier       string  `json:"tier" validate:"omitempty,oneof=regular silver gold VIP"`
	Visits     int     `json:"visits" validate:"gte=0"`
	TotalSpent float64 `json:"totalSpent" validate:"gte=0"`
	LastVisit  string  `json:"lastVisit" validate:"omitempty,datetime=2006-01-02"`
}

func (r *CustomerRequest) toInput() *usecase.CustomerInput {
	return &usecase.CustomerInput{
		Name:       r.Name,
		Phone:      r.Phone,
		Tier:       r.Tier,
		Visits:     r.Visits,
		TotalSpent: r.TotalSpent,
		LastVisit:  r.LastVisit,
	}
}

// ListCustomers handles listing customers
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	customers, err := h.customerUC.ListCustomers(c.Request().Context(), c.Param("storeID"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customers, "Customers retrieved successfully")
}

// CreateCustomer handles adding a customer
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	customer, err := h.customerUC.CreateCustomer(c.Request().Context(), c.Param("storeID"), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, customer, "Customer created successfully")
}

// UpdateCustomer handles updating a customer
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	customer, err := h.customerUC.UpdateCustomer(c.Request().Context(), c.Param("storeID"), c.Param("customerID"), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customer, "Customer updated successfully")
}

// DeleteCustomer handles removing a customer
func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	if err := h.customerUC.DeleteCustomer(c.Request().Context(), c.Param("storeID"), c.Param("customerID")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Customer deleted successfully")
}
