package handler

import (
	"log/slog"
	"net/http"

	"storehub/internal/delivery/http/response"
	"storehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StaffHandlerParams holds dependencies for StaffHandler, injected by Fx.
type StaffHandlerParams struct {
	fx.In

	StaffUC usecase.StaffUsecase
	Logger  *slog.Logger
}

// StaffHandler holds dependencies for staff management handlers
type StaffHandler struct {
	staffUC usecase.StaffUsecase
	logger  *slog.Logger
}

// NewStaffHandler is the constructor for StaffHandler
func NewStaffHandler(params StaffHandlerParams) *StaffHandler {
	return &StaffHandler{
		staffUC: params.StaffUC,
		logger:  params.Logger,
	}
}

// StaffRequest represents the request body for creating or updating staff
type StaffRequest struct {
	Name   string  `json:"name" validate:"required"`
	Role   string  `json:"role"`
	Phone  string  `json:"phone"`
	Salary float64 `json:"salary" validate:"gte=0"`
	Status string  `json:"status" validate:"omitempty,oneof=active inactive"`
	Color  string  `json:"color"`
}

func (r *StaffRequest) toInput() *usecase.StaffInput {
	return &usecase.StaffInput{
		Name:   r.Name,
		Role:   r.Role,
		Phone:  r.Phone,
		Salary: r.Salary,
		Status: r.Status,
		Color:  r.Color,
	}
}

// ListStaff handles listing staff members
func (h *StaffHandler) ListStaff(c echo.Context) error {
	staff, err := h.staffUC.ListStaff(c.Request().Context(), c.Param("storeID"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, staff, "Staff retrieved successfully")
}

// CreateStaff handles adding a staff member
func (h *StaffHandler) CreateStaff(c echo.Context) error {
	var req StaffRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid staff input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	member, err := h.staffUC.CreateStaff(c.Request().Context(), c.Param("storeID"), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, member, "Staff member created successfully")
}

// UpdateStaff handles updating a staff member
func (h *StaffHandler) UpdateStaff(c echo.Context) error {
	var req StaffRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid staff input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	member, err := h.staffUC.UpdateStaff(c.Request().Context(), c.Param("storeID"), c.Param("staffID"), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, member, "Staff member updated successfully")
}

// DeleteStaff handles removing a staff member
func (h *StaffHandler) DeleteStaff(c echo.Context) error {
	if err := h.staffUC.DeleteStaff(c.Request().Context(), c.Param("storeID"), c.Param("staffID")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Staff member deleted successfully")
}
