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

// ScheduleHandlerParams holds dependencies for ScheduleHandler, injected by Fx.
type ScheduleHandlerParams struct {
	fx.In

	ScheduleUC usecase.ScheduleUsecase
	Logger     *slog.Logger
}

// ScheduleHandler holds dependencies for shift schedule handlers
type ScheduleHandler struct {
	scheduleUC usecase.ScheduleUsecase
	logger     *slog.Logger
}

// NewScheduleHandler is the constructor for ScheduleHandler
func NewScheduleHandler(params ScheduleHandlerParams) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUC: params.ScheduleUC,
		logger:     params.Logger,
	}
}

// AssignShiftRequest represents the request body for assigning a shift
type AssignShiftRequest struct {
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	StaffID string `json:"staffId" validate:"required"`
}

// GetSchedule handles reading the whole schedule map
func (h *ScheduleHandler) GetSchedule(c echo.Context) error {
	schedule, err := h.scheduleUC.GetSchedule(c.Request().Context(), c.Param("storeID"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, schedule, "Schedule retrieved successfully")
}

// PutSchedule handles replacing the whole schedule map
func (h *ScheduleHandler) PutSchedule(c echo.Context) error {
	var schedule entity.Schedule
	if err := c.Bind(&schedule); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid schedule input")
	}

	if err := h.scheduleUC.PutSchedule(c.Request().Context(), c.Param("storeID"), schedule); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, schedule, "Schedule updated successfully")
}

// AssignShift handles adding a staff id to one day
func (h *ScheduleHandler) AssignShift(c echo.Context) error {
	var req AssignShiftRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shift input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.scheduleUC.AssignShift(c.Request().Context(), c.Param("storeID"), req.Date, req.StaffID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Shift assigned successfully")
}

// UnassignShift handles removing a staff id from one day
func (h *ScheduleHandler) UnassignShift(c echo.Context) error {
	var req AssignShiftRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shift input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.scheduleUC.UnassignShift(c.Request().Context(), c.Param("storeID"), req.Date, req.StaffID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Shift removed successfully")
}
