package handler

import (
	"log/slog"
	"net/http"

	"storehub/internal/delivery/http/response"
	"storehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
	AlertUC     usecase.AlertUsecase
	Logger      *slog.Logger
}

// DashboardHandler holds dependencies for dashboard and alert handlers
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
	alertUC     usecase.AlertUsecase
	logger      *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: params.DashboardUC,
		alertUC:     params.AlertUC,
		logger:      params.Logger,
	}
}

// GetOverview handles reading the dashboard headline figures
func (h *DashboardHandler) GetOverview(c echo.Context) error {
	dashboard, err := h.dashboardUC.Overview(c.Request().Context(), c.Param("storeID"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dashboard, "Dashboard retrieved successfully")
}

// GetSalesByCategory handles reading per-category lifetime revenue
func (h *DashboardHandler) GetSalesByCategory(c echo.Context) error {
	byCategory, err := h.dashboardUC.SalesByCategory(c.Request().Context(), c.Param("storeID"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, byCategory, "Category sales retrieved successfully")
}

// GetAlerts handles reading the currently derived alerts
func (h *DashboardHandler) GetAlerts(c echo.Context) error {
	alerts, err := h.alertUC.Alerts(c.Request().Context(), c.Param("storeID"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alerts, "Alerts retrieved successfully")
}
