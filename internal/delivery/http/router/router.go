// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storehub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SaleHandler        *handler.SaleHandler
	ProvisionHandler   *handler.ProvisionHandler
	CatalogHandler     *handler.CatalogHandler
	StaffHandler       *handler.StaffHandler
	ScheduleHandler    *handler.ScheduleHandler
	CustomerHandler    *handler.CustomerHandler
	ReservationHandler *handler.ReservationHandler
	DashboardHandler   *handler.DashboardHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	store := e.Group("/api/stores/:storeID")
	{
		store.POST("/provision", r.params.ProvisionHandler.ProvisionStore)
		store.GET("/profile", r.params.ProvisionHandler.GetProfile)
		store.POST("/sales", r.params.SaleHandler.SubmitSale)

		store.GET("/dashboard", r.params.DashboardHandler.GetOverview)
		store.GET("/dashboard/categories", r.params.DashboardHandler.GetSalesByCategory)
		store.GET("/alerts", r.params.DashboardHandler.GetAlerts)

		store.GET("/products", r.params.CatalogHandler.ListProducts)
		store.POST("/products", r.params.CatalogHandler.CreateProduct)
		store.PUT("/products/:productID", r.params.CatalogHandler.UpdateProduct)
		store.DELETE("/products/:productID", r.params.CatalogHandler.DeleteProduct)

		store.GET("/staff", r.params.StaffHandler.ListStaff)
		store.POST("/staff", r.params.StaffHandler.CreateStaff)
		store.PUT("/staff/:staffID", r.params.StaffHandler.UpdateStaff)
		store.DELETE("/staff/:staffID", r.params.StaffHandler.DeleteStaff)

		store.GET("/schedules", r.params.ScheduleHandler.GetSchedule)
		store.PUT("/schedules", r.params.ScheduleHandler.PutSchedule)
		store.POST("/schedules/shifts", r.params.ScheduleHandler.AssignShift)
		store.DELETE("/schedules/shifts", r.params.ScheduleHandler.UnassignShift)

		store.GET("/customers", r.params.CustomerHandler.ListCustomers)
		store.POST("/customers", r.params.CustomerHandler.CreateCustomer)
		store.PUT("/customers/:customerID", r.params.CustomerHandler.UpdateCustomer)
		store.DELETE("/customers/:customerID", r.params.CustomerHandler.DeleteCustomer)

		store.GET("/reservations", r.params.ReservationHandler.ListReservations)
		store.POST("/reservations", r.params.ReservationHandler.CreateReservation)
		store.PUT("/reservations/:reservationID", r.params.ReservationHandler.UpdateReservation)
		store.PATCH("/reservations/:reservationID/status", r.params.ReservationHandler.UpdateReservationStatus)
		store.GET("/reservations/:reservationID/qr", r.params.ReservationHandler.GetReservationQR)
		store.DELETE("/reservations/:reservationID", r.params.ReservationHandler.DeleteReservation)
	}
}
