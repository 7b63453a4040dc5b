package handler

import (
	"log/slog"
	"net/http"

	"storehub/internal/delivery/http/response"
	domainerrors "storehub/internal/domain/errors"
	"storehub/internal/domain/service"
	"storehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReservationHandlerParams holds dependencies for ReservationHandler, injected by Fx.
type ReservationHandlerParams struct {
	fx.In

	ReservationUC usecase.ReservationUsecase
	QRCodeSvc     service.QRCodeService
	Logger        *slog.Logger
}

// ReservationHandler holds dependencies for reservation management handlers
type ReservationHandler struct {
	reservationUC usecase.ReservationUsecase
	qrcodeSvc     service.QRCodeService
	logger        *slog.Logger
}

// NewReservationHandler is the constructor for ReservationHandler
func NewReservationHandler(params ReservationHandlerParams) *ReservationHandler {
	return &ReservationHandler{
		reservationUC: params.ReservationUC,
		qrcodeSvc:     params.QRCodeSvc,
		logger:        params.Logger,
	}
}

// ReservationRequest represents the request body for creating or updating a reservation
type ReservationRequest struct {
	Name   string `json:"name" validate:"required"`
	Phone  string `json:"phone"`
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Time   string `json:"time" validate:"required,datetime=15:04"`
	People int    `json:"people" validate:"gte=1"`
	Status string `json:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
	Note   string `json:"note"`
}

// UpdateReservationStatusRequest represents the request body for a status change
type UpdateReservationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}

func (r *ReservationRequest) toInput() *usecase.ReservationInput {
	return &usecase.ReservationInput{
		Name:   r.Name,
		Phone:  r.Phone,
		Date:   r.Date,
		Time:   r.Time,
		People: r.People,
		Status: r.Status,
		Note:   r.Note,
	}
}

// ListReservations handles listing reservations
func (h *ReservationHandler) ListReservations(c echo.Context) error {
	reservations, err := h.reservationUC.ListReservations(c.Request().Context(), c.Param("storeID"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reservations, "Reservations retrieved successfully")
}

// CreateReservation handles adding a reservation
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req ReservationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reservation input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	reservation, err := h.reservationUC.CreateReservation(c.Request().Context(), c.Param("storeID"), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, reservation, "Reservation created successfully")
}

// UpdateReservation handles updating a reservation
func (h *ReservationHandler) UpdateReservation(c echo.Context) error {
	var req ReservationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reservation input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	reservation, err := h.reservationUC.UpdateReservation(c.Request().Context(), c.Param("storeID"), c.Param("reservationID"), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reservation, "Reservation updated successfully")
}

// UpdateReservationStatus handles a status-only change
func (h *ReservationHandler) UpdateReservationStatus(c echo.Context) error {
	var req UpdateReservationStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	reservation, err := h.reservationUC.UpdateReservationStatus(c.Request().Context(), c.Param("storeID"), c.Param("reservationID"), req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reservation, "Reservation status updated successfully")
}

// DeleteReservation handles removing a reservation
func (h *ReservationHandler) DeleteReservation(c echo.Context) error {
	if err := h.reservationUC.DeleteReservation(c.Request().Context(), c.Param("storeID"), c.Param("reservationID")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Reservation deleted successfully")
}

// GetReservationQR renders a check-in QR code for one reservation as PNG
func (h *ReservationHandler) GetReservationQR(c echo.Context) error {
	storeID := c.Param("storeID")
	reservationID := c.Param("reservationID")

	reservations, err := h.reservationUC.ListReservations(c.Request().Context(), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	found := false
	for i := range reservations {
		if reservations[i].ID == reservationID {
			found = true

			break
		}
	}
	if !found {
		return response.HandleAppError(c, domainerrors.ErrEntityNotFound)
	}

	png, err := h.qrcodeSvc.GenerateReservationQR(storeID, reservationID)
	if err != nil {
		return response.InternalServerError(c, "QRCODE_FAILED", "Failed to generate QR code")
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
