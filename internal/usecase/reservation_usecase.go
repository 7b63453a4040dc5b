package usecase

import (
	"context"

	"storehub/internal/domain/entity"
)

// ReservationInput carries the caller-editable fields of a reservation.
type ReservationInput struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	People int    `json:"people"`
	Status string `json:"status"`
	Note   string `json:"note"`
}

// ReservationUsecase defines the interface for reservation management use cases
type ReservationUsecase interface {
	ListReservations(ctx context.Context, storeID string) ([]entity.Reservation, error)
	CreateReservation(ctx context.Context, storeID string, input *ReservationInput) (*entity.Reservation, error)
	UpdateReservation(ctx context.Context, storeID, reservationID string, input *ReservationInput) (*entity.Reservation, error)

	// UpdateReservationStatus moves a reservation between pending, confirmed
	// and cancelled without touching the other fields
	UpdateReservationStatus(ctx context.Context, storeID, reservationID, status string) (*entity.Reservation, error)

	DeleteReservation(ctx context.Context, storeID, reservationID string) error
}
