package impl

import (
	"context"
	"time"

	"storehub/internal/binding"
	"storehub/internal/domain/entity"
	domainerrors "storehub/internal/domain/errors"
	"storehub/internal/usecase"

	"github.com/google/uuid"
)

type reservationService struct {
	bindings *binding.Manager
	now      func() time.Time
}

// NewReservationService creates a new reservation service instance
func NewReservationService(bindings *binding.Manager) usecase.ReservationUsecase {
	return &reservationService{
		bindings: bindings,
		now:      time.Now,
	}
}

func (s *reservationService) ListReservations(ctx context.Context, storeID string) ([]entity.Reservation, error) {
	if storeID == "" {
		return nil, domainerrors.ErrStoreIDRequired
	}

	return s.bindings.Store(storeID).Reservations.Snapshot(ctx)
}

func (s *reservationService) CreateReservation(ctx context.Context, storeID string, input *usecase.ReservationInput) (*entity.Reservation, error) {
	if storeID == "" {
		return nil, domainerrors.ErrStoreIDRequired
	}
	if input.Status != "" && !validReservationStatus(input.Status) {
		return nil, domainerrors.ErrValidationFailed
	}

	reservation := entity.Reservation{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Phone:     input.Phone,
		Date:      input.Date,
		Time:      input.Time,
		People:    input.People,
		Status:    input.Status,
		Note:      input.Note,
		CreatedAt: s.now().Format(time.RFC3339),
	}
	if reservation.Status == "" {
		reservation.Status = entity.ReservationPending
	}

	err := s.bindings.Store(storeID).Reservations.Update(ctx, func(reservations []entity.Reservation) []entity.Reservation {
		out := make([]entity.Reservation, 0, len(reservations)+1)
		out = append(out, reservations...)

		return append(out, reservation)
	})
	if err != nil {
		return nil, err
	}

	return &reservation, nil
}

func (s *reservationService) UpdateReservation(ctx context.Context, storeID, reservationID string, input *usecase.ReservationInput) (*entity.Reservation, error) {
	if storeID == "" {
		return nil, domainerrors.ErrStoreIDRequired
	}
	if input.Status != "" && !validReservationStatus(input.Status) {
		return nil, domainerrors.ErrValidationFailed
	}

	slice := s.bindings.Store(storeID).Reservations
	current, err := slice.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if !containsReservation(current, reservationID) {
		return nil, domainerrors.ErrEntityNotFound
	}

	var updated entity.Reservation
	err = slice.Update(ctx, func(reservations []entity.Reservation) []entity.Reservation {
		out := make([]entity.Reservation, len(reservations))
		copy(out, reservations)
		for i := range out {
			if out[i].ID != reservationID {
				continue
			}
			out[i].Name = input.Name
			out[i].Phone = input.Phone
			out[i].Date = input.Date
			out[i].Time = input.Time
			out[i].People = input.People
			if input.Status != "" {
				out[i].Status = input.Status
			}
			out[i].Note = input.Note
			updated = out[i]

			break
		}

		return out
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// UpdateReservationStatus moves a reservation between pending, confirmed and
// cancelled without touching the other fields
func (s *reservationService) UpdateReservationStatus(ctx context.Context, storeID, reservationID, status string) (*entity.Reservation, error) {
	if storeID == "" {
		return nil, domainerrors.ErrStoreIDRequired
	}
	if !validReservationStatus(status) {
		return nil, domainerrors.ErrValidationFailed
	}

	slice := s.bindings.Store(storeID).Reservations
	current, err := slice.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if !containsReservation(current, reservationID) {
		return nil, domainerrors.ErrEntityNotFound
	}

	var updated entity.Reservation
	err = slice.Update(ctx, func(reservations []entity.Reservation) []entity.Reservation {
		out := make([]entity.Reservation, len(reservations))
		copy(out, reservations)
		for i := range out {
			if out[i].ID != reservationID {
				continue
			}
			out[i].Status = status
			updated = out[i]

			break
		}

		return out
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *reservationService) DeleteReservation(ctx context.Context, storeID, reservationID string) error {
	if storeID == "" {
		return domainerrors.ErrStoreIDRequired
	}

	slice := s.bindings.Store(storeID).Reservations
	current, err := slice.Snapshot(ctx)
	if err != nil {
		return err
	}
	if !containsReservation(current, reservationID) {
		return domainerrors.ErrEntityNotFound
	}

	return slice.Update(ctx, func(reservations []entity.Reservation) []entity.Reservation {
		out := make([]entity.Reservation, 0, len(reservations))
		for _, reservation := range reservations {
			if reservation.ID == reservationID {
				continue
			}
			out = append(out, reservation)
		}

		return out
	})
}

func containsReservation(reservations []entity.Reservation, id string) bool {
	for i := range reservations {
		if reservations[i].ID == id {
			return true
		}
	}

	return false
}

func validReservationStatus(status string) bool {
	switch status {
	case entity.ReservationPending, entity.ReservationConfirmed, entity.ReservationCancelled:
		return true
	default:
		return false
	}
}
