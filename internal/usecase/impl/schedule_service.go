package impl

import (
	"context"

	"storehub/internal/binding"
	"storehub/internal/domain/entity"
	domainerrors "storehub/internal/domain/errors"
	"storehub/internal/usecase"
)

type scheduleService struct {
	bindings *binding.Manager
}

// NewScheduleService creates a new schedule service instance
func NewScheduleService(bindings *binding.Manager) usecase.ScheduleUsecase {
	return &scheduleService{bindings: bindings}
}

func (s *scheduleService) GetSchedule(ctx context.Context, storeID string) (entity.Schedule, error) {
	if storeID == "" {
		return nil, domainerrors.ErrStoreIDRequired
	}

	return s.bindings.Store(storeID).Schedules.Snapshot(ctx)
}

func (s *scheduleService) PutSchedule(ctx context.Context, storeID string, schedule entity.Schedule) error {
	if storeID == "" {
		return domainerrors.ErrStoreIDRequired
	}

	return s.bindings.Store(storeID).Schedules.Set(ctx, schedule)
}

// AssignShift adds a staff id to one day, creating the day as needed. Adding
// an id already on the day is a no-op write of the same schedule.
func (s *scheduleService) AssignShift(ctx context.Context, storeID, date, staffID string) error {
	if storeID == "" {
		return domainerrors.ErrStoreIDRequired
	}

	return s.bindings.Store(storeID).Schedules.Update(ctx, func(schedule entity.Schedule) entity.Schedule {
		out := copySchedule(schedule)
		for _, id := range out[date] {
			if id == staffID {
				return out
			}
		}
		out[date] = append(out[date], staffID)

		return out
	})
}

// UnassignShift removes a staff id from one day. An emptied day stays in the
// map as an empty list, matching how the schedule board renders open days.
func (s *scheduleService) UnassignShift(ctx context.Context, storeID, date, staffID string) error {
	if storeID == "" {
		return domainerrors.ErrStoreIDRequired
	}

	return s.bindings.Store(storeID).Schedules.Update(ctx, func(schedule entity.Schedule) entity.Schedule {
		out := copySchedule(schedule)
		ids := out[date]
		kept := make([]string, 0, len(ids))
		for _, id := range ids {
			if id == staffID {
				continue
			}
			kept = append(kept, id)
		}
		out[date] = kept

		return out
	})
}

func copySchedule(schedule entity.Schedule) entity.Schedule {
	out := make(entity.Schedule, len(schedule))
	for date, ids := range schedule {
		copied := make([]string, len(ids))
		copy(copied, ids)
		out[date] = copied
	}

	return out
}
