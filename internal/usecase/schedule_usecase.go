package usecase

import (
	"context"

	"storehub/internal/domain/entity"
)

// ScheduleUsecase defines the interface for shift schedule use cases. The
// schedule is one map keyed by ISO day and is always replaced as a whole.
type ScheduleUsecase interface {
	GetSchedule(ctx context.Context, storeID string) (entity.Schedule, error)
	PutSchedule(ctx context.Context, storeID string, schedule entity.Schedule) error

	// AssignShift adds a staff id to one day, creating the day as needed
	AssignShift(ctx context.Context, storeID, date, staffID string) error

	// UnassignShift removes a staff id from one day
	UnassignShift(ctx context.Context, storeID, date, staffID string) error
}
