package impl

import (
	"context"
	"testing"

	"storehub/internal/domain/entity"
	"storehub/internal/domain/service"
	"storehub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduleService(t *testing.T, channel *memChannel) usecase.ScheduleUsecase {
	t.Helper()

	return NewScheduleService(testManager(t, channel))
}

func TestScheduleService_AssignShift(t *testing.T) {
	channel := newMemChannel()
	channel.seed("store-1", service.Document{entity.SliceSchedules: entity.Schedule{}})
	svc := newTestScheduleService(t, channel)

	require.NoError(t, svc.AssignShift(context.Background(), "store-1", "2025-07-14", "s1"))
	require.NoError(t, svc.AssignShift(context.Background(), "store-1", "2025-07-14", "s2"))
	// Assigning the same id twice keeps a single entry.
	require.NoError(t, svc.AssignShift(context.Background(), "store-1", "2025-07-14", "s1"))

	schedule, err := svc.GetSchedule(context.Background(), "store-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s2"}, schedule["2025-07-14"])
}

func TestScheduleService_UnassignShift(t *testing.T) {
	channel := newMemChannel()
	channel.seed("store-1", service.Document{entity.SliceSchedules: entity.Schedule{
		"2025-07-14": {"s1", "s2"},
	}})
	svc := newTestScheduleService(t, channel)

	require.NoError(t, svc.UnassignShift(context.Background(), "store-1", "2025-07-14", "s1"))

	schedule, err := svc.GetSchedule(context.Background(), "store-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"s2"}, schedule["2025-07-14"])
}

func TestScheduleService_PutSchedule_ReplacesWholeMap(t *testing.T) {
	channel := newMemChannel()
	channel.seed("store-1", service.Document{entity.SliceSchedules: entity.Schedule{
		"2025-07-13": {"s9"},
	}})
	svc := newTestScheduleService(t, channel)

	next := entity.Schedule{"2025-07-14": {"s1"}}
	require.NoError(t, svc.PutSchedule(context.Background(), "store-1", next))

	schedule, err := svc.GetSchedule(context.Background(), "store-1")
	require.NoError(t, err)
	assert.Equal(t, next, schedule)
}
