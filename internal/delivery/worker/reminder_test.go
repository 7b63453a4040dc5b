package worker

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"storehub/internal/binding"
	"storehub/internal/domain/entity"
	"storehub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticChannel serves one fixed document per store, delivered synchronously.
type staticChannel struct {
	docs map[string]service.Document
}

func (c *staticChannel) Subscribe(_ context.Context, ownerID string, onSnapshot func(service.Document), _ func(error)) (service.Unsubscribe, error) {
	onSnapshot(c.docs[ownerID])

	return func() {}, nil
}

func (c *staticChannel) MergeWrite(_ context.Context, _ string, _ map[string]any) error {
	return nil
}

func (c *staticChannel) Create(_ context.Context, _ string, _ map[string]any) error {
	return nil
}

func (c *staticChannel) Get(_ context.Context, ownerID string) (service.Document, error) {
	return c.docs[ownerID], nil
}

type capturePublisher struct {
	mu     sync.Mutex
	events []*service.StoreEvent
}

func (p *capturePublisher) PublishStoreEvent(_ context.Context, event *service.StoreEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return nil
}

func (p *capturePublisher) Close() error { return nil }

func (p *capturePublisher) captured() []*service.StoreEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]*service.StoreEvent(nil), p.events...)
}

func TestReminderWorker_Scan(t *testing.T) {
	channel := &staticChannel{docs: map[string]service.Document{
		"store-1": {
			entity.SliceReservations: []entity.Reservation{
				{ID: "r1", Name: "Kim", Date: "2025-07-14", Time: "13:00", Status: entity.ReservationConfirmed},
				{ID: "r2", Name: "Lee", Date: "2025-07-14", Time: "14:00", Status: entity.ReservationConfirmed},
				{ID: "r3", Name: "Park", Date: "2025-07-14", Time: "13:00", Status: entity.ReservationCancelled},
				{ID: "r4", Name: "Choi", Date: "2025-07-15", Time: "13:00", Status: entity.ReservationConfirmed},
			},
		},
	}}
	bindings := binding.NewManagerWithChannel(context.Background(), channel, slog.New(slog.DiscardHandler))
	t.Cleanup(bindings.Close)
	bindings.Store("store-1")

	publisher := &capturePublisher{}
	w := &reminderWorker{
		interval:    time.Minute,
		leadMinutes: 30,
		logger:      slog.New(slog.DiscardHandler),
		bindings:    bindings,
		publisher:   publisher,
		now:         func() time.Time { return time.Date(2025, 7, 14, 12, 30, 0, 0, time.UTC) },
		stop:        make(chan struct{}),
	}

	w.scan(context.Background())

	events := publisher.captured()
	require.Len(t, events, 1)
	assert.Equal(t, service.EventReservationReminder, events[0].Kind)
	assert.Equal(t, "store-1", events[0].StoreID)
	require.NotNil(t, events[0].Reservation)
	assert.Equal(t, "r1", events[0].Reservation.ID)
}

func TestReminderWorker_ScanAgainDoesNotRepeat(t *testing.T) {
	channel := &staticChannel{docs: map[string]service.Document{
		"store-1": {
			entity.SliceReservations: []entity.Reservation{
				{ID: "r1", Name: "Kim", Date: "2025-07-14", Time: "13:00", Status: entity.ReservationConfirmed},
			},
		},
	}}
	bindings := binding.NewManagerWithChannel(context.Background(), channel, slog.New(slog.DiscardHandler))
	t.Cleanup(bindings.Close)
	bindings.Store("store-1")

	publisher := &capturePublisher{}
	clock := time.Date(2025, 7, 14, 12, 30, 0, 0, time.UTC)
	w := &reminderWorker{
		interval:    time.Minute,
		leadMinutes: 30,
		logger:      slog.New(slog.DiscardHandler),
		bindings:    bindings,
		publisher:   publisher,
		now:         func() time.Time { return clock },
		stop:        make(chan struct{}),
	}

	w.scan(context.Background())
	require.Len(t, publisher.captured(), 1)

	// The next tick falls past the exact lead minute, so nothing fires again.
	clock = clock.Add(time.Minute)
	w.scan(context.Background())
	assert.Len(t, publisher.captured(), 1)
}
