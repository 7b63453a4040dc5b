package binding

import (
	"context"
	"log/slog"
	"sync"

	"storehub/internal/domain/entity"
	"storehub/internal/domain/service"

	"go.uber.org/fx"
)

// StoreBindings bundles the six slice bindings of one owner document. All
// bindings share the owner but each owns its own subscription, so two slices
// may observe rapid updates in different relative order; callers touching two
// slices at once must treat the writes as independent.
type StoreBindings struct {
	StoreID string

	Sales        *Slice[[]entity.LedgerEntry]
	Products     *Slice[[]entity.Product]
	Staff        *Slice[[]entity.Staff]
	Reservations *Slice[[]entity.Reservation]
	Customers    *Slice[[]entity.Customer]
	Schedules    *Slice[entity.Schedule]
}

// NewStoreBindings binds every slice of the owner document.
func NewStoreBindings(ctx context.Context, channel service.DocumentChannel, storeID string) *StoreBindings {
	return &StoreBindings{
		StoreID:      storeID,
		Sales:        Bind(ctx, channel, storeID, entity.SliceSalesData, []entity.LedgerEntry(nil)),
		Products:     Bind(ctx, channel, storeID, entity.SliceProducts, []entity.Product(nil)),
		Staff:        Bind(ctx, channel, storeID, entity.SliceStaff, []entity.Staff(nil)),
		Reservations: Bind(ctx, channel, storeID, entity.SliceReservations, []entity.Reservation(nil)),
		Customers:    Bind(ctx, channel, storeID, entity.SliceCustomers, []entity.Customer(nil)),
		Schedules:    Bind(ctx, channel, storeID, entity.SliceSchedules, entity.Schedule{}),
	}
}

// Close tears down every subscription of the bundle.
func (b *StoreBindings) Close() {
	b.Sales.Close()
	b.Products.Close()
	b.Staff.Close()
	b.Reservations.Close()
	b.Customers.Close()
	b.Schedules.Close()
}

// ManagerParams holds dependencies for the binding manager, injected by Fx
type ManagerParams struct {
	fx.In
	fx.Lifecycle

	Ctx     context.Context
	Channel service.DocumentChannel
	Logger  *slog.Logger
}

// Manager lazily creates and caches one StoreBindings bundle per owner and
// closes them all on shutdown.
type Manager struct {
	ctx     context.Context
	channel service.DocumentChannel
	logger  *slog.Logger

	mu     sync.Mutex
	stores map[string]*StoreBindings
}

// NewManager creates the binding manager and hooks teardown into the fx
// lifecycle.
func NewManager(params ManagerParams) *Manager {
	m := NewManagerWithChannel(params.Ctx, params.Channel, params.Logger)

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			m.Close()

			return nil
		},
	})

	return m
}

// NewManagerWithChannel creates a manager without lifecycle wiring. The
// caller owns teardown.
func NewManagerWithChannel(ctx context.Context, channel service.DocumentChannel, logger *slog.Logger) *Manager {
	return &Manager{
		ctx:     ctx,
		channel: channel,
		logger:  logger,
		stores:  make(map[string]*StoreBindings),
	}
}

// Store returns the binding bundle for the owner, creating and subscribing it
// on first use.
func (m *Manager) Store(storeID string) *StoreBindings {
	m.mu.Lock()
	defer m.mu.Unlock()

	if b, ok := m.stores[storeID]; ok {
		return b
	}

	m.logger.Debug("binding store document", slog.String("store_id", storeID))
	b := NewStoreBindings(m.ctx, m.channel, storeID)
	m.stores[storeID] = b

	return b
}

// Active returns the currently bound stores.
func (m *Manager) Active() []*StoreBindings {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*StoreBindings, 0, len(m.stores))
	for _, b := range m.stores {
		out = append(out, b)
	}

	return out
}

// Channel exposes the underlying document channel for multi-slice writes.
func (m *Manager) Channel() service.DocumentChannel {
	return m.channel
}

// Close tears down every bound store.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, b := range m.stores {
		b.Close()
		delete(m.stores, id)
	}
	m.logger.Info("binding manager closed")
}
