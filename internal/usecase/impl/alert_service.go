package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storehub/internal/binding"
	"storehub/internal/domain/alert"
	"storehub/internal/domain/constants"
	"storehub/internal/domain/entity"
	domainerrors "storehub/internal/domain/errors"
	"storehub/internal/usecase"
)

type alertService struct {
	bindings *binding.Manager
	logger   *slog.Logger
	now      func() time.Time

	mu      sync.Mutex
	seen    map[string]map[string]bool
	watched map[string]bool
}

// NewAlertService creates a new alert service instance
func NewAlertService(bindings *binding.Manager, logger *slog.Logger) usecase.AlertUsecase {
	return &alertService{
		bindings: bindings,
		logger:   logger,
		now:      time.Now,
		seen:     make(map[string]map[string]bool),
		watched:  make(map[string]bool),
	}
}

// Alerts returns the alerts derived from the store's current slice values.
// The first call also attaches watchers so later slice changes surface new
// alerts in the log as they appear.
func (s *alertService) Alerts(ctx context.Context, storeID string) ([]entity.Alert, error) {
	if storeID == "" {
		return nil, domainerrors.ErrStoreIDRequired
	}

	b := s.bindings.Store(storeID)
	s.ensureWatching(storeID, b)

	products, err := b.Products.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	reservations, err := b.Reservations.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	ledger, err := b.Sales.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	alerts := alert.Derive(products, reservations, todayRevenue(ledger, now), now)
	s.recordSeen(storeID, alerts)

	return alerts, nil
}

// ensureWatching attaches one recompute watcher per contributing slice. The
// watchers only read last known local values; they never hit the channel.
func (s *alertService) ensureWatching(storeID string, b *binding.StoreBindings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watched[storeID] {
		return
	}
	s.watched[storeID] = true

	recompute := func() {
		now := s.now()
		alerts := alert.Derive(b.Products.Value(), b.Reservations.Value(), todayRevenue(b.Sales.Value(), now), now)
		for _, a := range s.newAlerts(storeID, alerts) {
			s.logger.Info("alert raised",
				slog.String("store_id", storeID),
				slog.String("alert_id", a.ID),
				slog.String("type", string(a.Type)),
				slog.String("title", a.Title),
			)
		}
	}

	b.Products.Watch(func([]entity.Product) { recompute() })
	b.Reservations.Watch(func([]entity.Reservation) { recompute() })
	b.Sales.Watch(func([]entity.LedgerEntry) { recompute() })
}

// newAlerts records the derived set and returns the alerts not seen before.
func (s *alertService) newAlerts(storeID string, alerts []entity.Alert) []entity.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := s.seen[storeID]
	if seen == nil {
		seen = make(map[string]bool)
		s.seen[storeID] = seen
	}

	var fresh []entity.Alert
	for _, a := range alerts {
		if seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		fresh = append(fresh, a)
	}

	return fresh
}

func (s *alertService) recordSeen(storeID string, alerts []entity.Alert) {
	s.newAlerts(storeID, alerts)
}

func todayRevenue(ledger []entity.LedgerEntry, now time.Time) float64 {
	today := now.Format(constants.DateLayout)
	for _, entry := range ledger {
		if entry.Date == today {
			return entry.Revenue
		}
	}

	return 0
}
