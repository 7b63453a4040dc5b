package worker

import (
	"context"
	"log/slog"
	"time"

	"storehub/config"
	"storehub/internal/binding"
	"storehub/internal/delivery"
	"storehub/internal/domain/alert"
	"storehub/internal/domain/constants"
	"storehub/internal/domain/entity"
	"storehub/internal/domain/service"

	"go.uber.org/fx"
)

const (
	defaultReminderInterval = 60 * time.Second
	defaultLeadMinutes      = 30
)

// ReminderParams holds dependencies for the reminder worker
type ReminderParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Bindings  *binding.Manager
	Publisher service.EventPublisher
}

// reminderWorker periodically scans the bound stores and publishes a reminder
// event for every reservation exactly at the configured lead time. Scanning
// once per interval with an exact-minute match keeps each reservation to one
// reminder without any persisted state.
type reminderWorker struct {
	enabled     bool
	interval    time.Duration
	leadMinutes int
	logger      *slog.Logger
	bindings    *binding.Manager
	publisher   service.EventPublisher
	now         func() time.Time

	stop chan struct{}
}

// NewReminderWorker creates the reservation reminder worker
func NewReminderWorker(params ReminderParams) delivery.Delivery {
	enabled := true
	interval := defaultReminderInterval
	leadMinutes := defaultLeadMinutes
	if params.Cfg.Reminder != nil {
		enabled = params.Cfg.Reminder.Enabled
		if params.Cfg.Reminder.Interval > 0 {
			interval = params.Cfg.Reminder.Interval
		}
		if params.Cfg.Reminder.LeadMinutes > 0 {
			leadMinutes = params.Cfg.Reminder.LeadMinutes
		}
	}

	w := &reminderWorker{
		enabled:     enabled,
		interval:    interval,
		leadMinutes: leadMinutes,
		logger:      params.Logger,
		bindings:    params.Bindings,
		publisher:   params.Publisher,
		now:         time.Now,
		stop:        make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			close(w.stop)

			return nil
		},
	})

	return w
}

// Serve runs the scan loop until shutdown
func (w *reminderWorker) Serve(ctx context.Context) error {
	if !w.enabled {
		w.logger.Info("Reminder worker disabled")

		return nil
	}

	w.logger.Info("Starting reminder worker",
		slog.Duration("interval", w.interval),
		slog.Int("lead_minutes", w.leadMinutes),
	)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stop:
			return nil
		case <-ticker.C:
			w.scan(ctx)
		}
	}
}

// scan publishes a reminder for every reservation hitting the lead time now.
func (w *reminderWorker) scan(ctx context.Context) {
	now := w.now()
	today := now.Format(constants.DateLayout)

	for _, store := range w.bindings.Active() {
		for _, r := range store.Reservations.Value() {
			if r.Date != today || r.Status == entity.ReservationCancelled {
				continue
			}
			diff, ok := alert.MinutesUntil(r.Time, now)
			if !ok || diff != w.leadMinutes {
				continue
			}

			reservation := r
			event := &service.StoreEvent{
				Kind:        service.EventReservationReminder,
				StoreID:     store.StoreID,
				At:          now,
				Reservation: &reservation,
			}
			if err := w.publisher.PublishStoreEvent(ctx, event); err != nil {
				w.logger.Warn("failed to publish reservation reminder",
					slog.String("store_id", store.StoreID),
					slog.String("reservation_id", r.ID),
					slog.Any("error", err),
				)

				continue
			}

			w.logger.Info("reservation reminder published",
				slog.String("store_id", store.StoreID),
				slog.String("reservation_id", r.ID),
				slog.String("time", r.Time),
			)
		}
	}
}
