// Package alert derives the transient notification list from current slice
// values. The list is never persisted: it is recomputed in full on every
// input change, and deterministic ids make re-derivation naturally
// de-duplicating.
package alert

import (
	"fmt"

	"time"

	"storehub/internal/domain/constants"
	"storehub/internal/domain/entity"
)

// Revenue milestone thresholds. At most one milestone alert fires; the higher
// tier suppresses the lower.
const (
	RevenueTierHigh = 2_000_000
	RevenueTierLow  = 1_000_000
)

// nearLowFactor widens the low-stock threshold for the "running low soon"
// advisory tier.
const nearLowFactor = 1.5

// Derive recomputes the full alert list from the given slice values. Every
// rule is evaluated independently and all matching rules contribute an entry.
func Derive(products []entity.Product, reservations []entity.Reservation, todayRevenue float64, now time.Time) []entity.Alert {
	var alerts []entity.Alert

	for _, p := range products {
		if p.LowOnStock() {
			alerts = append(alerts, entity.Alert{
				ID:        "stock-" + p.ID,
				Type:      entity.AlertWarning,
				Category:  entity.AlertCategoryProducts,
				Title:     "Low stock",
				Message:   fmt.Sprintf("%s is running low (current: %g%s, minimum: %g%s)", p.Name, p.Quantity, p.Unit, p.MinStock, p.Unit),
				Action:    entity.AlertCategoryProducts,
				Timestamp: now,
			})
		}
	}

	for _, p := range products {
		if p.TracksStock() && p.Quantity > p.MinStock && p.Quantity <= p.MinStock*nearLowFactor {
			alerts = append(alerts, entity.Alert{
				ID:        "stock-warning-" + p.ID,
				Type:      entity.AlertInfo,
				Category:  entity.AlertCategoryProducts,
				Title:     "Stock advisory",
				Message:   fmt.Sprintf("%s may run out soon (%g%s)", p.Name, p.Quantity, p.Unit),
				Action:    entity.AlertCategoryProducts,
				Timestamp: now,
			})
		}
	}

	alerts = append(alerts, deriveReservationAlerts(reservations, now)...)

	switch {
	case todayRevenue > RevenueTierHigh:
		alerts = append(alerts, entity.Alert{
			ID:        "revenue-2m",
			Type:      entity.AlertSuccess,
			Category:  entity.AlertCategorySales,
			Title:     "Revenue goal reached",
			Message:   "Today's revenue passed 2,000,000!",
			Action:    entity.AlertCategorySales,
			Timestamp: now,
		})
	case todayRevenue > RevenueTierLow:
		alerts = append(alerts, entity.Alert{
			ID:        "revenue-1m",
			Type:      entity.AlertSuccess,
			Category:  entity.AlertCategorySales,
			Title:     "Revenue milestone",
			Message:   "Today's revenue passed 1,000,000!",
			Action:    entity.AlertCategorySales,
			Timestamp: now,
		})
	}

	return alerts
}

func deriveReservationAlerts(reservations []entity.Reservation, now time.Time) []entity.Alert {
	var alerts []entity.Alert
	today := now.Format(constants.DateLayout)
	pending := 0

	for _, r := range reservations {
		if r.Date != today {
			continue
		}
		if r.Status == entity.ReservationPending {
			pending++
		}

		diff, ok := MinutesUntil(r.Time, now)
		if !ok {
			continue
		}
		if diff > 0 && diff <= 60 {
			alerts = append(alerts, entity.Alert{
				ID:        "res-soon-" + r.ID,
				Type:      entity.AlertWarning,
				Category:  entity.AlertCategoryReservation,
				Title:     "Reservation soon",
				Message:   fmt.Sprintf("%s arrives in %d min (%s, party of %d)", r.Name, diff, r.Time, r.People),
				Action:    entity.AlertCategoryReservation,
				Timestamp: now,
			})
		}
	}

	if pending > 0 {
		alerts = append(alerts, entity.Alert{
			ID:        "pending-reservations",
			Type:      entity.AlertInfo,
			Category:  entity.AlertCategoryReservation,
			Title:     "Pending reservations",
			Message:   fmt.Sprintf("%d reservation(s) awaiting confirmation", pending),
			Action:    entity.AlertCategoryReservation,
			Timestamp: now,
		})
	}

	return alerts
}

// MinutesUntil returns the whole minutes from now's wall clock to the given
// "HH:MM" time on the same day. Negative when the time has passed. ok is
// false when the clock string does not parse.
func MinutesUntil(clock string, now time.Time) (int, bool) {
	t, err := time.Parse(constants.ClockLayout, clock)
	if err != nil {
		return 0, false
	}

	return t.Hour()*60 + t.Minute() - (now.Hour()*60 + now.Minute()), true
}
