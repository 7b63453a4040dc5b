// Package stats computes dashboard statistics from current slice values.
package stats

import (
	"math"
	"time"

	"storehub/internal/domain/constants"
	"storehub/internal/domain/entity"
)

// Dashboard aggregates the headline numbers shown on the store dashboard.
// Everything is derived from the slice values passed in; nothing is persisted.
type Dashboard struct {
	TodayRevenue      float64 `json:"todayRevenue"`
	TodayOrders       int     `json:"todayOrders"`
	TodayVisitors     int     `json:"todayVisitors"`
	RevenueChange     int     `json:"revenueChange"` // percent vs previous entry
	MonthlyRevenue    float64 `json:"monthlyRevenue"`
	MonthlyChange     int     `json:"monthlyChange"` // percent vs prior 30-entry window
	LowStockCount     int     `json:"lowStockCount"`
	TodayReservations int     `json:"todayReservations"`
	TotalCustomers    int     `json:"totalCustomers"`
	VIPCustomers      int     `json:"vipCustomers"`
}

// CategoryRevenue is cumulative revenue attributed to one product category.
type CategoryRevenue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Compute derives dashboard statistics. The ledger is ordered by date, so the
// last entry is the most recent day and the trailing 30 entries approximate
// the current month.
func Compute(ledger []entity.LedgerEntry, products []entity.Product, reservations []entity.Reservation, customers []entity.Customer, now time.Time) Dashboard {
	var d Dashboard

	if n := len(ledger); n > 0 {
		latest := ledger[n-1]
		d.TodayRevenue = latest.Revenue
		d.TodayOrders = latest.Orders
		d.TodayVisitors = latest.Visitors

		if n > 1 && ledger[n-2].Revenue != 0 {
			prev := ledger[n-2].Revenue
			d.RevenueChange = int(math.Round((latest.Revenue - prev) / prev * 100))
		}

		thisMonth := sumRevenue(tail(ledger, 30))
		lastMonth := sumRevenue(window(ledger, 60, 30))
		d.MonthlyRevenue = thisMonth
		if lastMonth != 0 {
			d.MonthlyChange = int(math.Round((thisMonth - lastMonth) / lastMonth * 100))
		}
	}

	for _, p := range products {
		if p.LowOnStock() {
			d.LowStockCount++
		}
	}

	today := now.Format(constants.DateLayout)
	for _, r := range reservations {
		if r.Date == today {
			d.TodayReservations++
		}
	}

	d.TotalCustomers = len(customers)
	for _, c := range customers {
		if c.Tier == entity.TierVIP {
			d.VIPCustomers++
		}
	}

	return d
}

// ByCategory attributes cumulative revenue (price times units sold) to each
// category of the sellable products. Raw materials are excluded.
func ByCategory(products []entity.Product) []CategoryRevenue {
	totals := make(map[string]float64)
	var order []string

	for _, p := range products {
		if p.IsIngredient {
			continue
		}
		if _, seen := totals[p.Category]; !seen {
			order = append(order, p.Category)
		}
		totals[p.Category] += p.Sales * p.Price
	}

	out := make([]CategoryRevenue, 0, len(order))
	for _, name := range order {
		out = append(out, CategoryRevenue{Name: name, Value: totals[name]})
	}

	return out
}

func tail(ledger []entity.LedgerEntry, n int) []entity.LedgerEntry {
	if len(ledger) <= n {
		return ledger
	}

	return ledger[len(ledger)-n:]
}

// window returns the slice covering [len-from, len-to) clamped to bounds.
func window(ledger []entity.LedgerEntry, from, to int) []entity.LedgerEntry {
	start := len(ledger) - from
	if start < 0 {
		start = 0
	}
	end := len(ledger) - to
	if end < start {
		end = start
	}

	return ledger[start:end]
}

func sumRevenue(entries []entity.LedgerEntry) float64 {
	var sum float64
	for _, e := range entries {
		sum += e.Revenue
	}

	return sum
}
