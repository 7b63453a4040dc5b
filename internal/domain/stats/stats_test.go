package stats

import (
	"fmt"
	"testing"
	"time"

	"storehub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, 3, 14, 12, 0, 0, 0, time.Local)

func TestCompute_EmptyInputs(t *testing.T) {
	d := Compute(nil, nil, nil, nil, now)
	assert.Equal(t, Dashboard{}, d)
}

func TestCompute_TodayAndChange(t *testing.T) {
	ledger := []entity.LedgerEntry{
		{Date: "2025-03-13", Revenue: 100000, Orders: 10, Visitors: 8},
		{Date: "2025-03-14", Revenue: 150000, Orders: 12, Visitors: 11},
	}

	d := Compute(ledger, nil, nil, nil, now)

	assert.Equal(t, 150000.0, d.TodayRevenue)
	assert.Equal(t, 12, d.TodayOrders)
	assert.Equal(t, 11, d.TodayVisitors)
	assert.Equal(t, 50, d.RevenueChange)
	assert.Equal(t, 250000.0, d.MonthlyRevenue)
	assert.Equal(t, 0, d.MonthlyChange, "no prior window yet")
}

func TestCompute_MonthlyWindows(t *testing.T) {
	var ledger []entity.LedgerEntry
	// 60 entries: first 30 at 1000/day, last 30 at 2000/day.
	for i := 0; i < 30; i++ {
		ledger = append(ledger, entity.LedgerEntry{Date: fmt.Sprintf("a%02d", i), Revenue: 1000})
	}
	for i := 0; i < 30; i++ {
		ledger = append(ledger, entity.LedgerEntry{Date: fmt.Sprintf("b%02d", i), Revenue: 2000})
	}

	d := Compute(ledger, nil, nil, nil, now)

	assert.Equal(t, 60000.0, d.MonthlyRevenue)
	assert.Equal(t, 100, d.MonthlyChange)
}

func TestCompute_Counts(t *testing.T) {
	products := []entity.Product{
		{ID: "1", Quantity: 2, MinStock: 5},
		{ID: "2", Quantity: 9, MinStock: 5},
		{ID: "3", Quantity: 0, MinStock: 0},
	}
	reservations := []entity.Reservation{
		{ID: "r1", Date: "2025-03-14"},
		{ID: "r2", Date: "2025-03-15"},
	}
	customers := []entity.Customer{
		{ID: "c1", Tier: entity.TierVIP},
		{ID: "c2", Tier: entity.TierRegular},
	}

	d := Compute(nil, products, reservations, customers, now)

	assert.Equal(t, 1, d.LowStockCount)
	assert.Equal(t, 1, d.TodayReservations)
	assert.Equal(t, 2, d.TotalCustomers)
	assert.Equal(t, 1, d.VIPCustomers)
}

func TestByCategory(t *testing.T) {
	products := []entity.Product{
		{ID: "1", Category: "Coffee", Price: 4500, Sales: 10},
		{ID: "2", Category: "Coffee", Price: 5000, Sales: 2},
		{ID: "3", Category: "Bakery", Price: 4000, Sales: 5},
		{ID: "101", Category: "Raw Material", Price: 0, Sales: 0, IsIngredient: true},
	}

	byCat := ByCategory(products)

	assert.Equal(t, []CategoryRevenue{
		{Name: "Coffee", Value: 55000},
		{Name: "Bakery", Value: 20000},
	}, byCat)
}
