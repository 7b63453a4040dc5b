package sale

import (
	"math"
	"testing"
	"time"

	"storehub/internal/domain/entity"
	domainerrors "storehub/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 14, 15, 30, 0, 0, time.Local)

func productByID(t *testing.T, products []entity.Product, id string) entity.Product {
	t.Helper()
	for _, p := range products {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("product %s not found", id)

	return entity.Product{}
}

func TestProcess_EmptyCartRejected(t *testing.T) {
	_, err := Process(nil, "card", nil, nil, testNow)
	require.ErrorIs(t, err, domainerrors.ErrEmptyCart)

	// Lines with invalid quantities are filtered before the emptiness check.
	cart := []entity.CartItem{
		{ID: "1", Price: 1000, Qty: 0},
		{ID: "1", Price: 1000, Qty: -2},
		{ID: "1", Price: 1000, Qty: math.NaN()},
		{ID: "1", Price: 1000, Qty: math.Inf(1)},
	}
	_, err = Process(cart, "card", nil, nil, testNow)
	require.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestProcess_NewLedgerEntry(t *testing.T) {
	products := []entity.Product{{ID: "1", Name: "Americano", Price: 4500, Cost: 800}}
	cart := []entity.CartItem{{ID: "1", Name: "Americano", Price: 4500, Cost: 800, Qty: 2}}

	res, err := Process(cart, "card", products, nil, testNow)
	require.NoError(t, err)

	require.Len(t, res.Ledger, 1)
	entry := res.Ledger[0]
	assert.Equal(t, "2025-03-14", entry.Date)
	assert.Equal(t, "3/14", entry.Label)
	assert.Equal(t, 9000.0, entry.Revenue)
	assert.Equal(t, 1600.0, entry.Cost)
	assert.Equal(t, 7400.0, entry.Profit)
	assert.Equal(t, 1, entry.Orders)
	assert.Equal(t, 1, entry.Visitors)

	assert.Equal(t, 2.0, productByID(t, res.Products, "1").Sales)
}

func TestProcess_LedgerAccumulatesSameDay(t *testing.T) {
	products := []entity.Product{{ID: "1", Price: 100, Cost: 40}}

	res1, err := Process([]entity.CartItem{{ID: "1", Price: 100, Cost: 40, Qty: 1}}, "cash", products, nil, testNow)
	require.NoError(t, err)

	res2, err := Process([]entity.CartItem{{ID: "1", Price: 100, Cost: 40, Qty: 3}}, "card", res1.Products, res1.Ledger, testNow)
	require.NoError(t, err)

	require.Len(t, res2.Ledger, 1)
	assert.Equal(t, 400.0, res2.Ledger[0].Revenue)
	assert.Equal(t, 160.0, res2.Ledger[0].Cost)
	assert.Equal(t, 240.0, res2.Ledger[0].Profit)
	assert.Equal(t, 2, res2.Ledger[0].Orders)
	assert.Equal(t, 1, res2.Ledger[0].Visitors)
}

func TestProcess_LedgerSplitsAcrossDays(t *testing.T) {
	products := []entity.Product{{ID: "1", Price: 100}}

	res1, err := Process([]entity.CartItem{{ID: "1", Price: 100, Qty: 1}}, "card", products, nil, testNow)
	require.NoError(t, err)

	nextDay := testNow.AddDate(0, 0, 1)
	res2, err := Process([]entity.CartItem{{ID: "1", Price: 100, Qty: 1}}, "card", res1.Products, res1.Ledger, nextDay)
	require.NoError(t, err)

	require.Len(t, res2.Ledger, 2)
	assert.Equal(t, "2025-03-14", res2.Ledger[0].Date)
	assert.Equal(t, "2025-03-15", res2.Ledger[1].Date)
	assert.Equal(t, 1, res2.Ledger[1].Orders)
	assert.Equal(t, 1, res2.Ledger[1].Visitors)
}

func TestProcess_TrackingDisabledLeavesQuantity(t *testing.T) {
	products := []entity.Product{{ID: "1", Quantity: 7, MinStock: 0}}

	res, err := Process([]entity.CartItem{{ID: "1", Price: 10, Qty: 3}}, "card", products, nil, testNow)
	require.NoError(t, err)

	p := productByID(t, res.Products, "1")
	assert.Equal(t, 7.0, p.Quantity, "quantity untouched when tracking disabled")
	assert.Equal(t, 3.0, p.Sales, "sales counter still increases")
	assert.Empty(t, res.LowStock)
}

func TestProcess_QuantityDecrementAndFloor(t *testing.T) {
	products := []entity.Product{{ID: "1", Quantity: 5, MinStock: 1}}

	res, err := Process([]entity.CartItem{{ID: "1", Price: 10, Qty: 1.555}}, "card", products, nil, testNow)
	require.NoError(t, err)
	assert.Equal(t, 3.45, productByID(t, res.Products, "1").Quantity, "rounded to 2 decimals")

	res, err = Process([]entity.CartItem{{ID: "1", Price: 10, Qty: 99}}, "card", products, nil, testNow)
	require.NoError(t, err)
	assert.Equal(t, 0.0, productByID(t, res.Products, "1").Quantity, "floored at 0, never negative")
}

func TestProcess_LowStockThresholdInclusive(t *testing.T) {
	products := []entity.Product{{ID: "10", Name: "Flour", Quantity: 5, MinStock: 5, Unit: "kg"}}

	res, err := Process([]entity.CartItem{{ID: "10", Price: 1000, Qty: 1}}, "card", products, nil, testNow)
	require.NoError(t, err)

	assert.Equal(t, 4.0, productByID(t, res.Products, "10").Quantity)
	require.Len(t, res.LowStock, 1)
	assert.Equal(t, "10", res.LowStock[0].ID)
	assert.Equal(t, 4.0, res.LowStock[0].Quantity, "alert carries post-sale quantity")
}

func TestProcess_IngredientCascade(t *testing.T) {
	products := []entity.Product{
		{ID: "1", Name: "Latte", Price: 5000, Cost: 1200, Ingredients: []entity.IngredientRef{
			{InventoryID: "A", Amount: 2},
			{InventoryID: "B", Amount: 1},
		}},
		{ID: "A", Quantity: 10, MinStock: 0, IsIngredient: true},
		{ID: "B", Quantity: 2, MinStock: 1, IsIngredient: true},
	}

	res, err := Process([]entity.CartItem{{ID: "1", Price: 5000, Cost: 1200, Qty: 3}}, "card", products, nil, testNow)
	require.NoError(t, err)

	// Ingredient quantities drop by amount*qty regardless of their own
	// minStock; flooring applies independently per ingredient.
	assert.Equal(t, 4.0, productByID(t, res.Products, "A").Quantity)
	assert.Equal(t, 0.0, productByID(t, res.Products, "B").Quantity)

	// Only B tracks stock, so only B is flagged.
	require.Len(t, res.LowStock, 1)
	assert.Equal(t, "B", res.LowStock[0].ID)
}

func TestProcess_IngredientResolutionSingleLevel(t *testing.T) {
	// A carries its own ingredients list; it must never be traversed.
	products := []entity.Product{
		{ID: "1", Price: 100, Ingredients: []entity.IngredientRef{{InventoryID: "A", Amount: 1}}},
		{ID: "A", Quantity: 10, MinStock: 2, Ingredients: []entity.IngredientRef{{InventoryID: "B", Amount: 5}}},
		{ID: "B", Quantity: 10, MinStock: 2},
	}

	res, err := Process([]entity.CartItem{{ID: "1", Price: 100, Qty: 1}}, "card", products, nil, testNow)
	require.NoError(t, err)

	assert.Equal(t, 9.0, productByID(t, res.Products, "A").Quantity)
	assert.Equal(t, 10.0, productByID(t, res.Products, "B").Quantity, "nested bill of materials not traversed")
}

func TestProcess_LowStockDeduplicated(t *testing.T) {
	// "A" is sold directly and consumed as an ingredient of "1" in the same
	// cart; both paths push it under its threshold but it must appear once.
	products := []entity.Product{
		{ID: "1", Price: 100, Ingredients: []entity.IngredientRef{{InventoryID: "A", Amount: 3}}},
		{ID: "A", Price: 50, Quantity: 10, MinStock: 6},
	}
	cart := []entity.CartItem{
		{ID: "1", Price: 100, Qty: 1},
		{ID: "A", Price: 50, Qty: 2},
	}

	res, err := Process(cart, "card", products, nil, testNow)
	require.NoError(t, err)

	require.Len(t, res.LowStock, 1)
	assert.Equal(t, "A", res.LowStock[0].ID)
	assert.Equal(t, 5.0, res.LowStock[0].Quantity, "both decrements applied before reporting")
}

func TestProcess_UnknownProductLineIgnored(t *testing.T) {
	products := []entity.Product{{ID: "1", Quantity: 5, MinStock: 1}}
	cart := []entity.CartItem{
		{ID: "missing", Price: 900, Qty: 1},
		{ID: "1", Price: 100, Qty: 1},
	}

	res, err := Process(cart, "card", products, nil, testNow)
	require.NoError(t, err)

	// Totals still include the snapshot price of the unknown line; only the
	// stock cascade skips it.
	assert.Equal(t, 1000.0, res.Summary.Total)
	assert.Equal(t, 4.0, productByID(t, res.Products, "1").Quantity)
}

func TestProcess_InputSlicesNotMutated(t *testing.T) {
	products := []entity.Product{{ID: "1", Quantity: 5, MinStock: 1, Sales: 0}}
	ledger := []entity.LedgerEntry{{Date: "2025-03-14", Revenue: 100, Cost: 40, Profit: 60, Orders: 1, Visitors: 1}}

	_, err := Process([]entity.CartItem{{ID: "1", Price: 10, Qty: 2}}, "card", products, ledger, testNow)
	require.NoError(t, err)

	assert.Equal(t, 5.0, products[0].Quantity)
	assert.Equal(t, 0.0, products[0].Sales)
	assert.Equal(t, 100.0, ledger[0].Revenue)
	assert.Equal(t, 1, ledger[0].Orders)
}

func TestProcess_SummaryFields(t *testing.T) {
	cart := []entity.CartItem{
		{ID: "1", Name: "Americano", Price: 4500, Cost: 800, Qty: 2},
		{ID: "2", Name: "Croissant", Price: 4000, Qty: 1},
	}

	res, err := Process(cart, "transfer", nil, nil, testNow)
	require.NoError(t, err)

	assert.Equal(t, 13000.0, res.Summary.Total)
	assert.Equal(t, 1600.0, res.Summary.Cost, "missing cost defaults to 0")
	assert.Equal(t, 11400.0, res.Summary.Profit)
	assert.Equal(t, "transfer", res.Summary.PaymentMethod)
	assert.Equal(t, testNow, res.Summary.Timestamp)
	assert.Len(t, res.Summary.Items, 2)
}
