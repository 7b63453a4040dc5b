// Package sale implements the sale transaction algorithm: monetary totals,
// daily ledger accumulation and the stock cascade through each sold product's
// bill of materials. Processing is a single-pass pure transform; persisting
// the updated slices is the caller's responsibility.
package sale

import (
	"fmt"
	"math"
	"time"

	"storehub/internal/domain/constants"
	"storehub/internal/domain/entity"
	domainerrors "storehub/internal/domain/errors"
)

// Result carries the outcome of processing one sale: the ledger and products
// slices with the sale folded in, the de-duplicated low-stock alert set
// reflecting post-sale state, and a summary for receipts and toasts.
type Result struct {
	Ledger   []entity.LedgerEntry
	Products []entity.Product
	LowStock []entity.Product
	Summary  entity.SaleSummary
}

// Process folds one sale into the given ledger and product slices. Cart lines
// with a non-positive or non-finite quantity are discarded; if nothing
// remains the whole sale is rejected before any state is touched. The input
// slices are never mutated.
func Process(cart []entity.CartItem, paymentMethod string, products []entity.Product, ledger []entity.LedgerEntry, now time.Time) (*Result, error) {
	lines := make([]entity.CartItem, 0, len(cart))
	for _, line := range cart {
		if line.Qty <= 0 || math.IsNaN(line.Qty) || math.IsInf(line.Qty, 0) {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	var total, cost float64
	for _, line := range lines {
		total += line.Price * line.Qty
		cost += line.Cost * line.Qty
	}

	summary := entity.SaleSummary{
		Items:         lines,
		Total:         total,
		Cost:          cost,
		Profit:        total - cost,
		PaymentMethod: paymentMethod,
		Timestamp:     now,
	}

	updated, lowStock := cascade(products, lines)

	return &Result{
		Ledger:   foldLedger(ledger, summary, now),
		Products: updated,
		LowStock: lowStock,
		Summary:  summary,
	}, nil
}

// foldLedger merges the sale into today's entry, or appends a fresh entry
// with orders=1 and visitors=1 when today has none. The whole sale counts as
// one order regardless of line count.
func foldLedger(ledger []entity.LedgerEntry, summary entity.SaleSummary, now time.Time) []entity.LedgerEntry {
	today := now.Format(constants.DateLayout)

	out := make([]entity.LedgerEntry, len(ledger))
	copy(out, ledger)

	for i := range out {
		if out[i].Date == today {
			out[i].Revenue += summary.Total
			out[i].Cost += summary.Cost
			out[i].Profit += summary.Profit
			out[i].Orders++

			return out
		}
	}

	return append(out, entity.LedgerEntry{
		Date:     today,
		Label:    fmt.Sprintf("%d/%d", int(now.Month()), now.Day()),
		Revenue:  summary.Total,
		Cost:     summary.Cost,
		Profit:   summary.Profit,
		Orders:   1,
		Visitors: 1,
	})
}

// cascade applies the stock side effects of the sale to a working copy of the
// products slice, so low-stock flags reflect post-sale state. For each sold
// line the matching product's sales counter is bumped; its quantity is
// decremented only when its own tracking is enabled (minStock > 0). The sold
// product's bill of materials is then consumed one level deep: each
// referenced product loses amount*qty regardless of its minStock, but is only
// flagged low when tracking is enabled. Decrements floor at 0 and round to 2
// decimals. Cart lines referencing unknown product ids are ignored.
func cascade(products []entity.Product, lines []entity.CartItem) (updated []entity.Product, lowStock []entity.Product) {
	updated = make([]entity.Product, len(products))
	copy(updated, products)

	index := make(map[string]int, len(updated))
	for i, p := range updated {
		index[p.ID] = i
	}

	flagged := make(map[string]struct{})
	var flaggedOrder []string

	flagLow := func(p *entity.Product) {
		if !p.LowOnStock() {
			return
		}
		if _, seen := flagged[p.ID]; seen {
			return
		}
		flagged[p.ID] = struct{}{}
		flaggedOrder = append(flaggedOrder, p.ID)
	}

	for _, line := range lines {
		i, ok := index[line.ID]
		if !ok {
			continue
		}

		sold := &updated[i]
		sold.Sales += line.Qty
		if sold.TracksStock() {
			sold.Quantity = deduct(sold.Quantity, line.Qty)
		}
		flagLow(sold)

		// Bill of materials resolution is single-level only: an
		// ingredient's own ingredients field is never traversed.
		for _, ref := range products[i].Ingredients {
			j, ok := index[ref.InventoryID]
			if !ok {
				continue
			}
			ing := &updated[j]
			ing.Quantity = deduct(ing.Quantity, ref.Amount*line.Qty)
			flagLow(ing)
		}
	}

	for _, id := range flaggedOrder {
		lowStock = append(lowStock, updated[index[id]])
	}

	return updated, lowStock
}

// deduct subtracts amount from quantity with a floor of 0, rounded to 2
// decimal places.
func deduct(quantity, amount float64) float64 {
	return math.Max(0, math.Round((quantity-amount)*100)/100)
}
