package entity

import "time"

// CartItem is one line of a sale: a snapshot of the product at the moment it
// was added to the cart plus the quantity sold. Totals are computed from the
// snapshot price/cost, not from the catalog at processing time.
type CartItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Cost  float64 `json:"cost"`
	Qty   float64 `json:"qty"`
}

// SaleSummary describes one completed sale for receipts and toasts. It is
// never persisted as its own entity: the amounts are folded into the daily
// ledger entry and the product sales/quantity fields, then the summary is
// discarded.
type SaleSummary struct {
	Items         []CartItem `json:"items"`
	Total         float64    `json:"total"`
	Cost          float64    `json:"cost"`
	Profit        float64    `json:"profit"`
	PaymentMethod string     `json:"paymentMethod"`
	Timestamp     time.Time  `json:"timestamp"`
}
