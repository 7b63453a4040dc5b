package entity

// LedgerEntry is one day of accumulated sales in the salesData slice. Date is
// the ISO day string and unique within the slice; every numeric field is a
// running total for that day. Profit = Revenue - Cost is maintained by every
// writer, never recomputed lazily.
type LedgerEntry struct {
	Date     string  `json:"date" mapstructure:"date"`
	Label    string  `json:"label" mapstructure:"label"`
	Revenue  float64 `json:"revenue" mapstructure:"revenue"`
	Cost     float64 `json:"cost" mapstructure:"cost"`
	Profit   float64 `json:"profit" mapstructure:"profit"`
	Orders   int     `json:"orders" mapstructure:"orders"`
	Visitors int     `json:"visitors" mapstructure:"visitors"`
}
