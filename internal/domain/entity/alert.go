package entity

import "time"

// AlertType is the severity of a derived alert.
type AlertType string

const (
	AlertWarning AlertType = "warning"
	AlertInfo    AlertType = "info"
	AlertSuccess AlertType = "success"
)

// Alert categories, doubling as navigation targets for the consuming UI.
const (
	AlertCategoryProducts    = "products"
	AlertCategoryReservation = "reservation"
	AlertCategorySales       = "sales"
)

// Alert is one derived notification. The list of alerts is transient state:
// it is recomputed in full from the current slice values and never persisted.
// ID is deterministic from the source entity id and alert kind, so repeated
// derivation naturally de-duplicates.
type Alert struct {
	ID        string    `json:"id"`
	Type      AlertType `json:"type"`
	Category  string    `json:"category"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}
