// Package constants holds shared domain-level constants.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider names.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Payment methods accepted at sale entry.
const (
	PaymentCard     = "card"
	PaymentCash     = "cash"
	PaymentTransfer = "transfer"
)

// DateLayout is the ISO day format used for ledger dates, reservation dates
// and schedule keys. Days are cut on the local clock with no timezone
// normalization.
const DateLayout = "2006-01-02"

// ClockLayout is the "HH:MM" format used for reservation times.
const ClockLayout = "15:04"
