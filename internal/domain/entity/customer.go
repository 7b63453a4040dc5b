package entity

// Customer tiers.
const (
	TierRegular = "regular"
	TierSilver  = "silver"
	TierGold    = "gold"
	TierVIP     = "VIP"
)

// Customer represents one record of the customers slice.
type Customer struct {
	ID         string  `json:"id" mapstructure:"id"`
	Name       string  `json:"name" mapstructure:"name"`
	Phone      string  `json:"phone" mapstructure:"phone"`
	Tier       string  `json:"tier" mapstructure:"tier"`
	Visits     int     `json:"visits" mapstructure:"visits"`
	TotalSpent float64 `json:"totalSpent" mapstructure:"totalSpent"`
	LastVisit  string  `json:"lastVisit" mapstructure:"lastVisit"`
	CreatedAt  string  `json:"createdAt,omitempty" mapstructure:"createdAt"`
}
