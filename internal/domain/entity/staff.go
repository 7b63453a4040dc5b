package entity

// Staff represents one member of the staff slice.
type Staff struct {
	ID        string  `json:"id" mapstructure:"id"`
	Name      string  `json:"name" mapstructure:"name"`
	Role      string  `json:"role" mapstructure:"role"`
	Phone     string  `json:"phone" mapstructure:"phone"`
	Salary    float64 `json:"salary" mapstructure:"salary"`
	Status    string  `json:"status" mapstructure:"status"`
	Color     string  `json:"color" mapstructure:"color"`
	CreatedAt string  `json:"createdAt,omitempty" mapstructure:"createdAt"`
}
