package entity

// IngredientRef links a sellable product to one raw material it consumes.
// Amount is the quantity of the referenced product used per unit sold.
type IngredientRef struct {
	InventoryID string  `json:"inventoryId" mapstructure:"inventoryId"`
	Amount      float64 `json:"amount" mapstructure:"amount"`
}

// Product represents one record of the products slice. A record is either a
// sellable product (possibly carrying a bill of materials in Ingredients) or a
// raw material (IsIngredient true, Ingredients always empty). MinStock of 0
// means stock tracking is disabled for the record: quantity is never checked
// against it for alerting and the record's own sale does not decrement it,
// though ingredient consumption still does.
type Product struct {
	ID           string          `json:"id" mapstructure:"id"`
	Name         string          `json:"name" mapstructure:"name"`
	Category     string          `json:"category" mapstructure:"category"`
	Price        float64         `json:"price" mapstructure:"price"`
	Cost         float64         `json:"cost" mapstructure:"cost"`
	Quantity     float64         `json:"quantity" mapstructure:"quantity"`
	MinStock     float64         `json:"minStock" mapstructure:"minStock"`
	Unit         string          `json:"unit" mapstructure:"unit"`
	IsIngredient bool            `json:"isIngredient" mapstructure:"isIngredient"`
	Ingredients  []IngredientRef `json:"ingredients" mapstructure:"ingredients"`
	Sales        float64         `json:"sales" mapstructure:"sales"`
	CreatedAt    string          `json:"createdAt,omitempty" mapstructure:"createdAt"`
}

// TracksStock reports whether low-stock alerting applies to the product.
func (p *Product) TracksStock() bool {
	return p.MinStock > 0
}

// LowOnStock reports whether the tracked quantity has fallen to or below the
// configured minimum. Always false when tracking is disabled.
func (p *Product) LowOnStock() bool {
	return p.TracksStock() && p.Quantity <= p.MinStock
}
