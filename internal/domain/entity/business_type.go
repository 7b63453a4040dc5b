package entity

// BusinessType selects the starter template a new store is provisioned with.
// The set is closed so template dispatch stays exhaustive.
type BusinessType string

const (
	BusinessCafe       BusinessType = "cafe"
	BusinessRestaurant BusinessType = "restaurant"
	BusinessRetail     BusinessType = "retail"
	BusinessSalon      BusinessType = "salon"
	BusinessEmpty      BusinessType = "empty"
)

// Valid reports whether t is one of the known business types.
func (t BusinessType) Valid() bool {
	switch t {
	case BusinessCafe, BusinessRestaurant, BusinessRetail, BusinessSalon, BusinessEmpty:
		return true
	}

	return false
}

// Template returns the starter products for the business type. All other
// slices start empty regardless of type.
func (t BusinessType) Template() []Product {
	switch t {
	case BusinessCafe:
		return cafeTemplate()
	case BusinessRestaurant:
		return restaurantTemplate()
	case BusinessRetail:
		return retailTemplate()
	case BusinessSalon:
		return salonTemplate()
	case BusinessEmpty:
		return nil
	}

	return nil
}

func cafeTemplate() []Product {
	return []Product{
		{ID: "1", Name: "Americano", Category: "Coffee", Price: 4500, Cost: 800, Unit: "cup",
			Ingredients: []IngredientRef{{InventoryID: "101", Amount: 0.02}, {InventoryID: "103", Amount: 1}}},
		{ID: "2", Name: "Cafe Latte", Category: "Coffee", Price: 5000, Cost: 1200, Unit: "cup",
			Ingredients: []IngredientRef{{InventoryID: "101", Amount: 0.02}, {InventoryID: "102", Amount: 0.2}, {InventoryID: "103", Amount: 1}}},
		{ID: "3", Name: "Vanilla Latte", Category: "Coffee", Price: 5500, Cost: 1400, Unit: "cup",
			Ingredients: []IngredientRef{{InventoryID: "101", Amount: 0.02}, {InventoryID: "102", Amount: 0.2}, {InventoryID: "103", Amount: 1}}},
		{ID: "4", Name: "Iced Tea", Category: "Beverage", Price: 4000, Cost: 600, Unit: "cup"},
		{ID: "5", Name: "Green Tea Latte", Category: "Beverage", Price: 5500, Cost: 1300, Unit: "cup",
			Ingredients: []IngredientRef{{InventoryID: "102", Amount: 0.2}}},
		{ID: "6", Name: "Croissant", Category: "Bakery", Price: 4000, Cost: 1800, Unit: "ea"},
		{ID: "7", Name: "Cheesecake", Category: "Bakery", Price: 6500, Cost: 2800, Unit: "ea"},
		{ID: "101", Name: "Coffee Beans (Ethiopia)", Category: "Raw Material", Cost: 28000, Quantity: 10, MinStock: 5, Unit: "kg", IsIngredient: true},
		{ID: "102", Name: "Milk", Category: "Raw Material", Cost: 2800, Quantity: 20, MinStock: 10, Unit: "L", IsIngredient: true},
		{ID: "103", Name: "Takeout Cups", Category: "Packaging", Cost: 120, Quantity: 500, MinStock: 200, Unit: "ea", IsIngredient: true},
	}
}

func restaurantTemplate() []Product {
	return []Product{
		{ID: "1", Name: "Bulgogi Set", Category: "Main", Price: 12000, Cost: 5500, Unit: "serv",
			Ingredients: []IngredientRef{{InventoryID: "101", Amount: 0.3}, {InventoryID: "102", Amount: 0.2}}},
		{ID: "2", Name: "Kimchi Stew", Category: "Main", Price: 9000, Cost: 3800, Unit: "serv",
			Ingredients: []IngredientRef{{InventoryID: "102", Amount: 0.25}}},
		{ID: "3", Name: "Cold Noodles", Category: "Main", Price: 8500, Cost: 3200, Unit: "serv"},
		{ID: "4", Name: "Steamed Egg", Category: "Side", Price: 4000, Cost: 1500, Unit: "serv"},
		{ID: "5", Name: "Soft Drink", Category: "Beverage", Price: 2000, Cost: 700, Unit: "can"},
		{ID: "101", Name: "Beef (Sirloin)", Category: "Raw Material", Cost: 35000, Quantity: 15, MinStock: 5, Unit: "kg", IsIngredient: true},
		{ID: "102", Name: "Rice", Category: "Raw Material", Cost: 48000, Quantity: 40, MinStock: 10, Unit: "kg", IsIngredient: true},
	}
}

func retailTemplate() []Product {
	return []Product{
		{ID: "1", Name: "Basic T-Shirt", Category: "Apparel", Price: 15900, Cost: 6500, Quantity: 50, MinStock: 10, Unit: "ea"},
		{ID: "2", Name: "Denim Pants", Category: "Apparel", Price: 39000, Cost: 18000, Quantity: 30, MinStock: 8, Unit: "ea"},
		{ID: "3", Name: "Socks (3-pack)", Category: "Accessory", Price: 6900, Cost: 2400, Quantity: 80, MinStock: 20, Unit: "set"},
		{ID: "4", Name: "Canvas Bag", Category: "Accessory", Price: 12000, Cost: 5000, Quantity: 25, MinStock: 5, Unit: "ea"},
	}
}

func salonTemplate() []Product {
	return []Product{
		{ID: "1", Name: "Haircut", Category: "Hair", Price: 20000, Cost: 3000, Unit: "svc"},
		{ID: "2", Name: "Perm", Category: "Hair", Price: 80000, Cost: 15000, Unit: "svc",
			Ingredients: []IngredientRef{{InventoryID: "101", Amount: 0.1}}},
		{ID: "3", Name: "Coloring", Category: "Hair", Price: 70000, Cost: 18000, Unit: "svc",
			Ingredients: []IngredientRef{{InventoryID: "102", Amount: 0.15}}},
		{ID: "4", Name: "Scalp Care", Category: "Care", Price: 50000, Cost: 9000, Unit: "svc"},
		{ID: "101", Name: "Perm Solution", Category: "Supply", Cost: 22000, Quantity: 12, MinStock: 4, Unit: "L", IsIngredient: true},
		{ID: "102", Name: "Hair Dye", Category: "Supply", Cost: 18000, Quantity: 10, MinStock: 3, Unit: "L", IsIngredient: true},
	}
}
