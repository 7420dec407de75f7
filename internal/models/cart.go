package models

// CartLine is a cart entry: the product snapshot plus the requested quantity.
// Exactly one line exists per product id and quantity never drops below 1;
// removal deletes the line instead of allowing 0.
type CartLine struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Price     float64    `json:"price"`
	Image     string     `json:"image,omitempty"`
	Tags      StringList `json:"tags,omitempty"`
	Nutrition Nutrition  `json:"nutrition"`
	Quantity  int        `json:"quantity"`
}

// LineFromProduct builds a cart line for a product with the given quantity.
func LineFromProduct(p Product, quantity int) CartLine {
	return CartLine{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Tags:      p.Tags,
		Nutrition: p.Nutrition,
		Quantity:  quantity,
	}
}
