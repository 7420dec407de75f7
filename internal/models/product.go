package models

// Nutrition carries the macro breakdown shown on meal cards and returned by the
// recommendation backend.
type Nutrition struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// Product is a catalog meal. Ids are stable across the static catalog and
// AI-generated items; a product never changes after creation.
type Product struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	Price         float64    `json:"price"`
	Image         string     `json:"image,omitempty"`
	Category      string     `json:"category,omitempty"`
	Tags          StringList `json:"tags,omitempty"`
	Nutrition     Nutrition  `json:"nutrition"`
	Rating        float64    `json:"rating,omitempty"`
	ReviewCount   int        `json:"reviewCount,omitempty"`
	BestSeller    bool       `json:"bestSeller,omitempty"`
	AIExplanation string     `json:"ai_explanation,omitempty"`
}
