package menu

import "github.com/br00tm/DeliverIA/internal/models"

// Category ids used by the catalog filter.
var Categories = []string{"all", "bowls", "salads", "protein", "vegan", "low-carb", "desserts"}

// staticCatalog is the built-in menu. Generated items never shadow these: on
// an id collision the static product wins.
var staticCatalog = []models.Product{
	{
		ID:          1,
		Name:        "Bowl Proteico de Frango",
		Description: "Bowl de frango grelhado com quinoa, legumes, abacate e molho especial",
		Image:       "https://source.unsplash.com/random/800x600/?chicken-bowl",
		Price:       35.90,
		Rating:      4.8,
		ReviewCount: 124,
		Category:    "bowls",
		Tags:        models.StringList{"Proteico", "Low-carb", "Sem Glúten"},
		Nutrition:   models.Nutrition{Calories: 450, Protein: 32, Carbs: 42, Fat: 16},
		BestSeller:  true,
	},
	{
		ID:          2,
		Name:        "Salada Mediterrânea",
		Description: "Mix de folhas, grão-de-bico, azeitonas, tomate cereja, pepino e queijo feta com molho de limão",
		Image:       "https://source.unsplash.com/random/800x600/?mediterranean-salad",
		Price:       29.90,
		Rating:      4.5,
		ReviewCount: 87,
		Category:    "salads",
		Tags:        models.StringList{"Vegetariano", "Rico em Fibras", "Mediterrâneo"},
		Nutrition:   models.Nutrition{Calories: 380, Protein: 18, Carbs: 35, Fat: 20},
	},
	{
		ID:          3,
		Name:        "Wrap de Salmão",
		Description: "Wrap integral recheado com salmão defumado, cream cheese, rúcula e pepino",
		Image:       "https://source.unsplash.com/random/800x600/?salmon-wrap",
		Price:       32.90,
		Rating:      4.7,
		ReviewCount: 65,
		Category:    "protein",
		Tags:        models.StringList{"Omega-3", "Proteico", "Sem Lactose"},
		Nutrition:   models.Nutrition{Calories: 420, Protein: 28, Carbs: 38, Fat: 18},
	},
	{
		ID:          4,
		Name:        "Bowl Vegano Tropical",
		Description: "Mix de vegetais, frutas tropicais, tofu grelhado e castanhas com molho de coco",
		Image:       "https://source.unsplash.com/random/800x600/?vegan-bowl",
		Price:       31.90,
		Rating:      4.6,
		ReviewCount: 53,
		Category:    "vegan",
		Tags:        models.StringList{"Vegano", "Rico em Fibras", "Sem Glúten"},
		Nutrition:   models.Nutrition{Calories: 410, Protein: 15, Carbs: 48, Fat: 19},
		BestSeller:  true,
	},
	{
		ID:          5,
		Name:        "Omelete Low Carb",
		Description: "Omelete recheado com espinafre, queijo, tomate e champignon",
		Image:       "https://source.unsplash.com/random/800x600/?omelette",
		Price:       26.90,
		Rating:      4.4,
		ReviewCount: 47,
		Category:    "low-carb",
		Tags:        models.StringList{"Low-carb", "Keto", "Proteico"},
		Nutrition:   models.Nutrition{Calories: 350, Protein: 24, Carbs: 8, Fat: 24},
	},
	{
		ID:          6,
		Name:        "Pudim Proteico",
		Description: "Pudim cremoso com proteína isolada, baixo açúcar e calda de frutas vermelhas",
		Image:       "https://source.unsplash.com/random/800x600/?protein-pudding",
		Price:       18.90,
		Rating:      4.3,
		ReviewCount: 32,
		Category:    "desserts",
		Tags:        models.StringList{"Proteico", "Baixo Açúcar", "Sobremesa"},
		Nutrition:   models.Nutrition{Calories: 220, Protein: 20, Carbs: 12, Fat: 8},
	},
	{
		ID:          7,
		Name:        "Buddha Bowl",
		Description: "Arroz integral, legumes assados, feijão preto, abacate e molho tahine",
		Image:       "https://source.unsplash.com/random/800x600/?buddha-bowl",
		Price:       33.90,
		Rating:      4.9,
		ReviewCount: 112,
		Category:    "bowls",
		Tags:        models.StringList{"Vegano", "Integral", "Rico em Fibras"},
		Nutrition:   models.Nutrition{Calories: 490, Protein: 18, Carbs: 62, Fat: 16},
		BestSeller:  true,
	},
	{
		ID:          8,
		Name:        "Bowl de Açaí",
		Description: "Açaí batido com banana, coberto com granola, frutas frescas e mel",
		Image:       "https://source.unsplash.com/random/800x600/?acai-bowl",
		Price:       24.90,
		Rating:      4.7,
		ReviewCount: 89,
		Category:    "desserts",
		Tags:        models.StringList{"Energético", "Antioxidantes", "Frutas"},
		Nutrition:   models.Nutrition{Calories: 390, Protein: 8, Carbs: 68, Fat: 12},
	},
}

// StaticCatalog returns a copy of the built-in menu.
func StaticCatalog() []models.Product {
	catalog := make([]models.Product, len(staticCatalog))
	copy(catalog, staticCatalog)
	return catalog
}
