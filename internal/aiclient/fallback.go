package aiclient

import "github.com/br00tm/DeliverIA/internal/models"

// FallbackRecommendations is the offline dataset the wizard falls back to when
// the recommendation backend cannot be reached. Callers surface the remote
// error alongside it so the user knows these are canned suggestions.
func FallbackRecommendations() []models.Product {
	return []models.Product{
		{
			ID:            1,
			Name:          "Bowl Proteico de Frango",
			Description:   "Bowl de frango grelhado com quinoa, legumes, abacate e molho especial",
			Image:         "https://static.wixstatic.com/media/611573_d4dbb2d55ab64755994f26e8891c04a7~mv2.jpg/v1/fit/w_700,h_700,al_c,q_80/file.png",
			Price:         35.90,
			Tags:          models.StringList{"Proteico", "Low-carb", "Sem Glúten"},
			Nutrition:     models.Nutrition{Calories: 450, Protein: 32, Carbs: 42, Fat: 16},
			AIExplanation: "Esta refeição é ideal para você porque contém 32g de proteína e apenas 16g de gordura.",
		},
		{
			ID:            2,
			Name:          "Salada Mediterrânea",
			Description:   "Mix de folhas, grão-de-bico, azeitonas, tomate cereja, pepino e queijo feta com molho de limão",
			Image:         "https://images.pexels.com/photos/1211887/pexels-photo-1211887.jpeg",
			Price:         29.90,
			Tags:          models.StringList{"Vegetariano", "Rico em Fibras", "Mediterrâneo"},
			Nutrition:     models.Nutrition{Calories: 380, Protein: 18, Carbs: 35, Fat: 20},
			AIExplanation: "Recomendamos esta opção porque se alinha com suas preferências alimentares e oferece um bom equilíbrio nutricional.",
		},
		{
			ID:            3,
			Name:          "Wrap de Salmão",
			Description:   "Wrap integral recheado com salmão defumado, cream cheese, rúcula e pepino",
			Image:         "https://www.saboresajinomoto.com.br/uploads/images/recipes/wrap-de-salmao.jpg",
			Price:         32.90,
			Tags:          models.StringList{"Omega-3", "Proteico", "Sem Lactose"},
			Nutrition:     models.Nutrition{Calories: 420, Protein: 28, Carbs: 38, Fat: 18},
			AIExplanation: "Com base na sua dieta, esta é uma excelente escolha que fornece nutrientes essenciais dentro da faixa calórica desejada.",
		},
	}
}
