package menu

import "strings"

// defaultImage is the catch-all when no keyword matches.
const defaultImage = "https://images.pexels.com/photos/1640774/pexels-photo-1640774.jpeg"

// imageRule maps dish-name keywords to a stock photo. First match wins, so
// order matters: "bowl" sits near the end or every bowl dish would match it.
type imageRule struct {
	keywords []string
	url      string
}

var imageRules = []imageRule{
	{[]string{"frango", "proteico"}, "https://static.wixstatic.com/media/611573_d4dbb2d55ab64755994f26e8891c04a7~mv2.jpg/v1/fit/w_700,h_700,al_c,q_80/file.png"},
	{[]string{"salada", "mediterr"}, "https://images.pexels.com/photos/1211887/pexels-photo-1211887.jpeg"},
	{[]string{"salmão", "peixe", "wrap"}, "https://www.saboresajinomoto.com.br/uploads/images/recipes/wrap-de-salmao.jpg"},
	{[]string{"vegano", "vegetariano"}, "https://images.pexels.com/photos/1640774/pexels-photo-1640774.jpeg"},
	{[]string{"low-carb", "omelete"}, "https://www.mundoboaforma.com.br/wp-content/uploads/2021/11/Omelete-low-carb-768x410.jpg"},
	{[]string{"pudim", "sobremesa"}, "https://www.apitadadopai.com/wp-content/webp-express/webp-images/uploads/2021/05/p1311253-1000x1000.jpg.webp"},
	{[]string{"buddha", "bowl"}, "https://images.pexels.com/photos/1833336/pexels-photo-1833336.jpeg"},
	{[]string{"açaí", "acai"}, "https://images.pexels.com/photos/1092730/pexels-photo-1092730.jpeg"},
}

// FallbackImage picks a stock photo for a dish that arrived without one,
// matching keywords in the dish name. Total: every name maps to some URL.
func FallbackImage(name string) string {
	dish := strings.ToLower(name)
	for _, rule := range imageRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(dish, keyword) {
				return rule.url
			}
		}
	}
	return defaultImage
}
