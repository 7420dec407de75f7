package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/br00tm/DeliverIA/internal/aiclient"
	"github.com/br00tm/DeliverIA/internal/menu"
)

type customMenuProxyRequest struct {
	Preferences string `json:"preferences" binding:"required"`
	ItemCount   int    `json:"item_count"`
}

// GetRecommendations proxies the recommendation wizard to the AI backend.
// When the backend is unreachable the canned dataset keeps the flow alive;
// the response says so and the client may simply retry.
func GetRecommendations(ai *aiclient.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /recommendations"
		defer handlePanic(c, route)

		var req aiclient.RecommendationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		meals, err := ai.Recommendations(c.Request.Context(), req)
		if err != nil {
			log.Printf("[%s] backend error, serving fallback: %v", route, err)
			c.JSON(http.StatusOK, gin.H{
				"meals":    aiclient.FallbackRecommendations(),
				"fallback": true,
				"error":    "Não foi possível obter recomendações. Tente novamente mais tarde.",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"meals": meals})
	}
}

// GenerateCustomMenu asks the backend for a personalized menu and records
// every generated item so the catalog remembers them.
func GenerateCustomMenu(ai *aiclient.Client, menuSvc *menu.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /menu/custom"
		defer handlePanic(c, route)

		var req customMenuProxyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		items, err := ai.CustomMenu(c.Request.Context(), req.Preferences, req.ItemCount)
		if err != nil {
			log.Printf("[%s] backend error: %v", route, err)
			respondWithError(c, http.StatusBadGateway, route, "menu service unavailable, try again")
			return
		}

		for _, item := range items {
			if err := menuSvc.RecordGenerated(c.Request.Context(), item); err != nil {
				log.Printf("[%s] could not record generated item %d: %v", route, item.ID, err)
			}
		}

		c.JSON(http.StatusOK, items)
	}
}

// GetMeals relays the backend meal list.
func GetMeals(ai *aiclient.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /meals"
		defer handlePanic(c, route)

		meals, err := ai.Meals(c.Request.Context())
		if err != nil {
			log.Printf("[%s] backend error: %v", route, err)
			respondWithError(c, http.StatusBadGateway, route, "meal service unavailable, try again")
			return
		}
		c.JSON(http.StatusOK, meals)
	}
}
