package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/br00tm/DeliverIA/internal/menu"
	"github.com/br00tm/DeliverIA/internal/models"
)

/*
GET /menu
- category and search are OPTIONAL
- without them the full merged catalog is returned
*/
func GetMenu(svc *menu.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /menu"
		defer handlePanic(c, route)

		log.Printf("[%s] hit category=%s search=%s", route, c.Query("category"), c.Query("search"))

		catalog := menu.Filter(svc.Merged(c.Request.Context()), c.Query("category"), c.Query("search"))
		c.JSON(http.StatusOK, catalog)
	}
}

// RecordGeneratedItem persists an AI-generated meal into the menu so it keeps
// appearing after the recommendation wizard is gone.
func RecordGeneratedItem(svc *menu.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /menu/generated"
		defer handlePanic(c, route)

		var product models.Product
		if err := c.ShouldBindJSON(&product); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}
		if product.ID <= 0 {
			respondWithError(c, http.StatusBadRequest, route, "product id is required")
			return
		}

		if err := svc.RecordGenerated(c.Request.Context(), product); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "storage error")
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "menu item recorded"})
	}
}
