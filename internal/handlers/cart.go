package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/br00tm/DeliverIA/internal/cart"
	"github.com/br00tm/DeliverIA/internal/models"
)

/* =========================
   REQUEST DTOs
========================= */

type addCartItemRequest struct {
	Product  models.Product `json:"product" binding:"required"`
	Quantity int            `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

type applyPromoRequest struct {
	Code string `json:"code" binding:"required"`
}

/* =========================
   CART
========================= */

func GetCart(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /cart"
		defer handlePanic(c, route)

		lines := svc.Items(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"items":    lines,
			"subtotal": cart.Subtotal(lines),
		})
	}
}

func AddCartItem(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /cart/items"
		defer handlePanic(c, route)

		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}
		if req.Product.ID <= 0 {
			respondWithError(c, http.StatusBadRequest, route, "product id is required")
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}

		lines, err := svc.AddItem(c.Request.Context(), req.Product, req.Quantity)
		if err != nil {
			if errors.Is(err, cart.ErrQuantityTooLow) {
				respondWithError(c, http.StatusBadRequest, route, err.Error())
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "storage error")
			return
		}

		log.Printf("[CART] [INFO] product %d added", req.Product.ID)
		c.JSON(http.StatusOK, gin.H{"items": lines})
	}
}

func UpdateCartItem(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /cart/items/:id"
		defer handlePanic(c, route)

		productID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid product id")
			return
		}

		var req updateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		lines, err := svc.UpdateQuantity(c.Request.Context(), productID, req.Quantity)
		if err != nil {
			var notFound cart.LineNotFoundError
			switch {
			case errors.Is(err, cart.ErrQuantityTooLow):
				respondWithError(c, http.StatusBadRequest, route, err.Error())
			case errors.As(err, &notFound):
				respondWithError(c, http.StatusNotFound, route, err.Error())
			default:
				respondWithError(c, http.StatusInternalServerError, route, "storage error")
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": lines})
	}
}

func RemoveCartItem(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /cart/items/:id"
		defer handlePanic(c, route)

		productID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid product id")
			return
		}

		lines, err := svc.RemoveItem(c.Request.Context(), productID)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "storage error")
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": lines})
	}
}

func ClearCart(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /cart"
		defer handlePanic(c, route)

		if err := svc.Clear(c.Request.Context()); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "storage error")
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": []models.CartLine{}})
	}
}

// ApplyPromo validates a promotional code against the current subtotal and
// returns the discount it would grant. The cart itself is untouched; the
// discount is applied for real at checkout.
func ApplyPromo(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /cart/promo"
		defer handlePanic(c, route)

		var req applyPromoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		subtotal := cart.Subtotal(svc.Items(c.Request.Context()))
		discount, err := svc.Discount(subtotal, req.Code)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "Código promocional inválido")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"subtotal": subtotal,
			"discount": discount,
		})
	}
}
