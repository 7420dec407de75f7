package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/br00tm/DeliverIA/internal/cart"
	"github.com/br00tm/DeliverIA/internal/models"
	"github.com/br00tm/DeliverIA/internal/orders"
)

/* =========================
   REQUEST DTOs
========================= */

type checkoutAddressRequest struct {
	Street       string `json:"street" binding:"required"`
	Number       string `json:"number" binding:"required"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood" binding:"required"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	ZipCode      string `json:"zipCode" binding:"required"`
	Note         string `json:"note"`
}

type checkoutRequest struct {
	Address       checkoutAddressRequest `json:"address" binding:"required"`
	PaymentMethod string                 `json:"paymentMethod" binding:"required"`
	PromoCode     string                 `json:"promoCode"`
}

/* =========================
   CHECKOUT
========================= */

func CreateOrder(svc *orders.Service, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"
		defer handlePanic(c, route)

		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		customerID, err := customerIDFromHeader(c.GetHeader("Authorization"), jwtSecret)
		if err != nil {
			log.Println("[ORDER] [ERROR] token validation failed:", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		order, err := svc.Checkout(c.Request.Context(), orders.CheckoutInput{
			Address:       models.Address(req.Address),
			PaymentMethod: req.PaymentMethod,
			PromoCode:     req.PromoCode,
			CustomerID:    customerID,
		})
		if err != nil {
			switch {
			case errors.Is(err, orders.ErrEmptyCart),
				errors.Is(err, orders.ErrInvalidPaymentMethod),
				errors.Is(err, cart.ErrPromoInvalid):
				respondWithError(c, http.StatusBadRequest, route, err.Error())
			default:
				respondWithError(c, http.StatusInternalServerError, route, "storage error")
			}
			return
		}

		if customerID != "" {
			log.Println("[ORDER] [INFO] order created for customer:", customerID)
		} else {
			log.Println("[ORDER] [INFO] guest order created")
		}

		c.JSON(http.StatusCreated, gin.H{
			"orderId": order.ID,
			"order":   order,
			"message": "order created",
		})
	}
}

/* =========================
   LEDGER READS
========================= */

func GetOrders(svc *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders"
		defer handlePanic(c, route)

		filter, err := orders.ParseFilter(c.Query("filter"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		c.JSON(http.StatusOK, svc.List(c.Request.Context(), filter))
	}
}

func GetOrder(svc *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders/:id"
		defer handlePanic(c, route)

		order, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondOrderError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func GetOrderTracking(svc *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders/:id/tracking"
		defer handlePanic(c, route)

		info, err := svc.Tracking(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondOrderError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, info)
	}
}

/* =========================
   STATUS TRANSITIONS
========================= */

func CancelOrder(svc *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders/:id/cancel"
		defer handlePanic(c, route)

		order, err := svc.Cancel(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondOrderError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func AdvanceOrder(svc *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders/:id/advance"
		defer handlePanic(c, route)

		order, err := svc.Advance(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondOrderError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func respondOrderError(c *gin.Context, route string, err error) {
	var notFound orders.NotFoundError
	var invalid orders.InvalidTransitionError
	switch {
	case errors.As(err, &notFound):
		respondWithError(c, http.StatusNotFound, route, err.Error())
	case errors.As(err, &invalid):
		respondWithError(c, http.StatusConflict, route, err.Error())
	default:
		respondWithError(c, http.StatusInternalServerError, route, "storage error")
	}
}
