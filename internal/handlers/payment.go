package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/br00tm/DeliverIA/internal/aiclient"
	"github.com/br00tm/DeliverIA/internal/models"
	"github.com/br00tm/DeliverIA/internal/orders"
)

type confirmPaymentRequest struct {
	ApplyCashback bool `json:"applyCashback"`
}

// CreatePixPayment opens a PIX charge for a pending order through the
// payment backend and relays the key and QR code to the caller.
func CreatePixPayment(svc *orders.Service, ai *aiclient.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders/:id/payment/pix"
		defer handlePanic(c, route)

		order, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondOrderError(c, route, err)
			return
		}
		if order.Status != models.StatusPending {
			respondWithError(c, http.StatusConflict, route, "order is not awaiting payment")
			return
		}

		description := fmt.Sprintf("Pedido DeliverIA %s", order.ID)
		charge, err := ai.CreatePixPayment(c.Request.Context(), order.ID, order.Total, description)
		if err != nil {
			log.Printf("[%s] payment backend error: %v", route, err)
			respondWithError(c, http.StatusBadGateway, route, "payment service unavailable, try again")
			return
		}

		c.JSON(http.StatusOK, charge)
	}
}

// ConfirmPayment marks a pending order as paid and optionally applies loyalty
// cashback. Cashback failure does not undo the confirmation; the customer can
// claim it again later.
func ConfirmPayment(svc *orders.Service, ai *aiclient.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders/:id/payment/confirm"
		defer handlePanic(c, route)

		var req confirmPaymentRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid request body")
				return
			}
		}

		order, err := svc.ConfirmPayment(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondOrderError(c, route, err)
			return
		}

		response := gin.H{"order": order, "message": "payment confirmed"}

		if req.ApplyCashback && order.CustomerID != "" {
			cashback, err := ai.ApplyCashback(c.Request.Context(), order.CustomerID, order.ID, order.Total)
			if err != nil {
				log.Printf("[%s] cashback error: %v", route, err)
				response["cashbackError"] = "cashback service unavailable, try again"
			} else {
				response["cashback"] = cashback
			}
		}

		c.JSON(http.StatusOK, response)
	}
}
