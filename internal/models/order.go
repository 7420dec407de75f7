package models

import "time"

// OrderStatus is the persisted order state. Richer tracking stages shown to the
// customer are derived from it at read time, never stored.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusOnTheWay  OrderStatus = "ontheway"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// Terminal reports whether no further transition is allowed from the status.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Address captures the delivery destination collected at checkout.
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	Note         string `json:"note,omitempty"`
}

// Order is a persisted ledger entry. Items are a by-value snapshot of the cart
// at checkout time; only the status and payment stamp mutate afterwards.
type Order struct {
	ID                 string      `json:"id"`
	CustomerID         string      `json:"customerId,omitempty"`
	Items              []CartLine  `json:"items"`
	Subtotal           float64     `json:"subtotal"`
	DeliveryFee        float64     `json:"deliveryFee"`
	Discount           float64     `json:"discount"`
	Total              float64     `json:"total"`
	Address            Address     `json:"address"`
	PaymentMethod      string      `json:"paymentMethod"`
	Status             OrderStatus `json:"status"`
	CreatedAt          time.Time   `json:"date"`
	PaymentConfirmedAt *time.Time  `json:"paymentDate,omitempty"`
}
