package orders

import (
	"errors"
	"fmt"

	"github.com/br00tm/DeliverIA/internal/models"
)

// ErrEmptyCart rejects a checkout with nothing in the cart.
var ErrEmptyCart = errors.New("cannot checkout an empty cart")

// ErrInvalidPaymentMethod rejects a payment method outside pix, card and cash.
var ErrInvalidPaymentMethod = errors.New("invalid payment method")

// ErrInvalidFilter rejects an unknown ledger filter name.
var ErrInvalidFilter = errors.New("invalid order filter")

// NotFoundError reports an operation referencing an order id not present in
// the ledger. The caller decides the fallback; this never crashes a view.
type NotFoundError struct {
	OrderID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("order %s not found", e.OrderID)
}

// InvalidTransitionError reports a status change the state machine forbids,
// such as confirming payment on a cancelled order.
type InvalidTransitionError struct {
	OrderID string
	From    models.OrderStatus
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("order %s cannot leave status %q", e.OrderID, e.From)
}
