package cart

import (
	"errors"
	"fmt"
)

// ErrQuantityTooLow is returned when an operation would take a line quantity
// below 1. Removal is a separate operation; quantity 0 is never stored.
var ErrQuantityTooLow = errors.New("quantity must be at least 1")

// ErrPromoInvalid is returned for an unknown promotional code.
var ErrPromoInvalid = errors.New("invalid promotional code")

// LineNotFoundError reports an operation that referenced a product id with no
// line in the cart.
type LineNotFoundError struct {
	ProductID int
}

func (e LineNotFoundError) Error() string {
	return fmt.Sprintf("no cart line for product %d", e.ProductID)
}
