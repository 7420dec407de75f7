// Package cart owns the shopping cart aggregate: one line per product id,
// insertion order preserved, quantity never below 1. The cart is not held in
// memory between calls; every operation rebuilds it from storage, mutates,
// persists the whole sequence and then publishes the change.
package cart

import (
	"context"
	"fmt"
	"strings"

	"github.com/br00tm/DeliverIA/internal/bus"
	"github.com/br00tm/DeliverIA/internal/menu"
	"github.com/br00tm/DeliverIA/internal/models"
	"github.com/br00tm/DeliverIA/internal/storage"
)

type Service struct {
	store     storage.Store
	bus       *bus.Bus
	promoCode string
	promoRate float64
}

func NewService(store storage.Store, b *bus.Bus, promoCode string, promoRate float64) *Service {
	return &Service{
		store:     store,
		bus:       b,
		promoCode: promoCode,
		promoRate: promoRate,
	}
}

// Items returns the current cart lines.
func (s *Service) Items(ctx context.Context) []models.CartLine {
	return s.load(ctx)
}

// AddItem merges the product into the cart: an existing line for the same
// product id has its quantity incremented, otherwise a new line is appended.
func (s *Service) AddItem(ctx context.Context, p models.Product, quantity int) ([]models.CartLine, error) {
	if quantity < 1 {
		return nil, ErrQuantityTooLow
	}

	lines := s.load(ctx)

	merged := false
	for i := range lines {
		if lines[i].ID == p.ID {
			lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		if !strings.HasPrefix(p.Image, "http") {
			p.Image = menu.FallbackImage(p.Name)
		}
		lines = append(lines, models.LineFromProduct(p, quantity))
	}

	return lines, s.persist(ctx, lines)
}

// UpdateQuantity sets an existing line to newQuantity. Values below 1 are
// rejected without touching the cart.
func (s *Service) UpdateQuantity(ctx context.Context, productID, newQuantity int) ([]models.CartLine, error) {
	if newQuantity < 1 {
		return nil, ErrQuantityTooLow
	}

	lines := s.load(ctx)
	for i := range lines {
		if lines[i].ID == productID {
			lines[i].Quantity = newQuantity
			return lines, s.persist(ctx, lines)
		}
	}
	return nil, LineNotFoundError{ProductID: productID}
}

// RemoveItem deletes the line for productID. Removing an absent line succeeds
// and leaves the cart untouched.
func (s *Service) RemoveItem(ctx context.Context, productID int) ([]models.CartLine, error) {
	lines := s.load(ctx)

	kept := lines[:0:0]
	for _, line := range lines {
		if line.ID != productID {
			kept = append(kept, line)
		}
	}
	if len(kept) == len(lines) {
		return lines, nil
	}
	return kept, s.persist(ctx, kept)
}

// Clear empties the cart.
func (s *Service) Clear(ctx context.Context) error {
	return s.persist(ctx, []models.CartLine{})
}

// Discount resolves a promotional code against the subtotal. Unknown codes
// are rejected; the cart is never mutated here.
func (s *Service) Discount(subtotal float64, code string) (float64, error) {
	if strings.EqualFold(strings.TrimSpace(code), s.promoCode) {
		return subtotal * s.promoRate, nil
	}
	return 0, ErrPromoInvalid
}

func (s *Service) load(ctx context.Context) []models.CartLine {
	return Sanitize(storage.LoadList[models.CartLine](ctx, s.store, storage.KeyCart))
}

func (s *Service) persist(ctx context.Context, lines []models.CartLine) error {
	if err := storage.SaveList(ctx, s.store, storage.KeyCart, lines); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	s.bus.Publish(bus.TopicCartUpdated, lines)
	return nil
}

// Sanitize drops records that violate the cart invariants: a missing product
// id or a quantity below 1. Stored values are not trusted to be well formed.
func Sanitize(lines []models.CartLine) []models.CartLine {
	valid := lines[:0:0]
	for _, line := range lines {
		if line.ID <= 0 || line.Quantity < 1 {
			continue
		}
		valid = append(valid, line)
	}
	return valid
}

// Subtotal sums price times quantity over the lines. Pure.
func Subtotal(lines []models.CartLine) float64 {
	total := 0.0
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// Total computes subtotal plus delivery fee minus discount, floored at zero so
// an oversized discount can never produce a negative charge.
func Total(subtotal, deliveryFee, discount float64) float64 {
	total := subtotal + deliveryFee - discount
	if total < 0 {
		return 0
	}
	return total
}
