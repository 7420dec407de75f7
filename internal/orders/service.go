// Package orders owns the order ledger: an append-only, newest-first sequence
// of finalized orders. An order is created at checkout from a by-value cart
// snapshot and afterwards only its status and payment stamp may change.
package orders

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/br00tm/DeliverIA/internal/bus"
	"github.com/br00tm/DeliverIA/internal/cart"
	"github.com/br00tm/DeliverIA/internal/models"
	"github.com/br00tm/DeliverIA/internal/storage"
)

// Filter selects a ledger slice for listing.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterDelivered Filter = "delivered"
)

// ParseFilter maps a query value onto a Filter. Empty means all.
func ParseFilter(value string) (Filter, error) {
	switch Filter(value) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterPending:
		return FilterPending, nil
	case FilterDelivered:
		return FilterDelivered, nil
	}
	return "", ErrInvalidFilter
}

type Service struct {
	store       storage.Store
	bus         *bus.Bus
	cart        *cart.Service
	deliveryFee float64

	// paidStatus is the status a pending order moves to when its payment is
	// confirmed. The storefront historically jumped straight to delivered;
	// setting ontheway instead yields the full pending->ontheway->delivered
	// progression with delivery completed via Advance.
	paidStatus models.OrderStatus

	now   func() time.Time
	newID func() string
}

func NewService(store storage.Store, b *bus.Bus, cartSvc *cart.Service, deliveryFee float64, paidStatus models.OrderStatus) *Service {
	if paidStatus != models.StatusOnTheWay {
		paidStatus = models.StatusDelivered
	}
	return &Service{
		store:       store,
		bus:         b,
		cart:        cartSvc,
		deliveryFee: deliveryFee,
		paidStatus:  paidStatus,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// CheckoutInput is everything checkout needs beyond the cart itself.
type CheckoutInput struct {
	Address       models.Address
	PaymentMethod string
	PromoCode     string
	CustomerID    string
}

// Checkout snapshots the cart into a new pending order, prepends it to the
// ledger, clears the cart and announces both changes. The snapshot is a copy:
// later cart mutations cannot reach into the stored order.
func (s *Service) Checkout(ctx context.Context, in CheckoutInput) (models.Order, error) {
	switch in.PaymentMethod {
	case "pix", "card", "cash":
	default:
		return models.Order{}, ErrInvalidPaymentMethod
	}

	lines := s.cart.Items(ctx)
	if len(lines) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	snapshot := make([]models.CartLine, len(lines))
	copy(snapshot, lines)

	subtotal := cart.Subtotal(snapshot)

	discount := 0.0
	if in.PromoCode != "" {
		d, err := s.cart.Discount(subtotal, in.PromoCode)
		if err != nil {
			return models.Order{}, err
		}
		discount = d
	}

	order := models.Order{
		ID:            s.newID(),
		CustomerID:    in.CustomerID,
		Items:         snapshot,
		Subtotal:      subtotal,
		DeliveryFee:   s.deliveryFee,
		Discount:      discount,
		Total:         cart.Total(subtotal, s.deliveryFee, discount),
		Address:       in.Address,
		PaymentMethod: in.PaymentMethod,
		Status:        models.StatusPending,
		CreatedAt:     s.now(),
	}

	ledger := append([]models.Order{order}, s.load(ctx)...)
	if err := s.persist(ctx, ledger); err != nil {
		return models.Order{}, err
	}

	if err := s.cart.Clear(ctx); err != nil {
		// The order is already in the ledger; a stale cart is recoverable,
		// a lost order is not.
		log.Printf("[ORDERS] [ERROR] cart clear after checkout failed: %v", err)
	}

	log.Printf("[ORDERS] [INFO] order %s created, total %.2f", order.ID, order.Total)
	return order, nil
}

// ConfirmPayment moves a pending order to the configured paid status and
// stamps the confirmation time.
func (s *Service) ConfirmPayment(ctx context.Context, orderID string) (models.Order, error) {
	return s.transition(ctx, orderID, func(o *models.Order) error {
		if o.Status != models.StatusPending {
			return InvalidTransitionError{OrderID: o.ID, From: o.Status}
		}
		confirmedAt := s.now()
		o.Status = s.paidStatus
		o.PaymentConfirmedAt = &confirmedAt
		return nil
	})
}

// Advance moves an order one step along pending -> ontheway -> delivered.
func (s *Service) Advance(ctx context.Context, orderID string) (models.Order, error) {
	return s.transition(ctx, orderID, func(o *models.Order) error {
		switch o.Status {
		case models.StatusPending:
			o.Status = models.StatusOnTheWay
		case models.StatusOnTheWay:
			o.Status = models.StatusDelivered
		default:
			return InvalidTransitionError{OrderID: o.ID, From: o.Status}
		}
		return nil
	})
}

// Cancel aborts a pending order. Anything past pending is already on its way
// and can no longer be cancelled.
func (s *Service) Cancel(ctx context.Context, orderID string) (models.Order, error) {
	return s.transition(ctx, orderID, func(o *models.Order) error {
		if o.Status != models.StatusPending {
			return InvalidTransitionError{OrderID: o.ID, From: o.Status}
		}
		o.Status = models.StatusCancelled
		return nil
	})
}

// List returns the ledger newest first, optionally narrowed by filter. Pure
// read, no mutation.
func (s *Service) List(ctx context.Context, filter Filter) []models.Order {
	ledger := s.load(ctx)
	if filter == FilterAll || filter == "" {
		return ledger
	}

	matched := ledger[:0:0]
	for _, o := range ledger {
		if Filter(o.Status) == filter {
			matched = append(matched, o)
		}
	}
	return matched
}

// Get finds one order by id.
func (s *Service) Get(ctx context.Context, orderID string) (models.Order, error) {
	for _, o := range s.load(ctx) {
		if o.ID == orderID {
			return o, nil
		}
	}
	return models.Order{}, NotFoundError{OrderID: orderID}
}

func (s *Service) transition(ctx context.Context, orderID string, apply func(*models.Order) error) (models.Order, error) {
	ledger := s.load(ctx)
	for i := range ledger {
		if ledger[i].ID != orderID {
			continue
		}
		if err := apply(&ledger[i]); err != nil {
			return models.Order{}, err
		}
		if err := s.persist(ctx, ledger); err != nil {
			return models.Order{}, err
		}
		return ledger[i], nil
	}
	return models.Order{}, NotFoundError{OrderID: orderID}
}

func (s *Service) load(ctx context.Context) []models.Order {
	ledger := storage.LoadList[models.Order](ctx, s.store, storage.KeyOrders)

	valid := ledger[:0:0]
	for _, o := range ledger {
		if o.ID == "" {
			continue
		}
		valid = append(valid, o)
	}
	return valid
}

func (s *Service) persist(ctx context.Context, ledger []models.Order) error {
	if err := storage.SaveList(ctx, s.store, storage.KeyOrders, ledger); err != nil {
		return fmt.Errorf("persist orders: %w", err)
	}
	s.bus.Publish(bus.TopicOrdersUpdated, ledger)
	return nil
}
