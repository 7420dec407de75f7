// Package aiclient talks to the external DeliverIA backend: AI meal
// recommendations, custom menu generation, the simulated PIX payment gateway
// and the loyalty cashback service. Every call is retryable by re-invoking it;
// the recommendation flow additionally has an offline fallback dataset so the
// wizard keeps working when the backend is down.
package aiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/br00tm/DeliverIA/internal/menu"
	"github.com/br00tm/DeliverIA/internal/models"
)

// ErrMealNotFound is returned when the backend has no meal for the id.
var ErrMealNotFound = errors.New("meal not found")

// RemoteError reports an unreachable backend or a non-2xx reply. The same
// call can simply be issued again.
type RemoteError struct {
	Op     string
	Status int
	Err    error
}

func (e *RemoteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: backend returned %d", e.Op, e.Status)
}

func (e *RemoteError) Unwrap() error { return e.Err }

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// UserPreferences mirrors the recommendation backend's request schema.
type UserPreferences struct {
	CuisineType      string   `json:"cuisine_type"`
	MealType         string   `json:"meal_type"`
	SpiceLevel       int      `json:"spice_level"`
	PreferredProtein []string `json:"preferred_protein"`
}

// RecommendationRequest is the payload for POST /recommendations.
type RecommendationRequest struct {
	Preferences         UserPreferences `json:"preferences"`
	DietaryRestrictions []string        `json:"dietary_restrictions"`
	CaloriesRange       []int           `json:"calories_range"`
	Goals               string          `json:"goals,omitempty"`
}

// Recommendations asks the backend for personalized meals. Responses are
// normalized: missing images go through the keyword fallback and missing
// prices get a mock value, as the storefront always did.
func (c *Client) Recommendations(ctx context.Context, req RecommendationRequest) ([]models.Product, error) {
	var meals []models.Product
	if err := c.post(ctx, "/recommendations", req, &meals); err != nil {
		return nil, err
	}
	return normalize(meals), nil
}

type customMenuRequest struct {
	Preferences string `json:"preferences"`
	ItemCount   int    `json:"item_count"`
}

// CustomMenu generates itemCount menu items from free-text preferences.
func (c *Client) CustomMenu(ctx context.Context, preferences string, itemCount int) ([]models.Product, error) {
	if itemCount <= 0 {
		itemCount = 4
	}
	var items []models.Product
	if err := c.post(ctx, "/menu/custom", customMenuRequest{Preferences: preferences, ItemCount: itemCount}, &items); err != nil {
		return nil, err
	}
	return normalize(items), nil
}

// Meals lists every available meal on the backend.
func (c *Client) Meals(ctx context.Context) ([]models.Product, error) {
	var meals []models.Product
	if err := c.get(ctx, "/meals", &meals); err != nil {
		return nil, err
	}
	return normalize(meals), nil
}

// Meal fetches one meal by id.
func (c *Client) Meal(ctx context.Context, id int) (models.Product, error) {
	var meal models.Product
	if err := c.get(ctx, fmt.Sprintf("/meals/%d", id), &meal); err != nil {
		var remote *RemoteError
		if errors.As(err, &remote) && remote.Status == http.StatusNotFound {
			return models.Product{}, ErrMealNotFound
		}
		return models.Product{}, err
	}
	return meal, nil
}

type pixRequest struct {
	OrderID     string  `json:"order_id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// PixCharge is the simulated gateway's reply to a PIX payment request.
type PixCharge struct {
	OrderID    string  `json:"order_id"`
	Amount     float64 `json:"amount"`
	PixKey     string  `json:"pix_key"`
	QRCodeURL  string  `json:"qr_code_url"`
	Expiration int     `json:"expiration"`
	Status     string  `json:"status"`
}

// CreatePixPayment opens a PIX charge for an order total.
func (c *Client) CreatePixPayment(ctx context.Context, orderID string, amount float64, description string) (PixCharge, error) {
	var charge PixCharge
	err := c.post(ctx, "/payment/pix", pixRequest{OrderID: orderID, Amount: amount, Description: description}, &charge)
	return charge, err
}

type cashbackRequest struct {
	UserID  string  `json:"user_id"`
	OrderID string  `json:"order_id"`
	Amount  float64 `json:"amount"`
}

// Cashback is the loyalty service's reply.
type Cashback struct {
	UserID         string  `json:"user_id"`
	OrderID        string  `json:"order_id"`
	OriginalAmount float64 `json:"original_amount"`
	CashbackAmount float64 `json:"cashback_amount"`
	Status         string  `json:"status"`
}

// ApplyCashback credits loyalty cashback for a paid order.
func (c *Client) ApplyCashback(ctx context.Context, userID, orderID string, amount float64) (Cashback, error) {
	var cb Cashback
	err := c.post(ctx, "/loyalty/cashback", cashbackRequest{UserID: userID, OrderID: orderID, Amount: amount}, &cb)
	return cb, err
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, path, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, path, out)
}

func (c *Client) do(req *http.Request, op string, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return &RemoteError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return &RemoteError{Op: op, Status: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RemoteError{Op: op, Err: err}
	}
	return nil
}

// normalize fills the gaps the backend is allowed to leave: a stock image for
// meals without one and a mock price between 25 and 45.
func normalize(meals []models.Product) []models.Product {
	for i := range meals {
		if !strings.HasPrefix(meals[i].Image, "http") {
			meals[i].Image = menu.FallbackImage(meals[i].Name)
		}
		if meals[i].Price == 0 {
			meals[i].Price = 25 + rand.Float64()*20
		}
	}
	return meals
}
