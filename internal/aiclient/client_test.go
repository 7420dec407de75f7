package aiclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/br00tm/DeliverIA/internal/aiclient"
)

func newBackend(t *testing.T, handler http.HandlerFunc) *aiclient.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return aiclient.New(srv.URL, 2*time.Second)
}

func TestRecommendationsNormalizesResponse(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/recommendations" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req aiclient.RecommendationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if req.Preferences.CuisineType != "brasileira" {
			t.Errorf("unexpected cuisine_type %q", req.Preferences.CuisineType)
		}
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 201, "name": "Salada Tropical", "price": 0, "image": ""},
			{"id": 202, "name": "Frango Grelhado", "price": 32.50, "image": "https://x/frango.jpg"},
		})
	})

	meals, err := client.Recommendations(context.Background(), aiclient.RecommendationRequest{
		Preferences: aiclient.UserPreferences{CuisineType: "brasileira", MealType: "almoço"},
	})
	if err != nil {
		t.Fatalf("Recommendations returned error: %v", err)
	}
	if len(meals) != 2 {
		t.Fatalf("expected 2 meals, got %d", len(meals))
	}
	if meals[0].Image == "" {
		t.Fatal("expected fallback image for meal without one")
	}
	if meals[0].Price < 25 || meals[0].Price > 45 {
		t.Fatalf("expected mock price in [25,45), got %v", meals[0].Price)
	}
	if meals[1].Image != "https://x/frango.jpg" || meals[1].Price != 32.50 {
		t.Fatalf("meal with image and price must pass through unchanged: %+v", meals[1])
	}
}

func TestRecommendationsBackendFailure(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Recommendations(context.Background(), aiclient.RecommendationRequest{})
	var remote *aiclient.RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if remote.Status != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", remote.Status)
	}
}

func TestRecommendationsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := aiclient.New(srv.URL, time.Second)

	_, err := client.Recommendations(context.Background(), aiclient.RecommendationRequest{})
	var remote *aiclient.RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("expected RemoteError on unreachable backend, got %v", err)
	}
	if remote.Err == nil {
		t.Fatal("transport failures must carry the underlying error")
	}
}

func TestCustomMenuDefaultsItemCount(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/menu/custom" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req struct {
			Preferences string `json:"preferences"`
			ItemCount   int    `json:"item_count"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		if req.ItemCount != 4 {
			t.Errorf("expected default item_count 4, got %d", req.ItemCount)
		}
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 301, "name": "Prato Personalizado", "price": 28.0, "image": "https://x/p.jpg"},
		})
	})

	items, err := client.CustomMenu(context.Background(), "sem glúten", 0)
	if err != nil {
		t.Fatalf("CustomMenu returned error: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Prato Personalizado" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestMealNotFound(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	if _, err := client.Meal(context.Background(), 999); err != aiclient.ErrMealNotFound {
		t.Fatalf("expected ErrMealNotFound, got %v", err)
	}
}

func TestMealByID(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/meals/3" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{"id": 3, "name": "Salmão Grelhado", "price": 48.90})
	})

	meal, err := client.Meal(context.Background(), 3)
	if err != nil {
		t.Fatalf("Meal returned error: %v", err)
	}
	if meal.ID != 3 || meal.Name != "Salmão Grelhado" {
		t.Fatalf("unexpected meal: %+v", meal)
	}
}

func TestCreatePixPayment(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/payment/pix" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req struct {
			OrderID string  `json:"order_id"`
			Amount  float64 `json:"amount"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		json.NewEncoder(w).Encode(aiclient.PixCharge{
			OrderID:    req.OrderID,
			Amount:     req.Amount,
			PixKey:     "pagamento@deliveria.com.br",
			QRCodeURL:  "https://x/qr.png",
			Expiration: 900,
			Status:     "pending",
		})
	})

	charge, err := client.CreatePixPayment(context.Background(), "order-1", 66.92, "Pedido DeliverIA")
	if err != nil {
		t.Fatalf("CreatePixPayment returned error: %v", err)
	}
	if charge.OrderID != "order-1" || charge.Amount != 66.92 {
		t.Fatalf("charge does not echo the request: %+v", charge)
	}
	if charge.PixKey == "" || charge.QRCodeURL == "" {
		t.Fatalf("expected pix key and qr code, got %+v", charge)
	}
}

func TestApplyCashback(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/loyalty/cashback" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(aiclient.Cashback{
			UserID:         "user-1",
			OrderID:        "order-1",
			OriginalAmount: 66.92,
			CashbackAmount: 6.69,
			Status:         "applied",
		})
	})

	cb, err := client.ApplyCashback(context.Background(), "user-1", "order-1", 66.92)
	if err != nil {
		t.Fatalf("ApplyCashback returned error: %v", err)
	}
	if cb.CashbackAmount != 6.69 || cb.Status != "applied" {
		t.Fatalf("unexpected cashback: %+v", cb)
	}
}

func TestFallbackRecommendations(t *testing.T) {
	meals := aiclient.FallbackRecommendations()
	if len(meals) != 3 {
		t.Fatalf("expected 3 fallback meals, got %d", len(meals))
	}
	for _, m := range meals {
		if m.AIExplanation == "" {
			t.Fatalf("fallback meal %d missing explanation", m.ID)
		}
		if m.Image == "" || m.Price <= 0 {
			t.Fatalf("fallback meal %d incomplete: %+v", m.ID, m)
		}
	}

	meals[0].Name = "mutated"
	if again := aiclient.FallbackRecommendations(); again[0].Name == "mutated" {
		t.Fatal("fallback dataset must not be mutable by callers")
	}
}
