package menu_test

import (
	"context"
	"strings"
	"testing"

	"github.com/br00tm/DeliverIA/internal/bus"
	"github.com/br00tm/DeliverIA/internal/menu"
	"github.com/br00tm/DeliverIA/internal/models"
	"github.com/br00tm/DeliverIA/internal/storage/memstore"
)

func newTestService() (*menu.Service, *memstore.Store) {
	store := memstore.New()
	return menu.NewService(store, bus.New()), store
}

func TestMergedStartsWithStaticCatalog(t *testing.T) {
	svc, _ := newTestService()

	catalog := svc.Merged(context.Background())
	if len(catalog) != 8 {
		t.Fatalf("expected the 8 built-in meals, got %d", len(catalog))
	}
	if catalog[0].Name != "Bowl Proteico de Frango" {
		t.Fatalf("unexpected first meal: %s", catalog[0].Name)
	}
}

func TestStaticCatalogWinsOnIdCollision(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	clash := models.Product{ID: 1, Name: "Impostor", Price: 1}
	if err := svc.RecordGenerated(ctx, clash); err != nil {
		t.Fatalf("RecordGenerated returned error: %v", err)
	}

	for _, p := range svc.Merged(ctx) {
		if p.ID == 1 && p.Name != "Bowl Proteico de Frango" {
			t.Fatalf("generated item shadowed static product: %s", p.Name)
		}
	}
}

func TestRecordGeneratedAppendsAndDeduplicates(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	generated := models.Product{ID: 101, Name: "Prato Personalizado", Price: 27.50, Image: "https://example.com/p.jpg"}
	if err := svc.RecordGenerated(ctx, generated); err != nil {
		t.Fatalf("RecordGenerated returned error: %v", err)
	}
	if err := svc.RecordGenerated(ctx, generated); err != nil {
		t.Fatalf("second RecordGenerated returned error: %v", err)
	}

	count := 0
	for _, p := range svc.Merged(ctx) {
		if p.ID == 101 {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected one instance of generated item, got %d", count)
	}
}

func TestRecordGeneratedDefaultsImageAndTags(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if err := svc.RecordGenerated(ctx, models.Product{ID: 102, Name: "Omelete da Casa", Price: 22}); err != nil {
		t.Fatalf("RecordGenerated returned error: %v", err)
	}

	for _, p := range svc.Merged(ctx) {
		if p.ID != 102 {
			continue
		}
		if !strings.HasPrefix(p.Image, "http") {
			t.Fatalf("expected fallback image, got %q", p.Image)
		}
		if len(p.Tags) == 0 {
			t.Fatal("expected default tags on generated item")
		}
		if p.Category != "ia-recommend" {
			t.Fatalf("expected generated category, got %q", p.Category)
		}
		return
	}
	t.Fatal("generated item missing from merged catalog")
}

func TestFilterByCategoryAndSearch(t *testing.T) {
	catalog := menu.StaticCatalog()

	bowls := menu.Filter(catalog, "bowls", "")
	if len(bowls) != 2 {
		t.Fatalf("expected 2 bowls, got %d", len(bowls))
	}

	all := menu.Filter(catalog, "all", "")
	if len(all) != len(catalog) {
		t.Fatalf("category all should match everything, got %d", len(all))
	}

	salmon := menu.Filter(catalog, "", "salmão")
	if len(salmon) != 1 || salmon[0].ID != 3 {
		t.Fatalf("expected only the salmon wrap, got %v", salmon)
	}

	if got := menu.Filter(catalog, "", "WRAP"); len(got) != 1 {
		t.Fatalf("search should be case-insensitive, got %v", got)
	}
}

func TestFallbackImageIsTotal(t *testing.T) {
	cases := map[string]bool{
		"Bowl Proteico de Frango": true,
		"Salada Mediterrânea":     true,
		"Wrap de Salmão":          true,
		"Bowl Vegano Tropical":    true,
		"Omelete Low-carb":        true,
		"Pudim Proteico":          true,
		"Buddha Bowl":             true,
		"Bowl de Açaí":            true,
		"":                        true,
		"Prato Misterioso":        true,
	}
	for name := range cases {
		if url := menu.FallbackImage(name); !strings.HasPrefix(url, "http") {
			t.Fatalf("FallbackImage(%q) returned %q", name, url)
		}
	}
}

func TestFallbackImageKeywordMatch(t *testing.T) {
	frango := menu.FallbackImage("Frango Grelhado")
	salada := menu.FallbackImage("Salada Verde")
	unknown := menu.FallbackImage("Prato Misterioso")

	if frango == salada {
		t.Fatal("expected distinct images for distinct keywords")
	}
	if unknown != menu.FallbackImage("Outra Coisa") {
		t.Fatal("expected stable default image for unmatched names")
	}
	if menu.FallbackImage("FRANGO assado") != frango {
		t.Fatal("keyword match should be case-insensitive")
	}
}

func TestCorruptMenuStorageIsIgnored(t *testing.T) {
	svc, store := newTestService()

	store.Corrupt("menu", []byte("][ broken"))
	if got := svc.Merged(context.Background()); len(got) != 8 {
		t.Fatalf("expected static catalog despite corrupt storage, got %d items", len(got))
	}
}
