// Package menu owns the catalog aggregate: the built-in menu merged with the
// AI-generated items the recommendation flow persists, de-duplicated by id
// with the static side winning.
package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/br00tm/DeliverIA/internal/bus"
	"github.com/br00tm/DeliverIA/internal/models"
	"github.com/br00tm/DeliverIA/internal/storage"
)

// generatedCategory marks items that came out of the recommendation flow.
const generatedCategory = "ia-recommend"

type Service struct {
	store storage.Store
	bus   *bus.Bus
}

func NewService(store storage.Store, b *bus.Bus) *Service {
	return &Service{store: store, bus: b}
}

// Merged returns the static catalog followed by the persisted generated
// items. A generated item whose id collides with a static product, or with an
// earlier generated one, is suppressed.
func (s *Service) Merged(ctx context.Context) []models.Product {
	catalog := StaticCatalog()

	seen := make(map[int]bool, len(catalog))
	for _, p := range catalog {
		seen[p.ID] = true
	}

	for _, p := range s.generated(ctx) {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		catalog = append(catalog, p)
	}
	return catalog
}

// Filter narrows a catalog by category id and a case-insensitive name search.
// Category "all" or "" matches everything.
func Filter(catalog []models.Product, category, search string) []models.Product {
	search = strings.ToLower(strings.TrimSpace(search))

	matched := catalog[:0:0]
	for _, p := range catalog {
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

// RecordGenerated appends a generated product to the persisted menu unless
// its id already exists in the merged catalog. Missing images fall back to
// the keyword lookup. Recording a duplicate is a silent no-op.
func (s *Service) RecordGenerated(ctx context.Context, p models.Product) error {
	for _, existing := range staticCatalog {
		if existing.ID == p.ID {
			return nil
		}
	}

	items := s.generated(ctx)
	for _, existing := range items {
		if existing.ID == p.ID {
			return nil
		}
	}

	if !strings.HasPrefix(p.Image, "http") {
		p.Image = FallbackImage(p.Name)
	}
	if len(p.Tags) == 0 {
		p.Tags = models.StringList{"Personalizado"}
	}
	p.Category = generatedCategory

	items = append(items, p)
	if err := storage.SaveList(ctx, s.store, storage.KeyMenu, items); err != nil {
		return fmt.Errorf("persist generated menu: %w", err)
	}
	s.bus.Publish(bus.TopicMenuUpdated, items)
	return nil
}

func (s *Service) generated(ctx context.Context) []models.Product {
	items := storage.LoadList[models.Product](ctx, s.store, storage.KeyMenu)

	valid := items[:0:0]
	for _, p := range items {
		if p.ID <= 0 {
			continue
		}
		valid = append(valid, p)
	}
	return valid
}
