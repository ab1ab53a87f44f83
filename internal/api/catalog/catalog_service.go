package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/foodie-express/foodie-server/internal/api"
	"github.com/foodie-express/foodie-server/internal/types"
)

var _ CatalogService = (*CatalogServiceImpl)(nil)

// CatalogService exposes the read-only reference dataset compiled into
// the binary.
type CatalogService interface {
	Restaurants(ctx context.Context) []types.Restaurant
	GetRestaurant(ctx context.Context, id string) (*types.Restaurant, error)
	GetMenuItem(ctx context.Context, restaurantID, itemID string) (*types.MenuItem, error)
	Categories(ctx context.Context) []string
}

type CatalogServiceImpl struct {
	logger *slog.Logger
}

func NewCatalogService(logger *slog.Logger) *CatalogServiceImpl {
	return &CatalogServiceImpl{logger: logger}
}

func (s *CatalogServiceImpl) Restaurants(_ context.Context) []types.Restaurant {
	out := make([]types.Restaurant, len(restaurants))
	copy(out, restaurants)
	return out
}

func (s *CatalogServiceImpl) GetRestaurant(_ context.Context, id string) (*types.Restaurant, error) {
	for i := range restaurants {
		if restaurants[i].ID == id {
			r := restaurants[i]
			return &r, nil
		}
	}
	return nil, fmt.Errorf("restaurant %q: %w", id, api.ErrNotFound)
}

func (s *CatalogServiceImpl) GetMenuItem(ctx context.Context, restaurantID, itemID string) (*types.MenuItem, error) {
	r, err := s.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	for i := range r.Menu {
		if r.Menu[i].ID == itemID {
			item := r.Menu[i]
			return &item, nil
		}
	}
	return nil, fmt.Errorf("menu item %q: %w", itemID, api.ErrNotFound)
}

func (s *CatalogServiceImpl) Categories(_ context.Context) []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}
