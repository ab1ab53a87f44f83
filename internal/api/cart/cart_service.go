package cart

import (
	"context"
	"log/slog"
	"sync"

	"github.com/foodie-express/foodie-server/internal/types"
)

var _ CartService = (*CartServiceImpl)(nil)

// CartService is the working set of selected menu items prior to
// checkout, scoped per user. All operations are total functions over the
// current cart; none of them error.
type CartService interface {
	// AddItem inserts the item with quantity 1, or increments the
	// quantity of an existing entry with the same id. Customizations of a
	// pre-existing entry are retained, not overwritten.
	AddItem(ctx context.Context, userID string, item types.MenuItem, customizations map[string]string)
	// RemoveItem deletes the entry with that id; no-op when absent.
	RemoveItem(ctx context.Context, userID, itemID string)
	// UpdateQuantity sets the quantity, removing the entry when q <= 0.
	// The store enforces no upper bound.
	UpdateQuantity(ctx context.Context, userID, itemID string, quantity int)
	// Items returns a snapshot of the cart in insertion order.
	Items(ctx context.Context, userID string) []types.CartItem
	// Total returns the sum of price x quantity over all entries.
	Total(ctx context.Context, userID string) int64
	// Clear empties the cart.
	Clear(ctx context.Context, userID string)
}

// CartServiceImpl holds carts in memory; one shared instance is
// constructed at startup and injected where needed. The mutex covers
// concurrent requests from the same user.
type CartServiceImpl struct {
	logger *slog.Logger

	mu    sync.Mutex
	carts map[string][]types.CartItem
}

func NewCartService(logger *slog.Logger) *CartServiceImpl {
	return &CartServiceImpl{
		logger: logger,
		carts:  make(map[string][]types.CartItem),
	}
}

func (s *CartServiceImpl) AddItem(_ context.Context, userID string, item types.MenuItem, customizations map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.carts[userID]
	for i := range entries {
		if entries[i].Item.ID == item.ID {
			entries[i].Quantity++
			return
		}
	}
	s.carts[userID] = append(entries, types.CartItem{
		Item:                   item,
		Quantity:               1,
		SelectedCustomizations: customizations,
	})
}

func (s *CartServiceImpl) RemoveItem(_ context.Context, userID, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(userID, itemID)
}

func (s *CartServiceImpl) UpdateQuantity(_ context.Context, userID, itemID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(userID, itemID)
		return
	}
	entries := s.carts[userID]
	for i := range entries {
		if entries[i].Item.ID == itemID {
			entries[i].Quantity = quantity
			return
		}
	}
}

func (s *CartServiceImpl) Items(_ context.Context, userID string) []types.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.carts[userID]
	out := make([]types.CartItem, len(entries))
	copy(out, entries)
	return out
}

func (s *CartServiceImpl) Total(_ context.Context, userID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, e := range s.carts[userID] {
		total += e.Item.Price * int64(e.Quantity)
	}
	return total
}

func (s *CartServiceImpl) Clear(_ context.Context, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// removeLocked deletes the entry in place preserving insertion order.
// Caller holds the mutex.
func (s *CartServiceImpl) removeLocked(userID, itemID string) {
	entries := s.carts[userID]
	for i := range entries {
		if entries[i].Item.ID == itemID {
			s.carts[userID] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}
