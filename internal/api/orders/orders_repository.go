package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/foodie-express/foodie-server/internal/kv"
	"github.com/foodie-express/foodie-server/internal/types"
)

var _ OrderRepo = (*KVOrderRepo)(nil)

// OrderRepo persists the full order list as a single JSON array blob on
// every mutation and reloads it wholesale. No partial updates, no
// transactions; the last writer wins.
type OrderRepo interface {
	ListOrders(ctx context.Context) ([]types.Order, error)
	SaveOrders(ctx context.Context, orders []types.Order) error
	ListTransactions(ctx context.Context) ([]types.Transaction, error)
	AppendTransaction(ctx context.Context, tx types.Transaction) error
}

type KVOrderRepo struct {
	logger *slog.Logger
	store  kv.Store
}

func NewKVOrderRepo(store kv.Store, logger *slog.Logger) *KVOrderRepo {
	return &KVOrderRepo{
		logger: logger,
		store:  store,
	}
}

func (r *KVOrderRepo) ListOrders(ctx context.Context) ([]types.Order, error) {
	raw, err := r.store.Get(ctx, kv.KeyOrders)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return []types.Order{}, nil
		}
		return nil, fmt.Errorf("list orders: %w", err)
	}
	var orders []types.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, fmt.Errorf("list orders: decode failed: %w", err)
	}
	return orders, nil
}

func (r *KVOrderRepo) SaveOrders(ctx context.Context, orders []types.Order) error {
	raw, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("save orders: encode failed: %w", err)
	}
	if err := r.store.Set(ctx, kv.KeyOrders, raw); err != nil {
		return fmt.Errorf("save orders: %w", err)
	}
	return nil
}

func (r *KVOrderRepo) ListTransactions(ctx context.Context) ([]types.Transaction, error) {
	raw, err := r.store.Get(ctx, kv.KeyTransactions)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return []types.Transaction{}, nil
		}
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	var txs []types.Transaction
	if err := json.Unmarshal(raw, &txs); err != nil {
		return nil, fmt.Errorf("list transactions: decode failed: %w", err)
	}
	return txs, nil
}

func (r *KVOrderRepo) AppendTransaction(ctx context.Context, tx types.Transaction) error {
	txs, err := r.ListTransactions(ctx)
	if err != nil {
		return err
	}
	txs = append(txs, tx)
	raw, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("append transaction: encode failed: %w", err)
	}
	if err := r.store.Set(ctx, kv.KeyTransactions, raw); err != nil {
		return fmt.Errorf("append transaction: %w", err)
	}
	return nil
}
