package kv

import (
	"context"
	"time"

	"github.com/foodie-express/foodie-server/app/observability/metrics"
)

var _ Store = (*InstrumentedStore)(nil)

// InstrumentedStore wraps a Store and records the duration of every
// operation in the store-op histogram.
type InstrumentedStore struct {
	next    Store
	metrics *metrics.AppMetrics
}

func NewInstrumentedStore(next Store) *InstrumentedStore {
	return &InstrumentedStore{
		next:    next,
		metrics: metrics.Get(),
	}
}

func (s *InstrumentedStore) observe(op string, start time.Time) {
	s.metrics.StoreOpDurationSeconds.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (s *InstrumentedStore) Get(ctx context.Context, key string) ([]byte, error) {
	defer s.observe("get", time.Now())
	return s.next.Get(ctx, key)
}

func (s *InstrumentedStore) Set(ctx context.Context, key string, value []byte) error {
	defer s.observe("set", time.Now())
	return s.next.Set(ctx, key, value)
}

func (s *InstrumentedStore) Delete(ctx context.Context, key string) error {
	defer s.observe("delete", time.Now())
	return s.next.Delete(ctx, key)
}

func (s *InstrumentedStore) Clear(ctx context.Context) error {
	defer s.observe("clear", time.Now())
	return s.next.Clear(ctx)
}
