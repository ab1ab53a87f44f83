// Package kv is the persistence layer of the application. Every feature
// persists whole JSON blobs under fixed string keys through the Store
// capability; the backing implementation (memory, redis or postgres) is
// chosen once at startup. Reads of a missing key return ErrNotFound and
// callers treat that as "empty/default". Writes are whole-blob,
// last-writer-wins; there is no versioning of blob contents.
package kv

import (
	"context"
	"errors"
)

// Well-known storage keys. The values are kept verbatim from the mobile
// client so a dump of one store can be loaded into the other.
const (
	KeyOrders       = "foodie_orders_v1"
	KeyTransactions = "foodie_transactions_v1"
	KeyProfile      = "foodie_profile_v1"
	KeyAuthSession  = "@foodie_express_auth"
	KeyUsers        = "@foodie_express_users"
	KeyChats        = "@foodie_chats_enhanced"
)

// ErrNotFound is returned by Get when the key has never been written or
// has been deleted.
var ErrNotFound = errors.New("key not found")

// Store is the key-value capability the rest of the application is
// written against.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
