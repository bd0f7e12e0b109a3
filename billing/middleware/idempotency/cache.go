package idempotency

import (
	"context"
	"time"

	"encore.dev/storage/cache"

	"backoffice.app/billing/model"
)

// IdempotencyCluster is the cache cluster for idempotency
var IdempotencyCluster = cache.NewCluster("idempotency-cluster", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// IdempotencyCache is the keyspace for storing idempotency data. Entries
// outlive a client's retry window by a wide margin.
var IdempotencyCache = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyCacheEntry](
	IdempotencyCluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(24 * time.Hour),
	},
)

// entryStore is the part of IdempotencyCache the guard needs.
type entryStore interface {
	Get(ctx context.Context, key model.IdempotencyKey) (model.IdempotencyCacheEntry, error)
	Set(ctx context.Context, key model.IdempotencyKey, val model.IdempotencyCacheEntry) error
	SetIfNotExists(ctx context.Context, key model.IdempotencyKey, val model.IdempotencyCacheEntry) error
	Delete(ctx context.Context, keys ...model.IdempotencyKey) (int, error)
}

var entries entryStore = IdempotencyCache
