package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/finbank/transaction-service/internal/pkg/constants"
	"github.com/finbank/transaction-service/internal/pkg/database"
	"github.com/finbank/transaction-service/internal/pkg/models"
)

// TransactionCacheRepo caches list-query pages in Redis as JSON,
// keyed by the deterministic query cache key.
type TransactionCacheRepo struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewTransactionCacheRepo creates a Redis-backed list cache
func NewTransactionCacheRepo(redisClient *database.RedisClient, cfg models.CacheConfig) *TransactionCacheRepo {
	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &TransactionCacheRepo{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// GetList returns the cached page for key, or (nil, nil) on a miss
func (r *TransactionCacheRepo) GetList(ctx context.Context, key string) ([]models.Transaction, error) {
	data, err := r.redisClient.Get(ctx, fmt.Sprintf(constants.KeyTransactionList, key))
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read list cache: %w", err)
	}

	var txns []models.Transaction
	if err := json.Unmarshal([]byte(data), &txns); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached list: %w", err)
	}
	return txns, nil
}

// SetList stores a page under key
func (r *TransactionCacheRepo) SetList(ctx context.Context, key string, txns []models.Transaction) error {
	data, err := json.Marshal(txns)
	if err != nil {
		return fmt.Errorf("failed to marshal list for cache: %w", err)
	}

	err = r.redisClient.Set(ctx, fmt.Sprintf(constants.KeyTransactionList, key), data, r.ttl)
	if err != nil {
		return fmt.Errorf("failed to write list cache: %w", err)
	}
	return nil
}

// InvalidateAll drops every cached page. A single mutation can change
// the membership or ordering of any page, so invalidation is total.
func (r *TransactionCacheRepo) InvalidateAll(ctx context.Context) error {
	return r.redisClient.DeleteByPattern(ctx, constants.KeyTransactionListPattern)
}
