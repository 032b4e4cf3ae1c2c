package transaction

import (
	"context"

	"github.com/finbank/transaction-service/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_cache.go -package=mocks github.com/finbank/transaction-service/services/transaction TransactionCache

// TransactionCache caches list-query results keyed by the deterministic
// cache key derived from the query parameters. A single mutation can
// change membership of any cached page, so invalidation always drops
// every entry.
type TransactionCache interface {
	// GetList returns the cached page for key, or (nil, nil) on a miss.
	GetList(ctx context.Context, key string) ([]models.Transaction, error)

	// SetList stores a page under key.
	SetList(ctx context.Context, key string, txns []models.Transaction) error

	// InvalidateAll drops every cached page.
	InvalidateAll(ctx context.Context) error
}
