package transaction

import (
	"context"

	"github.com/finbank/transaction-service/internal/pkg/models"
)

// TransactionRepo is the ledger store: a concurrently-safe associative
// structure keyed by transaction id, iterable in ascending id order.
// Absence is represented, never signaled as an error.
type TransactionRepo interface {
	// Put inserts or overwrites the record for id. Concurrent calls with
	// distinct keys do not serialize against each other; the record is
	// replaced atomically as a whole.
	Put(ctx context.Context, id string, txn models.Transaction)

	// Get returns the record for id when present, deleted or not.
	Get(ctx context.Context, id string) (models.Transaction, bool)

	// Exists reports whether id is a key in the ledger, including
	// soft-deleted entries.
	Exists(ctx context.Context, id string) bool

	// AscendAfter iterates records in ascending id order, starting
	// strictly after lastID (from the smallest id when lastID is empty),
	// until fn returns false or the ledger is exhausted.
	AscendAfter(ctx context.Context, lastID string, fn func(txn models.Transaction) bool)

	// Len returns the number of stored records, soft-deleted included.
	Len() int
}
