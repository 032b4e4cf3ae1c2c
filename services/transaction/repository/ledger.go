package repository

import (
	"context"

	"github.com/tidwall/btree"

	"github.com/finbank/transaction-service/internal/pkg/models"
)

// ledgerEntry orders the tree by transaction id
type ledgerEntry struct {
	id  string
	txn models.Transaction
}

func ledgerEntryLess(a, b ledgerEntry) bool {
	return a.id < b.id
}

// LedgerRepo is the in-memory ledger store. It is backed by a
// concurrency-safe ordered B-tree keyed by transaction id, so readers
// scan a consistent view while writers replace whole records per key.
// Records are never physically removed; soft deletion is a status flip
// performed by the caller through Put.
type LedgerRepo struct {
	tree *btree.BTreeG[ledgerEntry]
}

// NewLedgerRepo creates an empty ledger store
func NewLedgerRepo() *LedgerRepo {
	return &LedgerRepo{
		tree: btree.NewBTreeG(ledgerEntryLess),
	}
}

// Put inserts or overwrites the record for id
func (r *LedgerRepo) Put(ctx context.Context, id string, txn models.Transaction) {
	r.tree.Set(ledgerEntry{id: id, txn: txn})
}

// Get returns the record for id when present
func (r *LedgerRepo) Get(ctx context.Context, id string) (models.Transaction, bool) {
	entry, ok := r.tree.Get(ledgerEntry{id: id})
	if !ok {
		return models.Transaction{}, false
	}
	return entry.txn, true
}

// Exists reports whether id is a key in the ledger
func (r *LedgerRepo) Exists(ctx context.Context, id string) bool {
	_, ok := r.tree.Get(ledgerEntry{id: id})
	return ok
}

// AscendAfter iterates records in ascending id order starting strictly
// after lastID. An empty lastID starts from the smallest id. Iteration
// stops when fn returns false.
func (r *LedgerRepo) AscendAfter(ctx context.Context, lastID string, fn func(txn models.Transaction) bool) {
	if lastID == "" {
		r.tree.Scan(func(entry ledgerEntry) bool {
			return fn(entry.txn)
		})
		return
	}

	r.tree.Ascend(ledgerEntry{id: lastID}, func(entry ledgerEntry) bool {
		// Ascend is inclusive of the pivot; the cursor bound is exclusive
		if entry.id == lastID {
			return true
		}
		return fn(entry.txn)
	})
}

// Len returns the number of stored records, soft-deleted included
func (r *LedgerRepo) Len() int {
	return r.tree.Len()
}
