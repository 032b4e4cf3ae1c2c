package models

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// TransactionRequest carries the fields for creating or updating a transaction.
// ID is optional on create; a fresh unique one is generated when absent.
type TransactionRequest struct {
	ID                  string              `json:"id,omitempty"`
	Type                TransactionType     `json:"type"`
	Category            TransactionCategory `json:"category"`
	Status              TransactionStatus   `json:"status"`
	Amount              decimal.Decimal     `json:"amount"`
	Description         string              `json:"description"`
	PrimaryAccount      string              `json:"primary_account"`
	CounterpartyAccount string              `json:"counterparty_account,omitempty"`
}

// TransactionListRequest carries cursor-paginated list parameters.
// LastID is the id of the last record of the previous page; empty means
// start of ledger. Optional filters are conjunctive.
type TransactionListRequest struct {
	Type     TransactionType     `query:"type"`
	Category TransactionCategory `query:"category"`
	Status   TransactionStatus   `query:"status"`
	LastID   string              `query:"lastId"`
	PageSize int                 `query:"pageSize"`
}

// CacheKey derives a deterministic cache key from the list parameters.
// Two logically identical queries always share a key; any differing
// parameter produces a different key.
func (r *TransactionListRequest) CacheKey() string {
	var b strings.Builder
	b.WriteString(r.LastID)
	b.WriteString("-")
	b.WriteString(strconv.Itoa(r.PageSize))
	if r.Type != "" {
		b.WriteString("-")
		b.WriteString(string(r.Type))
	}
	if r.Category != "" {
		b.WriteString("-")
		b.WriteString(string(r.Category))
	}
	if r.Status != "" {
		b.WriteString("-")
		b.WriteString(string(r.Status))
	}
	return b.String()
}

// Matches reports whether the transaction satisfies every supplied filter.
// Soft-deleted records never match.
func (r *TransactionListRequest) Matches(txn *Transaction) bool {
	if txn.IsDeleted() {
		return false
	}
	if r.Type != "" && txn.Type != r.Type {
		return false
	}
	if r.Category != "" && txn.Category != r.Category {
		return false
	}
	if r.Status != "" && txn.Status != r.Status {
		return false
	}
	return true
}

// TransactionEvent is published after a successful ledger mutation
type TransactionEvent struct {
	Action      string       `json:"action"`
	Transaction *Transaction `json:"transaction,omitempty"`
	ID          string       `json:"id"`
}

const (
	TransactionEventCreated = "created"
	TransactionEventUpdated = "updated"
	TransactionEventDeleted = "deleted"
)
