package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finbank/transaction-service/internal/pkg/apperrors"
	"github.com/finbank/transaction-service/internal/pkg/logger"
	"github.com/finbank/transaction-service/internal/pkg/models"
	"github.com/finbank/transaction-service/services/transaction"
)

// TransactionUC implements the transaction usecase on top of the ledger
// store, the list cache and the event gateway.
type TransactionUC struct {
	repo  transaction.TransactionRepo
	cache transaction.TransactionCache
	gw    transaction.TransactionGW
}

// NewTransactionUC creates a new transaction usecase. The gateway may be
// nil when event publication is disabled.
func NewTransactionUC(
	repo transaction.TransactionRepo,
	cache transaction.TransactionCache,
	gw transaction.TransactionGW,
) *TransactionUC {
	return &TransactionUC{
		repo:  repo,
		cache: cache,
		gw:    gw,
	}
}

// CreateTransaction validates the request, assigns an id and stores the
// new record. Identifiers are never recycled: a caller-supplied id that
// collides with any stored key, soft-deleted included, is rejected.
func (uc *TransactionUC) CreateTransaction(ctx context.Context, req *models.TransactionRequest) (string, error) {
	if req.ID != "" && uc.repo.Exists(ctx, req.ID) {
		return "", apperrors.ErrTransactionAlreadyExists
	}

	if err := validateTransaction(req); err != nil {
		return "", err
	}

	id := req.ID
	if id == "" {
		id = uc.generateID(ctx)
	}

	now := time.Now()
	txn := models.Transaction{
		ID:                  id,
		Type:                req.Type,
		Category:            req.Category,
		Status:              req.Status,
		Amount:              req.Amount,
		Description:         req.Description,
		PrimaryAccount:      req.PrimaryAccount,
		CounterpartyAccount: req.CounterpartyAccount,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	uc.repo.Put(ctx, id, txn)

	uc.invalidateListCache(ctx)
	uc.publishEvent(ctx, models.TransactionEventCreated, &txn)

	return id, nil
}

// UpdateTransaction replaces every mutable field of an existing record.
// Soft-deleted records are not updatable; resurrecting a deleted
// transaction's fields would make it writable while invisible to reads.
func (uc *TransactionUC) UpdateTransaction(ctx context.Context, req *models.TransactionRequest) (string, error) {
	if req.ID == "" {
		return "", apperrors.ErrTransactionNotFound
	}

	current, ok := uc.repo.Get(ctx, req.ID)
	if !ok || current.IsDeleted() {
		return "", apperrors.ErrTransactionNotFound
	}

	if err := validateTransaction(req); err != nil {
		return "", err
	}

	txn := models.Transaction{
		ID:                  current.ID,
		Type:                req.Type,
		Category:            req.Category,
		Status:              req.Status,
		Amount:              req.Amount,
		Description:         req.Description,
		PrimaryAccount:      req.PrimaryAccount,
		CounterpartyAccount: req.CounterpartyAccount,
		CreatedAt:           current.CreatedAt,
		UpdatedAt:           time.Now(),
	}
	uc.repo.Put(ctx, txn.ID, txn)

	uc.invalidateListCache(ctx)
	uc.publishEvent(ctx, models.TransactionEventUpdated, &txn)

	return txn.ID, nil
}

// GetTransaction returns the record for id unless it is absent or
// soft-deleted.
func (uc *TransactionUC) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	txn, ok := uc.repo.Get(ctx, id)
	if !ok || txn.IsDeleted() {
		return nil, apperrors.ErrTransactionNotFound
	}
	return &txn, nil
}

// DeleteTransaction soft-deletes the record for id. Deleting an already
// deleted record is accepted and re-stamps its update time.
func (uc *TransactionUC) DeleteTransaction(ctx context.Context, id string) error {
	txn, ok := uc.repo.Get(ctx, id)
	if !ok {
		return apperrors.ErrTransactionNotFound
	}

	txn.Status = models.TransactionStatusDeleted
	txn.UpdatedAt = time.Now()
	uc.repo.Put(ctx, id, txn)

	uc.invalidateListCache(ctx)
	uc.publishEvent(ctx, models.TransactionEventDeleted, &txn)

	return nil
}

// ListTransactions returns one page of visible records, scanning the
// ledger in ascending id order strictly after the cursor and applying
// the conjunctive filters. Pages are served from the cache when an
// identical query was answered since the last mutation.
func (uc *TransactionUC) ListTransactions(ctx context.Context, req *models.TransactionListRequest) ([]models.Transaction, error) {
	key := req.CacheKey()

	cached, err := uc.cache.GetList(ctx, key)
	if err != nil {
		logger.Warn("List cache read failed",
			logger.String("cache_key", key),
			logger.Err(err),
		)
	} else if cached != nil {
		return cached, nil
	}

	txns := make([]models.Transaction, 0, req.PageSize)
	uc.repo.AscendAfter(ctx, req.LastID, func(txn models.Transaction) bool {
		if req.Matches(&txn) {
			txns = append(txns, txn)
		}
		return len(txns) < req.PageSize
	})

	if err := uc.cache.SetList(ctx, key, txns); err != nil {
		logger.Warn("List cache write failed",
			logger.String("cache_key", key),
			logger.Err(err),
		)
	}

	return txns, nil
}

// generateID returns a fresh random identifier that is not a key in the
// ledger, deleted entries included.
func (uc *TransactionUC) generateID(ctx context.Context) string {
	id := uuid.NewString()
	for uc.repo.Exists(ctx, id) {
		id = uuid.NewString()
	}
	return id
}

// invalidateListCache drops every cached list page after a mutation.
// Failures are logged, not returned: the ledger mutation has already
// committed and stale pages expire with their TTL.
func (uc *TransactionUC) invalidateListCache(ctx context.Context) {
	if err := uc.cache.InvalidateAll(ctx); err != nil {
		logger.Warn("List cache invalidation failed", logger.Err(err))
	}
}

// publishEvent emits a lifecycle event on a best-effort basis
func (uc *TransactionUC) publishEvent(ctx context.Context, action string, txn *models.Transaction) {
	if uc.gw == nil {
		return
	}

	event := &models.TransactionEvent{
		Action:      action,
		Transaction: txn,
		ID:          txn.ID,
	}
	if err := uc.gw.PublishTransactionEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish transaction event",
			logger.String("action", action),
			logger.String("transaction_id", txn.ID),
			logger.Err(err),
		)
	}
}

// validateTransaction applies the transaction rules: category legality
// for the type first, then the counterparty requirement for transfers.
func validateTransaction(req *models.TransactionRequest) error {
	if !req.Type.IsValidCategory(req.Category) {
		return apperrors.ErrInvalidTransactionCategory
	}

	if req.Category.IsTransfer() && req.CounterpartyAccount == "" {
		return apperrors.ErrCounterpartyAccountRequired
	}

	return nil
}
