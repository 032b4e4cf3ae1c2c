package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finbank/transaction-service/internal/pkg/apperrors"
	"github.com/finbank/transaction-service/internal/pkg/models"
	"github.com/finbank/transaction-service/services/transaction/mocks"
	"github.com/finbank/transaction-service/services/transaction/repository"
)

// newTestUC wires a usecase over a real in-memory ledger with a
// permissive cache mock. Tests asserting cache behavior build their own.
func newTestUC(t *testing.T) (*TransactionUC, *repository.LedgerRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockCache := mocks.NewMockTransactionCache(ctrl)
	mockCache.EXPECT().GetList(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	mockCache.EXPECT().SetList(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().InvalidateAll(gomock.Any()).Return(nil).AnyTimes()

	repo := repository.NewLedgerRepo()
	return NewTransactionUC(repo, mockCache, nil), repo
}

func newCreateRequest() *models.TransactionRequest {
	return &models.TransactionRequest{
		Type:           models.TransactionTypeDeposit,
		Category:       models.TransactionCategoryCash,
		Status:         models.TransactionStatusCompleted,
		Amount:         decimal.NewFromFloat(150.25),
		Description:    "salary deposit",
		PrimaryAccount: "acc-001",
	}
}

func TestCreateTransaction_GeneratesUniqueIDs(t *testing.T) {
	uc, _ := newTestUC(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id, err := uc.CreateTransaction(ctx, newCreateRequest())
		assert.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestCreateTransaction_WithCallerID(t *testing.T) {
	uc, repo := newTestUC(t)
	ctx := context.Background()

	req := newCreateRequest()
	req.ID = "txn-1"

	id, err := uc.CreateTransaction(ctx, req)
	assert.NoError(t, err)
	assert.Equal(t, "txn-1", id)

	stored, ok := repo.Get(ctx, "txn-1")
	assert.True(t, ok)
	assert.Equal(t, models.TransactionTypeDeposit, stored.Type)
	assert.Equal(t, "salary deposit", stored.Description)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.Equal(t, stored.CreatedAt, stored.UpdatedAt)
}

func TestCreateTransaction_AlreadyExists(t *testing.T) {
	uc, _ := newTestUC(t)
	ctx := context.Background()

	req := newCreateRequest()
	req.ID = "txn-1"
	_, err := uc.CreateTransaction(ctx, req)
	assert.NoError(t, err)

	_, err = uc.CreateTransaction(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrTransactionAlreadyExists)
}

func TestCreateTransaction_SoftDeletedIDNotRecycled(t *testing.T) {
	uc, _ := newTestUC(t)
	ctx := context.Background()

	req := newCreateRequest()
	req.ID = "txn-1"
	_, err := uc.CreateTransaction(ctx, req)
	assert.NoError(t, err)
	assert.NoError(t, uc.DeleteTransaction(ctx, "txn-1"))

	_, err = uc.CreateTransaction(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrTransactionAlreadyExists)
}

func TestCreateTransaction_InvalidCategory(t *testing.T) {
	uc, _ := newTestUC(t)

	req := newCreateRequest()
	req.Category = models.TransactionCategoryTransferOut

	_, err := uc.CreateTransaction(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransactionCategory)
}

func TestCreateTransaction_CategoryCheckedBeforeCounterparty(t *testing.T) {
	uc, _ := newTestUC(t)

	// an illegal transfer category missing its counterparty fails the
	// category check first
	req := newCreateRequest()
	req.Category = models.TransactionCategoryTransferOut
	req.CounterpartyAccount = ""

	_, err := uc.CreateTransaction(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransactionCategory)
}

func TestCreateTransaction_CounterpartyRequired(t *testing.T) {
	uc, _ := newTestUC(t)
	ctx := context.Background()

	req := newCreateRequest()
	req.Category = models.TransactionCategoryTransferIn

	_, err := uc.CreateTransaction(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrCounterpartyAccountRequired)

	req.CounterpartyAccount = "acc-002"
	id, err := uc.CreateTransaction(ctx, req)
	assert.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	uc, _ := newTestUC(t)
	ctx := context.Background()

	req := newCreateRequest()
	req.ID = "missing"
	_, err := uc.UpdateTransaction(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrTransactionNotFound)

	req.ID = ""
	_, err = uc.UpdateTransaction(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrTransactionNotFound)
}

func TestUpdateTransaction_ReplacesMutableFields(t *testing.T) {
	uc, repo := newTestUC(t)
	ctx := context.Background()

	createReq := newCreateRequest()
	createReq.ID = "txn-1"
	_, err := uc.CreateTransaction(ctx, createReq)
	assert.NoError(t, err)

	created, _ := repo.Get(ctx, "txn-1")
	time.Sleep(5 * time.Millisecond)

	updateReq := &models.TransactionRequest{
		ID:                  "txn-1",
		Type:                models.TransactionTypeWithdrawal,
		Category:            models.TransactionCategoryPayment,
		Status:              models.TransactionStatusPending,
		Amount:              decimal.NewFromInt(75),
		Description:         "utility payment",
		PrimaryAccount:      "acc-009",
		CounterpartyAccount: "",
	}

	id, err := uc.UpdateTransaction(ctx, updateReq)
	assert.NoError(t, err)
	assert.Equal(t, "txn-1", id)

	updated, _ := repo.Get(ctx, "txn-1")
	assert.Equal(t, models.TransactionTypeWithdrawal, updated.Type)
	assert.Equal(t, models.TransactionCategoryPayment, updated.Category)
	assert.Equal(t, "utility payment", updated.Description)
	assert.Equal(t, "acc-009", updated.PrimaryAccount)
	assert.True(t, updated.Amount.Equal(decimal.NewFromInt(75)))
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdateTransaction_ValidationFailure(t *testing.T) {
	uc, _ := newTestUC(t)
	ctx := context.Background()

	createReq := newCreateRequest()
	createReq.ID = "txn-1"
	_, err := uc.CreateTransaction(ctx, createReq)
	assert.NoError(t, err)

	updateReq := newCreateRequest()
	updateReq.ID = "txn-1"
	updateReq.Category = models.TransactionCategoryPayment

	_, err = uc.UpdateTransaction(ctx, updateReq)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransactionCategory)
}

func TestUpdateTransaction_SoftDeletedIsNotUpdatable(t *testing.T) {
	uc, _ := newTestUC(t)
	ctx := context.Background()

	req := newCreateRequest()
	req.ID = "txn-1"
	_, err := uc.CreateTransaction(ctx, req)
	assert.NoError(t, err)
	assert.NoError(t, uc.DeleteTransaction(ctx, "txn-1"))

	_, err = uc.UpdateTransaction(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrTransactionNotFound)
}

func TestGetTransaction(t *testing.T) {
	uc, _ := newTestUC(t)
	ctx := context.Background()

	req := newCreateRequest()
	req.ID = "txn-1"
	_, err := uc.CreateTransaction(ctx, req)
	assert.NoError(t, err)

	txn, err := uc.GetTransaction(ctx, "txn-1")
	assert.NoError(t, err)
	assert.Equal(t, "txn-1", txn.ID)

	_, err = uc.GetTransaction(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrTransactionNotFound)
}

func TestDeleteTransaction(t *testing.T) {
	uc, repo := newTestUC(t)
	ctx := context.Background()

	req := newCreateRequest()
	req.ID = "txn-1"
	_, err := uc.CreateTransaction(ctx, req)
	assert.NoError(t, err)

	assert.NoError(t, uc.DeleteTransaction(ctx, "txn-1"))

	// logically absent but physically stored
	_, err = uc.GetTransaction(ctx, "txn-1")
	assert.ErrorIs(t, err, apperrors.ErrTransactionNotFound)
	stored, ok := repo.Get(ctx, "txn-1")
	assert.True(t, ok)
	assert.Equal(t, models.TransactionStatusDeleted, stored.Status)

	assert.ErrorIs(t, uc.DeleteTransaction(ctx, "missing"), apperrors.ErrTransactionNotFound)
}

func TestDeleteTransaction_RepeatedDeleteRestampsUpdatedAt(t *testing.T) {
	uc, repo := newTestUC(t)
	ctx := context.Background()

	req := newCreateRequest()
	req.ID = "txn-1"
	_, err := uc.CreateTransaction(ctx, req)
	assert.NoError(t, err)

	assert.NoError(t, uc.DeleteTransaction(ctx, "txn-1"))
	first, _ := repo.Get(ctx, "txn-1")

	time.Sleep(5 * time.Millisecond)
	assert.NoError(t, uc.DeleteTransaction(ctx, "txn-1"))
	second, _ := repo.Get(ctx, "txn-1")

	assert.Equal(t, models.TransactionStatusDeleted, second.Status)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
}

func TestListTransactions_CursorPagination(t *testing.T) {
	uc, _ := newTestUC(t)
	ctx := context.Background()

	// inserted out of order; listing is ordered by id
	for _, id := range []string{"2", "3", "1"} {
		req := newCreateRequest()
		req.ID = id
		_, err := uc.CreateTransaction(ctx, req)
		assert.NoError(t, err)
	}

	page1, err := uc.ListTransactions(ctx, &models.TransactionListRequest{PageSize: 2})
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, idsOf(page1))

	page2, err := uc.ListTransactions(ctx, &models.TransactionListRequest{PageSize: 2, LastID: "2"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"3"}, idsOf(page2))
}

func TestListTransactions_ExcludesDeleted(t *testing.T) {
	uc, _ := newTestUC(t)
	ctx := context.Background()

	for _, id := range []string{"1", "2", "3"} {
		req := newCreateRequest()
		req.ID = id
		_, err := uc.CreateTransaction(ctx, req)
		assert.NoError(t, err)
	}
	assert.NoError(t, uc.DeleteTransaction(ctx, "2"))

	page, err := uc.ListTransactions(ctx, &models.TransactionListRequest{PageSize: 10})
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, idsOf(page))
}

func TestListTransactions_ConjunctiveFilters(t *testing.T) {
	uc, _ := newTestUC(t)
	ctx := context.Background()

	cash := newCreateRequest()
	cash.ID = "1"
	_, err := uc.CreateTransaction(ctx, cash)
	assert.NoError(t, err)

	refund := newCreateRequest()
	refund.ID = "2"
	refund.Category = models.TransactionCategoryRepaymentRefund
	_, err = uc.CreateTransaction(ctx, refund)
	assert.NoError(t, err)

	// type matches both records, category filters to one
	page, err := uc.ListTransactions(ctx, &models.TransactionListRequest{
		Type:     models.TransactionTypeDeposit,
		Category: models.TransactionCategoryCash,
		PageSize: 10,
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"1"}, idsOf(page))
}

func TestListTransactions_CacheHitSkipsScan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockTransactionCache(ctrl)
	repo := repository.NewLedgerRepo()
	uc := NewTransactionUC(repo, mockCache, nil)

	cached := []models.Transaction{{ID: "cached-1"}}
	req := &models.TransactionListRequest{PageSize: 5}
	mockCache.EXPECT().GetList(gomock.Any(), req.CacheKey()).Return(cached, nil)

	page, err := uc.ListTransactions(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, cached, page)
}

func TestListTransactions_CacheMissPopulatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockTransactionCache(ctrl)
	mockCache.EXPECT().InvalidateAll(gomock.Any()).Return(nil).AnyTimes()
	repo := repository.NewLedgerRepo()
	uc := NewTransactionUC(repo, mockCache, nil)
	ctx := context.Background()

	createReq := newCreateRequest()
	createReq.ID = "txn-1"
	_, err := uc.CreateTransaction(ctx, createReq)
	assert.NoError(t, err)

	listReq := &models.TransactionListRequest{PageSize: 5}
	mockCache.EXPECT().GetList(gomock.Any(), listReq.CacheKey()).Return(nil, nil)
	mockCache.EXPECT().SetList(gomock.Any(), listReq.CacheKey(), gomock.Len(1)).Return(nil)

	page, err := uc.ListTransactions(ctx, listReq)
	assert.NoError(t, err)
	assert.Len(t, page, 1)
}

func TestListTransactions_CacheFailuresAreNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockTransactionCache(ctrl)
	mockCache.EXPECT().InvalidateAll(gomock.Any()).Return(nil).AnyTimes()
	repo := repository.NewLedgerRepo()
	uc := NewTransactionUC(repo, mockCache, nil)
	ctx := context.Background()

	createReq := newCreateRequest()
	createReq.ID = "txn-1"
	_, err := uc.CreateTransaction(ctx, createReq)
	assert.NoError(t, err)

	mockCache.EXPECT().GetList(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))
	mockCache.EXPECT().SetList(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	page, err := uc.ListTransactions(ctx, &models.TransactionListRequest{PageSize: 5})
	assert.NoError(t, err)
	assert.Equal(t, []string{"txn-1"}, idsOf(page))
}

func TestMutationsInvalidateCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockTransactionCache(ctrl)
	repo := repository.NewLedgerRepo()
	uc := NewTransactionUC(repo, mockCache, nil)
	ctx := context.Background()

	// one invalidation per mutation: create, update, delete
	mockCache.EXPECT().InvalidateAll(gomock.Any()).Return(nil).Times(3)

	req := newCreateRequest()
	req.ID = "txn-1"
	_, err := uc.CreateTransaction(ctx, req)
	assert.NoError(t, err)

	_, err = uc.UpdateTransaction(ctx, req)
	assert.NoError(t, err)

	assert.NoError(t, uc.DeleteTransaction(ctx, "txn-1"))
}

func TestCreateTransaction_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockTransactionCache(ctrl)
	mockCache.EXPECT().InvalidateAll(gomock.Any()).Return(nil).AnyTimes()
	mockGW := mocks.NewMockTransactionGW(ctrl)
	repo := repository.NewLedgerRepo()
	uc := NewTransactionUC(repo, mockCache, mockGW)

	mockGW.EXPECT().
		PublishTransactionEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.TransactionEvent) error {
			assert.Equal(t, models.TransactionEventCreated, event.Action)
			assert.Equal(t, "txn-1", event.ID)
			return nil
		})

	req := newCreateRequest()
	req.ID = "txn-1"
	_, err := uc.CreateTransaction(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreateTransaction_PublishFailureDoesNotFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockTransactionCache(ctrl)
	mockCache.EXPECT().InvalidateAll(gomock.Any()).Return(nil).AnyTimes()
	mockGW := mocks.NewMockTransactionGW(ctrl)
	mockGW.EXPECT().PublishTransactionEvent(gomock.Any(), gomock.Any()).Return(errors.New("nsqd unreachable"))

	repo := repository.NewLedgerRepo()
	uc := NewTransactionUC(repo, mockCache, mockGW)

	id, err := uc.CreateTransaction(context.Background(), newCreateRequest())
	assert.NoError(t, err)
	assert.NotEmpty(t, id)
}

func idsOf(txns []models.Transaction) []string {
	ids := make([]string, 0, len(txns))
	for _, txn := range txns {
		ids = append(ids, txn.ID)
	}
	return ids
}
