package transaction

import (
	"context"

	"github.com/finbank/transaction-service/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/finbank/transaction-service/services/transaction TransactionUC

// TransactionUC represents the transaction usecase interface
type TransactionUC interface {
	CreateTransaction(ctx context.Context, req *models.TransactionRequest) (string, error)
	UpdateTransaction(ctx context.Context, req *models.TransactionRequest) (string, error)
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	ListTransactions(ctx context.Context, req *models.TransactionListRequest) ([]models.Transaction, error)
}
