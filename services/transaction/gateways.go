package transaction

import (
	"context"

	"github.com/finbank/transaction-service/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/finbank/transaction-service/services/transaction TransactionGW

// TransactionGW defines the transaction gateways interface
type TransactionGW interface {
	// PublishTransactionEvent emits a lifecycle event after a successful
	// ledger mutation.
	PublishTransactionEvent(ctx context.Context, event *models.TransactionEvent) error
}
