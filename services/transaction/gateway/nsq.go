package gateway

import (
	"context"

	"github.com/finbank/transaction-service/internal/pkg/constants"
	"github.com/finbank/transaction-service/internal/pkg/models"
	"github.com/finbank/transaction-service/internal/pkg/nsq"
)

// TransactionGW publishes transaction lifecycle events to NSQ
type TransactionGW struct {
	producer *nsq.Producer
}

// NewTransactionGW creates a new transaction gateway
func NewTransactionGW(producer *nsq.Producer) *TransactionGW {
	return &TransactionGW{
		producer: producer,
	}
}

// PublishTransactionEvent emits a lifecycle event after a ledger mutation
func (g *TransactionGW) PublishTransactionEvent(ctx context.Context, event *models.TransactionEvent) error {
	return g.producer.Publish(constants.TopicTransactionEvents, event)
}
