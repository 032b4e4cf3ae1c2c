package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies the direction of a financial movement
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
)

// TransactionCategory classifies the business purpose of a transaction
type TransactionCategory string

const (
	TransactionCategoryTransferIn      TransactionCategory = "TRANSFER_IN"
	TransactionCategoryTransferOut     TransactionCategory = "TRANSFER_OUT"
	TransactionCategoryCash            TransactionCategory = "CASH"
	TransactionCategoryRepaymentRefund TransactionCategory = "REPAYMENT_REFUND"
	TransactionCategoryPayment         TransactionCategory = "PAYMENT"
)

// TransactionStatus represents the processing state of a transaction
type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "PENDING"
	TransactionStatusProcessing TransactionStatus = "PROCESSING"
	TransactionStatusCompleted  TransactionStatus = "COMPLETED"
	TransactionStatusFailed     TransactionStatus = "FAILED"
	TransactionStatusDeleted    TransactionStatus = "DELETED"
)

// validCategories maps each transaction type to the categories it admits
var validCategories = map[TransactionType]map[TransactionCategory]bool{
	TransactionTypeDeposit: {
		TransactionCategoryTransferIn:      true,
		TransactionCategoryCash:            true,
		TransactionCategoryRepaymentRefund: true,
	},
	TransactionTypeWithdrawal: {
		TransactionCategoryTransferOut: true,
		TransactionCategoryCash:        true,
		TransactionCategoryPayment:     true,
	},
}

// IsValid reports whether t is a known transaction type
func (t TransactionType) IsValid() bool {
	_, ok := validCategories[t]
	return ok
}

// IsValidCategory reports whether the category is legal for this type
func (t TransactionType) IsValidCategory(category TransactionCategory) bool {
	return validCategories[t][category]
}

// IsValid reports whether c is a known transaction category
func (c TransactionCategory) IsValid() bool {
	switch c {
	case TransactionCategoryTransferIn, TransactionCategoryTransferOut,
		TransactionCategoryCash, TransactionCategoryRepaymentRefund,
		TransactionCategoryPayment:
		return true
	}
	return false
}

// IsTransfer reports whether the category requires a counterparty account
func (c TransactionCategory) IsTransfer() bool {
	return c == TransactionCategoryTransferIn || c == TransactionCategoryTransferOut
}

// IsValid reports whether s is a known transaction status
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusProcessing,
		TransactionStatusCompleted, TransactionStatusFailed,
		TransactionStatusDeleted:
		return true
	}
	return false
}

// Transaction represents a financial transaction record in the ledger
type Transaction struct {
	ID                  string              `json:"id"`
	Type                TransactionType     `json:"type"`
	Category            TransactionCategory `json:"category"`
	Status              TransactionStatus   `json:"status"`
	Amount              decimal.Decimal     `json:"amount"`
	Description         string              `json:"description"`
	PrimaryAccount      string              `json:"primary_account"`
	CounterpartyAccount string              `json:"counterparty_account,omitempty"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

// IsDeleted reports whether the record has been soft deleted
func (t *Transaction) IsDeleted() bool {
	return t.Status == TransactionStatusDeleted
}
