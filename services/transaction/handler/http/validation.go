package http

import (
	"errors"
	"strings"

	"github.com/finbank/transaction-service/internal/pkg/models"
)

// Syntactic request validation performed at the boundary before the
// usecase is invoked. Domain rules (category legality, counterparty
// requirement) stay in the usecase; this layer only guards required,
// non-blank and positive constraints.

func validateTransactionRequest(req *models.TransactionRequest) error {
	if req.Type == "" {
		return errors.New("Transaction type cannot be null")
	}
	if !req.Type.IsValid() {
		return errors.New("Unknown transaction type")
	}
	if req.Category == "" {
		return errors.New("Transaction category cannot be null")
	}
	if !req.Category.IsValid() {
		return errors.New("Unknown transaction category")
	}
	if req.Status == "" {
		return errors.New("Transaction status cannot be null")
	}
	if !req.Status.IsValid() {
		return errors.New("Unknown transaction status")
	}
	if !req.Amount.IsPositive() {
		return errors.New("Amount must be positive")
	}
	if strings.TrimSpace(req.Description) == "" {
		return errors.New("Description cannot be blank")
	}
	if strings.TrimSpace(req.PrimaryAccount) == "" {
		return errors.New("Primary account cannot be blank")
	}
	return nil
}

func validateListRequest(req *models.TransactionListRequest) error {
	if req.PageSize <= 0 {
		return errors.New("PageSize must be positive")
	}
	if req.Type != "" && !req.Type.IsValid() {
		return errors.New("Unknown transaction type")
	}
	if req.Category != "" && !req.Category.IsValid() {
		return errors.New("Unknown transaction category")
	}
	if req.Status != "" && !req.Status.IsValid() {
		return errors.New("Unknown transaction status")
	}
	return nil
}
