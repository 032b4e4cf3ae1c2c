// Package apperrors defines the domain error taxonomy for the
// transaction ledger. All values are expected, recoverable-by-caller
// errors; the HTTP boundary translates them into client responses.
package apperrors

import "errors"

// TransactionError is a domain error with a stable code and a
// client-facing message.
type TransactionError struct {
	Code    string
	Message string
}

func (e *TransactionError) Error() string {
	return e.Message
}

var (
	// ErrTransactionAlreadyExists is returned when a caller-supplied id
	// collides with an existing record, including soft-deleted ones.
	ErrTransactionAlreadyExists = &TransactionError{Code: "1001", Message: "Transaction ID already exists"}

	// ErrTransactionNotFound is returned when an operation references an
	// id absent from the ledger, or logically deleted for read paths.
	ErrTransactionNotFound = &TransactionError{Code: "1002", Message: "Transaction not found"}

	// ErrInvalidTransactionCategory is returned when the category is not
	// permitted for the given transaction type.
	ErrInvalidTransactionCategory = &TransactionError{Code: "1003", Message: "Invalid category for the specified transaction type"}

	// ErrCounterpartyAccountRequired is returned when a transfer category
	// is missing a counterparty account.
	ErrCounterpartyAccountRequired = &TransactionError{Code: "1004", Message: "Counterparty account is required for transfer transactions"}
)

// AsTransactionError unwraps err into a *TransactionError when it is one.
func AsTransactionError(err error) (*TransactionError, bool) {
	var txnErr *TransactionError
	if errors.As(err, &txnErr) {
		return txnErr, true
	}
	return nil, false
}
