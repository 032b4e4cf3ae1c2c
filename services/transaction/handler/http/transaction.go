package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/finbank/transaction-service/internal/pkg/apperrors"
	"github.com/finbank/transaction-service/internal/pkg/logger"
	"github.com/finbank/transaction-service/internal/pkg/models"
	"github.com/finbank/transaction-service/internal/utils"
	"github.com/finbank/transaction-service/services/transaction"
)

// TransactionHandler handles HTTP requests for transaction operations
type TransactionHandler struct {
	transactionUC transaction.TransactionUC
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionUC transaction.TransactionUC) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: transactionUC,
	}
}

// CreateTransaction handles transaction creation requests
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req models.TransactionRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for transaction creation",
			logger.Err(err),
			logger.String("endpoint", "CreateTransaction"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := validateTransactionRequest(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	id, err := h.transactionUC.CreateTransaction(c.Request().Context(), &req)
	if err != nil {
		return h.handleDomainError(c, err, "Failed to create transaction")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Transaction created successfully", map[string]string{"id": id})
}

// UpdateTransaction handles transaction update requests
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	var req models.TransactionRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for transaction update",
			logger.Err(err),
			logger.String("endpoint", "UpdateTransaction"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := validateTransactionRequest(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	id, err := h.transactionUC.UpdateTransaction(c.Request().Context(), &req)
	if err != nil {
		return h.handleDomainError(c, err, "Failed to update transaction")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction updated successfully", map[string]string{"id": id})
}

// GetTransaction handles transaction retrieval requests
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	txn, err := h.transactionUC.GetTransaction(c.Request().Context(), id)
	if err != nil {
		return h.handleDomainError(c, err, "Failed to retrieve transaction")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved successfully", txn)
}

// DeleteTransaction handles transaction deletion requests
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	if err := h.transactionUC.DeleteTransaction(c.Request().Context(), id); err != nil {
		return h.handleDomainError(c, err, "Failed to delete transaction")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction deleted successfully", nil)
}

// ListTransactions handles paginated transaction listing requests
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	var req models.TransactionListRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid list parameters")
	}

	if err := validateListRequest(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	txns, err := h.transactionUC.ListTransactions(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to list transactions", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", txns)
}

// handleDomainError maps domain errors to a bad request carrying the
// error message; anything else becomes an opaque server error.
func (h *TransactionHandler) handleDomainError(c echo.Context, err error, logMsg string) error {
	if txnErr, ok := apperrors.AsTransactionError(err); ok {
		return utils.BadRequestResponse(c, txnErr.Message)
	}

	logger.Error(logMsg, logger.Err(err))
	return utils.InternalServerErrorResponse(c, "")
}
