package handler

import (
	"github.com/labstack/echo/v4"

	httpHandler "github.com/finbank/transaction-service/services/transaction/handler/http"
)

// Handler coordinates the protocol handlers for the transaction service
type Handler struct {
	transactionHandler *httpHandler.TransactionHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(transactionHandler *httpHandler.TransactionHandler) *Handler {
	return &Handler{
		transactionHandler: transactionHandler,
	}
}

// RegisterRoutes registers the transaction routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	transactions := e.Group("/api/v1/transactions")

	transactions.GET("/list", h.transactionHandler.ListTransactions)
	transactions.GET("/:id", h.transactionHandler.GetTransaction)
	transactions.POST("/create", h.transactionHandler.CreateTransaction)
	transactions.POST("/update", h.transactionHandler.UpdateTransaction)
	transactions.POST("/delete/:id", h.transactionHandler.DeleteTransaction)
}
