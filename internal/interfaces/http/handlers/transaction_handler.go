package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ecoscrap.backend/internal/domain/entities"
	domainerrors "ecoscrap.backend/internal/domain/errors"
	"ecoscrap.backend/internal/interfaces/http/middleware"
	"ecoscrap.backend/internal/interfaces/http/response"
	"ecoscrap.backend/internal/usecases"
)

type transactionService interface {
	Create(ctx context.Context, customerID uuid.UUID, input *entities.CreateTransactionInput) (*entities.Transaction, error)
	List(ctx context.Context, userEmail string, role entities.UserRole) ([]*entities.Transaction, error)
}

// TransactionHandler handles marketplace order endpoints
type TransactionHandler struct {
	transactionUsecase transactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionUsecase *usecases.TransactionUsecase) *TransactionHandler {
	return &TransactionHandler{transactionUsecase: transactionUsecase}
}

// CreateTransaction places an order and decrements stock atomically
// POST /api/v1/transactions
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.CreateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	txn, err := h.transactionUsecase.Create(c.Request.Context(), userID, &input)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Product or dealer not found"))
			return
		}
		if err == domainerrors.ErrInsufficientStock {
			response.Error(c, domainerrors.NewAppError(
				http.StatusConflict, domainerrors.CodeInsufficientStock, "Insufficient stock", domainerrors.ErrInsufficientStock))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, txn)
}

// ListTransactions lists orders visible to the caller
// GET /api/v1/transactions
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}
	roleStr, _ := middleware.GetUserRole(c)

	transactions, err := h.transactionUsecase.List(c.Request.Context(), email, entities.UserRole(roleStr))
	if err != nil {
		response.Error(c, err)
		return
	}
	if transactions == nil {
		transactions = []*entities.Transaction{}
	}

	response.Success(c, http.StatusOK, gin.H{"transactions": transactions})
}
