package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// TransactionStatus represents the order lifecycle
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// Payment methods accepted at checkout
const (
	PaymentMethodCOD        = "cod"
	PaymentMethodUPI        = "upi"
	PaymentMethodCard       = "card"
	PaymentMethodNetbanking = "netbanking"
)

// TransactionItem is a single order line
type TransactionItem struct {
	ProductID string  `json:"productId" binding:"required"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
}

// Transaction represents a customer order.
// IDs carry a "TXN" prefix followed by the placement unix timestamp.
type Transaction struct {
	ID            string            `json:"id"`
	CustomerEmail string            `json:"customerEmail"`
	CustomerName  string            `json:"customerName"`
	DealerEmail   string            `json:"dealerEmail"`
	Items         []TransactionItem `json:"items"`
	Amount        float64           `json:"amount"`
	PaymentMethod string            `json:"paymentMethod"`
	Address       string            `json:"address"`
	Status        TransactionStatus `json:"status"`
	CompletedAt   null.Time         `json:"completedAt,omitempty"`
	Timestamp     time.Time         `json:"timestamp"`
}

// CreateTransactionInput represents checkout input
type CreateTransactionInput struct {
	DealerEmail   string            `json:"dealerEmail" binding:"required,email"`
	Items         []TransactionItem `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string            `json:"paymentMethod" binding:"required,oneof=cod upi card netbanking"`
	Address       string            `json:"address" binding:"required"`
}
