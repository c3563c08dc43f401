package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"ecoscrap.backend/internal/domain/entities"
	domainerrors "ecoscrap.backend/internal/domain/errors"
	"ecoscrap.backend/internal/infrastructure/models"
)

// TransactionRepository implements order data operations
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create creates a new order
func (r *TransactionRepository) Create(ctx context.Context, txn *entities.Transaction) error {
	items, err := json.Marshal(txn.Items)
	if err != nil {
		return err
	}

	m := &models.Transaction{
		ID:            txn.ID,
		CustomerEmail: txn.CustomerEmail,
		CustomerName:  txn.CustomerName,
		DealerEmail:   txn.DealerEmail,
		Items:         string(items),
		Amount:        txn.Amount,
		PaymentMethod: txn.PaymentMethod,
		Address:       txn.Address,
		Status:        string(txn.Status),
		CompletedAt:   txn.CompletedAt.Ptr(),
		Timestamp:     txn.Timestamp,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets an order by ID
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*entities.Transaction, error) {
	var m models.Transaction
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return transactionToEntity(&m)
}

// UpdateStatus updates an order's status. Moving to completed also stamps the
// completion time.
func (r *TransactionRepository) UpdateStatus(ctx context.Context, id string, status entities.TransactionStatus) error {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if status == entities.TransactionStatusCompleted {
		updates["completed_at"] = time.Now()
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Transaction{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists all orders, newest first
func (r *TransactionRepository) List(ctx context.Context) ([]*entities.Transaction, error) {
	var txnModels []models.Transaction
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("timestamp DESC").Find(&txnModels).Error; err != nil {
		return nil, err
	}
	return transactionsToEntities(txnModels)
}

// ListByCustomer lists orders placed by a customer
func (r *TransactionRepository) ListByCustomer(ctx context.Context, customerEmail string) ([]*entities.Transaction, error) {
	var txnModels []models.Transaction
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("customer_email = ?", customerEmail).Order("timestamp DESC").Find(&txnModels).Error; err != nil {
		return nil, err
	}
	return transactionsToEntities(txnModels)
}

// ListByDealer lists orders received by a dealer
func (r *TransactionRepository) ListByDealer(ctx context.Context, dealerEmail string) ([]*entities.Transaction, error) {
	var txnModels []models.Transaction
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("dealer_email = ?", dealerEmail).Order("timestamp DESC").Find(&txnModels).Error; err != nil {
		return nil, err
	}
	return transactionsToEntities(txnModels)
}

// SumAmount totals the amount across all orders
func (r *TransactionRepository) SumAmount(ctx context.Context) (float64, error) {
	return r.sumAmount(ctx, "", "")
}

// SumAmountByCustomer totals a customer's spend
func (r *TransactionRepository) SumAmountByCustomer(ctx context.Context, customerEmail string) (float64, error) {
	return r.sumAmount(ctx, "customer_email = ?", customerEmail)
}

// SumAmountByDealer totals a dealer's earnings
func (r *TransactionRepository) SumAmountByDealer(ctx context.Context, dealerEmail string) (float64, error) {
	return r.sumAmount(ctx, "dealer_email = ?", dealerEmail)
}

func (r *TransactionRepository) sumAmount(ctx context.Context, condition, value string) (float64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Transaction{}).
		Where("status != ?", string(entities.TransactionStatusCancelled))
	if condition != "" {
		query = query.Where(condition, value)
	}

	var total float64
	if err := query.Select("COALESCE(SUM(amount), 0)").Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// CountByCustomer returns the number of orders placed by a customer
func (r *TransactionRepository) CountByCustomer(ctx context.Context, customerEmail string) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Transaction{}).Where("customer_email = ?", customerEmail).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByDealer returns the number of orders received by a dealer
func (r *TransactionRepository) CountByDealer(ctx context.Context, dealerEmail string) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Transaction{}).Where("dealer_email = ?", dealerEmail).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func transactionsToEntities(txnModels []models.Transaction) ([]*entities.Transaction, error) {
	txns := make([]*entities.Transaction, 0, len(txnModels))
	for i := range txnModels {
		txn, err := transactionToEntity(&txnModels[i])
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func transactionToEntity(m *models.Transaction) (*entities.Transaction, error) {
	var items []entities.TransactionItem
	if err := json.Unmarshal([]byte(m.Items), &items); err != nil {
		return nil, err
	}

	return &entities.Transaction{
		ID:            m.ID,
		CustomerEmail: m.CustomerEmail,
		CustomerName:  m.CustomerName,
		DealerEmail:   m.DealerEmail,
		Items:         items,
		Amount:        m.Amount,
		PaymentMethod: m.PaymentMethod,
		Address:       m.Address,
		Status:        entities.TransactionStatus(m.Status),
		CompletedAt:   null.TimeFromPtr(m.CompletedAt),
		Timestamp:     m.Timestamp,
	}, nil
}
