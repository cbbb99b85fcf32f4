package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInsufficientStock   = errors.New("insufficient stock")
)

type Transaction struct {
	ID uint `gorm:"primaryKey"`

	BusinessID uint  `gorm:"not null;index;uniqueIndex:idx_transactions_business_idem"`
	EmployeeID *uint `gorm:"index"`

	TotalAmount     float64 `gorm:"not null"`
	TransactionType string  `gorm:"not null;default:sale"`
	PaymentMethod   string  `gorm:"not null"`

	// IdempotencyKey makes sale-commit retries safe: replays of the same
	// key within a business return the recorded sale instead of writing twice.
	IdempotencyKey string `gorm:"not null;uniqueIndex:idx_transactions_business_idem"`

	Items []TransactionItem `gorm:"foreignKey:TransactionID"`

	CreatedAt time.Time `gorm:"not null;index"`
}

type TransactionItem struct {
	ID uint `gorm:"primaryKey"`

	TransactionID uint  `gorm:"index;not null"`
	ProductID     *uint `gorm:"index"`

	ItemName   string  `gorm:"not null"`
	Quantity   int     `gorm:"not null"`
	UnitPrice  float64 `gorm:"not null"`
	TotalPrice float64 `gorm:"not null"`
}

// TransactionFilter narrows sales-history queries. Nil fields are ignored.
type TransactionFilter struct {
	From          *time.Time
	To            *time.Time
	EmployeeID    *uint
	PaymentMethod string
}

type TransactionDAO struct {
	db *gorm.DB
}

func NewTransactionDAO(db *gorm.DB) *TransactionDAO {
	return &TransactionDAO{
		db: db,
	}
}

// CreateSale records a sale atomically: the transaction row, its item
// snapshots, and the guarded stock decrements commit or roll back as one
// database transaction. A line whose decrement matches no row (foreign
// product, or stock below the requested quantity) aborts the whole sale
// with ErrInsufficientStock.
func (d *TransactionDAO) CreateSale(ctx context.Context, transaction Transaction) (Transaction, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing Transaction
		result := tx.Preload("Items").
			First(&existing, "business_id = ? AND idempotency_key = ?",
				transaction.BusinessID, transaction.IdempotencyKey)
		if result.Error == nil {
			transaction = existing

			return nil
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		// Creates the items through the association in the same insert batch.
		if err := tx.Create(&transaction).Error; err != nil {
			return err
		}

		for _, item := range transaction.Items {
			if item.ProductID == nil {
				continue
			}

			decrement := tx.Model(&Product{}).
				Where("id = ? AND business_id = ? AND stock_quantity >= ?",
					*item.ProductID, transaction.BusinessID, item.Quantity).
				Update("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity))
			if decrement.Error != nil {
				return decrement.Error
			}
			if decrement.RowsAffected == 0 {
				return ErrInsufficientStock
			}
		}

		return nil
	})
	if err != nil {
		// Two commits racing on the same key: the loser re-reads the
		// winner's sale.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return d.FindByIdempotencyKey(ctx, transaction.BusinessID, transaction.IdempotencyKey)
		}

		return Transaction{}, err
	}

	return transaction, nil
}

func (d *TransactionDAO) FindByID(ctx context.Context, id, businessID uint) (Transaction, error) {
	var transaction Transaction

	result := d.db.WithContext(ctx).Preload("Items").
		First(&transaction, "id = ? AND business_id = ?", id, businessID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Transaction{}, ErrTransactionNotFound
		}

		return Transaction{}, result.Error
	}

	return transaction, nil
}

func (d *TransactionDAO) FindByIdempotencyKey(ctx context.Context, businessID uint, key string) (Transaction, error) {
	var transaction Transaction

	result := d.db.WithContext(ctx).Preload("Items").
		First(&transaction, "business_id = ? AND idempotency_key = ?", businessID, key)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Transaction{}, ErrTransactionNotFound
		}

		return Transaction{}, result.Error
	}

	return transaction, nil
}

// FindFiltered lists the business's transactions newest first.
func (d *TransactionDAO) FindFiltered(ctx context.Context, businessID uint, filter TransactionFilter) ([]Transaction, error) {
	var transactions []Transaction

	query := d.db.WithContext(ctx).Preload("Items").
		Where("business_id = ?", businessID)
	query = applyFilter(query, filter)

	result := query.Order("created_at DESC").Find(&transactions)
	if result.Error != nil {
		return nil, result.Error
	}

	return transactions, nil
}

func applyFilter(query *gorm.DB, filter TransactionFilter) *gorm.DB {
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at < ?", *filter.To)
	}
	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.PaymentMethod != "" {
		query = query.Where("payment_method = ?", filter.PaymentMethod)
	}

	return query
}
