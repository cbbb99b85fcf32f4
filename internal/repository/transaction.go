package repository

import (
	"context"
	"fmt"

	"github.com/ledgerone/ledgerone-api/internal/domain"
	"github.com/ledgerone/ledgerone-api/internal/repository/dao"
)

var (
	ErrTransactionNotFound = dao.ErrTransactionNotFound
	ErrInsufficientStock   = dao.ErrInsufficientStock
)

// SaleFilter narrows sales-history lookups; nil/empty fields are ignored.
type SaleFilter = dao.TransactionFilter

type TransactionDAO interface {
	CreateSale(ctx context.Context, transaction dao.Transaction) (dao.Transaction, error)
	FindByID(ctx context.Context, id, businessID uint) (dao.Transaction, error)
	FindFiltered(ctx context.Context, businessID uint, filter dao.TransactionFilter) ([]dao.Transaction, error)
}

type TransactionRepository struct {
	dao TransactionDAO
}

func NewTransactionRepository(dao TransactionDAO) *TransactionRepository {
	return &TransactionRepository{
		dao: dao,
	}
}

// CreateSale persists the transaction, its item snapshots, and the stock
// decrements as one atomic operation.
func (r *TransactionRepository) CreateSale(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error) {
	created, err := r.dao.CreateSale(ctx, r.domainToDAO(transaction))
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("r.dao.CreateSale -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *TransactionRepository) FindByID(ctx context.Context, id, businessID uint) (domain.Transaction, error) {
	found, err := r.dao.FindByID(ctx, id, businessID)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TransactionRepository) FindFiltered(ctx context.Context, businessID uint, filter SaleFilter) ([]domain.Transaction, error) {
	found, err := r.dao.FindFiltered(ctx, businessID, filter)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindFiltered -> %w", err)
	}

	transactions := make([]domain.Transaction, 0, len(found))
	for _, t := range found {
		transactions = append(transactions, r.daoToDomain(t))
	}

	return transactions, nil
}

func (r *TransactionRepository) domainToDAO(t domain.Transaction) dao.Transaction {
	items := make([]dao.TransactionItem, 0, len(t.Items))
	for _, item := range t.Items {
		items = append(items, dao.TransactionItem{
			ProductID:  item.ProductID,
			ItemName:   item.ItemName,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
	}

	return dao.Transaction{
		BusinessID:      t.BusinessID,
		EmployeeID:      t.EmployeeID,
		TotalAmount:     t.TotalAmount,
		TransactionType: t.TransactionType,
		PaymentMethod:   string(t.PaymentMethod),
		IdempotencyKey:  t.IdempotencyKey,
		Items:           items,
	}
}

func (r *TransactionRepository) daoToDomain(t dao.Transaction) domain.Transaction {
	items := make([]domain.TransactionItem, 0, len(t.Items))
	for _, item := range t.Items {
		items = append(items, domain.TransactionItem{
			ID:            item.ID,
			TransactionID: item.TransactionID,
			ProductID:     item.ProductID,
			ItemName:      item.ItemName,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			TotalPrice:    item.TotalPrice,
		})
	}

	return domain.Transaction{
		ID:              t.ID,
		BusinessID:      t.BusinessID,
		EmployeeID:      t.EmployeeID,
		TotalAmount:     t.TotalAmount,
		TransactionType: t.TransactionType,
		PaymentMethod:   domain.PaymentMethod(t.PaymentMethod),
		IdempotencyKey:  t.IdempotencyKey,
		Items:           items,
		CreatedAt:       t.CreatedAt,
	}
}
