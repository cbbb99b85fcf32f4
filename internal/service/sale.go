package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgerone/ledgerone-api/internal/domain"
	"github.com/ledgerone/ledgerone-api/internal/repository"
)

var (
	ErrTransactionNotFound = repository.ErrTransactionNotFound
	ErrInsufficientStock   = repository.ErrInsufficientStock

	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidCartLine      = errors.New("cart line needs a name, a positive quantity and a non-negative price")
)

type SaleTransactionRepository interface {
	CreateSale(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error)
	FindByID(ctx context.Context, id, businessID uint) (domain.Transaction, error)
	FindFiltered(ctx context.Context, businessID uint, filter repository.SaleFilter) ([]domain.Transaction, error)
}

type SaleEmployeeRepository interface {
	FindByBusinessID(ctx context.Context, businessID uint, activeOnly bool) ([]domain.Employee, error)
}

type SaleService struct {
	repo      SaleTransactionRepository
	employees SaleEmployeeRepository
}

func NewSaleService(repo SaleTransactionRepository, employees SaleEmployeeRepository) *SaleService {
	return &SaleService{
		repo:      repo,
		employees: employees,
	}
}

// CommitSale turns the cart into a recorded transaction with item
// snapshots and stock decrements, in one atomic write. The acting employee
// is stamped from the identity; owner sales carry no employee id. A blank
// idempotency key gets a generated one, and replays of a key return the
// sale recorded the first time.
func (s *SaleService) CommitSale(ctx context.Context, identity domain.Identity, cart domain.Cart, method domain.PaymentMethod, idempotencyKey string) (domain.Transaction, error) {
	if len(cart) == 0 {
		return domain.Transaction{}, ErrEmptyCart
	}
	if !method.IsValid() {
		return domain.Transaction{}, ErrInvalidPaymentMethod
	}

	items := make([]domain.TransactionItem, 0, len(cart))
	for _, line := range cart {
		if line.Name == "" || line.Quantity <= 0 || line.UnitPrice < 0 {
			return domain.Transaction{}, ErrInvalidCartLine
		}

		items = append(items, domain.TransactionItem{
			ProductID:  line.ProductID,
			ItemName:   line.Name,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			TotalPrice: line.UnitPrice * float64(line.Quantity),
		})
	}

	if idempotencyKey == "" {
		idempotencyKey = uuid.NewString()
	}

	created, err := s.repo.CreateSale(ctx, domain.Transaction{
		BusinessID:      identity.Business.ID,
		EmployeeID:      identity.ActingEmployeeID(),
		TotalAmount:     cart.Total(),
		TransactionType: domain.TransactionTypeSale,
		PaymentMethod:   method,
		IdempotencyKey:  idempotencyKey,
		Items:           items,
	})
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			return domain.Transaction{}, ErrInsufficientStock
		}

		return domain.Transaction{}, fmt.Errorf("s.repo.CreateSale -> %w", err)
	}

	return created, nil
}

// ListSales returns the filtered history, newest first, with the acting
// employee's name resolved ("Owner" for owner-performed sales).
func (s *SaleService) ListSales(ctx context.Context, businessID uint, filter repository.SaleFilter) ([]domain.Transaction, error) {
	transactions, err := s.repo.FindFiltered(ctx, businessID, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindFiltered -> %w", err)
	}

	names, err := s.employeeNames(ctx, businessID)
	if err != nil {
		return nil, err
	}

	for i := range transactions {
		transactions[i].EmployeeName = resolveEmployeeName(transactions[i].EmployeeID, names)
	}

	return transactions, nil
}

func (s *SaleService) GetSale(ctx context.Context, id, businessID uint) (domain.Transaction, error) {
	transaction, err := s.repo.FindByID(ctx, id, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return domain.Transaction{}, ErrTransactionNotFound
		}

		return domain.Transaction{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	names, err := s.employeeNames(ctx, businessID)
	if err != nil {
		return domain.Transaction{}, err
	}
	transaction.EmployeeName = resolveEmployeeName(transaction.EmployeeID, names)

	return transaction, nil
}

func (s *SaleService) employeeNames(ctx context.Context, businessID uint) (map[uint]string, error) {
	employees, err := s.employees.FindByBusinessID(ctx, businessID, false)
	if err != nil {
		return nil, fmt.Errorf("s.employees.FindByBusinessID -> %w", err)
	}

	names := make(map[uint]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.Name
	}

	return names, nil
}

func resolveEmployeeName(employeeID *uint, names map[uint]string) string {
	if employeeID == nil {
		return "Owner"
	}
	if name, ok := names[*employeeID]; ok {
		return name
	}

	return "Unknown"
}
