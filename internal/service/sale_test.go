package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerone/ledgerone-api/internal/domain"
	"github.com/ledgerone/ledgerone-api/internal/repository"
	"github.com/ledgerone/ledgerone-api/internal/service"
)

type fakeTransactionRepo struct {
	created []domain.Transaction
	nextID  uint

	createErr error
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{nextID: 1}
}

func (f *fakeTransactionRepo) CreateSale(_ context.Context, transaction domain.Transaction) (domain.Transaction, error) {
	if f.createErr != nil {
		return domain.Transaction{}, f.createErr
	}

	// Replays of a key return the first recorded sale.
	for _, existing := range f.created {
		if existing.IdempotencyKey == transaction.IdempotencyKey {
			return existing, nil
		}
	}

	transaction.ID = f.nextID
	f.nextID++
	transaction.CreatedAt = time.Now()
	f.created = append(f.created, transaction)

	return transaction, nil
}

func (f *fakeTransactionRepo) FindByID(_ context.Context, id, businessID uint) (domain.Transaction, error) {
	for _, transaction := range f.created {
		if transaction.ID == id && transaction.BusinessID == businessID {
			return transaction, nil
		}
	}

	return domain.Transaction{}, repository.ErrTransactionNotFound
}

func (f *fakeTransactionRepo) FindFiltered(_ context.Context, businessID uint, _ repository.SaleFilter) ([]domain.Transaction, error) {
	var out []domain.Transaction
	for _, transaction := range f.created {
		if transaction.BusinessID == businessID {
			out = append(out, transaction)
		}
	}

	return out, nil
}

type fakeSaleEmployeeRepo struct {
	employees []domain.Employee
}

func (f *fakeSaleEmployeeRepo) FindByBusinessID(_ context.Context, businessID uint, _ bool) ([]domain.Employee, error) {
	var out []domain.Employee
	for _, employee := range f.employees {
		if employee.BusinessID == businessID {
			out = append(out, employee)
		}
	}

	return out, nil
}

func saleOwnerIdentity() domain.Identity {
	return domain.Identity{
		Kind:     domain.IdentityOwner,
		Owner:    &domain.Owner{ID: 1},
		Business: &domain.Business{ID: 1},
	}
}

func saleEmployeeIdentity() domain.Identity {
	return domain.Identity{
		Kind:     domain.IdentityEmployee,
		Business: &domain.Business{ID: 1},
		Employee: &domain.Employee{ID: 7, BusinessID: 1, Name: "Dana", IsActive: true},
	}
}

func TestSaleServiceCommitSale(t *testing.T) {
	productID := uint(3)
	cart := domain.Cart{
		{Name: "Espresso", UnitPrice: 3.5, Quantity: 2, ProductID: &productID},
		{Name: "Gift wrap", UnitPrice: 1, Quantity: 1},
	}

	t.Run("records totals and item snapshots", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		svc := service.NewSaleService(repo, &fakeSaleEmployeeRepo{})

		sale, err := svc.CommitSale(context.Background(), saleOwnerIdentity(), cart, domain.PaymentCash, "key-1")

		require.NoError(t, err)
		assert.InDelta(t, 8.0, sale.TotalAmount, 0.0001)
		assert.Equal(t, domain.TransactionTypeSale, sale.TransactionType)
		assert.Equal(t, domain.PaymentCash, sale.PaymentMethod)
		require.Len(t, sale.Items, 2)
		assert.Equal(t, "Espresso", sale.Items[0].ItemName)
		assert.InDelta(t, 7.0, sale.Items[0].TotalPrice, 0.0001)
		assert.Nil(t, sale.Items[1].ProductID, "custom lines carry no product id")
	})

	t.Run("owner sales carry no employee id", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		svc := service.NewSaleService(repo, &fakeSaleEmployeeRepo{})

		sale, err := svc.CommitSale(context.Background(), saleOwnerIdentity(), cart, domain.PaymentCard, "key-1")

		require.NoError(t, err)
		assert.Nil(t, sale.EmployeeID)
	})

	t.Run("employee sales are stamped with their id", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		svc := service.NewSaleService(repo, &fakeSaleEmployeeRepo{})

		sale, err := svc.CommitSale(context.Background(), saleEmployeeIdentity(), cart, domain.PaymentUPI, "key-1")

		require.NoError(t, err)
		require.NotNil(t, sale.EmployeeID)
		assert.Equal(t, uint(7), *sale.EmployeeID)
	})

	t.Run("blank idempotency key gets generated", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		svc := service.NewSaleService(repo, &fakeSaleEmployeeRepo{})

		first, err := svc.CommitSale(context.Background(), saleOwnerIdentity(), cart, domain.PaymentCash, "")
		require.NoError(t, err)
		assert.NotEmpty(t, first.IdempotencyKey)

		second, err := svc.CommitSale(context.Background(), saleOwnerIdentity(), cart, domain.PaymentCash, "")
		require.NoError(t, err)
		assert.NotEqual(t, first.IdempotencyKey, second.IdempotencyKey)
	})

	t.Run("replaying a key returns the original sale", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		svc := service.NewSaleService(repo, &fakeSaleEmployeeRepo{})

		first, err := svc.CommitSale(context.Background(), saleOwnerIdentity(), cart, domain.PaymentCash, "key-1")
		require.NoError(t, err)

		replay, err := svc.CommitSale(context.Background(), saleOwnerIdentity(), cart, domain.PaymentCash, "key-1")
		require.NoError(t, err)
		assert.Equal(t, first.ID, replay.ID)
		assert.Len(t, repo.created, 1)
	})

	t.Run("empty cart", func(t *testing.T) {
		svc := service.NewSaleService(newFakeTransactionRepo(), &fakeSaleEmployeeRepo{})

		_, err := svc.CommitSale(context.Background(), saleOwnerIdentity(), domain.Cart{}, domain.PaymentCash, "")

		assert.ErrorIs(t, err, service.ErrEmptyCart)
	})

	t.Run("invalid payment method", func(t *testing.T) {
		svc := service.NewSaleService(newFakeTransactionRepo(), &fakeSaleEmployeeRepo{})

		_, err := svc.CommitSale(context.Background(), saleOwnerIdentity(), cart, "cheque", "")

		assert.ErrorIs(t, err, service.ErrInvalidPaymentMethod)
	})

	t.Run("invalid cart line", func(t *testing.T) {
		svc := service.NewSaleService(newFakeTransactionRepo(), &fakeSaleEmployeeRepo{})

		bad := domain.Cart{{Name: "Espresso", UnitPrice: 3.5, Quantity: 0}}
		_, err := svc.CommitSale(context.Background(), saleOwnerIdentity(), bad, domain.PaymentCash, "")

		assert.ErrorIs(t, err, service.ErrInvalidCartLine)
	})

	t.Run("insufficient stock surfaces as its own error", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		repo.createErr = repository.ErrInsufficientStock
		svc := service.NewSaleService(repo, &fakeSaleEmployeeRepo{})

		_, err := svc.CommitSale(context.Background(), saleOwnerIdentity(), cart, domain.PaymentCash, "")

		assert.ErrorIs(t, err, service.ErrInsufficientStock)
	})
}

func TestSaleServiceListSales(t *testing.T) {
	employeeID := uint(7)
	repo := newFakeTransactionRepo()
	repo.created = []domain.Transaction{
		{ID: 1, BusinessID: 1, EmployeeID: &employeeID, TotalAmount: 10},
		{ID: 2, BusinessID: 1, TotalAmount: 20},
	}
	employees := &fakeSaleEmployeeRepo{employees: []domain.Employee{
		{ID: 7, BusinessID: 1, Name: "Dana"},
	}}
	svc := service.NewSaleService(repo, employees)

	sales, err := svc.ListSales(context.Background(), 1, repository.SaleFilter{})

	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, "Dana", sales[0].EmployeeName)
	assert.Equal(t, "Owner", sales[1].EmployeeName)
}

func TestSaleServiceGetSale(t *testing.T) {
	repo := newFakeTransactionRepo()
	repo.created = []domain.Transaction{{ID: 1, BusinessID: 1, TotalAmount: 10}}
	svc := service.NewSaleService(repo, &fakeSaleEmployeeRepo{})

	t.Run("found", func(t *testing.T) {
		sale, err := svc.GetSale(context.Background(), 1, 1)

		require.NoError(t, err)
		assert.Equal(t, "Owner", sale.EmployeeName)
	})

	t.Run("wrong business", func(t *testing.T) {
		_, err := svc.GetSale(context.Background(), 1, 2)

		assert.ErrorIs(t, err, service.ErrTransactionNotFound)
	})
}
