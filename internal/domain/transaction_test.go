package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerone/ledgerone-api/internal/domain"
)

func TestCartTotal(t *testing.T) {
	tests := []struct {
		name string
		cart domain.Cart
		want float64
	}{
		{
			name: "empty cart totals zero",
			cart: domain.Cart{},
			want: 0,
		},
		{
			name: "single line",
			cart: domain.Cart{
				{Name: "Espresso", UnitPrice: 3.5, Quantity: 2},
			},
			want: 7,
		},
		{
			name: "mixed catalog and custom lines",
			cart: domain.Cart{
				{Name: "Espresso", UnitPrice: 3.5, Quantity: 2, ProductID: ptr(uint(1))},
				{Name: "Delivery fee", UnitPrice: 5, Quantity: 1},
			},
			want: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.cart.Total(), 0.0001)
		})
	}
}

func TestPaymentMethodIsValid(t *testing.T) {
	valid := []domain.PaymentMethod{
		domain.PaymentCash,
		domain.PaymentCard,
		domain.PaymentUPI,
		domain.PaymentBankTransfer,
	}
	for _, m := range valid {
		assert.True(t, m.IsValid(), "method %v", m)
	}

	assert.False(t, domain.PaymentMethod("cheque").IsValid())
	assert.False(t, domain.PaymentMethod("").IsValid())
}

func TestIdentityActingEmployeeID(t *testing.T) {
	t.Run("owner stamps no employee", func(t *testing.T) {
		assert.Nil(t, ownerIdentity().ActingEmployeeID())
	})

	t.Run("employee stamps their id", func(t *testing.T) {
		identity := employeeIdentity(domain.EmployeePermissions{POSAccess: true})

		id := identity.ActingEmployeeID()
		assert.NotNil(t, id)
		assert.Equal(t, uint(7), *id)
	})
}

func ptr[T any](v T) *T {
	return &v
}
