package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerone/ledgerone-api/internal/domain"
)

func TestProductIsLowStock(t *testing.T) {
	tests := []struct {
		name      string
		stock     int
		threshold int
		want      bool
	}{
		{name: "above threshold", stock: 10, threshold: 5, want: false},
		{name: "at threshold", stock: 5, threshold: 5, want: true},
		{name: "below threshold", stock: 2, threshold: 5, want: true},
		{name: "out of stock", stock: 0, threshold: 5, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.Product{StockQuantity: tt.stock, LowStockThreshold: tt.threshold}

			assert.Equal(t, tt.want, p.IsLowStock())
		})
	}
}
