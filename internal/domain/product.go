package domain

import "time"

type Product struct {
	ID                uint      `json:"id"`
	BusinessID        uint      `json:"business_id"`
	Name              string    `json:"name"`
	Price             float64   `json:"price"`
	Cost              float64   `json:"cost"`
	StockQuantity     int       `json:"stock_quantity"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// IsLowStock reports whether the product should be flagged for reorder.
func (p Product) IsLowStock() bool {
	return p.StockQuantity <= p.LowStockThreshold
}
