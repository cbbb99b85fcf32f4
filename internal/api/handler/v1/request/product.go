package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type ProductRequest struct {
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	Cost              float64 `json:"cost"`
	StockQuantity     int     `json:"stock_quantity"`
	LowStockThreshold int     `json:"low_stock_threshold"`
	IsActive          *bool   `json:"is_active"`
}

func (req *ProductRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Price, validation.Required, validation.Min(0.01)),
		validation.Field(&req.Cost, validation.Min(0.0)),
		validation.Field(&req.StockQuantity, validation.Min(0)),
		validation.Field(&req.LowStockThreshold, validation.Min(0)),
	)
}

// Active defaults new and updated products to active unless the client
// says otherwise.
func (req *ProductRequest) Active() bool {
	if req.IsActive == nil {
		return true
	}

	return *req.IsActive
}
