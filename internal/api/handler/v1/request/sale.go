package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/ledgerone/ledgerone-api/internal/domain"
)

type SaleLineRequest struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	ProductID *uint   `json:"product_id"`
}

type CreateSaleRequest struct {
	PaymentMethod  string            `json:"payment_method"`
	IdempotencyKey string            `json:"idempotency_key"`
	Items          []SaleLineRequest `json:"items"`
}

func (req *CreateSaleRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.PaymentMethod, validation.Required,
			validation.In("cash", "card", "upi", "bank_transfer")),
		validation.Field(&req.Items, validation.Required, validation.Length(1, 0)),
	)
	if err != nil {
		return err
	}

	for _, item := range req.Items {
		if err := validation.ValidateStruct(
			&item,
			validation.Field(&item.Name, validation.Required, validation.Length(1, 200)),
			validation.Field(&item.UnitPrice, validation.Min(0.0)),
			validation.Field(&item.Quantity, validation.Required, validation.Min(1)),
		); err != nil {
			return err
		}
	}

	return nil
}

// Cart converts the request lines into the domain cart.
func (req *CreateSaleRequest) Cart() domain.Cart {
	cart := make(domain.Cart, 0, len(req.Items))
	for _, item := range req.Items {
		cart = append(cart, domain.CartLine{
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			ProductID: item.ProductID,
		})
	}

	return cart
}
