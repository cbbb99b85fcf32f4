package domain

import "time"

type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentCard         PaymentMethod = "card"
	PaymentUPI          PaymentMethod = "upi"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
)

// IsValid reports whether the payment method is one of the accepted values.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentUPI, PaymentBankTransfer:
		return true
	}

	return false
}

const TransactionTypeSale = "sale"

// CartLine is one pending item on the POS screen. ProductID is nil for
// custom free-text items, which never touch inventory.
type CartLine struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	ProductID *uint   `json:"product_id,omitempty"`
}

// Cart is the transient list of lines pending sale commit.
type Cart []CartLine

// Total is the sum of unit_price * quantity over all lines.
func (c Cart) Total() float64 {
	var total float64
	for _, line := range c {
		total += line.UnitPrice * float64(line.Quantity)
	}

	return total
}

type Transaction struct {
	ID              uint              `json:"id"`
	BusinessID      uint              `json:"business_id"`
	EmployeeID      *uint             `json:"employee_id,omitempty"`
	EmployeeName    string            `json:"employee_name,omitempty"`
	TotalAmount     float64           `json:"total_amount"`
	TransactionType string            `json:"transaction_type"`
	PaymentMethod   PaymentMethod     `json:"payment_method"`
	IdempotencyKey  string            `json:"idempotency_key"`
	Items           []TransactionItem `json:"items,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

// TransactionItem snapshots a cart line at the time of sale. Name and
// unit price are copied, not joined back to the product row.
type TransactionItem struct {
	ID            uint    `json:"id"`
	TransactionID uint    `json:"transaction_id"`
	ProductID     *uint   `json:"product_id,omitempty"`
	ItemName      string  `json:"item_name"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	TotalPrice    float64 `json:"total_price"`
}
