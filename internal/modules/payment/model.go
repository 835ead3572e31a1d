package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is an installment paid against a credit sale.
type Payment struct {
	ID        int64           `json:"id"`
	SaleID    int64           `json:"venta_id"`
	Customer  string          `json:"cliente"`
	Amount    decimal.Decimal `json:"monto"`
	Method    string          `json:"metodo_pago"`
	Seller    string          `json:"usuario"`
	Notes     string          `json:"observaciones"`
	CreatedAt time.Time       `json:"fecha"`
}

// PaymentRequest is the raw payment form plus the account taken from the session.
type PaymentRequest struct {
	SaleID   string
	Customer string
	Amount   string
	Method   string
	Notes    string
	Seller   string
}

// Receipt is a stored payment and the sale balance it left behind.
type Receipt struct {
	Payment *Payment
	Balance decimal.Decimal
}

// Outstanding is a credit sale that still carries a balance.
type Outstanding struct {
	SaleID      int64
	Customer    string
	ProductName string
	Quantity    int
	Total       decimal.Decimal
	Balance     decimal.Decimal
	CreatedAt   time.Time
}
