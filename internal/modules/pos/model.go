package pos

import (
	"strings"
	"time"

	"github.com/georgemunganga/mostrador/internal/modules/customer"
	"github.com/georgemunganga/mostrador/internal/modules/inventory"
	"github.com/shopspring/decimal"
)

// Payment methods offered at the counter. Only MethodCredit leaves a balance.
const (
	MethodCash     = "Efectivo"
	MethodCard     = "Tarjeta"
	MethodTransfer = "Transferencia"
	MethodCredit   = "Cuenta Corriente"
)

// IsCredit reports whether method is the running-account method, in any casing.
func IsCredit(method string) bool {
	return strings.EqualFold(strings.TrimSpace(method), MethodCredit)
}

// Sale is one row of the sale ledger.
type Sale struct {
	ID            int64           `json:"id"`
	ProductID     int64           `json:"producto_id"`
	ProductName   string          `json:"producto"`
	Quantity      int             `json:"cantidad"`
	Seller        string          `json:"vendedor"`
	UnitProfit    decimal.Decimal `json:"ganancia"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"forma_pago"`
	Customer      string          `json:"cliente"`
	Discount      decimal.Decimal `json:"descuento"`
	Balance       decimal.Decimal `json:"saldo_pendiente"`
	CreatedAt     time.Time       `json:"fecha"`
}

// IsCredit reports whether the sale was made on the customer's running account.
func (s *Sale) IsCredit() bool { return IsCredit(s.PaymentMethod) }

// SaleRequest carries the raw sale form plus the seller taken from the session.
type SaleRequest struct {
	ProductID     string
	Quantity      string
	PaymentMethod string
	Customer      string
	Discount      string
	Seller        string
}

// SaleOrder is a SaleRequest that passed input validation.
type SaleOrder struct {
	ProductID     int64
	Quantity      int
	PaymentMethod string
	Customer      string
	Discount      decimal.Decimal
	Seller        string
	Credit        bool
}

// Totals are the amounts recorded for a sale.
type Totals struct {
	UnitProfit decimal.Decimal
	Subtotal   decimal.Decimal
	Total      decimal.Decimal
	Balance    decimal.Decimal
}

// Quote prices qty units of p. The discount applies to the whole line and may
// not exceed it; a credit sale leaves the full total pending.
func Quote(p *inventory.Product, qty int, discount decimal.Decimal, credit bool) (Totals, error) {
	t := Totals{
		UnitProfit: p.UnitProfit(),
		Subtotal:   p.Price.Mul(decimal.NewFromInt(int64(qty))),
	}
	t.Total = t.Subtotal.Sub(discount)
	if t.Total.IsNegative() {
		return Totals{}, reject("El descuento no puede ser mayor que el total.")
	}
	if credit {
		t.Balance = t.Total
	}
	return t, nil
}

// SaleReceipt is returned after a sale commits.
type SaleReceipt struct {
	Sale       *Sale
	StockAfter int
	// Products is the in-stock catalog after the sale, for refreshing the sale screen.
	Products []*inventory.Product
}

// Screen is the data behind the sale page.
type Screen struct {
	Products   []*inventory.Product
	Customers  []*customer.Customer
	Sales      []*Sale
	Page       int
	TotalPages int
}

// Rejection is a validation or business-rule failure detected before anything was written.
type Rejection struct {
	Reason string
}

func (e *Rejection) Error() string { return e.Reason }

func reject(reason string) error { return &Rejection{Reason: reason} }
