package payment

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrSaleNotFound  = errors.New("Venta no encontrada")
	ErrInvalidSale   = errors.New("Debe indicar una venta válida")
	ErrInvalidAmount = errors.New("El monto debe ser mayor a cero")
)

// Repository defines data access for running-account payments.
type Repository interface {
	// RecordPayment stores p and lowers the balance of its sale and debt
	// record in one transaction. An empty p.Customer is filled from the sale.
	// It returns the sale balance after the payment.
	RecordPayment(ctx context.Context, p *Payment) (decimal.Decimal, error)

	// ListOutstanding returns credit sales with a positive balance, newest first.
	ListOutstanding(ctx context.Context) ([]*Outstanding, error)
}
