package pos

import (
	"context"
	"errors"
)

var ErrSaleNotFound = errors.New("Venta no encontrada")

// Repository defines data access for the sale ledger.
type Repository interface {
	// RegisterSale runs the whole sale in one transaction: customer check,
	// product row lock, stock check, sale insert, stock decrement and, for
	// credit sales, the debt record. It returns the stored sale and the
	// product's remaining stock.
	RegisterSale(ctx context.Context, order SaleOrder) (*Sale, int, error)
	GetSale(ctx context.Context, id int64) (*Sale, error)
	ListSales(ctx context.Context, limit, offset int) ([]*Sale, error)
	CountSales(ctx context.Context) (int, error)
}
