package report

import "context"

// Repository defines the read-only report queries.
type Repository interface {
	CountSales(ctx context.Context, f Filter) (int, error)
	// ListSales returns the filtered sales, newest first. A limit of 0 returns all rows.
	ListSales(ctx context.Context, f Filter, limit, offset int) ([]*Row, error)
	TopProducts(ctx context.Context, n int) ([]*TopProduct, error)
	Sellers(ctx context.Context) ([]string, error)
	CustomerDebts(ctx context.Context) ([]*CustomerDebt, error)
}
