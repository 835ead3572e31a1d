package inventory

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("producto no encontrado")

// Repository defines data access for the product catalog.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id int64) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
	ListInStock(ctx context.Context) ([]*Product, error)
}
