package customer

import "context"

// Repository defines data access for customers.
type Repository interface {
	Create(ctx context.Context, c *Customer) error
	List(ctx context.Context) ([]*Customer, error)
}
