package customer

import (
	"context"
	"errors"
	"strings"
)

var ErrMissingFields = errors.New("nombre y teléfono son obligatorios")

// Service defines customer registration.
type Service interface {
	Register(ctx context.Context, name, phone string) (*Customer, error)
	List(ctx context.Context) ([]*Customer, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Register(ctx context.Context, name, phone string) (*Customer, error) {
	c := &Customer{Name: strings.TrimSpace(name), Phone: strings.TrimSpace(phone)}
	if c.Name == "" || c.Phone == "" {
		return nil, ErrMissingFields
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) List(ctx context.Context) ([]*Customer, error) {
	return s.repo.List(ctx)
}
