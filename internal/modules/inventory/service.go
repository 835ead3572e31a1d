package inventory

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Service defines catalog business logic.
type Service interface {
	// SaveProduct creates a product, or updates product editID when it is non-zero.
	SaveProduct(ctx context.Context, editID int64, form ProductForm) (*Product, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
	ListProducts(ctx context.Context) ([]*Product, error)
	ListInStock(ctx context.Context) ([]*Product, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) SaveProduct(ctx context.Context, editID int64, form ProductForm) (*Product, error) {
	p, err := parseForm(form)
	if err != nil {
		return nil, err
	}
	if editID != 0 {
		p.ID = editID
		if err := s.repo.Update(ctx, p); err != nil {
			return nil, err
		}
		return p, nil
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, id int64) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListProducts(ctx context.Context) ([]*Product, error) {
	return s.repo.List(ctx)
}

func (s *service) ListInStock(ctx context.Context) ([]*Product, error) {
	return s.repo.ListInStock(ctx)
}

func parseForm(form ProductForm) (*Product, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return nil, fmt.Errorf("el nombre es obligatorio")
	}
	cost, err := decimal.NewFromString(strings.TrimSpace(form.Cost))
	if err != nil {
		return nil, fmt.Errorf("costo inválido: %q", form.Cost)
	}
	price, err := decimal.NewFromString(strings.TrimSpace(form.Price))
	if err != nil {
		return nil, fmt.Errorf("precio inválido: %q", form.Price)
	}
	if cost.IsNegative() || price.IsNegative() {
		return nil, fmt.Errorf("costo y precio no pueden ser negativos")
	}
	stock, err := strconv.Atoi(strings.TrimSpace(form.Stock))
	if err != nil {
		return nil, fmt.Errorf("stock inválido: %q", form.Stock)
	}
	if stock < 0 {
		return nil, fmt.Errorf("el stock no puede ser negativo")
	}
	return &Product{
		Name:     name,
		Cost:     cost.Round(2),
		Price:    price.Round(2),
		Stock:    stock,
		Brand:    strings.TrimSpace(form.Brand),
		Category: strings.TrimSpace(form.Category),
	}, nil
}
