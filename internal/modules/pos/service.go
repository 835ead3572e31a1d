package pos

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/georgemunganga/mostrador/internal/modules/customer"
	"github.com/georgemunganga/mostrador/internal/modules/inventory"
	"github.com/shopspring/decimal"
)

const salesPerPage = 10

// Service defines the sale counter.
type Service interface {
	// RegisterSale validates the request and records the sale atomically.
	// Validation and business-rule failures are returned as *Rejection.
	RegisterSale(ctx context.Context, req SaleRequest) (*SaleReceipt, error)

	// Screen loads the sale page: sellable products, customers and a page of recent sales.
	Screen(ctx context.Context, page int) (*Screen, error)

	GetSale(ctx context.Context, id int64) (*Sale, error)
}

type service struct {
	repo      Repository
	products  inventory.Repository
	customers customer.Repository
}

func NewService(repo Repository, products inventory.Repository, customers customer.Repository) Service {
	return &service{repo: repo, products: products, customers: customers}
}

func (s *service) RegisterSale(ctx context.Context, req SaleRequest) (*SaleReceipt, error) {
	order, err := validateSale(req)
	if err != nil {
		return nil, err
	}

	sale, stockAfter, err := s.repo.RegisterSale(ctx, order)
	if err != nil {
		return nil, err
	}

	products, err := s.products.ListInStock(ctx)
	if err != nil {
		// the sale is committed; the screen keeps its previous list
		log.Printf("venta %d: refresh products: %v", sale.ID, err)
	}
	return &SaleReceipt{Sale: sale, StockAfter: stockAfter, Products: products}, nil
}

// validateSale checks the form fields in the order the counter reports them.
func validateSale(req SaleRequest) (SaleOrder, error) {
	productID := strings.TrimSpace(req.ProductID)
	if productID == "" {
		return SaleOrder{}, reject("Debe seleccionar un producto")
	}
	id, err := strconv.ParseInt(productID, 10, 64)
	if err != nil || id <= 0 {
		return SaleOrder{}, reject("Producto no encontrado.")
	}

	qty, err := strconv.Atoi(strings.TrimSpace(req.Quantity))
	if err != nil || qty <= 0 {
		return SaleOrder{}, reject("La cantidad debe ser mayor a cero")
	}

	discount := decimal.Zero
	if raw := strings.TrimSpace(req.Discount); raw != "" {
		discount, err = decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
		if err != nil {
			return SaleOrder{}, reject("El descuento debe ser un número válido")
		}
		if discount.IsNegative() {
			return SaleOrder{}, reject("El descuento no puede ser negativo.")
		}
	}

	method := strings.TrimSpace(req.PaymentMethod)
	if method == "" {
		method = MethodCash
	}
	credit := IsCredit(method)
	if credit {
		method = MethodCredit
	}

	cust := strings.TrimSpace(req.Customer)
	if cust == "" {
		cust = customer.WalkIn
	}
	if credit && cust == customer.WalkIn {
		return SaleOrder{}, reject("Debe seleccionar un cliente registrado para ventas a cuenta corriente")
	}

	return SaleOrder{
		ProductID:     id,
		Quantity:      qty,
		PaymentMethod: method,
		Customer:      cust,
		Discount:      discount.Round(2),
		Seller:        req.Seller,
		Credit:        credit,
	}, nil
}

func (s *service) Screen(ctx context.Context, page int) (*Screen, error) {
	if page < 1 {
		page = 1
	}
	products, err := s.products.ListInStock(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.CountSales(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.repo.ListSales(ctx, salesPerPage, (page-1)*salesPerPage)
	if err != nil {
		return nil, err
	}
	return &Screen{
		Products:   products,
		Customers:  customers,
		Sales:      sales,
		Page:       page,
		TotalPages: (total + salesPerPage - 1) / salesPerPage,
	}, nil
}

func (s *service) GetSale(ctx context.Context, id int64) (*Sale, error) {
	return s.repo.GetSale(ctx, id)
}
