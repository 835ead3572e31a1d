package report

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("Fecha inválida, use el formato AAAA-MM-DD")

// Filter narrows the sales report. Dates are inclusive calendar days.
type Filter struct {
	Seller string
	From   string
	To     string
	Page   int
}

// Normalize trims the fields, clamps the page and checks the date format.
func (f Filter) Normalize() (Filter, error) {
	f.Seller = strings.TrimSpace(f.Seller)
	f.From = strings.TrimSpace(f.From)
	f.To = strings.TrimSpace(f.To)
	if f.Page < 1 {
		f.Page = 1
	}
	for _, d := range []string{f.From, f.To} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, d); err != nil {
			return f, ErrInvalidDate
		}
	}
	return f, nil
}

// Row is one sale line of the report.
type Row struct {
	SaleID        int64
	ProductName   string
	Quantity      int
	Seller        string
	UnitProfit    decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
	Customer      string
	CreatedAt     time.Time
}

// Profit is the line profit: unit profit times quantity.
func (r *Row) Profit() decimal.Decimal {
	return r.UnitProfit.Mul(decimal.NewFromInt(int64(r.Quantity)))
}

// TopProduct is a best seller by units sold.
type TopProduct struct {
	Name string
	Sold int
}

// CustomerDebt is the outstanding credit of one customer.
type CustomerDebt struct {
	Name     string
	Total    decimal.Decimal
	Balance  decimal.Decimal
	LastSale time.Time
}

// Report is the data behind the sales page.
type Report struct {
	Filter     Filter
	Rows       []*Row
	Total      decimal.Decimal
	Profit     decimal.Decimal
	Top        []*TopProduct
	Sellers    []string
	Debts      []*CustomerDebt
	TotalPages int
}
