package inventory

import "github.com/shopspring/decimal"

// Product is a catalog item sold at the counter.
type Product struct {
	ID       int64           `json:"id"`
	Name     string          `json:"nombre"`
	Cost     decimal.Decimal `json:"costo"`
	Price    decimal.Decimal `json:"precio"`
	Stock    int             `json:"stock"`
	Brand    string          `json:"marca"`
	Category string          `json:"rubro"`
}

// UnitProfit is the margin earned on one unit at the current price.
func (p *Product) UnitProfit() decimal.Decimal {
	return p.Price.Sub(p.Cost)
}

// ProductForm holds the raw fields posted from the product page.
type ProductForm struct {
	Name     string
	Cost     string
	Price    string
	Stock    string
	Brand    string
	Category string
}
