package report

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	rowsPerPage = 10
	topN        = 5
)

// Service defines the sales report.
type Service interface {
	Build(ctx context.Context, f Filter) (*Report, error)
	// Export writes every sale matching f as an xlsx workbook.
	Export(ctx context.Context, f Filter, w io.Writer) error
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Build(ctx context.Context, f Filter) (*Report, error) {
	f, err := f.Normalize()
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountSales(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("count ventas: %w", err)
	}
	rows, err := s.repo.ListSales(ctx, f, rowsPerPage, (f.Page-1)*rowsPerPage)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	top, err := s.repo.TopProducts(ctx, topN)
	if err != nil {
		return nil, fmt.Errorf("top productos: %w", err)
	}
	sellers, err := s.repo.Sellers(ctx)
	if err != nil {
		return nil, fmt.Errorf("vendedores: %w", err)
	}
	debts, err := s.repo.CustomerDebts(ctx)
	if err != nil {
		return nil, fmt.Errorf("deudas: %w", err)
	}

	rep := &Report{
		Filter:     f,
		Rows:       rows,
		Top:        top,
		Sellers:    sellers,
		Debts:      debts,
		TotalPages: (count + rowsPerPage - 1) / rowsPerPage,
	}
	// Totals cover the visible page only.
	for _, r := range rows {
		rep.Total = rep.Total.Add(r.Total)
		rep.Profit = rep.Profit.Add(r.Profit())
	}
	rep.Total = rep.Total.Round(2)
	rep.Profit = rep.Profit.Round(2)
	return rep, nil
}

var exportHeader = []interface{}{
	"Venta", "Fecha", "Producto", "Cantidad", "Vendedor", "Cliente",
	"Forma de pago", "Total", "Ganancia",
}

func (s *service) Export(ctx context.Context, f Filter, w io.Writer) error {
	f, err := f.Normalize()
	if err != nil {
		return err
	}
	rows, err := s.repo.ListSales(ctx, f, 0, 0)
	if err != nil {
		return fmt.Errorf("list ventas: %w", err)
	}

	book := excelize.NewFile()
	defer book.Close()

	const sheet = "Ventas"
	if err := book.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	bold, err := book.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := book.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
		return err
	}
	if err := book.SetCellStyle(sheet, "A1", "I1", bold); err != nil {
		return err
	}

	total, profit := decimal.Zero, decimal.Zero
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		line := []interface{}{
			r.SaleID, r.CreatedAt.Format("02/01/2006 15:04"), r.ProductName, r.Quantity,
			r.Seller, r.Customer, r.PaymentMethod,
			r.Total.InexactFloat64(), r.Profit().InexactFloat64(),
		}
		if err := book.SetSheetRow(sheet, cell, &line); err != nil {
			return err
		}
		total = total.Add(r.Total)
		profit = profit.Add(r.Profit())
	}

	cell, err := excelize.CoordinatesToCellName(7, len(rows)+2)
	if err != nil {
		return err
	}
	summary := []interface{}{"Totales", total.Round(2).InexactFloat64(), profit.Round(2).InexactFloat64()}
	if err := book.SetSheetRow(sheet, cell, &summary); err != nil {
		return err
	}
	if err := book.SetColWidth(sheet, "A", "I", 16); err != nil {
		return err
	}
	return book.Write(w)
}
