package report

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CountSales(ctx context.Context, f Filter) (int, error) {
	q := newSalesQuery(f)
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*)`+q.where.String(), q.args...).Scan(&n)
	return n, err
}

func (r *postgresRepo) ListSales(ctx context.Context, f Filter, limit, offset int) ([]*Row, error) {
	q := newSalesQuery(f)
	query := `
		SELECT v.id, p.nombre, v.cantidad, v.usuario, v.ganancia, v.total,
		       v.forma_pago, v.cliente, v.fecha` + q.where.String() + `
		ORDER BY v.fecha DESC`
	args := q.args
	if limit > 0 {
		var clause string
		clause, args = q.page(limit, offset)
		query += clause
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*Row{}
	for rows.Next() {
		row := &Row{}
		if err := rows.Scan(&row.SaleID, &row.ProductName, &row.Quantity, &row.Seller,
			&row.UnitProfit, &row.Total, &row.PaymentMethod, &row.Customer, &row.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

func (r *postgresRepo) TopProducts(ctx context.Context, n int) ([]*TopProduct, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.nombre, SUM(v.cantidad) AS total_vendidos
		FROM ventas v
		JOIN productos p ON v.producto_id = p.id
		GROUP BY p.nombre
		ORDER BY total_vendidos DESC
		LIMIT $1`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	top := []*TopProduct{}
	for rows.Next() {
		t := &TopProduct{}
		if err := rows.Scan(&t.Name, &t.Sold); err != nil {
			return nil, err
		}
		top = append(top, t)
	}
	return top, rows.Err()
}

func (r *postgresRepo) Sellers(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT usuario FROM ventas ORDER BY usuario`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sellers := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		sellers = append(sellers, s)
	}
	return sellers, rows.Err()
}

func (r *postgresRepo) CustomerDebts(ctx context.Context) ([]*CustomerDebt, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT cliente, SUM(total), SUM(saldo_pendiente), MAX(fecha)
		FROM ventas
		WHERE forma_pago = 'Cuenta Corriente' AND saldo_pendiente > 0
		GROUP BY cliente
		ORDER BY cliente`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	debts := []*CustomerDebt{}
	for rows.Next() {
		d := &CustomerDebt{}
		if err := rows.Scan(&d.Name, &d.Total, &d.Balance, &d.LastSale); err != nil {
			return nil, err
		}
		debts = append(debts, d)
	}
	return debts, rows.Err()
}
