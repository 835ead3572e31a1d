package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) RecordPayment(ctx context.Context, p *Payment) (decimal.Decimal, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return decimal.Zero, err
	}
	defer tx.Rollback()

	var balance decimal.Decimal
	err = tx.QueryRowContext(ctx, `
		UPDATE ventas SET saldo_pendiente = saldo_pendiente - $1
		WHERE id = $2
		RETURNING saldo_pendiente`, p.Amount, p.SaleID).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, ErrSaleNotFound
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("update saldo venta: %w", err)
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO pagos_corrientes
		  (venta_id, cliente, monto, metodo_pago, fecha, usuario, observaciones)
		VALUES ($1, COALESCE(NULLIF($2, ''), (SELECT cliente FROM ventas WHERE id = $1)),
		        $3, $4, NOW(), $5, $6)
		RETURNING id, cliente, fecha`,
		p.SaleID, p.Customer, p.Amount, p.Method, p.Seller, p.Notes).
		Scan(&p.ID, &p.Customer, &p.CreatedAt)
	if err != nil {
		return decimal.Zero, fmt.Errorf("insert pago: %w", err)
	}

	// Sales made before the debt ledger existed have no row here.
	if _, err := tx.ExecContext(ctx, `
		UPDATE deudas_clientes SET saldo_pendiente = saldo_pendiente - $1
		WHERE venta_id = $2`, p.Amount, p.SaleID); err != nil {
		return decimal.Zero, fmt.Errorf("update deuda: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

func (r *postgresRepo) ListOutstanding(ctx context.Context) ([]*Outstanding, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT v.id, v.cliente, p.nombre, v.cantidad, v.total, v.saldo_pendiente, v.fecha
		FROM ventas v
		JOIN productos p ON v.producto_id = p.id
		WHERE v.forma_pago = 'Cuenta Corriente' AND v.saldo_pendiente > 0
		ORDER BY v.fecha DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*Outstanding{}
	for rows.Next() {
		o := &Outstanding{}
		if err := rows.Scan(&o.SaleID, &o.Customer, &o.ProductName, &o.Quantity,
			&o.Total, &o.Balance, &o.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, o)
	}
	return list, rows.Err()
}
