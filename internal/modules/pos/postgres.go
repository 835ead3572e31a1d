package pos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/georgemunganga/mostrador/internal/modules/inventory"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) RegisterSale(ctx context.Context, o SaleOrder) (*Sale, int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, 0, err
	}
	defer tx.Rollback()

	if o.Credit {
		var customerID int64
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM clientes WHERE nombre = $1 LIMIT 1`, o.Customer).Scan(&customerID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, reject("El cliente no existe en la base de datos")
		}
		if err != nil {
			return nil, 0, fmt.Errorf("lookup cliente: %w", err)
		}
	}

	// Row lock: concurrent sales of the same product queue here until commit.
	p, err := inventory.ScanProduct(tx.QueryRowContext(ctx, `
		SELECT id, nombre, costo, precio, stock, marca, rubro
		FROM productos WHERE id = $1
		FOR UPDATE`, o.ProductID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, reject("Producto no encontrado.")
	}
	if err != nil {
		return nil, 0, fmt.Errorf("lock producto: %w", err)
	}

	if o.Quantity > p.Stock {
		return nil, 0, reject(fmt.Sprintf("No hay stock suficiente. Stock actual: %d", p.Stock))
	}

	totals, err := Quote(p, o.Quantity, o.Discount, o.Credit)
	if err != nil {
		return nil, 0, err
	}

	sale := &Sale{
		ProductID:     p.ID,
		ProductName:   p.Name,
		Quantity:      o.Quantity,
		Seller:        o.Seller,
		UnitProfit:    totals.UnitProfit,
		Total:         totals.Total,
		PaymentMethod: o.PaymentMethod,
		Customer:      o.Customer,
		Discount:      o.Discount,
		Balance:       totals.Balance,
	}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO ventas
		  (producto_id, cantidad, usuario, ganancia, fecha, total,
		   forma_pago, cliente, descuento, saldo_pendiente)
		VALUES ($1,$2,$3,$4,NOW(),$5,$6,$7,$8,$9)
		RETURNING id, fecha`,
		sale.ProductID, sale.Quantity, sale.Seller, sale.UnitProfit, sale.Total,
		sale.PaymentMethod, sale.Customer, sale.Discount, sale.Balance).
		Scan(&sale.ID, &sale.CreatedAt)
	if err != nil {
		return nil, 0, fmt.Errorf("insert venta: %w", err)
	}

	stockAfter := p.Stock - o.Quantity
	if _, err := tx.ExecContext(ctx,
		`UPDATE productos SET stock = $1 WHERE id = $2`, stockAfter, p.ID); err != nil {
		return nil, 0, fmt.Errorf("update stock: %w", err)
	}

	if o.Credit {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO deudas_clientes
			  (cliente, venta_id, monto_original, saldo_pendiente, fecha)
			VALUES ($1,$2,$3,$4,NOW())
			ON CONFLICT (venta_id) DO UPDATE
			SET saldo_pendiente = EXCLUDED.saldo_pendiente`,
			sale.Customer, sale.ID, sale.Total, sale.Balance)
		if err != nil {
			return nil, 0, fmt.Errorf("insert deuda: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, err
	}
	return sale, stockAfter, nil
}

const selectSale = `
	SELECT v.id, v.producto_id, COALESCE(p.nombre, ''), v.cantidad, v.usuario,
	       v.ganancia, v.total, v.forma_pago, v.cliente, v.descuento,
	       v.saldo_pendiente, v.fecha
	FROM ventas v
	LEFT JOIN productos p ON v.producto_id = p.id`

func (r *postgresRepo) GetSale(ctx context.Context, id int64) (*Sale, error) {
	s, err := scanSale(r.db.QueryRowContext(ctx, selectSale+` WHERE v.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSaleNotFound
	}
	return s, err
}

func (r *postgresRepo) ListSales(ctx context.Context, limit, offset int) ([]*Sale, error) {
	rows, err := r.db.QueryContext(ctx, selectSale+` ORDER BY v.fecha DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	sales := []*Sale{}
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func (r *postgresRepo) CountSales(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ventas`).Scan(&n)
	return n, err
}

// ── scanner ───────────────────────────────────────────────────────────────────

type rowScanner interface{ Scan(dest ...interface{}) error }

// scanSale reads the columns produced by the sale select, in order.
func scanSale(row rowScanner) (*Sale, error) {
	s := &Sale{}
	err := row.Scan(&s.ID, &s.ProductID, &s.ProductName, &s.Quantity, &s.Seller,
		&s.UnitProfit, &s.Total, &s.PaymentMethod, &s.Customer, &s.Discount,
		&s.Balance, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}
