package inventory

import (
	"context"
	"database/sql"
	"errors"
)

const selectProduct = `SELECT id, nombre, costo, precio, stock, marca, rubro FROM productos`

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, p *Product) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO productos (nombre, costo, precio, stock, marca, rubro)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id`,
		p.Name, p.Cost, p.Price, p.Stock, p.Brand, p.Category).Scan(&p.ID)
}

func (r *postgresRepo) Update(ctx context.Context, p *Product) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE productos SET nombre=$1, costo=$2, precio=$3, stock=$4, marca=$5, rubro=$6
		WHERE id=$7`,
		p.Name, p.Cost, p.Price, p.Stock, p.Brand, p.Category, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*Product, error) {
	p, err := ScanProduct(r.db.QueryRowContext(ctx, selectProduct+` WHERE id=$1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func (r *postgresRepo) List(ctx context.Context) ([]*Product, error) {
	return r.query(ctx, selectProduct+` ORDER BY id`)
}

func (r *postgresRepo) ListInStock(ctx context.Context) ([]*Product, error) {
	return r.query(ctx, selectProduct+` WHERE stock > 0 ORDER BY nombre`)
}

// ── scanner ───────────────────────────────────────────────────────────────────

type rowScanner interface{ Scan(dest ...interface{}) error }

// ScanProduct reads id, nombre, costo, precio, stock, marca, rubro in that order.
func ScanProduct(row rowScanner) (*Product, error) {
	p := &Product{}
	if err := row.Scan(&p.ID, &p.Name, &p.Cost, &p.Price, &p.Stock, &p.Brand, &p.Category); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) query(ctx context.Context, query string, args ...interface{}) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	products := []*Product{}
	for rows.Next() {
		p, err := ScanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
