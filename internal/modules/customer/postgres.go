package customer

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, c *Customer) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO clientes (nombre, telefono) VALUES ($1, $2) RETURNING id`,
		c.Name, c.Phone).Scan(&c.ID)
}

func (r *postgresRepo) List(ctx context.Context) ([]*Customer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, nombre, telefono FROM clientes ORDER BY nombre`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	customers := []*Customer{}
	for rows.Next() {
		c := &Customer{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}
