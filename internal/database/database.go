package database

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/georgemunganga/mostrador/internal/config"
	_ "github.com/lib/pq"
)

//go:embed schema.sql
var schema string

// Open connects to PostgreSQL with the pool limits from cfg and verifies the
// connection before returning.
func Open(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 6*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Bootstrap creates the tables if they are missing and seeds the default
// admin account. passwordHash is stored as-is.
func Bootstrap(ctx context.Context, db *sql.DB, passwordHash string) (seeded bool, err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, schema); err != nil {
		return false, fmt.Errorf("apply schema: %w", err)
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO usuarios (usuario, password, rol)
		VALUES ('admin', $1, 'admin')
		ON CONFLICT (usuario) DO NOTHING`, passwordHash)
	if err != nil {
		return false, fmt.Errorf("seed admin: %w", err)
	}
	n, _ := res.RowsAffected()

	return n > 0, tx.Commit()
}
