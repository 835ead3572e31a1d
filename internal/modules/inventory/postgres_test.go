package inventory

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productColumns = []string{"id", "nombre", "costo", "precio", "stock", "marca", "rubro"}

func TestListInStock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM productos WHERE stock > 0")).
		WillReturnRows(sqlmock.NewRows(productColumns).
			AddRow(1, "Yerba", "60.00", "100.00", 10, "Playadito", "Almacén").
			AddRow(2, "Azúcar", "30.00", "45.50", 3, "Ledesma", "Almacén"))

	products, err := NewPostgresRepository(db).ListInStock(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Yerba", products[0].Name)
	assert.True(t, products[1].Price.Equal(decimal.RequireFromString("45.5")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM productos WHERE id").WithArgs(int64(7)).WillReturnError(sql.ErrNoRows)

	_, err = NewPostgresRepository(db).GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateReturnsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO productos")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))

	p := &Product{Name: "Yerba", Cost: decimal.NewFromInt(60), Price: decimal.NewFromInt(100), Stock: 10}
	require.NoError(t, NewPostgresRepository(db).Create(context.Background(), p))
	assert.Equal(t, int64(12), p.ID)
}
