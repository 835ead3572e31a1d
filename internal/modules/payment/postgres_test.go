package payment

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPaymentTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ventas SET saldo_pendiente = saldo_pendiente - $1")).
		WithArgs(sqlmock.AnyArg(), int64(56)).
		WillReturnRows(sqlmock.NewRows([]string{"saldo_pendiente"}).AddRow("190.00"))
	mock.ExpectQuery("INSERT INTO pagos_corrientes").
		WithArgs(int64(56), "", sqlmock.AnyArg(), "Efectivo", "ana", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "cliente", "fecha"}).AddRow(3, "Juan", time.Now()))
	mock.ExpectExec("UPDATE deudas_clientes").
		WithArgs(sqlmock.AnyArg(), int64(56)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	p := &Payment{SaleID: 56, Amount: decimal.NewFromInt(100), Method: "Efectivo", Seller: "ana"}
	balance, err := NewPostgresRepository(db).RecordPayment(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(190)))
	assert.Equal(t, "Juan", p.Customer, "customer filled from the sale")
	assert.Equal(t, int64(3), p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordPaymentUnknownSale(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE ventas").WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err = NewPostgresRepository(db).RecordPayment(context.Background(), &Payment{SaleID: 9, Amount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, ErrSaleNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordPaymentRollsBackOnInsertFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE ventas").
		WillReturnRows(sqlmock.NewRows([]string{"saldo_pendiente"}).AddRow("190.00"))
	mock.ExpectQuery("INSERT INTO pagos_corrientes").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err = NewPostgresRepository(db).RecordPayment(context.Background(), &Payment{SaleID: 56, Amount: decimal.NewFromInt(100)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert pago")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListOutstanding(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE v.forma_pago = 'Cuenta Corriente' AND v.saldo_pendiente > 0")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cliente", "nombre", "cantidad", "total", "saldo_pendiente", "fecha"}).
			AddRow(56, "Juan", "Yerba", 3, "290.00", "190.00", time.Now()))

	list, err := NewPostgresRepository(db).ListOutstanding(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Juan", list[0].Customer)
	assert.True(t, list[0].Balance.Equal(decimal.NewFromInt(190)))
}
