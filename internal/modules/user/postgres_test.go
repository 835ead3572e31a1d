package user

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserByUsernameNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM usuarios")).
		WithArgs("nadie").
		WillReturnError(sql.ErrNoRows)

	_, err = NewPostgresRepository(db).GetUserByUsername(context.Background(), "nadie")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateUserDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO usuarios")).
		WithArgs("admin", "hash", "admin").
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value"})

	err = NewPostgresRepository(db).CreateUser(context.Background(), &User{Username: "admin", PasswordHash: "hash", Role: "admin"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUpdateUserWithoutPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE usuarios SET usuario = $1, rol = $2 WHERE id = $3")).
		WithArgs("ana", "vendedor", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewPostgresRepository(db).UpdateUser(context.Background(), &User{ID: 3, Username: "ana", Role: "vendedor"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUserNoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM usuarios").WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, NewPostgresRepository(db).DeleteUser(context.Background(), 9), ErrNotFound)
}
