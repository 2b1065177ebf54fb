package db

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteTx_InsertRows_StopsAtFirstFailure(t *testing.T) {
	handle, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer handle.Close()

	store := NewSQLiteStore(handle, "mock.db")

	mock.ExpectBegin()
	prep := mock.ExpectPrepare(regexp.QuoteMeta(`INSERT INTO "products" ("product_id", "price") VALUES (?, ?)`))
	prep.ExpectExec().WithArgs("P1", 1.5).WillReturnResult(sqlmock.NewResult(1, 1))
	prep.ExpectExec().WithArgs("P1", 2.0).WillReturnError(errors.New("UNIQUE constraint failed: products.product_id"))
	mock.ExpectRollback()

	ctx := context.Background()
	tx, err := store.Begin(ctx)
	require.NoError(t, err)

	n, err := tx.InsertRows(ctx, "products", []string{"product_id", "price"}, [][]any{
		{"P1", 1.5},
		{"P1", 2.0},
		{"P3", 3.0},
	})
	require.Error(t, err)
	assert.EqualValues(t, 1, n)
	require.NoError(t, tx.Rollback(ctx))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteTx_InsertRows_EmptyIsNoop(t *testing.T) {
	handle, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer handle.Close()

	store := NewSQLiteStore(handle, "mock.db")

	mock.ExpectBegin()
	mock.ExpectCommit()

	ctx := context.Background()
	tx, err := store.Begin(ctx)
	require.NoError(t, err)

	n, err := tx.InsertRows(ctx, "payments", []string{"payment_id"}, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	require.NoError(t, tx.Commit(ctx))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_CountRows(t *testing.T) {
	handle, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer handle.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	n, err := NewSQLiteStore(handle, "mock.db").CountRows(context.Background(), "orders")
	require.NoError(t, err)
	assert.EqualValues(t, 7, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_BeginFailure(t *testing.T) {
	handle, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer handle.Close()

	mock.ExpectBegin().WillReturnError(errors.New("database is locked"))

	_, err = NewSQLiteStore(handle, "mock.db").Begin(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
}
