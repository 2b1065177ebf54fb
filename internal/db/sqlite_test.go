package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/ecomload/internal/logging"
)

func openTempSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "ecommerce.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenSQLite_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecommerce.db")

	store, err := OpenSQLite(context.Background(), path)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, path, store.Location())
}

func TestOpenSQLite_ForeignKeysRequested(t *testing.T) {
	store := openTempSQLite(t)

	var enabled int
	require.NoError(t, store.DB().QueryRow("PRAGMA foreign_keys").Scan(&enabled))
	assert.Equal(t, 1, enabled)
}

func TestOpenSQLite_SpecialCharactersInPath(t *testing.T) {
	for _, dir := range []string{"run#1", "q?x", "a%41b", "sp ace"} {
		t.Run(dir, func(t *testing.T) {
			root := t.TempDir()
			require.NoError(t, os.Mkdir(filepath.Join(root, dir), 0o755))
			path := filepath.Join(root, dir, "ecommerce.db")

			store, err := OpenSQLite(context.Background(), path)
			require.NoError(t, err)
			_, err = store.DB().Exec("CREATE TABLE marker (id INTEGER)")
			require.NoError(t, err)
			require.NoError(t, store.Close())

			assert.Equal(t, path, store.Location())
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Positive(t, info.Size())

			entries, err := os.ReadDir(root)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, dir, entries[0].Name())
		})
	}
}

func TestOpenSQLite_MissingParentDirectory(t *testing.T) {
	_, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "no", "such", "dir", "x.db"))
	require.Error(t, err)
}

func TestSQLiteTx_InsertAndCount(t *testing.T) {
	ctx := context.Background()
	store := openTempSQLite(t)

	tx, err := store.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Exec(ctx, "CREATE TABLE products (product_id TEXT PRIMARY KEY, price REAL NOT NULL, stock_qty INTEGER)"))
	n, err := tx.InsertRows(ctx, "products", []string{"product_id", "price", "stock_qty"}, [][]any{
		{"P1", 9.5, int64(3)},
		{"P2", 1.25, nil},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	require.NoError(t, tx.Commit(ctx))
	require.NoError(t, tx.Rollback(ctx), "rollback after commit is a no-op")

	count, err := store.CountRows(ctx, "products")
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	var stock any
	require.NoError(t, store.DB().QueryRow("SELECT stock_qty FROM products WHERE product_id = 'P2'").Scan(&stock))
	assert.Nil(t, stock)
}

func TestSQLiteTx_RollbackDiscardsRows(t *testing.T) {
	ctx := context.Background()
	store := openTempSQLite(t)

	tx, err := store.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Exec(ctx, "CREATE TABLE customers (customer_id TEXT PRIMARY KEY)"))
	require.NoError(t, tx.Commit(ctx))

	tx, err = store.Begin(ctx)
	require.NoError(t, err)
	n, err := tx.InsertRows(ctx, "customers", []string{"customer_id"}, [][]any{{"C1"}, {"C1"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "UNIQUE constraint failed")
	assert.EqualValues(t, 1, n)
	require.NoError(t, tx.Rollback(ctx))

	count, err := store.CountRows(ctx, "customers")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSQLiteTx_DefaultValuesWhenNoColumns(t *testing.T) {
	ctx := context.Background()
	store := openTempSQLite(t)

	tx, err := store.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Exec(ctx, "CREATE TABLE notes (body TEXT)"))
	n, err := tx.InsertRows(ctx, "notes", nil, [][]any{{}, {}})
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	require.NoError(t, tx.Commit(ctx))
}

func TestSQLiteTx_ExecErrorPreviewsStatement(t *testing.T) {
	ctx := context.Background()
	store := openTempSQLite(t)

	tx, err := store.Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	err = tx.Exec(ctx, "CREATE TABLE broken (")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"CREATE TABLE broken ("`)
}

func TestOpen_DispatchesToSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.db")

	store, err := NewOpener(logging.NewNullLogger())(context.Background(), path)
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.(*SQLiteStore)
	assert.True(t, ok, "expected *SQLiteStore, got %T", store)
}
