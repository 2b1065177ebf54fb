package cli

import (
	"bytes"
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/ecomload/internal/catalog"
	"github.com/vvka-141/ecomload/internal/testhelper"
	"github.com/vvka-141/ecomload/pkg/ecomload"
)

// execute runs a fresh root command in an isolated working directory and
// returns its stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	for _, key := range []string{EnvDataDir, EnvDatabase} {
		t.Setenv(key, "")
	}

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func workdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func countRows(t *testing.T, dbPath, table string) int64 {
	t.Helper()
	handle, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer handle.Close()

	var n int64
	require.NoError(t, handle.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestImport_DefaultsRelativeToWorkingDirectory(t *testing.T) {
	dir := workdir(t)
	testhelper.WriteDataDir(t, filepath.Join(dir, "data"), testhelper.SampleData)

	stdout, stderr, err := execute(t)
	require.NoError(t, err, stderr)

	dbPath := filepath.Join(dir, "ecommerce.db")
	assert.Equal(t, "Loaded CSV data into "+dbPath+"\n", stdout)
	assert.Empty(t, stderr)
	assert.EqualValues(t, 3, countRows(t, dbPath, "customers"))
}

func TestImport_Summary(t *testing.T) {
	dir := workdir(t)
	testhelper.WriteDataDir(t, filepath.Join(dir, "data"), testhelper.SampleData)

	stdout, _, err := execute(t, "--summary")
	require.NoError(t, err)

	for _, name := range catalog.Names() {
		assert.Contains(t, stdout, name)
	}
	assert.Contains(t, stdout, "total")
	assert.Contains(t, stdout, "15")
}

func TestImport_Verbose(t *testing.T) {
	dir := workdir(t)
	testhelper.WriteDataDir(t, filepath.Join(dir, "data"), testhelper.SampleData)

	_, stderr, err := execute(t, "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "[VERBOSE]")
	assert.Contains(t, stderr, "recreate_schema")
}

func TestImport_FlagsOverrideLocations(t *testing.T) {
	workdir(t)
	other := t.TempDir()
	dataDir := filepath.Join(other, "exports")
	dbPath := filepath.Join(other, "shop.db")
	testhelper.WriteDataDir(t, dataDir, testhelper.SampleData)

	stdout, _, err := execute(t, "--data-dir", dataDir, "--database", dbPath)
	require.NoError(t, err)
	assert.Equal(t, "Loaded CSV data into "+dbPath+"\n", stdout)
	assert.EqualValues(t, 2, countRows(t, dbPath, "payments"))
}

func TestImport_ProjectConfigFile(t *testing.T) {
	dir := workdir(t)
	testhelper.WriteDataDir(t, filepath.Join(dir, "exports"), testhelper.SampleData)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ecomload.yaml"),
		[]byte("data_dir: exports\ndatabase: from-yaml.db\ntimeout: 1m\n"), 0644))

	stdout, _, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, stdout, filepath.Join(dir, "from-yaml.db"))
}

func TestImport_MissingDataDir(t *testing.T) {
	dir := workdir(t)

	stdout, _, err := execute(t)
	require.Error(t, err)
	assert.ErrorIs(t, err, ecomload.ErrDataDirNotFound)
	assert.Equal(t, ecomload.ExitGeneralError, ecomload.ExitCodeForError(err))
	assert.Empty(t, stdout)

	_, statErr := os.Stat(filepath.Join(dir, "ecommerce.db"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestImport_MissingCSVFile(t *testing.T) {
	dir := workdir(t)
	testhelper.WriteDataDir(t, filepath.Join(dir, "data"),
		testhelper.Dataset(map[string]string{"orders.csv": testhelper.Omit}))

	stdout, _, err := execute(t)
	require.Error(t, err)
	assert.ErrorIs(t, err, ecomload.ErrSourceFileNotFound)
	assert.Equal(t, ecomload.ExitGeneralError, ecomload.ExitCodeForError(err))
	assert.Empty(t, stdout)
}

func TestImport_ExplicitConfigMissing(t *testing.T) {
	workdir(t)
	_, _, err := execute(t, "--config", "nope.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestImport_UsageErrors(t *testing.T) {
	workdir(t)

	tests := []struct {
		name string
		args []string
	}{
		{"positional argument", []string{"./data"}},
		{"unknown flag", []string{"--no-such-flag"}},
		{"bad duration", []string{"--timeout", "forever"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ecomload.ExitUsageError, ecomload.ExitCodeForError(err), "error: %v", err)
		})
	}
}

func TestTablesCmd(t *testing.T) {
	stdout, _, err := execute(t, "tables")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[1], "customers"))
	assert.Contains(t, lines[4], "quantity, unit_price, line_total")
}

func TestSchemaCmd(t *testing.T) {
	t.Run("all tables", func(t *testing.T) {
		stdout, _, err := execute(t, "schema")
		require.NoError(t, err)
		assert.Equal(t, 5, strings.Count(stdout, "CREATE TABLE"))
		assert.Less(t, strings.Index(stdout, "CREATE TABLE customers"), strings.Index(stdout, "CREATE TABLE payments"))
	})

	t.Run("selected tables keep load order", func(t *testing.T) {
		stdout, _, err := execute(t, "schema", "payments", "orders")
		require.NoError(t, err)
		assert.Equal(t, 2, strings.Count(stdout, "CREATE TABLE"))
		assert.Less(t, strings.Index(stdout, "CREATE TABLE orders"), strings.Index(stdout, "CREATE TABLE payments"))
	})

	t.Run("with drop", func(t *testing.T) {
		stdout, _, err := execute(t, "schema", "--drop", "customers")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(stdout, "DROP TABLE IF EXISTS customers;\nCREATE TABLE customers ("))
	})

	t.Run("unknown table", func(t *testing.T) {
		_, _, err := execute(t, "schema", "invoices")
		assert.Equal(t, ecomload.ExitUsageError, ecomload.ExitCodeForError(err))
	})
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "ecomload "), stdout)
}
