package catalog

import (
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/ecomload/pkg/ecomload"
)

func TestTables_DeclarationOrder(t *testing.T) {
	assert.Equal(t,
		[]string{"customers", "products", "orders", "order_items", "payments"},
		Names())

	for _, spec := range Tables() {
		assert.Equal(t, spec.Name+".csv", spec.Filename)
	}
}

func TestTables_NumericColumnsAreDeclaredNumbers(t *testing.T) {
	for _, spec := range Tables() {
		for _, name := range spec.NumericColumns {
			col, ok := lo.Find(spec.Columns, func(c ecomload.Column) bool { return c.Name == name })
			require.True(t, ok, "%s.%s is not a declared column", spec.Name, name)
			assert.Contains(t, []string{"REAL", "INTEGER"}, col.Type, "%s.%s", spec.Name, name)
		}
	}
}

func TestTables_SinglePrimaryKeyPerTable(t *testing.T) {
	for _, spec := range Tables() {
		keys := lo.Filter(spec.Columns, func(c ecomload.Column, _ int) bool { return c.PrimaryKey })
		require.Len(t, keys, 1, spec.Name)
		assert.Equal(t, spec.Columns[0].Name, keys[0].Name)
	}
}

func TestTables_ReturnsCopy(t *testing.T) {
	first := Tables()
	first[0].Name = "mutated"
	first[1].NumericColumns[0] = "mutated"

	second := Tables()
	assert.Equal(t, "customers", second[0].Name)
	assert.Equal(t, "price", second[1].NumericColumns[0])
}

func TestLookup(t *testing.T) {
	spec, ok := Lookup("orders")
	require.True(t, ok)
	assert.Equal(t, []string{
		"order_id", "customer_id", "order_date", "status",
		"shipping_city", "shipping_state", "total_amount",
	}, spec.ColumnNames())

	_, ok = Lookup("refunds")
	assert.False(t, ok)
}

func TestOrdersDDL(t *testing.T) {
	spec, ok := Lookup("orders")
	require.True(t, ok)

	ddl := spec.DDL()
	assert.True(t, strings.HasPrefix(ddl, "CREATE TABLE orders ("))
	assert.Contains(t, ddl, "order_id TEXT PRIMARY KEY,")
	assert.Contains(t, ddl, "customer_id TEXT NOT NULL,")
	assert.Contains(t, ddl, "total_amount REAL\n);")
	assert.NotContains(t, ddl, "REFERENCES")
}
