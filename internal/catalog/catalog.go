// Package catalog holds the static configuration table: the ordered list of
// destination tables, their source CSV files, DDL and numeric columns.
package catalog

import "github.com/vvka-141/ecomload/pkg/ecomload"

func text(name string) ecomload.Column { return ecomload.Column{Name: name, Type: "TEXT"} }
func textNN(name string) ecomload.Column { return ecomload.Column{Name: name, Type: "TEXT", NotNull: true} }
func realNN(name string) ecomload.Column { return ecomload.Column{Name: name, Type: "REAL", NotNull: true} }
func key(name string) ecomload.Column { return ecomload.Column{Name: name, Type: "TEXT", PrimaryKey: true} }
func integer(name string) ecomload.Column { return ecomload.Column{Name: name, Type: "INTEGER"} }

// tables is in declaration order. That order drives both recreation and
// insertion; it is not derived from the relationships between tables.
var tables = []ecomload.TableSpec{
	{
		Name:     "customers",
		Filename: "customers.csv",
		Columns: []ecomload.Column{
			key("customer_id"),
			textNN("first_name"),
			textNN("last_name"),
			textNN("email"),
			text("phone"),
			text("city"),
			text("state"),
			text("signup_date"),
			text("loyalty_tier"),
		},
	},
	{
		Name:     "products",
		Filename: "products.csv",
		Columns: []ecomload.Column{
			key("product_id"),
			textNN("name"),
			textNN("category"),
			realNN("price"),
			integer("stock_qty"),
			text("active"),
		},
		NumericColumns: []string{"price", "stock_qty"},
	},
	{
		Name:     "orders",
		Filename: "orders.csv",
		Columns: []ecomload.Column{
			key("order_id"),
			textNN("customer_id"),
			textNN("order_date"),
			text("status"),
			text("shipping_city"),
			text("shipping_state"),
			{Name: "total_amount", Type: "REAL"},
		},
		NumericColumns: []string{"total_amount"},
	},
	{
		Name:     "order_items",
		Filename: "order_items.csv",
		Columns: []ecomload.Column{
			key("order_item_id"),
			textNN("order_id"),
			textNN("product_id"),
			{Name: "quantity", Type: "INTEGER", NotNull: true},
			realNN("unit_price"),
			realNN("line_total"),
		},
		NumericColumns: []string{"quantity", "unit_price", "line_total"},
	},
	{
		Name:     "payments",
		Filename: "payments.csv",
		Columns: []ecomload.Column{
			key("payment_id"),
			textNN("order_id"),
			textNN("payment_date"),
			realNN("amount"),
			text("method"),
			text("status"),
			text("transaction_id"),
		},
		NumericColumns: []string{"amount"},
	},
}

// Tables returns a copy of the configuration table in declaration order.
func Tables() []ecomload.TableSpec {
	out := make([]ecomload.TableSpec, len(tables))
	for i, t := range tables {
		out[i] = clone(t)
	}
	return out
}

// Lookup returns the TableSpec for the named table.
func Lookup(name string) (ecomload.TableSpec, bool) {
	for _, t := range tables {
		if t.Name == name {
			return clone(t), true
		}
	}
	return ecomload.TableSpec{}, false
}

// Names returns the table names in declaration order.
func Names() []string {
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.Name
	}
	return names
}

func clone(t ecomload.TableSpec) ecomload.TableSpec {
	t.Columns = append([]ecomload.Column(nil), t.Columns...)
	t.NumericColumns = append([]string(nil), t.NumericColumns...)
	return t
}
