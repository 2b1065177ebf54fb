package testhelper

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vvka-141/ecomload/internal/files/filesystem"
)

// Omit marks a fixture file that must not be written.
const Omit = "\x00omit"

// SampleData is a small, valid dataset. It contains a NULL-able numeric cell
// that fails coercion, a quoted comma, and orphaned cross-table references.
var SampleData = map[string]string{
	"customers.csv": `customer_id,first_name,last_name,email,phone,city,state,signup_date,loyalty_tier
C001,Ada,Lovelace,ada@example.com,555-0100,London,LN,2023-01-05,gold
C002,Alan,Turing,alan@example.com,,Manchester,MC,2023-02-11,silver
C003,Grace,Hopper,grace@example.com,555-0102,Arlington,VA,2023-03-20,
`,
	"products.csv": `product_id,name,category,price,stock_qty,active
P001,Desk Lamp,Home,24.99,120,True
P002,Notebook,Office,3.5,N/A,True
P003,"Chair, ergonomic",Office,189,7,False
`,
	"orders.csv": `order_id,customer_id,order_date,status,shipping_city,shipping_state,total_amount
O001,C001,2024-01-02,shipped,London,LN,53.48
O002,C002,2024-01-05,pending,Manchester,MC,unknown
O003,C999,2024-01-06,cancelled,Nowhere,ZZ,189
`,
	"order_items.csv": `order_item_id,order_id,product_id,quantity,unit_price,line_total
OI001,O001,P001,2,24.99,49.98
OI002,O001,P002,1,3.5,3.5
OI003,O003,P003,1,189,189
OI004,O002,P404,4,3.5,14
`,
	"payments.csv": `payment_id,order_id,payment_date,amount,method,status,transaction_id
PAY001,O001,2024-01-02,53.48,card,captured,TX-1
PAY002,O003,2024-01-06,189,paypal,refunded,
`,
}

// Dataset returns SampleData with overrides applied. An override of Omit
// removes the file.
func Dataset(overrides map[string]string) map[string]string {
	out := make(map[string]string, len(SampleData))
	for name, content := range SampleData {
		out[name] = content
	}
	for name, content := range overrides {
		if content == Omit {
			delete(out, name)
			continue
		}
		out[name] = content
	}
	return out
}

// WriteDataDir writes a dataset into dir on disk, creating dir.
func WriteDataDir(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
}

// MemoryDataDir builds an in-memory filesystem rooted at root with the
// dataset under root/data.
func MemoryDataDir(root string, files map[string]string) *filesystem.MemoryFileSystem {
	mfs := filesystem.NewMemoryFileSystem(root)
	mfs.AddFile("data/.keep", "")
	for name, content := range files {
		mfs.AddFile("data/"+name, content)
	}
	return mfs
}

// DataRows counts the data rows of simple fixture CSV content (no embedded
// newlines), excluding the header.
func DataRows(content string) int64 {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	return int64(len(lines) - 1)
}
