// Package testhelper provides fixtures and database helpers shared by tests.
package testhelper

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/vvka-141/ecomload/internal/testinfra"
)

var (
	testContainerOnce sync.Once
	testContainerConn string
	testContainerErr  error
)

func getOrStartTestContainer() (string, error) {
	testContainerOnce.Do(func() {
		container, err := testinfra.StartPostgres(context.Background())
		if err != nil {
			testContainerErr = err
			return
		}
		testContainerConn = container.ConnString
	})
	return testContainerConn, testContainerErr
}

// SkipIfShort skips the test if running in short mode (-short flag).
func SkipIfShort(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
}

// RequirePostgres returns a PostgreSQL connection string for integration tests.
// Priority: ECOMLOAD_TEST_PG env var > auto-started testcontainer > skip test.
func RequirePostgres(t *testing.T) string {
	t.Helper()

	SkipIfShort(t)

	if connString := os.Getenv("ECOMLOAD_TEST_PG"); connString != "" {
		return connString
	}

	connString, err := getOrStartTestContainer()
	if err != nil {
		t.Skipf("ECOMLOAD_TEST_PG not set and Docker unavailable: %v", err)
	}
	return connString
}
