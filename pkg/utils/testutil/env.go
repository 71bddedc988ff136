package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// GetEnvOrSkip returns the value of the environment variable. If not set, skip the test.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s is not set, skipping test against external backend", key)
	}
	return value
}

// TempDBPath returns a database file path in a directory removed after the test
func TempDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "octosearch.db")
}
