package testutil

import (
	"os"
	"strings"
	"testing"
)

// LiveTarget returns the value of key for tests that call real upstream
// services. The test is skipped in -short mode or when key is unset or blank.
func LiveTarget(t *testing.T, key string) string {
	t.Helper()
	if testing.Short() {
		t.Skipf("live upstream test skipped in short mode (%s)", key)
	}

	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		t.Skipf("%s is not set, live upstream test skipped", key)
	}
	return value
}
