//go:build integration
// +build integration

package routes_test

import (
	"os"
	"testing"

	"assignment-admin-backend/internal/testutils"
)

func TestMain(m *testing.M) {
	os.Exit(testutils.RunIntegrationTests(m))
}
