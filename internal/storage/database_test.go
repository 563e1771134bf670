//go:build integration
// +build integration

package storage

import (
	"os"
	"testing"

	"collab-backend/internal/testutils"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}

func TestDatabaseStorage(t *testing.T) {
	testutils.RunWithTestSuite(t, func(s *testutils.BaseTestSuite) {
		exerciseStorage(t, NewDatabaseStorage(s.DB))
	})
}
