package testutils

import (
	"os"
	"os/signal"
	"syscall"
	"testing"

	"github.com/sirupsen/logrus"
)

// RunIntegrationTests is the body of TestMain for packages that use the shared
// Postgres container. The container is purged when the run ends or is interrupted.
func RunIntegrationTests(m *testing.M) int {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		<-signals
		logrus.Warn("Integration tests interrupted, purging postgres container")
		CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	CleanupSharedContainer()
	return code
}
