// Package testutil provides testing utilities for the configuration loader
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ajitpratap0/comconfig/pkg/logger"
)

// TestContext creates a test context with a 30-second timeout.
// The caller must call the returned cancel function to avoid leaks.
func TestContext(_ *testing.T) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

// WriteFile writes content to name inside a per-test temporary directory
// and returns the path.
func WriteFile(tb testing.TB, name string, content []byte) string {
	tb.Helper()
	path := filepath.Join(tb.TempDir(), name)
	require.NoError(tb, os.WriteFile(path, content, 0o600))
	return path
}

// ObserveLogs installs a global logger that records entries at level and
// above. Its Fatal panics after writing instead of exiting, so termination
// paths can be asserted. The previous logger is restored at cleanup.
func ObserveLogs(tb testing.TB, level zapcore.Level) *observer.ObservedLogs {
	tb.Helper()
	core, logs := observer.New(level)
	restore := logger.Replace(zap.New(core, zap.WithFatalHook(zapcore.WriteThenPanic)))
	tb.Cleanup(restore)
	return logs
}

// RequireFatal runs fn, requires it to end in the fatal path and returns
// the single fatal entry it logged.
func RequireFatal(tb testing.TB, logs *observer.ObservedLogs, fn func()) observer.LoggedEntry {
	tb.Helper()
	before := logs.FilterLevelExact(zapcore.FatalLevel).Len()
	require.Panics(tb, fn)
	fatal := logs.FilterLevelExact(zapcore.FatalLevel).All()
	require.Len(tb, fatal, before+1, "expected exactly one fatal diagnostic")
	return fatal[len(fatal)-1]
}
