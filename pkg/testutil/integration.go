package testutil

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// DescriptorSuite provides base functionality for tests that load
// descriptor files end to end.
type DescriptorSuite struct {
	suite.Suite
	ctx       context.Context
	cancel    context.CancelFunc
	tempDir   string
	startTime time.Time

	// Logs records every entry of the current test, debug level and up.
	Logs *observer.ObservedLogs
}

// SetupSuite runs before all tests in the suite
func (s *DescriptorSuite) SetupSuite() {
	s.ctx, s.cancel = context.WithTimeout(context.Background(), time.Minute)
	s.startTime = time.Now()

	tempDir, err := os.MkdirTemp("", "comconfig-test-*")
	require.NoError(s.T(), err)
	s.tempDir = tempDir
}

// TearDownSuite runs after all tests in the suite
func (s *DescriptorSuite) TearDownSuite() {
	s.cancel()

	if s.tempDir != "" {
		os.RemoveAll(s.tempDir)
	}

	s.T().Logf("descriptor suite completed in %v", time.Since(s.startTime))
}

// SetupTest installs a fresh observed logger for each test.
func (s *DescriptorSuite) SetupTest() {
	s.Logs = ObserveLogs(s.T(), zapcore.DebugLevel)
}

// Context returns the suite context
func (s *DescriptorSuite) Context() context.Context {
	return s.ctx
}

// TempDir returns the temporary directory path
func (s *DescriptorSuite) TempDir() string {
	return s.tempDir
}

// WriteDescriptor writes buf into the suite directory and returns its path.
func (s *DescriptorSuite) WriteDescriptor(name string, buf []byte) string {
	path := filepath.Join(s.tempDir, name)
	require.NoError(s.T(), os.WriteFile(path, buf, 0o600))
	return path
}

// RequireFatal runs fn and returns the single fatal diagnostic it logged.
func (s *DescriptorSuite) RequireFatal(fn func()) observer.LoggedEntry {
	return RequireFatal(s.T(), s.Logs, fn)
}
