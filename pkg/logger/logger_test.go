package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitRejectsInvalidLevel(t *testing.T) {
	err := Init(Config{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestReplaceAndRestore(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := Replace(zap.New(core))

	Info("loaded", zap.Int("service_types", 2))
	Debug("section mapped")

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "loaded", logs.All()[0].Message)
	assert.Equal(t, int64(2), logs.All()[0].ContextMap()["service_types"])

	restore()
	assert.NotNil(t, Get())
	Info("not observed")
	assert.Equal(t, 2, logs.Len())
}

func TestFatalUsesHook(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := Replace(zap.New(core, zap.WithFatalHook(zapcore.WriteThenPanic)))
	defer restore()

	assert.Panics(t, func() { Fatal("configuration broken") })
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.FatalLevel, logs.All()[0].Level)
}

func TestNewLoggerTagsContext(t *testing.T) {
	l, err := newLogger(Config{Level: "debug", Encoding: "console", OutputPaths: []string{"stdout"}})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestReplaceTagsContext(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	restore := Replace(zap.New(core))
	defer restore()

	Info("loaded")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, ContextID, logs.All()[0].ContextMap()["context"])
}
