package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewFromZap(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := NewFromZap(zap.New(core))

	log.Debug("hidden")
	log.Info("lookup served", "license_plate", "AB12345")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "lookup served", entries[0].Message)
	assert.Equal(t, "AB12345", entries[0].ContextMap()["license_plate"])
}

func TestWithError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewFromZap(zap.New(core))

	assert.Same(t, log, log.WithError(nil))

	log.WithError(errors.New("boom")).WithFields("request_id", "rid-1").Error("failed")

	entries := logs.FilterMessage("failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "boom", entries[0].ContextMap()["error"])
	assert.Equal(t, "rid-1", entries[0].ContextMap()["request_id"])
}

func TestNop(t *testing.T) {
	log := Nop()
	assert.NotPanics(t, func() {
		log.Info("ignored")
		log.Error("ignored", "error", "x")
	})
}
