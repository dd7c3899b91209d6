package security

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"joao@example.com", "j***@example.com"},
		{"a@example.com", "***@example.com"},
		{"no-at-sign", "***"},
		{"ab", "***"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskEmail(tt.in))
		})
	}
}

func TestSecurityLoggerLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sl := NewSecurityLogger(zap.New(core), "console-test", "test")

	sl.LogLoginSuccess(context.Background(), "ana@example.com", "10.0.0.1", "req-1")
	sl.LogLoginFailed(context.Background(), "ana@example.com", "10.0.0.1", "req-2", "invalid_credentials")

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, string(EventLoginSuccess), entries[0].Message)
	assert.Equal(t, "a***@example.com", entries[0].ContextMap()["subject_value"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "req-2", entries[1].ContextMap()["request_id"])
}

func TestDefaultLoggerNeverNil(t *testing.T) {
	SetDefault(nil)
	assert.NotNil(t, DefaultLogger())
}
