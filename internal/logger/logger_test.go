package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLevelThreshold(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		level   string
		debugOn bool
		infoOn  bool
		warnOn  bool
	}{
		{"debug", true, true, true},
		{"info", false, true, true},
		{"warn", false, false, true},
		{"error", false, false, false},
		{"not a level", false, true, true},
	}
	for _, tt := range tests {
		log := New(tt.level, "pretty")
		assert.Equal(t, tt.debugOn, log.Enabled(ctx, slog.LevelDebug), tt.level)
		assert.Equal(t, tt.infoOn, log.Enabled(ctx, slog.LevelInfo), tt.level)
		assert.Equal(t, tt.warnOn, log.Enabled(ctx, slog.LevelWarn), tt.level)
		assert.True(t, log.Enabled(ctx, slog.LevelError), tt.level)
	}
}

func TestPrettyHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, slog.LevelInfo))

	log.Info("methods ready", "count", 25)
	out := buf.String()
	assert.Contains(t, out, "INF")
	assert.Contains(t, out, "methods ready")
	assert.Contains(t, out, "count")
	assert.Contains(t, out, "25")

	buf.Reset()
	log.Debug("dropped")
	assert.Empty(t, buf.String())
}
