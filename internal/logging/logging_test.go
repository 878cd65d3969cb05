package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level   string
		debug   bool
		enabled zapcore.Level
		muted   zapcore.Level
	}{
		{"info", false, zapcore.InfoLevel, zapcore.DebugLevel},
		{"warn", false, zapcore.WarnLevel, zapcore.InfoLevel},
		{"error", false, zapcore.ErrorLevel, zapcore.WarnLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := New(tt.level, tt.debug)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			core := logger.Core()
			if !core.Enabled(tt.enabled) {
				t.Errorf("%v disabled", tt.enabled)
			}
			if core.Enabled(tt.muted) {
				t.Errorf("%v enabled", tt.muted)
			}
		})
	}
}

func TestNewDebugForcesDebugLevel(t *testing.T) {
	logger, err := New("error", true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug level disabled in debug mode")
	}
}

func TestNewBadLevel(t *testing.T) {
	if _, err := New("loud", false); err == nil {
		t.Error("expected error for unknown level")
	}
}
