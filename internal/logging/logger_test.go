package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	logger, err := New(false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info must be disabled by default")
	}
	if !logger.Core().Enabled(zapcore.WarnLevel) {
		t.Error("warn must be enabled by default")
	}

	debug, err := New(true)
	if err != nil {
		t.Fatalf("New(true) failed: %v", err)
	}
	if !debug.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug must be enabled in debug mode")
	}
}

func TestNewOrNop(t *testing.T) {
	if NewOrNop(false) == nil {
		t.Error("expected a logger")
	}
}
