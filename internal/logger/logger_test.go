package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestBuildLevels(t *testing.T) {
	tests := []struct {
		env     string
		debugOn bool
		infoOn  bool
		warnOn  bool
	}{
		{"production", false, true, true},
		{"cli", false, false, true},
		{"development", true, true, true},
		{"test", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			core := build(tt.env).Core()
			if got := core.Enabled(zapcore.DebugLevel); got != tt.debugOn {
				t.Errorf("debug enabled = %v, want %v", got, tt.debugOn)
			}
			if got := core.Enabled(zapcore.InfoLevel); got != tt.infoOn {
				t.Errorf("info enabled = %v, want %v", got, tt.infoOn)
			}
			if got := core.Enabled(zapcore.WarnLevel); got != tt.warnOn {
				t.Errorf("warn enabled = %v, want %v", got, tt.warnOn)
			}
		})
	}
}

func TestGetFallsBack(t *testing.T) {
	if Get() == nil {
		t.Fatal("expected a logger")
	}
	Named("repository").Debugw("named logger works")
}
