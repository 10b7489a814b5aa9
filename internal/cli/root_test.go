package cli

import (
	"context"
	"io"
	"log/slog"
	"testing"
)

func TestNewLogger_VerbosityLevels(t *testing.T) {
	tests := []struct {
		verbosity int
		enabled   []slog.Level
		disabled  []slog.Level
	}{
		{0, []slog.Level{slog.LevelError}, []slog.Level{slog.LevelWarn, slog.LevelInfo, slog.LevelDebug, LevelTrace}},
		{1, []slog.Level{slog.LevelError, slog.LevelInfo}, []slog.Level{slog.LevelDebug, LevelTrace}},
		{2, []slog.Level{slog.LevelError, slog.LevelInfo, slog.LevelDebug}, []slog.Level{LevelTrace}},
		{3, []slog.Level{slog.LevelError, slog.LevelDebug, LevelTrace}, nil},
		{7, []slog.Level{LevelTrace}, nil},
	}

	ctx := context.Background()
	for _, tt := range tests {
		logger := newLogger(tt.verbosity, io.Discard)
		for _, lv := range tt.enabled {
			if !logger.Enabled(ctx, lv) {
				t.Errorf("verbosity %d: level %v should be enabled", tt.verbosity, lv)
			}
		}
		for _, lv := range tt.disabled {
			if logger.Enabled(ctx, lv) {
				t.Errorf("verbosity %d: level %v should be disabled", tt.verbosity, lv)
			}
		}
	}
}
