package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/goliatone/go-dynform/internal/config"
)

// NewLogger builds the process logger from the app section. A nil writer
// logs to stdout.
func NewLogger(cfg config.ApplicationConfig, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == config.LogFormatText {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
