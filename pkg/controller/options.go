package controller

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-dynform/pkg/record"
)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger routes action logs to logger. Without it the controller is
// silent.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStore seeds the controller with an existing record store.
func WithStore(store *record.Store) Option {
	return func(c *Controller) {
		if store != nil {
			c.store = store
		}
	}
}

// WithClock overrides the time source used to stamp submitted records.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithIDGenerator overrides how record IDs are minted.
func WithIDGenerator(next func() string) Option {
	return func(c *Controller) {
		if next != nil {
			c.newID = next
		}
	}
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func defaultID() string {
	return uuid.NewString()
}
