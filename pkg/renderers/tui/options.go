package tui

import (
	"io"
	"log/slog"

	"github.com/goliatone/go-dynform/pkg/schema"
	"github.com/goliatone/go-dynform/pkg/widgets"
)

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the survey driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithWidgets overrides the registry used to choose prompt kinds.
func WithWidgets(registry *widgets.Registry) Option {
	return func(s *Session) {
		if registry != nil {
			s.widgets = registry
		}
	}
}

// WithSource sets the schema source used for record-table columns.
func WithSource(source schema.Source) Option {
	return func(s *Session) {
		s.source = source
	}
}

// WithOutput sets where the default survey driver prints status screens.
func WithOutput(out io.Writer) Option {
	return func(s *Session) {
		s.out = out
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}
