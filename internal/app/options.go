package app

import (
	"io"
	"net"

	"github.com/goliatone/go-dynform/internal/config"
)

// Option configures Run.
type Option func(*application)

type application struct {
	config   *config.Config
	listener net.Listener
	logOut   io.Writer
}

// WithConfig sets the application configuration. Required.
func WithConfig(cfg *config.Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithListener serves on an existing listener instead of binding the
// configured port.
func WithListener(l net.Listener) Option {
	return func(a *application) {
		a.listener = l
	}
}

// WithLogOutput redirects application logs. Defaults to stdout.
func WithLogOutput(w io.Writer) Option {
	return func(a *application) {
		a.logOut = w
	}
}
