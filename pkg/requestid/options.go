package requestid

import (
	"io"
	"log/slog"
	"regexp"
)

var headerNameRegex = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

type config struct {
	generator Generator
	header    string
	logger    *slog.Logger
	observer  Observer
	onError   ErrorHandler
}

func defaultConfig() *config {
	return &config{
		generator: DefaultCounter(),
		header:    Header,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		observer:  noopObserver{},
		onError:   DefaultErrorHandler,
	}
}

// Option configures a Binder.
type Option func(*config)

// WithGenerator sets the identifier source.
func WithGenerator(g Generator) Option {
	if g == nil {
		panic("requestid.WithGenerator: nil generator")
	}
	return func(c *config) { c.generator = g }
}

// WithStrategy selects one of the bundled generators.
func WithStrategy(s Strategy) Option {
	g, err := NewGenerator(s)
	if err != nil {
		panic("requestid.WithStrategy: " + err.Error())
	}
	return WithGenerator(g)
}

// WithHeader sets the response header the identifier is echoed in.
func WithHeader(name string) Option {
	if !headerNameRegex.MatchString(name) {
		panic("requestid.WithHeader: invalid header name " + name)
	}
	return func(c *config) { c.header = name }
}

// WithoutHeader disables echoing the identifier to the client.
func WithoutHeader() Option {
	return func(c *config) { c.header = "" }
}

// WithLogger sets the logger used to report generator failures. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver registers a lifecycle observer. Nil is ignored.
func WithObserver(o Observer) Option {
	return func(c *config) {
		if o != nil {
			c.observer = o
		}
	}
}

// WithErrorHandler replaces DefaultErrorHandler. Nil is ignored.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *config) {
		if h != nil {
			c.onError = h
		}
	}
}
