package requestid

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
)

// Header is the default response header carrying the request identifier.
const Header = "X-Request-ID"

// Hooks is the pair of request lifecycle notifications a hosting framework
// must deliver for identifiers to be bound and released.
type Hooks interface {
	// OnRequest runs before any handler logic and returns the context handlers must use.
	OnRequest(ctx context.Context) (context.Context, error)
	// OnResponse runs when the response is about to leave the server.
	OnResponse(ctx context.Context, header http.Header)
}

// Observer receives binder lifecycle events. See pkg/metrics for a Prometheus implementation.
type Observer interface {
	Bound(s Strategy)
	Failed(s Strategy)
	Released()
}

type noopObserver struct{}

func (noopObserver) Bound(Strategy)  {}
func (noopObserver) Failed(Strategy) {}
func (noopObserver) Released()       {}

// ErrorHandler renders a binder failure. The wrapped handler is not called.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// DefaultErrorHandler responds with 500 Internal Server Error.
func DefaultErrorHandler(w http.ResponseWriter, _ *http.Request, _ error) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Binder attaches an identifier to every request it sees.
type Binder struct {
	generator Generator
	strategy  Strategy
	header    string
	logger    *slog.Logger
	observer  Observer
	onError   ErrorHandler
}

var _ Hooks = (*Binder)(nil)

// New returns a Binder. Without options it uses the process-wide counter
// and echoes identifiers in the X-Request-ID header.
func New(opts ...Option) *Binder {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Binder{
		generator: cfg.generator,
		strategy:  StrategyOf(cfg.generator),
		header:    cfg.header,
		logger:    cfg.logger,
		observer:  cfg.observer,
		onError:   cfg.onError,
	}
}

// HeaderName returns the echo header, or an empty string when echoing is disabled.
func (b *Binder) HeaderName() string { return b.header }

// Strategy returns the strategy label of the underlying generator.
func (b *Binder) Strategy() Strategy { return b.strategy }

// OnRequest binds a fresh identifier to ctx.
// A context that is already bound is returned unchanged so that stacking
// binders never rebinds a request.
func (b *Binder) OnRequest(ctx context.Context) (context.Context, error) {
	if ScopeFromContext(ctx).State() == StateBound {
		return ctx, nil
	}

	id, err := b.generator.Next()
	if err == nil && id.IsZero() {
		err = ErrEmptyID
	}
	if err != nil {
		b.observer.Failed(b.strategy)
		b.logger.ErrorContext(ctx, "request id generation failed",
			slog.String("strategy", string(b.strategy)),
			slog.Any("error", err),
		)
		return ctx, errors.Join(ErrBinderFailure, err)
	}

	b.observer.Bound(b.strategy)
	return withScope(ctx, newScope(id, b)), nil
}

// Echo writes the bound identifier into header without finalizing the scope.
func (b *Binder) Echo(ctx context.Context, header http.Header) {
	if b.header == "" || header == nil {
		return
	}
	if id, ok := FromContext(ctx); ok {
		header.Set(b.header, id.String())
	}
}

// OnResponse echoes the identifier and finalizes the scope created by this binder.
// Repeated calls are no-ops.
func (b *Binder) OnResponse(ctx context.Context, header http.Header) {
	s := ScopeFromContext(ctx)
	if s == nil || s.owner != b {
		return
	}
	b.Echo(ctx, header)
	if s.Finalize() {
		b.observer.Released()
	}
}
