package requestid

import "context"

type contextKey struct{}

// WithContext binds id to a new scope stored in the returned context.
func WithContext(ctx context.Context, id ID) context.Context {
	return withScope(ctx, newScope(id, nil))
}

func withScope(ctx context.Context, s *Scope) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// ScopeFromContext returns the scope bound to ctx, or nil.
func ScopeFromContext(ctx context.Context) *Scope {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(contextKey{}).(*Scope)
	return s
}

// FromContext returns the identifier of the request that ctx belongs to.
// It reports false outside a bound scope and after the scope has been finalized.
func FromContext(ctx context.Context) (ID, bool) {
	return ScopeFromContext(ctx).ID()
}

// Require is FromContext for code that cannot proceed without an identifier.
func Require(ctx context.Context) (ID, error) {
	id, ok := FromContext(ctx)
	if !ok {
		return ID{}, ErrNotBound
	}
	return id, nil
}

// String returns the textual identifier or an empty string.
func String(ctx context.Context) string {
	id, _ := FromContext(ctx)
	return id.String()
}
