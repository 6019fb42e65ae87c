package requestid

import "net/http"

var defaultBinder = New()

// Middleware binds identifiers with the process-wide counter and the X-Request-ID header.
func Middleware(next http.Handler) http.Handler {
	return defaultBinder.Middleware(next)
}

// Middleware wraps next so every request carries a bound identifier.
// The scope is finalized when next returns, including by panic.
func (b *Binder) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, err := b.OnRequest(r.Context())
		if err != nil {
			b.onError(w, r, err)
			return
		}
		b.Echo(ctx, w.Header())
		defer b.OnResponse(ctx, w.Header())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
