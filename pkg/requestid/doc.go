// Package requestid attaches a unique identifier to every incoming HTTP request
// so that log records, metrics and downstream calls produced while serving the
// same request can be correlated.
//
// # Overview
//
// The package is built from three pieces:
//
//   - Generator produces identifiers. Counter issues 1, 2, 3, ... from a single
//     lock-free atomic shared by the process (see DefaultCounter). Random issues
//     version 4 UUIDs; collisions are possible but negligible.
//
//   - Scope binds one ID to one in-flight request. It moves from unbound to
//     bound exactly once, before handler logic runs, and is finalized when the
//     response is complete. A finalized scope no longer yields its identifier.
//
//   - Binder implements Hooks, the two notifications a framework must deliver
//     (OnRequest and OnResponse). Middleware adapts a Binder to net/http; the
//     ginrequestid subpackage adapts it to gin.
//
// Handlers read the identifier through the request context, never through
// explicit parameters:
//
//	id, ok := requestid.FromContext(r.Context())
//
// FromContext reports false outside a bound request. Require returns
// ErrNotBound instead, for code that cannot continue without an identifier.
//
// # Usage
//
//	import (
//		"net/http"
//
//		"github.com/dmitrymomot/reqid/pkg/requestid"
//	)
//
//	b := requestid.New(requestid.WithStrategy(requestid.StrategyRandom))
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
//		w.Write([]byte("My id is " + requestid.String(r.Context())))
//	})
//
//	http.ListenAndServe(":8080", b.Middleware(mux))
//
// # Configuration
//
// Config carries env tags for use with pkg/config:
//
//	REQUEST_ID_STRATEGY         counter | random (default counter)
//	REQUEST_ID_HEADER           response header name (default X-Request-ID)
//	REQUEST_ID_HEADER_DISABLED  true to stop echoing the identifier
//
// # Logger integration
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//
// # Error Handling
//
// A generator failure (ErrGeneratorExhausted, ErrEntropy) is returned from
// OnRequest joined with ErrBinderFailure. Middleware then renders it through the
// configured ErrorHandler (500 by default) and never calls the wrapped handler.
// No operation is retried.
package requestid
