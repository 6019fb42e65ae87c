// Package demo wires the request id binder into chi and gin routers serving
// the example endpoints of the requestid-demo binary.
package demo

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/reqid/pkg/httpserver"
	"github.com/dmitrymomot/reqid/pkg/logger"
	"github.com/dmitrymomot/reqid/pkg/requestid"
	"github.com/dmitrymomot/reqid/pkg/requestid/ginrequestid"
)

const (
	FrameworkChi = "chi"
	FrameworkGin = "gin"
)

// ErrUnknownFramework is returned by NewHandler for frameworks other than chi and gin.
var ErrUnknownFramework = errors.New("unknown framework")

// Config selects the router implementation.
type Config struct {
	Framework string `env:"DEMO_FRAMEWORK" envDefault:"chi"`
}

// Deps are shared by both routers.
type Deps struct {
	Binder   *requestid.Binder
	Logger   *slog.Logger
	Gatherer prometheus.Gatherer
}

// NewHandler returns the router for framework.
func NewHandler(framework string, deps Deps) (http.Handler, error) {
	switch framework {
	case FrameworkChi:
		return NewChiRouter(deps), nil
	case FrameworkGin:
		return NewGinEngine(deps), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFramework, framework)
	}
}

func greeting(id requestid.ID) string {
	return "My id is " + id.String()
}

// NewChiRouter serves the endpoints through chi with requestid.Binder.Middleware.
func NewChiRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(deps.Binder.Middleware)
	r.Use(accessLog(deps.Logger))
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		id, err := requestid.Require(r.Context())
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		deps.Logger.InfoContext(r.Context(), "greeting")
		w.Write([]byte(greeting(id)))
	})
	r.Get("/healthz", httpserver.HealthCheckHandler(deps.Logger))
	r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))

	return r
}

func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.InfoContext(r.Context(), "request served",
				logger.HTTPRequest(r.Method, r.URL.Path, ww.Status()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}

// NewGinEngine serves the same endpoints through gin with ginrequestid.Middleware.
func NewGinEngine(deps Deps) *gin.Engine {
	e := gin.New()
	e.Use(ginrequestid.Middleware(deps.Binder))
	e.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		deps.Logger.InfoContext(c.Request.Context(), "request served",
			logger.HTTPRequest(c.Request.Method, c.Request.URL.Path, c.Writer.Status()),
			logger.Duration(time.Since(start)),
		)
	})
	e.Use(gin.Recovery())

	e.GET("/", func(c *gin.Context) {
		id, ok := ginrequestid.FromContext(c)
		if !ok {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		deps.Logger.InfoContext(c.Request.Context(), "greeting")
		c.String(http.StatusOK, "%s", greeting(id))
	})
	e.GET("/healthz", gin.WrapH(httpserver.HealthCheckHandler(deps.Logger)))
	e.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))

	return e
}
