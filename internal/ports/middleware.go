package ports

import (
	"log/slog"
	"net/http"

	"github.com/Amund211/gridline/internal/logging"
	"github.com/Amund211/gridline/internal/ratelimiting"
	"github.com/Amund211/gridline/internal/reporting"
)

func NewRateLimitMiddleware(rateLimiter ratelimiting.RequestRateLimiter, onLimitExceeded http.HandlerFunc) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !rateLimiter.Consume(r) {
				onLimitExceeded(w, r)
				return
			}

			next(w, r)
		}
	}
}

func ComposeMiddlewares(middlewares ...func(http.HandlerFunc) http.HandlerFunc) func(http.HandlerFunc) http.HandlerFunc {
	if len(middlewares) == 1 {
		return middlewares[0]
	}
	first := middlewares[0]
	rest := ComposeMiddlewares(middlewares[1:]...)
	return func(h http.HandlerFunc) http.HandlerFunc {
		return first(rest(h))
	}
}

// HandlerDeps carries the pieces every handler's middleware stack needs.
// Built once in main and shared by all Make*Handler functions.
type HandlerDeps struct {
	AllowedOrigins   *DomainSuffixes
	RootLogger       *slog.Logger
	SentryMiddleware func(http.HandlerFunc) http.HandlerFunc
	WebsitePassword  string
	RateLimiter      ratelimiting.RequestRateLimiter
}

func onRateLimitExceeded(w http.ResponseWriter, r *http.Request) {
	writeJSONError(w, "Too many requests", http.StatusTooManyRequests)
}

func newHandlerNameMiddleware(handlerName string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ctx := logging.AddMetaToContext(r.Context(), slog.String("handler", handlerName))
			next(w, r.WithContext(ctx))
		}
	}
}

// buildMiddleware assembles the standard stack for a handler. Mutating
// handlers pass rateLimited to get the shared per-IP token bucket; the
// health check passes requireAuth=false.
func (deps *HandlerDeps) buildMiddleware(handlerName string, requireAuth, rateLimited bool) func(http.HandlerFunc) http.HandlerFunc {
	middlewares := []func(http.HandlerFunc) http.HandlerFunc{
		buildMetricsMiddleware(),
		logging.NewRequestLoggerMiddleware(deps.RootLogger),
		newHandlerNameMiddleware(handlerName),
		deps.SentryMiddleware,
		reporting.NewAddMetaMiddleware(handlerName),
		BuildCORSMiddleware(deps.AllowedOrigins),
	}
	if requireAuth {
		middlewares = append(middlewares, NewPasswordMiddleware(deps.WebsitePassword))
	}
	if rateLimited {
		middlewares = append(middlewares, NewRateLimitMiddleware(deps.RateLimiter, onRateLimitExceeded))
	}
	return ComposeMiddlewares(middlewares...)
}
