package ports_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/Amund211/gridline/internal/ports"
	"github.com/Amund211/gridline/internal/ratelimiting"
	"github.com/stretchr/testify/require"
)

const testPassword = "hunter2"

func newTestDeps(t *testing.T) *ports.HandlerDeps {
	t.Helper()

	allowedOrigins, err := ports.NewDomainSuffixes("example.com")
	require.NoError(t, err)

	noopMiddleware := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			h(w, r)
		}
	}

	limiter, stop := ratelimiting.NewTokenBucketRateLimiter(1000, 1000)
	t.Cleanup(stop)

	return &ports.HandlerDeps{
		AllowedOrigins:   allowedOrigins,
		RootLogger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		SentryMiddleware: noopMiddleware,
		WebsitePassword:  testPassword,
		RateLimiter:      ratelimiting.NewRequestBasedRateLimiter(limiter, ratelimiting.IPKeyFunc),
	}
}

func authenticate(req *http.Request) *http.Request {
	req.Header.Set("X-Website-Password", testPassword)
	return req
}
