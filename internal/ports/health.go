package ports

import (
	"net/http"
)

type healthResponse struct {
	Message string `json:"message"`
}

// MakeHealthHandler answers GET /api. It is the only route that skips the
// password check so uptime monitors can hit it.
func MakeHealthHandler(deps *HandlerDeps) http.HandlerFunc {
	middleware := deps.buildMiddleware("health", false, false)

	handler := func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, http.StatusOK, healthResponse{Message: "Server is running!"})
	}

	return middleware(handler)
}
