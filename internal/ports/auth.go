package ports

import (
	"crypto/subtle"
	"net/http"
)

// NewPasswordMiddleware gates a handler on the shared site password. The
// extension and the website both send it in the X-Website-Password header.
func NewPasswordMiddleware(password string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get("X-Website-Password")
			if subtle.ConstantTimeCompare([]byte(provided), []byte(password)) != 1 {
				writeJSONError(w, "Invalid password", http.StatusUnauthorized)
				return
			}

			next(w, r)
		}
	}
}
