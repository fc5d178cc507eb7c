// Package admin holds the write side of the catalog: JSON endpoints for
// editors, guarded by HTTP basic auth.
package admin

import (
	"crypto/subtle"
	"net/http"

	"github.com/mytheresa/storefront/app/api"
	"github.com/mytheresa/storefront/app/config"
)

// BasicAuth rejects requests that do not carry the configured credentials.
func BasicAuth(cfg config.AdminConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			userOK := subtle.ConstantTimeCompare([]byte(user), []byte(cfg.Username)) == 1
			passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(cfg.Password)) == 1
			if !ok || !userOK || !passOK || !cfg.Enabled() {
				w.Header().Set("WWW-Authenticate", `Basic realm="storefront admin"`)
				api.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
