package middleware

import (
	"net/http"
	"net/url"

	"github.com/akolanti/lexgate/internal/auth"
	"github.com/akolanti/lexgate/internal/config"
	"github.com/akolanti/lexgate/internal/navigation"
)

// PageGate guards the page routes. It only checks that the cookie is there;
// the api gate is the one that decodes it.
func PageGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		hasCookie := auth.HasCookie(r)

		switch {
		case navigation.IsProtected(path) && !hasCookie:
			target := config.LoginPath + "?from=" + url.QueryEscape(path)
			logger.Debug("Redirecting to login", "path", path)
			http.Redirect(w, r, target, http.StatusFound)
			return
		case hasCookie && (path == config.LoginPath || path == config.SignupPath):
			http.Redirect(w, r, config.DashboardPath, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
