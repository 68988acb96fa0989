package api

import (
	"net/http"
	"time"

	"finance/src/utils"

	"github.com/go-chi/jwtauth"
	"github.com/sirupsen/logrus"
)

// NoCache makes every response uncacheable.
func NoCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}

// RequestLogger puts the service logger into the request context and
// logs one line per handled request.
func RequestLogger(logger *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r.WithContext(utils.WithLogger(r.Context(), logger)))
			logger.WithFields(logrus.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"duration_ms": time.Since(start).Milliseconds(),
			}).Info("request handled")
		})
	}
}

// SessionAuthenticator rejects requests whose session token is missing
// or failed verification. Runs after jwtauth.Verifier.
func SessionAuthenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, _, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			utils.WriteError(w, utils.Unauthorized("login required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
