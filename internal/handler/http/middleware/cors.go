// Package middleware provides cross-cutting HTTP middleware that is
// configured from the environment, currently CORS handling.
package middleware

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
)

const (
	allowedMethods = "GET, POST, PATCH, PUT, DELETE, OPTIONS"
	allowedHeaders = "Content-Type, Authorization, X-Request-ID"
)

// CORSConfig holds the cross-origin policy applied to every request.
type CORSConfig struct {
	// AllowedOrigins is the exact-match origin allowlist.
	AllowedOrigins []string
	// AllowCredentials controls the Access-Control-Allow-Credentials header.
	AllowCredentials bool
}

// LoadCORSConfig builds the CORS policy from the environment.
// CORS_ALLOWED_ORIGINS holds a comma-separated origin list and defaults
// to the local development front end.
func LoadCORSConfig() CORSConfig {
	raw := os.Getenv("CORS_ALLOWED_ORIGINS")
	if raw == "" {
		raw = "http://localhost:5173"
	}

	var origins []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		origins = append(origins, strings.TrimSuffix(o, "/"))
	}

	slog.Info("CORS configured", slog.Any("allowed_origins", origins))
	return CORSConfig{
		AllowedOrigins:   origins,
		AllowCredentials: true,
	}
}

// Allowed reports whether the given Origin header value is in the allowlist.
func (c CORSConfig) Allowed(origin string) bool {
	for _, o := range c.AllowedOrigins {
		if strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}

// CORS returns middleware that applies the cross-origin policy.
// Requests from allowed origins receive the access-control headers;
// preflight OPTIONS requests are answered with 204 without reaching
// the handlers. Requests without an Origin header pass through.
func CORS(cfg CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && cfg.Allowed(origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin")
				if cfg.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
				w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
