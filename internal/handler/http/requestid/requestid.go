// Package requestid tags every request with an id so the log lines it
// produces can be stitched back together.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Header is the wire name for the request id. A client or upstream proxy
// may supply one; otherwise a fresh UUID is minted.
const Header = "X-Request-ID"

type ctxKey struct{}

// FromContext returns the request id stored on ctx, or "" when the
// middleware did not run.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// WithRequestID returns a context carrying the given request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// Middleware attaches a request id to the context and echoes it on the
// response header. An id already present on the request is kept.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
	})
}
