package http

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"lawgan/internal/handler/http/respond"
)

// SignInLimiter throttles credential attempts per client address with a
// token bucket. It only guards the signin route; content reads stay
// unthrottled.
type SignInLimiter struct {
	mu      sync.Mutex
	clients map[string]*signInClient

	limit rate.Limit
	burst int
}

type signInClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Entries idle longer than this are dropped on the next sweep.
const signInClientTTL = 10 * time.Minute

// NewSignInLimiter creates a limiter allowing perMinute sustained attempts
// with the given burst per client address.
func NewSignInLimiter(perMinute float64, burst int) *SignInLimiter {
	return &SignInLimiter{
		clients: make(map[string]*signInClient),
		limit:   rate.Limit(perMinute / 60.0),
		burst:   burst,
	}
}

// Limit wraps next, rejecting clients that exceed their attempt budget
// with 429 before the request body is read.
func (l *SignInLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.allow(clientAddr(r)) {
			respond.Message(w, http.StatusTooManyRequests, "Too many sign-in attempts. Try again later.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *SignInLimiter) allow(addr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	c, ok := l.clients[addr]
	if !ok {
		l.sweepLocked(now)
		c = &signInClient{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[addr] = c
	}
	c.lastSeen = now
	return c.limiter.Allow()
}

// sweepLocked drops stale entries. Called with the lock held, before a new
// client is inserted, so the map stays bounded under address churn.
func (l *SignInLimiter) sweepLocked(now time.Time) {
	for addr, c := range l.clients {
		if now.Sub(c.lastSeen) > signInClientTTL {
			delete(l.clients, addr)
		}
	}
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
