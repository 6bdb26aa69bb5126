package admin

import (
	"net/http"

	"lawgan/internal/handler/http/auth"
	admUC "lawgan/internal/usecase/admin"
)

// Register registers the admin account HTTP handlers with the given mux.
// Both routes stay public; signin is where tokens come from, so it sits
// behind the credential rate limiter.
func Register(mux *http.ServeMux, svc *admUC.Service, issuer *auth.Issuer, limit func(http.Handler) http.Handler) {
	mux.Handle("POST /admin/signup", SignupHandler{svc})
	mux.Handle("POST /admin/signin", limit(SignInHandler{Svc: svc, Issuer: issuer}))
}
