package executive

import (
	"net/http"

	execUC "lawgan/internal/usecase/executive"
)

// Register registers the executive HTTP handlers with the given mux.
// Mutating routes are wrapped with the authz middleware; the list stays public.
func Register(mux *http.ServeMux, svc *execUC.Service, authz func(http.Handler) http.Handler) {
	mux.Handle("GET    /executives", ListHandler{svc})

	mux.Handle("POST   /executives", authz(CreateHandler{svc}))
	mux.Handle("PATCH  /executives", authz(UpdateHandler{svc}))
	mux.Handle("DELETE /executives", authz(DeleteHandler{svc}))
}
