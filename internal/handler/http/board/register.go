package board

import (
	"net/http"

	boardUC "lawgan/internal/usecase/board"
)

// Register registers the editorial board HTTP handlers with the given mux.
// Mutating routes are wrapped with the authz middleware; the list stays public.
func Register(mux *http.ServeMux, svc *boardUC.Service, authz func(http.Handler) http.Handler) {
	mux.Handle("GET    /editorial-boards", ListHandler{svc})

	mux.Handle("POST   /editorial-boards", authz(CreateHandler{svc}))
	mux.Handle("PATCH  /editorial-boards", authz(UpdateHandler{svc}))
	mux.Handle("DELETE /editorial-boards", authz(DeleteHandler{svc}))
}
