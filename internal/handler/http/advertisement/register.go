package advertisement

import (
	"net/http"

	adUC "lawgan/internal/usecase/advertisement"
)

// Register registers the advertisement HTTP handlers with the given mux.
// Mutating routes are wrapped with the authz middleware; reads stay public.
func Register(mux *http.ServeMux, svc *adUC.Service, authz func(http.Handler) http.Handler) {
	mux.Handle("GET    /advertisements", ListHandler{svc})
	mux.Handle("GET    /advertisements/page/{page}", ListByPageHandler{svc})

	mux.Handle("POST   /advertisements/publish", authz(PublishHandler{svc}))
	mux.Handle("PATCH  /advertisements/edit", authz(EditHandler{svc}))
	mux.Handle("DELETE /advertisements/delete", authz(DeleteHandler{svc}))
}
