package quote

import (
	"net/http"

	quoteUC "lawgan/internal/usecase/quote"
)

// Register registers the quote HTTP handlers with the given mux.
// Mutating routes are wrapped with the authz middleware; the list stays public.
func Register(mux *http.ServeMux, svc *quoteUC.Service, authz func(http.Handler) http.Handler) {
	mux.Handle("GET    /quotes", ListHandler{svc})

	mux.Handle("POST   /quotes/publish", authz(PublishHandler{svc}))
	mux.Handle("PATCH  /quotes/edit", authz(EditHandler{svc}))
	mux.Handle("DELETE /quotes/delete", authz(DeleteHandler{svc}))
}
