package article

import (
	"net/http"

	artUC "lawgan/internal/usecase/article"
)

// Register registers all article HTTP handlers with the given mux.
// Mutating routes are wrapped with the authz middleware; reads stay public.
func Register(mux *http.ServeMux, svc *artUC.Service, authz func(http.Handler) http.Handler) {
	mux.Handle("GET    /articles", ListHandler{svc})
	mux.Handle("GET    /articles/category/{category}", ListByCategoryHandler{svc})
	mux.Handle("GET    /articles/{idOrSlug}", GetHandler{svc})

	mux.Handle("POST   /articles/publish", authz(PublishHandler{svc}))
	mux.Handle("PATCH  /articles/edit", authz(EditHandler{svc}))
	mux.Handle("DELETE /articles/delete", authz(DeleteHandler{svc}))
}
