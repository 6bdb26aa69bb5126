package advertisement

import (
	"net/http"
	"strings"

	"lawgan/internal/handler/http/respond"
	adUC "lawgan/internal/usecase/advertisement"
)

type ListHandler struct{ Svc *adUC.Service }

// ServeHTTP handles GET /advertisements.
// @Summary      List advertisements
// @Tags         advertisements
// @Produce      json
// @Success      200 {object} map[string][]DTO "advertisements ordered newest first"
// @Failure      500 {object} map[string]string
// @Router       /advertisements [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ads, err := h.Svc.List(r.Context())
	if err != nil {
		respond.Failure(w, http.StatusInternalServerError, "Failed to fetch advertisements.", err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string][]DTO{"advertisements": toDTOs(ads)})
}

type ListByPageHandler struct{ Svc *adUC.Service }

// ServeHTTP handles GET /advertisements/page/{page}.
// @Summary      List advertisements for a page slot
// @Tags         advertisements
// @Produce      json
// @Param        page path string true "page slot, e.g. home"
// @Success      200 {object} map[string][]DTO
// @Failure      400 {object} map[string]string "missing page"
// @Router       /advertisements/page/{page} [get]
func (h ListByPageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	page := strings.TrimSpace(r.PathValue("page"))
	if page == "" {
		respond.Message(w, http.StatusBadRequest, "Page is required.")
		return
	}

	ads, err := h.Svc.ListByPage(r.Context(), page)
	if err != nil {
		respond.Failure(w, http.StatusInternalServerError, "Failed to fetch advertisements.", err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string][]DTO{"advertisements": toDTOs(ads)})
}
