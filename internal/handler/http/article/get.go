package article

import (
	"errors"
	"net/http"
	"strconv"

	"lawgan/internal/handler/http/respond"
	artUC "lawgan/internal/usecase/article"
)

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP handles GET /articles/{idOrSlug}.
// A numeric segment is treated as an article ID, anything else as a slug.
// @Summary      Fetch a single article
// @Tags         articles
// @Produce      json
// @Param        idOrSlug path string true "article ID or slug"
// @Success      200 {object} map[string]DTO
// @Failure      404 {object} map[string]string
// @Router       /articles/{idOrSlug} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("idOrSlug")

	var err error
	if id, perr := strconv.ParseInt(key, 10, 64); perr == nil && id > 0 {
		a, gerr := h.Svc.Get(r.Context(), id)
		if gerr == nil {
			respond.JSON(w, http.StatusOK, map[string]DTO{"article": toDTO(a)})
			return
		}
		err = gerr
	} else {
		a, gerr := h.Svc.GetBySlug(r.Context(), key)
		if gerr == nil {
			respond.JSON(w, http.StatusOK, map[string]DTO{"article": toDTO(a)})
			return
		}
		err = gerr
	}

	if errors.Is(err, artUC.ErrArticleNotFound) {
		respond.Message(w, http.StatusNotFound, "Article not found.")
		return
	}
	respond.Failure(w, http.StatusInternalServerError, "Failed to fetch article.", err)
}
