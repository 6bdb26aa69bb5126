package article

import (
	"net/http"

	"lawgan/internal/handler/http/respond"
	artUC "lawgan/internal/usecase/article"
)

type ListHandler struct{ Svc *artUC.Service }

// ServeHTTP handles GET /articles.
// @Summary      List articles
// @Tags         articles
// @Produce      json
// @Success      200 {object} map[string][]DTO "articles ordered newest first"
// @Failure      500 {object} map[string]string
// @Router       /articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articles, err := h.Svc.List(r.Context())
	if err != nil {
		respond.Failure(w, http.StatusInternalServerError, "Failed to fetch articles.", err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string][]DTO{"articles": toDTOs(articles)})
}

type ListByCategoryHandler struct{ Svc *artUC.Service }

// ServeHTTP handles GET /articles/category/{category}.
// @Summary      List articles in a category
// @Tags         articles
// @Produce      json
// @Param        category path string true "category name, hyphens accepted"
// @Success      200 {object} map[string][]DTO
// @Failure      400 {object} map[string]string "unknown category"
// @Router       /articles/category/{category} [get]
func (h ListByCategoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	if !validCategoryParam(category) {
		respond.Message(w, http.StatusBadRequest,
			"Invalid category. Allowed: law, politics, foreign affairs, reviews.")
		return
	}

	articles, err := h.Svc.ListByCategory(r.Context(), category)
	if err != nil {
		respond.Failure(w, http.StatusInternalServerError, "Failed to fetch articles.", err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string][]DTO{"articles": toDTOs(articles)})
}
