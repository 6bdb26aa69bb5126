package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"lawgan/internal/handler/http/respond"
	artUC "lawgan/internal/usecase/article"
)

type DeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP handles DELETE /articles/delete.
// @Summary      Delete an article
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      200 {object} map[string]map[string]int64 "deleted id"
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /articles/delete [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID <= 0 {
		respond.Message(w, http.StatusBadRequest, "Article id is required.")
		return
	}

	if err := h.Svc.Delete(r.Context(), req.ID); err != nil {
		if errors.Is(err, artUC.ErrArticleNotFound) {
			respond.Message(w, http.StatusNotFound, "Article not found.")
			return
		}
		respond.Failure(w, http.StatusInternalServerError, "Failed to delete article.", err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]map[string]int64{"deleted": {"id": req.ID}})
}
