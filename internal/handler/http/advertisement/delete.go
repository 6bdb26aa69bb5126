package advertisement

import (
	"encoding/json"
	"errors"
	"net/http"

	"lawgan/internal/handler/http/respond"
	adUC "lawgan/internal/usecase/advertisement"
)

type DeleteHandler struct{ Svc *adUC.Service }

// ServeHTTP handles DELETE /advertisements/delete.
// @Summary      Remove an advertisement
// @Tags         advertisements
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      200 {object} map[string]map[string]int64 "deleted id"
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /advertisements/delete [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID <= 0 {
		respond.Message(w, http.StatusBadRequest, "Advertisement id is required.")
		return
	}

	if err := h.Svc.Delete(r.Context(), req.ID); err != nil {
		if errors.Is(err, adUC.ErrAdNotFound) {
			respond.Message(w, http.StatusNotFound, "Advertisement not found.")
			return
		}
		respond.Failure(w, http.StatusInternalServerError, "Failed to delete advertisement.", err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]map[string]int64{"deleted": {"id": req.ID}})
}
