package executive

import (
	"encoding/json"
	"errors"
	"net/http"

	"lawgan/internal/handler/http/respond"
	execUC "lawgan/internal/usecase/executive"
)

type DeleteHandler struct{ Svc *execUC.Service }

// ServeHTTP handles DELETE /executives.
// @Summary      Remove an executive
// @Tags         executives
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      200 {object} map[string]map[string]int64 "deleted id"
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /executives [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID <= 0 {
		respond.Message(w, http.StatusBadRequest, "Executive id is required.")
		return
	}

	if err := h.Svc.Delete(r.Context(), req.ID); err != nil {
		if errors.Is(err, execUC.ErrExecutiveNotFound) {
			respond.Message(w, http.StatusNotFound, "Executive not found.")
			return
		}
		respond.Failure(w, http.StatusInternalServerError, "Failed to delete executive.", err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]map[string]int64{"deleted": {"id": req.ID}})
}
