package board

import (
	"encoding/json"
	"errors"
	"net/http"

	"lawgan/internal/handler/http/respond"
	boardUC "lawgan/internal/usecase/board"
)

type DeleteHandler struct{ Svc *boardUC.Service }

// ServeHTTP handles DELETE /editorial-boards.
// @Summary      Remove an editorial board member
// @Tags         editorial-boards
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      200 {object} map[string]map[string]int64 "deleted id"
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /editorial-boards [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID <= 0 {
		respond.Message(w, http.StatusBadRequest, "Editorial board id is required.")
		return
	}

	if err := h.Svc.Delete(r.Context(), req.ID); err != nil {
		if errors.Is(err, boardUC.ErrMemberNotFound) {
			respond.Message(w, http.StatusNotFound, "Editorial board not found.")
			return
		}
		respond.Failure(w, http.StatusInternalServerError, "Failed to delete editorial board.", err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]map[string]int64{"deleted": {"id": req.ID}})
}
