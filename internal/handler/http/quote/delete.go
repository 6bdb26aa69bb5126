package quote

import (
	"encoding/json"
	"errors"
	"net/http"

	"lawgan/internal/handler/http/respond"
	quoteUC "lawgan/internal/usecase/quote"
)

type DeleteHandler struct{ Svc *quoteUC.Service }

// ServeHTTP handles DELETE /quotes/delete.
// @Summary      Remove a quote
// @Tags         quotes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      200 {object} map[string]map[string]int64 "deleted id"
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /quotes/delete [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID <= 0 {
		respond.Message(w, http.StatusBadRequest, "Quote id is required.")
		return
	}

	if err := h.Svc.Delete(r.Context(), req.ID); err != nil {
		if errors.Is(err, quoteUC.ErrQuoteNotFound) {
			respond.Message(w, http.StatusNotFound, "Quote not found.")
			return
		}
		respond.Failure(w, http.StatusInternalServerError, "Failed to delete quote.", err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]map[string]int64{"deleted": {"id": req.ID}})
}
