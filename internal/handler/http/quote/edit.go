package quote

import (
	"encoding/json"
	"errors"
	"net/http"

	"lawgan/internal/handler/http/respond"
	quoteUC "lawgan/internal/usecase/quote"
)

type EditHandler struct{ Svc *quoteUC.Service }

// ServeHTTP handles PATCH /quotes/edit.
// The quote is identified by the id in the body; absent fields keep their
// stored values.
// @Summary      Edit a quote
// @Tags         quotes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      200 {object} map[string]DTO "updated quote"
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /quotes/edit [patch]
func (h EditHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID     int64   `json:"id"`
		Title  *string `json:"title"`
		Author *string `json:"author"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.ID <= 0 {
		respond.Message(w, http.StatusBadRequest, "Quote id is required.")
		return
	}

	q, err := h.Svc.Update(r.Context(), quoteUC.UpdateInput{
		ID:     req.ID,
		Title:  req.Title,
		Author: req.Author,
	})
	if err != nil {
		switch {
		case errors.Is(err, quoteUC.ErrNoFields):
			respond.Message(w, http.StatusBadRequest, "No fields provided to update.")
		case errors.Is(err, quoteUC.ErrQuoteNotFound):
			respond.Message(w, http.StatusNotFound, "Quote not found.")
		default:
			respond.Failure(w, http.StatusInternalServerError, "Failed to update quote.", err)
		}
		return
	}

	respond.JSON(w, http.StatusOK, map[string]DTO{"quote": toDTO(q)})
}
