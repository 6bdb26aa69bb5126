package quote

import (
	"encoding/json"
	"errors"
	"net/http"

	"lawgan/internal/handler/http/respond"
	quoteUC "lawgan/internal/usecase/quote"
)

type PublishHandler struct{ Svc *quoteUC.Service }

// ServeHTTP handles POST /quotes/publish.
// The stored quote count is capped; publishing past the cap fails with 409.
// @Summary      Publish a quote
// @Tags         quotes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      201 {object} map[string]DTO "created quote"
// @Failure      400 {object} map[string]string "missing fields"
// @Failure      409 {object} map[string]string "quote limit reached"
// @Router       /quotes/publish [post]
func (h PublishHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title  string `json:"title"`
		Author string `json:"author"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Title == "" || req.Author == "" {
		respond.Message(w, http.StatusBadRequest, "Title and author are required.")
		return
	}

	q, err := h.Svc.Create(r.Context(), quoteUC.CreateInput{
		Title:  req.Title,
		Author: req.Author,
	})
	if err != nil {
		if errors.Is(err, quoteUC.ErrQuoteLimit) {
			respond.Message(w, http.StatusConflict, "Quote limit reached.")
			return
		}
		respond.Failure(w, http.StatusInternalServerError, "Failed to create quote.", err)
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]DTO{"quote": toDTO(q)})
}
