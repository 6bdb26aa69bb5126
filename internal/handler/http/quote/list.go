package quote

import (
	"net/http"

	"lawgan/internal/handler/http/respond"
	quoteUC "lawgan/internal/usecase/quote"
)

type ListHandler struct{ Svc *quoteUC.Service }

// ServeHTTP handles GET /quotes.
// @Summary      List quotes
// @Tags         quotes
// @Produce      json
// @Success      200 {object} map[string][]DTO "quotes ordered newest first"
// @Failure      500 {object} map[string]string
// @Router       /quotes [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.Svc.List(r.Context())
	if err != nil {
		respond.Failure(w, http.StatusInternalServerError, "Failed to fetch quotes.", err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string][]DTO{"quotes": toDTOs(quotes)})
}
