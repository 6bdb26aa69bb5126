package executive

import (
	"net/http"

	"lawgan/internal/handler/http/respond"
	execUC "lawgan/internal/usecase/executive"
)

type ListHandler struct{ Svc *execUC.Service }

// ServeHTTP handles GET /executives.
// @Summary      List executives
// @Tags         executives
// @Produce      json
// @Success      200 {object} map[string][]DTO "executives ordered by name"
// @Failure      500 {object} map[string]string
// @Router       /executives [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	executives, err := h.Svc.List(r.Context())
	if err != nil {
		respond.Failure(w, http.StatusInternalServerError, "Failed to fetch executives.", err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string][]DTO{"executives": toDTOs(executives)})
}
