package board

import (
	"net/http"

	"lawgan/internal/handler/http/respond"
	boardUC "lawgan/internal/usecase/board"
)

type ListHandler struct{ Svc *boardUC.Service }

// ServeHTTP handles GET /editorial-boards.
// @Summary      List editorial board members
// @Tags         editorial-boards
// @Produce      json
// @Success      200 {object} map[string][]DTO "members ordered by name"
// @Failure      500 {object} map[string]string
// @Router       /editorial-boards [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	members, err := h.Svc.List(r.Context())
	if err != nil {
		respond.Failure(w, http.StatusInternalServerError, "Failed to fetch editorial boards.", err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string][]DTO{"editorialBoards": toDTOs(members)})
}
