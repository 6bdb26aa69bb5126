package board

import (
	"encoding/json"
	"errors"
	"net/http"

	"lawgan/internal/handler/http/respond"
	"lawgan/internal/imageconv"
	boardUC "lawgan/internal/usecase/board"
)

type UpdateHandler struct{ Svc *boardUC.Service }

// ServeHTTP handles PATCH /editorial-boards.
// The member is identified by the id in the body; absent fields keep
// their stored values.
// @Summary      Update an editorial board member
// @Tags         editorial-boards
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      200 {object} map[string]DTO "updated member"
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /editorial-boards [patch]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID          int64   `json:"id"`
		Name        *string `json:"name"`
		ImageBase64 string  `json:"image_base64"`
		ImageMime   string  `json:"image_mime"`
		About       *string `json:"about"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.ID <= 0 {
		respond.Message(w, http.StatusBadRequest, "Editorial board id is required.")
		return
	}

	image, err := imageconv.Decode(req.ImageBase64, req.ImageMime)
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid image data.")
		return
	}

	member, err := h.Svc.Update(r.Context(), boardUC.UpdateInput{
		ID:    req.ID,
		Name:  req.Name,
		About: req.About,
		Image: image,
	})
	if err != nil {
		switch {
		case errors.Is(err, boardUC.ErrNoFields):
			respond.Message(w, http.StatusBadRequest, "No fields provided to update.")
		case errors.Is(err, boardUC.ErrMemberNotFound):
			respond.Message(w, http.StatusNotFound, "Editorial board not found.")
		default:
			respond.Failure(w, http.StatusInternalServerError, "Failed to update editorial board.", err)
		}
		return
	}

	respond.JSON(w, http.StatusOK, map[string]DTO{"editorialBoard": toDTO(member)})
}
