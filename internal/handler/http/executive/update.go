package executive

import (
	"encoding/json"
	"errors"
	"net/http"

	"lawgan/internal/handler/http/respond"
	"lawgan/internal/imageconv"
	execUC "lawgan/internal/usecase/executive"
)

type UpdateHandler struct{ Svc *execUC.Service }

// ServeHTTP handles PATCH /executives.
// The executive is identified by the id in the body; absent fields keep
// their stored values.
// @Summary      Update an executive
// @Tags         executives
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      200 {object} map[string]DTO "updated executive"
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /executives [patch]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID          int64   `json:"id"`
		Name        *string `json:"name"`
		Position    *string `json:"position"`
		ImageBase64 string  `json:"image_base64"`
		ImageMime   string  `json:"image_mime"`
		About       *string `json:"about"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.ID <= 0 {
		respond.Message(w, http.StatusBadRequest, "Executive id is required.")
		return
	}

	image, err := imageconv.Decode(req.ImageBase64, req.ImageMime)
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid image data.")
		return
	}

	exec, err := h.Svc.Update(r.Context(), execUC.UpdateInput{
		ID:       req.ID,
		Name:     req.Name,
		Position: req.Position,
		About:    req.About,
		Image:    image,
	})
	if err != nil {
		switch {
		case errors.Is(err, execUC.ErrNoFields):
			respond.Message(w, http.StatusBadRequest, "No fields provided to update.")
		case errors.Is(err, execUC.ErrExecutiveNotFound):
			respond.Message(w, http.StatusNotFound, "Executive not found.")
		default:
			respond.Failure(w, http.StatusInternalServerError, "Failed to update executive.", err)
		}
		return
	}

	respond.JSON(w, http.StatusOK, map[string]DTO{"executive": toDTO(exec)})
}
