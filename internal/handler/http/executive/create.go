package executive

import (
	"encoding/json"
	"net/http"

	"lawgan/internal/handler/http/respond"
	"lawgan/internal/imageconv"
	execUC "lawgan/internal/usecase/executive"
)

type CreateHandler struct{ Svc *execUC.Service }

// ServeHTTP handles POST /executives.
// @Summary      Add an executive
// @Tags         executives
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      201 {object} map[string]DTO "created executive"
// @Failure      400 {object} map[string]string "missing name or bad image"
// @Router       /executives [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Position    string `json:"position"`
		ImageBase64 string `json:"image_base64"`
		ImageMime   string `json:"image_mime"`
		About       string `json:"about"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Name == "" {
		respond.Message(w, http.StatusBadRequest, "Name is required.")
		return
	}

	image, err := imageconv.Decode(req.ImageBase64, req.ImageMime)
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid image data.")
		return
	}

	exec, err := h.Svc.Create(r.Context(), execUC.CreateInput{
		Name:     req.Name,
		Position: req.Position,
		About:    req.About,
		Image:    image,
	})
	if err != nil {
		respond.Failure(w, http.StatusInternalServerError, "Failed to create executive.", err)
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]DTO{"executive": toDTO(exec)})
}
