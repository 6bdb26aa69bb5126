package board

import (
	"encoding/json"
	"net/http"

	"lawgan/internal/handler/http/respond"
	"lawgan/internal/imageconv"
	boardUC "lawgan/internal/usecase/board"
)

type CreateHandler struct{ Svc *boardUC.Service }

// ServeHTTP handles POST /editorial-boards.
// @Summary      Add an editorial board member
// @Tags         editorial-boards
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      201 {object} map[string]DTO "created member"
// @Failure      400 {object} map[string]string "missing name or bad image"
// @Router       /editorial-boards [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
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

	member, err := h.Svc.Create(r.Context(), boardUC.CreateInput{
		Name:  req.Name,
		About: req.About,
		Image: image,
	})
	if err != nil {
		respond.Failure(w, http.StatusInternalServerError, "Failed to create editorial board.", err)
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]DTO{"editorialBoard": toDTO(member)})
}
