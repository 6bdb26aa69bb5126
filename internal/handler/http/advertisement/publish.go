package advertisement

import (
	"encoding/json"
	"net/http"

	"lawgan/internal/handler/http/respond"
	"lawgan/internal/imageconv"
	adUC "lawgan/internal/usecase/advertisement"
)

type PublishHandler struct{ Svc *adUC.Service }

// ServeHTTP handles POST /advertisements/publish.
// @Summary      Publish an advertisement
// @Tags         advertisements
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      201 {object} map[string]DTO "created advertisement"
// @Failure      400 {object} map[string]string "missing fields or bad image"
// @Router       /advertisements/publish [post]
func (h PublishHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ImageBase64 string `json:"image_base64"`
		ImageMime   string `json:"image_mime"`
		URL         string `json:"url"`
		Owner       string `json:"owner"`
		Page        string `json:"page"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.URL == "" || req.Owner == "" || req.Page == "" {
		respond.Message(w, http.StatusBadRequest, "Url, owner, and page are required.")
		return
	}

	image, err := imageconv.Decode(req.ImageBase64, req.ImageMime)
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid image data.")
		return
	}
	if image.Empty() {
		respond.Message(w, http.StatusBadRequest, "Image is required.")
		return
	}

	ad, err := h.Svc.Create(r.Context(), adUC.CreateInput{
		Image: image,
		URL:   req.URL,
		Owner: req.Owner,
		Page:  req.Page,
	})
	if err != nil {
		respond.Failure(w, http.StatusInternalServerError, "Failed to create advertisement.", err)
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]DTO{"advertisement": toDTO(ad)})
}
