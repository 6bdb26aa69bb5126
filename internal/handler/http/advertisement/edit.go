package advertisement

import (
	"encoding/json"
	"errors"
	"net/http"

	"lawgan/internal/handler/http/respond"
	"lawgan/internal/imageconv"
	adUC "lawgan/internal/usecase/advertisement"
)

type EditHandler struct{ Svc *adUC.Service }

// ServeHTTP handles PATCH /advertisements/edit.
// The advertisement is identified by the id in the body; absent fields
// keep their stored values.
// @Summary      Edit an advertisement
// @Tags         advertisements
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      200 {object} map[string]DTO "updated advertisement"
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /advertisements/edit [patch]
func (h EditHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID          int64   `json:"id"`
		ImageBase64 string  `json:"image_base64"`
		ImageMime   string  `json:"image_mime"`
		URL         *string `json:"url"`
		Owner       *string `json:"owner"`
		Page        *string `json:"page"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.ID <= 0 {
		respond.Message(w, http.StatusBadRequest, "Advertisement id is required.")
		return
	}

	image, err := imageconv.Decode(req.ImageBase64, req.ImageMime)
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid image data.")
		return
	}

	ad, err := h.Svc.Update(r.Context(), adUC.UpdateInput{
		ID:    req.ID,
		Image: image,
		URL:   req.URL,
		Owner: req.Owner,
		Page:  req.Page,
	})
	if err != nil {
		switch {
		case errors.Is(err, adUC.ErrNoFields):
			respond.Message(w, http.StatusBadRequest, "No fields provided to update.")
		case errors.Is(err, adUC.ErrAdNotFound):
			respond.Message(w, http.StatusNotFound, "Advertisement not found.")
		default:
			respond.Failure(w, http.StatusInternalServerError, "Failed to update advertisement.", err)
		}
		return
	}

	respond.JSON(w, http.StatusOK, map[string]DTO{"advertisement": toDTO(ad)})
}
