package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"lawgan/internal/domain/entity"
	"lawgan/internal/handler/http/respond"
	"lawgan/internal/imageconv"
	artUC "lawgan/internal/usecase/article"
)

type PublishHandler struct{ Svc *artUC.Service }

// ServeHTTP handles POST /articles/publish.
// @Summary      Publish an article
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      201 {object} map[string]DTO "created article"
// @Failure      400 {object} map[string]string "missing fields or bad image"
// @Failure      409 {object} map[string]string "slug already in use"
// @Router       /articles/publish [post]
func (h PublishHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Slug        string `json:"slug"`
		Summary     string `json:"summary"`
		Content     string `json:"content"`
		Category    string `json:"category"`
		IsBreaking  bool   `json:"is_breaking"`
		Published   *bool  `json:"published"`
		Author      string `json:"author"`
		ImageBase64 string `json:"image_base64"`
		ImageMime   string `json:"image_mime"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Title == "" || entity.NormalizeSlug(req.Slug) == "" || req.Content == "" || req.Category == "" {
		respond.Message(w, http.StatusBadRequest,
			"Title, slug, content, and category are required.")
		return
	}

	image, err := imageconv.Decode(req.ImageBase64, req.ImageMime)
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid image data.")
		return
	}

	art, err := h.Svc.Publish(r.Context(), artUC.PublishInput{
		Title:      req.Title,
		Slug:       req.Slug,
		Summary:    req.Summary,
		Content:    req.Content,
		Category:   req.Category,
		IsBreaking: req.IsBreaking,
		Published:  req.Published,
		Author:     req.Author,
		Image:      image,
	})
	if err != nil {
		switch {
		case errors.Is(err, artUC.ErrSlugTaken):
			respond.Message(w, http.StatusConflict, "Slug already in use.")
		case errors.Is(err, entity.ErrInvalidCategory):
			respond.Message(w, http.StatusBadRequest,
				"Invalid category. Allowed: law, politics, foreign affairs, reviews.")
		default:
			respond.Failure(w, http.StatusInternalServerError, "Failed to publish article.", err)
		}
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]DTO{"article": toDTO(art)})
}
