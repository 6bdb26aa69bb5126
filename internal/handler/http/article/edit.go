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

type EditHandler struct{ Svc *artUC.Service }

// ServeHTTP handles PATCH /articles/edit.
// The article is identified by the id or slug carried in the body; id wins
// when both are present. Absent fields keep their stored values, and
// new_slug carries a replacement slug.
// @Summary      Edit an article
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      200 {object} map[string]DTO "updated article"
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Failure      409 {object} map[string]string "slug already in use"
// @Router       /articles/edit [patch]
func (h EditHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID          int64   `json:"id"`
		Slug        string  `json:"slug"`
		Title       *string `json:"title"`
		NewSlug     *string `json:"new_slug"`
		Summary     *string `json:"summary"`
		Content     *string `json:"content"`
		Category    *string `json:"category"`
		IsBreaking  *bool   `json:"is_breaking"`
		Published   *bool   `json:"published"`
		Author      *string `json:"author"`
		ImageBase64 string  `json:"image_base64"`
		ImageMime   string  `json:"image_mime"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.ID <= 0 && entity.NormalizeSlug(req.Slug) == "" {
		respond.Message(w, http.StatusBadRequest, "Article id or slug is required.")
		return
	}

	image, err := imageconv.Decode(req.ImageBase64, req.ImageMime)
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid image data.")
		return
	}

	art, err := h.Svc.Edit(r.Context(), artUC.EditInput{
		ID:         req.ID,
		SlugKey:    req.Slug,
		Title:      req.Title,
		Slug:       req.NewSlug,
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
		case errors.Is(err, artUC.ErrNoFields):
			respond.Message(w, http.StatusBadRequest, "No fields provided to update.")
		case errors.Is(err, artUC.ErrArticleNotFound):
			respond.Message(w, http.StatusNotFound, "Article not found.")
		case errors.Is(err, artUC.ErrSlugTaken):
			respond.Message(w, http.StatusConflict, "Slug already in use.")
		case errors.Is(err, entity.ErrInvalidCategory):
			respond.Message(w, http.StatusBadRequest,
				"Invalid category. Allowed: law, politics, foreign affairs, reviews.")
		default:
			respond.Failure(w, http.StatusInternalServerError, "Failed to update article.", err)
		}
		return
	}

	respond.JSON(w, http.StatusOK, map[string]DTO{"article": toDTO(art)})
}
