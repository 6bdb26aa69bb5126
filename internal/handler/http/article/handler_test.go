package article_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lawgan/internal/domain/entity"
	"lawgan/internal/handler/http/article"
	artUC "lawgan/internal/usecase/article"
)

// Minimal in-memory ArticleRepository.
type stubRepo struct {
	data   map[int64]*entity.Article
	nextID int64
	err    error
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Article{}, nextID: 1}
}

func (s *stubRepo) List(_ context.Context) ([]*entity.Article, error) {
	var out []*entity.Article
	for _, v := range s.data {
		out = append(out, v)
	}
	return out, s.err
}

func (s *stubRepo) ListByCategory(_ context.Context, category string) ([]*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Article
	for _, v := range s.data {
		if v.Category == category {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *stubRepo) GetByID(_ context.Context, id int64) (*entity.Article, error) {
	return s.data[id], s.err
}

func (s *stubRepo) GetBySlug(_ context.Context, slug string) (*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, v := range s.data {
		if v.Slug == slug {
			return v, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) ExistsBySlug(_ context.Context, slug string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	for _, v := range s.data {
		if v.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubRepo) Create(_ context.Context, a *entity.Article) error {
	if s.err != nil {
		return s.err
	}
	a.ID = s.nextID
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	s.nextID++
	s.data[a.ID] = a
	return nil
}

func (s *stubRepo) Update(_ context.Context, a *entity.Article) error {
	if s.err != nil {
		return s.err
	}
	s.data[a.ID] = a
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[id]; !ok {
		return entity.ErrNotFound
	}
	delete(s.data, id)
	return nil
}

func newService(repo *stubRepo) *artUC.Service {
	return &artUC.Service{Repo: repo}
}

func seedArticle(t *testing.T, repo *stubRepo) *entity.Article {
	t.Helper()
	a := &entity.Article{
		Title:     "Court Reform Bill Passes",
		Slug:      "court-reform-bill",
		Content:   "The bill passed.",
		Category:  "law",
		Published: true,
	}
	if err := repo.Create(context.Background(), a); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return a
}

func wantMessage(t *testing.T, rr *httptest.ResponseRecorder, want string) {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body.Message != want {
		t.Errorf("message = %q, want %q", body.Message, want)
	}
}

func TestPublishHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler := article.PublishHandler{Svc: newService(newStub())}

		body := `{"title":"Court Reform Bill Passes","slug":"Court-Reform-Bill","content":"The bill passed.","category":"law"}`
		req := httptest.NewRequest(http.MethodPost, "/articles/publish", strings.NewReader(body))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201: %s", rr.Code, rr.Body.String())
		}
		var resp struct {
			Article article.DTO `json:"article"`
		}
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Article.Slug != "court-reform-bill" {
			t.Errorf("slug = %q, want normalized lowercase", resp.Article.Slug)
		}
		if !resp.Article.Published {
			t.Errorf("published = false, want default true")
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		handler := article.PublishHandler{Svc: newService(newStub())}

		req := httptest.NewRequest(http.MethodPost, "/articles/publish",
			strings.NewReader(`{"title":"Only a title"}`))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rr.Code)
		}
		wantMessage(t, rr, "Title, slug, content, and category are required.")
	})

	t.Run("duplicate slug", func(t *testing.T) {
		repo := newStub()
		seedArticle(t, repo)
		handler := article.PublishHandler{Svc: newService(repo)}

		body := `{"title":"Duplicate","slug":"court-reform-bill","content":"x","category":"law"}`
		req := httptest.NewRequest(http.MethodPost, "/articles/publish", strings.NewReader(body))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusConflict {
			t.Fatalf("status = %d, want 409", rr.Code)
		}
		wantMessage(t, rr, "Slug already in use.")
	})

	t.Run("invalid category", func(t *testing.T) {
		handler := article.PublishHandler{Svc: newService(newStub())}

		body := `{"title":"T","slug":"s","content":"c","category":"sports"}`
		req := httptest.NewRequest(http.MethodPost, "/articles/publish", strings.NewReader(body))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rr.Code)
		}
		wantMessage(t, rr, "Invalid category. Allowed: law, politics, foreign affairs, reviews.")
	})

	t.Run("invalid image payload", func(t *testing.T) {
		handler := article.PublishHandler{Svc: newService(newStub())}

		body := `{"title":"T","slug":"s","content":"c","category":"law","image_base64":"!!!not-base64!!!"}`
		req := httptest.NewRequest(http.MethodPost, "/articles/publish", strings.NewReader(body))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rr.Code)
		}
		wantMessage(t, rr, "Invalid image data.")
	})

	t.Run("malformed body", func(t *testing.T) {
		handler := article.PublishHandler{Svc: newService(newStub())}

		req := httptest.NewRequest(http.MethodPost, "/articles/publish", strings.NewReader("{not json"))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rr.Code)
		}
		wantMessage(t, rr, "Invalid request body.")
	})
}

func TestEditHandler(t *testing.T) {
	t.Run("update by id", func(t *testing.T) {
		repo := newStub()
		seedArticle(t, repo)
		handler := article.EditHandler{Svc: newService(repo)}

		req := httptest.NewRequest(http.MethodPatch, "/articles/edit",
			strings.NewReader(`{"id":1,"title":"Updated Title"}`))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", rr.Code, rr.Body.String())
		}
		var resp struct {
			Article article.DTO `json:"article"`
		}
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Article.Title != "Updated Title" {
			t.Errorf("title = %q", resp.Article.Title)
		}
	})

	t.Run("update by slug with new slug", func(t *testing.T) {
		repo := newStub()
		seedArticle(t, repo)
		handler := article.EditHandler{Svc: newService(repo)}

		req := httptest.NewRequest(http.MethodPatch, "/articles/edit",
			strings.NewReader(`{"slug":"court-reform-bill","new_slug":"Reform-Bill-Signed"}`))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", rr.Code, rr.Body.String())
		}
		var resp struct {
			Article article.DTO `json:"article"`
		}
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Article.Slug != "reform-bill-signed" {
			t.Errorf("slug = %q, want normalized replacement", resp.Article.Slug)
		}
	})

	t.Run("missing identifier", func(t *testing.T) {
		handler := article.EditHandler{Svc: newService(newStub())}

		req := httptest.NewRequest(http.MethodPatch, "/articles/edit",
			strings.NewReader(`{"title":"x"}`))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rr.Code)
		}
		wantMessage(t, rr, "Article id or slug is required.")
	})

	t.Run("no fields", func(t *testing.T) {
		repo := newStub()
		seedArticle(t, repo)
		handler := article.EditHandler{Svc: newService(repo)}

		req := httptest.NewRequest(http.MethodPatch, "/articles/edit",
			strings.NewReader(`{"id":1}`))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rr.Code)
		}
		wantMessage(t, rr, "No fields provided to update.")
	})

	t.Run("not found", func(t *testing.T) {
		handler := article.EditHandler{Svc: newService(newStub())}

		req := httptest.NewRequest(http.MethodPatch, "/articles/edit",
			strings.NewReader(`{"id":99,"title":"x"}`))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rr.Code)
		}
		wantMessage(t, rr, "Article not found.")
	})
}

func TestDeleteHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := newStub()
		seedArticle(t, repo)
		handler := article.DeleteHandler{Svc: newService(repo)}

		req := httptest.NewRequest(http.MethodDelete, "/articles/delete",
			strings.NewReader(`{"id":1}`))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rr.Code)
		}
		var resp struct {
			Deleted struct {
				ID int64 `json:"id"`
			} `json:"deleted"`
		}
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Deleted.ID != 1 {
			t.Errorf("deleted.id = %d, want 1", resp.Deleted.ID)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		handler := article.DeleteHandler{Svc: newService(newStub())}

		req := httptest.NewRequest(http.MethodDelete, "/articles/delete", strings.NewReader(`{}`))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rr.Code)
		}
		wantMessage(t, rr, "Article id is required.")
	})

	t.Run("not found", func(t *testing.T) {
		handler := article.DeleteHandler{Svc: newService(newStub())}

		req := httptest.NewRequest(http.MethodDelete, "/articles/delete",
			strings.NewReader(`{"id":7}`))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rr.Code)
		}
		wantMessage(t, rr, "Article not found.")
	})
}

func TestListByCategoryHandler(t *testing.T) {
	t.Run("hyphenated and spaced forms accepted", func(t *testing.T) {
		repo := newStub()
		a := seedArticle(t, repo)
		a.Category = "foreign affairs"
		handler := article.ListByCategoryHandler{Svc: newService(repo)}

		for _, param := range []string{"foreign-affairs", "Foreign Affairs"} {
			req := httptest.NewRequest(http.MethodGet, "/articles/category/x", nil)
			req.SetPathValue("category", param)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != http.StatusOK {
				t.Fatalf("status for %q = %d, want 200", param, rr.Code)
			}
			var resp struct {
				Articles []article.DTO `json:"articles"`
			}
			if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if len(resp.Articles) != 1 {
				t.Errorf("articles for %q = %d, want 1", param, len(resp.Articles))
			}
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		handler := article.ListByCategoryHandler{Svc: newService(newStub())}

		req := httptest.NewRequest(http.MethodGet, "/articles/category/sports", nil)
		req.SetPathValue("category", "sports")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rr.Code)
		}
		wantMessage(t, rr, "Invalid category. Allowed: law, politics, foreign affairs, reviews.")
	})
}

func TestGetHandler(t *testing.T) {
	repo := newStub()
	seedArticle(t, repo)
	handler := article.GetHandler{Svc: newService(repo)}

	t.Run("by id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/articles/1", nil)
		req.SetPathValue("idOrSlug", "1")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rr.Code)
		}
	})

	t.Run("by slug", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/articles/court-reform-bill", nil)
		req.SetPathValue("idOrSlug", "court-reform-bill")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rr.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/articles/missing", nil)
		req.SetPathValue("idOrSlug", "missing")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rr.Code)
		}
		wantMessage(t, rr, "Article not found.")
	})
}
