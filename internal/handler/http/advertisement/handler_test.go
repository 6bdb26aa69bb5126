package advertisement_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lawgan/internal/domain/entity"
	"lawgan/internal/handler/http/advertisement"
	adUC "lawgan/internal/usecase/advertisement"
)

// Minimal in-memory AdvertisementRepository.
type stubRepo struct {
	data   map[int64]*entity.Advertisement
	nextID int64
	err    error
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Advertisement{}, nextID: 1}
}

func (s *stubRepo) List(_ context.Context) ([]*entity.Advertisement, error) {
	var out []*entity.Advertisement
	for _, v := range s.data {
		out = append(out, v)
	}
	return out, s.err
}

func (s *stubRepo) ListByPage(_ context.Context, page string) ([]*entity.Advertisement, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Advertisement
	for _, v := range s.data {
		if v.Page == page {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *stubRepo) GetByID(_ context.Context, id int64) (*entity.Advertisement, error) {
	return s.data[id], s.err
}

func (s *stubRepo) Create(_ context.Context, ad *entity.Advertisement) error {
	if s.err != nil {
		return s.err
	}
	ad.ID = s.nextID
	s.nextID++
	s.data[ad.ID] = ad
	return nil
}

func (s *stubRepo) Update(_ context.Context, ad *entity.Advertisement) error {
	if s.err != nil {
		return s.err
	}
	s.data[ad.ID] = ad
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
	img := base64.StdEncoding.EncodeToString([]byte{0xFF, 0xD8, 0xFF})

	t.Run("success", func(t *testing.T) {
		handler := advertisement.PublishHandler{Svc: &adUC.Service{Repo: newStub()}}

		body := fmt.Sprintf(`{"url":"https://sponsor.example","owner":"Acme Chambers","page":"home","image_base64":%q,"image_mime":"image/jpeg"}`, img)
		req := httptest.NewRequest(http.MethodPost, "/advertisements/publish", strings.NewReader(body))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201: %s", rr.Code, rr.Body.String())
		}
		var resp struct {
			Advertisement advertisement.DTO `json:"advertisement"`
		}
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Advertisement.Page != "home" {
			t.Errorf("page = %q", resp.Advertisement.Page)
		}
	})

	t.Run("missing placement fields", func(t *testing.T) {
		handler := advertisement.PublishHandler{Svc: &adUC.Service{Repo: newStub()}}

		body := fmt.Sprintf(`{"url":"https://sponsor.example","image_base64":%q}`, img)
		req := httptest.NewRequest(http.MethodPost, "/advertisements/publish", strings.NewReader(body))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rr.Code)
		}
		wantMessage(t, rr, "Url, owner, and page are required.")
	})

	t.Run("missing image", func(t *testing.T) {
		handler := advertisement.PublishHandler{Svc: &adUC.Service{Repo: newStub()}}

		body := `{"url":"https://sponsor.example","owner":"Acme Chambers","page":"home"}`
		req := httptest.NewRequest(http.MethodPost, "/advertisements/publish", strings.NewReader(body))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rr.Code)
		}
		wantMessage(t, rr, "Image is required.")
	})
}

func TestListByPageHandler(t *testing.T) {
	repo := newStub()
	if err := repo.Create(context.Background(), &entity.Advertisement{
		URL: "https://sponsor.example", Owner: "Acme Chambers", Page: "home", Image: []byte{1},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	handler := advertisement.ListByPageHandler{Svc: &adUC.Service{Repo: repo}}

	t.Run("filters by page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/advertisements/page/home", nil)
		req.SetPathValue("page", "home")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rr.Code)
		}
		var resp struct {
			Advertisements []advertisement.DTO `json:"advertisements"`
		}
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(resp.Advertisements) != 1 {
			t.Errorf("advertisements = %d, want 1", len(resp.Advertisements))
		}
	})

	t.Run("blank page rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/advertisements/page/%20", nil)
		req.SetPathValue("page", "  ")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rr.Code)
		}
		wantMessage(t, rr, "Page is required.")
	})
}

func TestEditHandler(t *testing.T) {
	repo := newStub()
	if err := repo.Create(context.Background(), &entity.Advertisement{
		URL: "https://sponsor.example", Owner: "Acme Chambers", Page: "home", Image: []byte{1},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	handler := advertisement.EditHandler{Svc: &adUC.Service{Repo: repo}}

	t.Run("success", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/advertisements/edit",
			strings.NewReader(`{"id":1,"page":"law"}`))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", rr.Code, rr.Body.String())
		}
	})

	t.Run("no fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/advertisements/edit",
			strings.NewReader(`{"id":1}`))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rr.Code)
		}
		wantMessage(t, rr, "No fields provided to update.")
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/advertisements/edit",
			strings.NewReader(`{"id":9,"page":"law"}`))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rr.Code)
		}
		wantMessage(t, rr, "Advertisement not found.")
	})
}

func TestDeleteHandler(t *testing.T) {
	repo := newStub()
	if err := repo.Create(context.Background(), &entity.Advertisement{
		URL: "https://sponsor.example", Owner: "Acme Chambers", Page: "home", Image: []byte{1},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	handler := advertisement.DeleteHandler{Svc: &adUC.Service{Repo: repo}}

	req := httptest.NewRequest(http.MethodDelete, "/advertisements/delete",
		strings.NewReader(`{"id":1}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/advertisements/delete",
		strings.NewReader(`{"id":1}`))
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	wantMessage(t, rr, "Advertisement not found.")
}
