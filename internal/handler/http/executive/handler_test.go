package executive_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lawgan/internal/domain/entity"
	"lawgan/internal/handler/http/executive"
	execUC "lawgan/internal/usecase/executive"
)

// Minimal in-memory ExecutiveRepository.
type stubRepo struct {
	data   map[int64]*entity.Executive
	nextID int64
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Executive{}, nextID: 1}
}

func (s *stubRepo) List(_ context.Context) ([]*entity.Executive, error) {
	var out []*entity.Executive
	for _, v := range s.data {
		out = append(out, v)
	}
	return out, nil
}

func (s *stubRepo) GetByID(_ context.Context, id int64) (*entity.Executive, error) {
	return s.data[id], nil
}

func (s *stubRepo) Create(_ context.Context, e *entity.Executive) error {
	e.ID = s.nextID
	s.nextID++
	s.data[e.ID] = e
	return nil
}

func (s *stubRepo) Update(_ context.Context, e *entity.Executive) error {
	s.data[e.ID] = e
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) error {
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

func TestCreateHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler := executive.CreateHandler{Svc: &execUC.Service{Repo: newStub()}}

		req := httptest.NewRequest(http.MethodPost, "/executives",
			strings.NewReader(`{"name":"Tunde Bassey","position":"Managing Editor"}`))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201: %s", rr.Code, rr.Body.String())
		}
		var resp struct {
			Executive executive.DTO `json:"executive"`
		}
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Executive.Position != "Managing Editor" {
			t.Errorf("position = %q", resp.Executive.Position)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		handler := executive.CreateHandler{Svc: &execUC.Service{Repo: newStub()}}

		req := httptest.NewRequest(http.MethodPost, "/executives",
			strings.NewReader(`{"position":"Publisher"}`))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rr.Code)
		}
		wantMessage(t, rr, "Name is required.")
	})
}

func TestUpdateHandler_NotFound(t *testing.T) {
	handler := executive.UpdateHandler{Svc: &execUC.Service{Repo: newStub()}}

	req := httptest.NewRequest(http.MethodPatch, "/executives",
		strings.NewReader(`{"id":42,"position":"Publisher"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	wantMessage(t, rr, "Executive not found.")
}

func TestDeleteHandler(t *testing.T) {
	repo := newStub()
	if err := repo.Create(context.Background(), &entity.Executive{Name: "Tunde Bassey"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	handler := executive.DeleteHandler{Svc: &execUC.Service{Repo: repo}}

	req := httptest.NewRequest(http.MethodDelete, "/executives",
		strings.NewReader(`{"id":1}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/executives",
		strings.NewReader(`{"id":1}`))
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	wantMessage(t, rr, "Executive not found.")
}
