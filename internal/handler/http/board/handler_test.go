package board_test

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
	"lawgan/internal/handler/http/board"
	boardUC "lawgan/internal/usecase/board"
)

// Minimal in-memory BoardMemberRepository.
type stubRepo struct {
	data   map[int64]*entity.BoardMember
	nextID int64
	err    error
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.BoardMember{}, nextID: 1}
}

func (s *stubRepo) List(_ context.Context) ([]*entity.BoardMember, error) {
	var out []*entity.BoardMember
	for _, v := range s.data {
		out = append(out, v)
	}
	return out, s.err
}

func (s *stubRepo) GetByID(_ context.Context, id int64) (*entity.BoardMember, error) {
	return s.data[id], s.err
}

func (s *stubRepo) Create(_ context.Context, m *entity.BoardMember) error {
	if s.err != nil {
		return s.err
	}
	m.ID = s.nextID
	s.nextID++
	s.data[m.ID] = m
	return nil
}

func (s *stubRepo) Update(_ context.Context, m *entity.BoardMember) error {
	if s.err != nil {
		return s.err
	}
	s.data[m.ID] = m
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

func TestCreateHandler(t *testing.T) {
	t.Run("success with image", func(t *testing.T) {
		handler := board.CreateHandler{Svc: &boardUC.Service{Repo: newStub()}}

		img := base64.StdEncoding.EncodeToString([]byte{0x89, 0x50, 0x4E, 0x47})
		body := fmt.Sprintf(`{"name":"Chinwe Adeyemi","about":"Editor-in-Chief","image_base64":%q,"image_mime":"image/png"}`, img)
		req := httptest.NewRequest(http.MethodPost, "/editorial-boards", strings.NewReader(body))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201: %s", rr.Code, rr.Body.String())
		}
		var resp struct {
			Member board.DTO `json:"editorialBoard"`
		}
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Member.Name != "Chinwe Adeyemi" {
			t.Errorf("name = %q", resp.Member.Name)
		}
		if !strings.HasPrefix(resp.Member.Image, "data:image/png;base64,") {
			t.Errorf("image = %q, want data URL", resp.Member.Image)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		handler := board.CreateHandler{Svc: &boardUC.Service{Repo: newStub()}}

		req := httptest.NewRequest(http.MethodPost, "/editorial-boards",
			strings.NewReader(`{"about":"bio"}`))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rr.Code)
		}
		wantMessage(t, rr, "Name is required.")
	})
}

func TestUpdateHandler(t *testing.T) {
	seed := func(t *testing.T) *stubRepo {
		t.Helper()
		repo := newStub()
		if err := repo.Create(context.Background(), &entity.BoardMember{Name: "Chinwe Adeyemi"}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		return repo
	}

	t.Run("success", func(t *testing.T) {
		handler := board.UpdateHandler{Svc: &boardUC.Service{Repo: seed(t)}}

		req := httptest.NewRequest(http.MethodPatch, "/editorial-boards",
			strings.NewReader(`{"id":1,"about":"Editor-in-Chief"}`))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", rr.Code, rr.Body.String())
		}
	})

	t.Run("missing id", func(t *testing.T) {
		handler := board.UpdateHandler{Svc: &boardUC.Service{Repo: seed(t)}}

		req := httptest.NewRequest(http.MethodPatch, "/editorial-boards",
			strings.NewReader(`{"about":"x"}`))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rr.Code)
		}
		wantMessage(t, rr, "Editorial board id is required.")
	})

	t.Run("no fields", func(t *testing.T) {
		handler := board.UpdateHandler{Svc: &boardUC.Service{Repo: seed(t)}}

		req := httptest.NewRequest(http.MethodPatch, "/editorial-boards",
			strings.NewReader(`{"id":1}`))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rr.Code)
		}
		wantMessage(t, rr, "No fields provided to update.")
	})

	t.Run("not found", func(t *testing.T) {
		handler := board.UpdateHandler{Svc: &boardUC.Service{Repo: seed(t)}}

		req := httptest.NewRequest(http.MethodPatch, "/editorial-boards",
			strings.NewReader(`{"id":42,"about":"x"}`))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rr.Code)
		}
		wantMessage(t, rr, "Editorial board not found.")
	})
}

func TestDeleteHandler(t *testing.T) {
	repo := newStub()
	if err := repo.Create(context.Background(), &entity.BoardMember{Name: "Chinwe Adeyemi"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	handler := board.DeleteHandler{Svc: &boardUC.Service{Repo: repo}}

	req := httptest.NewRequest(http.MethodDelete, "/editorial-boards",
		strings.NewReader(`{"id":1}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/editorial-boards",
		strings.NewReader(`{"id":1}`))
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	wantMessage(t, rr, "Editorial board not found.")
}
