package executive_test

import (
	"context"
	"errors"
	"testing"

	"lawgan/internal/domain/entity"
	execUC "lawgan/internal/usecase/executive"
)

// Minimal in-memory ExecutiveRepository.
type stubRepo struct {
	data   map[int64]*entity.Executive
	nextID int64
	err    error
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Executive{}, nextID: 1}
}

func (s *stubRepo) List(_ context.Context) ([]*entity.Executive, error) {
	var out []*entity.Executive
	for _, v := range s.data {
		out = append(out, v)
	}
	return out, s.err
}

func (s *stubRepo) GetByID(_ context.Context, id int64) (*entity.Executive, error) {
	return s.data[id], s.err
}

func (s *stubRepo) Create(_ context.Context, e *entity.Executive) error {
	if s.err != nil {
		return s.err
	}
	e.ID = s.nextID
	s.nextID++
	s.data[e.ID] = e
	return nil
}

func (s *stubRepo) Update(_ context.Context, e *entity.Executive) error {
	if s.err != nil {
		return s.err
	}
	s.data[e.ID] = e
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

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("success trims name and position", func(t *testing.T) {
		svc := &execUC.Service{Repo: newStub()}
		e, err := svc.Create(ctx, execUC.CreateInput{
			Name:     "  Tunde Bassey  ",
			Position: " Managing Editor ",
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if e.Name != "Tunde Bassey" {
			t.Errorf("Name = %q, want trimmed", e.Name)
		}
		if e.Position != "Managing Editor" {
			t.Errorf("Position = %q, want trimmed", e.Position)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		svc := &execUC.Service{Repo: newStub()}
		var vErr *entity.ValidationError
		if _, err := svc.Create(ctx, execUC.CreateInput{Position: "Publisher"}); !errors.As(err, &vErr) {
			t.Errorf("err = %v, want ValidationError", err)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	svc := &execUC.Service{Repo: newStub()}
	e, err := svc.Create(ctx, execUC.CreateInput{Name: "Tunde Bassey"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	t.Run("merges provided fields", func(t *testing.T) {
		position := "Publisher"
		got, err := svc.Update(ctx, execUC.UpdateInput{ID: e.ID, Position: &position})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if got.Position != "Publisher" {
			t.Errorf("Position = %q", got.Position)
		}
		if got.Name != "Tunde Bassey" {
			t.Errorf("Name changed unexpectedly")
		}
	})

	t.Run("no fields", func(t *testing.T) {
		if _, err := svc.Update(ctx, execUC.UpdateInput{ID: e.ID}); !errors.Is(err, execUC.ErrNoFields) {
			t.Errorf("err = %v, want ErrNoFields", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		name := "x"
		if _, err := svc.Update(ctx, execUC.UpdateInput{ID: 999, Name: &name}); !errors.Is(err, execUC.ErrExecutiveNotFound) {
			t.Errorf("err = %v, want ErrExecutiveNotFound", err)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc := &execUC.Service{Repo: newStub()}

	e, err := svc.Create(ctx, execUC.CreateInput{Name: "Tunde Bassey"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(ctx, e.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, e.ID); !errors.Is(err, execUC.ErrExecutiveNotFound) {
		t.Errorf("err = %v, want ErrExecutiveNotFound", err)
	}
	if err := svc.Delete(ctx, 0); !errors.Is(err, execUC.ErrInvalidExecutiveID) {
		t.Errorf("err = %v, want ErrInvalidExecutiveID", err)
	}
}
