package advertisement_test

import (
	"context"
	"errors"
	"testing"

	"lawgan/internal/domain/entity"
	"lawgan/internal/imageconv"
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

func validCreate() adUC.CreateInput {
	return adUC.CreateInput{
		URL:   " https://sponsor.example ",
		Owner: " Acme Chambers ",
		Page:  " home ",
		Image: imageconv.Payload{Data: []byte{0xFF, 0xD8}, Mime: "image/jpeg"},
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("success trims placement fields", func(t *testing.T) {
		svc := &adUC.Service{Repo: newStub()}
		ad, err := svc.Create(ctx, validCreate())
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if ad.URL != "https://sponsor.example" || ad.Owner != "Acme Chambers" || ad.Page != "home" {
			t.Errorf("ad = %+v, want trimmed fields", ad)
		}
	})

	t.Run("missing image", func(t *testing.T) {
		svc := &adUC.Service{Repo: newStub()}
		in := validCreate()
		in.Image = imageconv.Payload{}
		var vErr *entity.ValidationError
		if _, err := svc.Create(ctx, in); !errors.As(err, &vErr) {
			t.Errorf("err = %v, want ValidationError", err)
		}
	})
}

func TestListByPage(t *testing.T) {
	ctx := context.Background()
	svc := &adUC.Service{Repo: newStub()}

	if _, err := svc.Create(ctx, validCreate()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	other := validCreate()
	other.Page = "law"
	if _, err := svc.Create(ctx, other); err != nil {
		t.Fatalf("Create: %v", err)
	}

	ads, err := svc.ListByPage(ctx, "home")
	if err != nil {
		t.Fatalf("ListByPage: %v", err)
	}
	if len(ads) != 1 || ads[0].Page != "home" {
		t.Errorf("ListByPage = %+v, want one home ad", ads)
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	svc := &adUC.Service{Repo: newStub()}
	ad, err := svc.Create(ctx, validCreate())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	t.Run("merges provided fields", func(t *testing.T) {
		owner := "New Sponsor Ltd"
		got, err := svc.Update(ctx, adUC.UpdateInput{ID: ad.ID, Owner: &owner})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if got.Owner != owner {
			t.Errorf("Owner = %q", got.Owner)
		}
		if got.URL != "https://sponsor.example" {
			t.Errorf("URL changed unexpectedly")
		}
	})

	t.Run("no fields", func(t *testing.T) {
		if _, err := svc.Update(ctx, adUC.UpdateInput{ID: ad.ID}); !errors.Is(err, adUC.ErrNoFields) {
			t.Errorf("err = %v, want ErrNoFields", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		page := "reviews"
		if _, err := svc.Update(ctx, adUC.UpdateInput{ID: 999, Page: &page}); !errors.Is(err, adUC.ErrAdNotFound) {
			t.Errorf("err = %v, want ErrAdNotFound", err)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc := &adUC.Service{Repo: newStub()}

	if err := svc.Delete(ctx, 41); !errors.Is(err, adUC.ErrAdNotFound) {
		t.Errorf("err = %v, want ErrAdNotFound", err)
	}
	if err := svc.Delete(ctx, 0); !errors.Is(err, adUC.ErrInvalidAdID) {
		t.Errorf("err = %v, want ErrInvalidAdID", err)
	}
}
