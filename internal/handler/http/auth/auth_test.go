package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const testSecret = "test-secret-key-with-enough-length-123456"

func TestIssueAndVerify(t *testing.T) {
	issuer := NewIssuer(testSecret)

	token, err := issuer.Issue(42)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	adminID, err := Verify([]byte(testSecret), token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if adminID != 42 {
		t.Errorf("adminID = %d, want 42", adminID)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewIssuer(testSecret)
	token, err := issuer.Issue(1)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := Verify([]byte("a-completely-different-secret-material"), token); err == nil {
		t.Error("Verify() accepted token signed with another secret")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issuer := &Issuer{Secret: []byte(testSecret), TTL: -time.Minute}
	token, err := issuer.Issue(1)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := Verify([]byte(testSecret), token); err == nil {
		t.Error("Verify() accepted expired token")
	}
}

func TestAuthz(t *testing.T) {
	issuer := NewIssuer(testSecret)
	var gotAdminID int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAdminID = AdminIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	h := Authz([]byte(testSecret))(next)

	t.Run("valid token passes", func(t *testing.T) {
		token, err := issuer.Issue(7)
		if err != nil {
			t.Fatalf("Issue() error = %v", err)
		}

		req := httptest.NewRequest(http.MethodPost, "/articles", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Code = %d, want %d", w.Code, http.StatusOK)
		}
		if gotAdminID != 7 {
			t.Errorf("admin ID in context = %d, want 7", gotAdminID)
		}
	})

	t.Run("missing header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/articles", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("Code = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("malformed header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/articles", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("Code = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/articles", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("Code = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})
}
