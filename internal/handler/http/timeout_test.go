package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestTimeout_Success(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("success"))
	})

	middleware := Timeout(1 * time.Second)
	wrappedHandler := middleware(handler)

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	rec := httptest.NewRecorder()

	wrappedHandler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.String() != "success" {
		t.Errorf("expected body 'success', got '%s'", rec.Body.String())
	}
}

func TestTimeout_Timeout(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("should not reach here"))
	})

	middleware := Timeout(100 * time.Millisecond)
	wrappedHandler := middleware(handler)

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	rec := httptest.NewRecorder()

	wrappedHandler.ServeHTTP(rec, req)

	if rec.Code != http.StatusGatewayTimeout {
		t.Errorf("expected status 504, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Request timed out.") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestTimeout_ContextCanceled(t *testing.T) {
	ctxDone := make(chan struct{})

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
			close(ctxDone)
		case <-time.After(2 * time.Second):
		}
	})

	middleware := Timeout(50 * time.Millisecond)
	wrappedHandler := middleware(handler)

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	rec := httptest.NewRecorder()

	wrappedHandler.ServeHTTP(rec, req)

	select {
	case <-ctxDone:
	case <-time.After(1 * time.Second):
		t.Error("handler context was not canceled after timeout")
	}
}

func TestTimeout_NoWriteAfterTimeout(t *testing.T) {
	wrote := make(chan error, 1)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(150 * time.Millisecond)
		_, err := w.Write([]byte("late"))
		wrote <- err
	})

	middleware := Timeout(50 * time.Millisecond)
	wrappedHandler := middleware(handler)

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	rec := httptest.NewRecorder()

	wrappedHandler.ServeHTTP(rec, req)

	select {
	case err := <-wrote:
		if err != http.ErrHandlerTimeout {
			t.Errorf("expected ErrHandlerTimeout on late write, got %v", err)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("handler never attempted its write")
	}

	if !strings.Contains(rec.Body.String(), "Request timed out.") {
		t.Errorf("late write leaked into response: %s", rec.Body.String())
	}
}
