package transport

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

// fakeEngine serves a minimal slice of the engine's HTTP surface.
func fakeEngine(t *testing.T) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Get("/{index}/_search", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"_shards":{"total":1,"successful":1,"failed":0},"hits":{"total":0,"hits":[]}}`))
	})
	r.Post("/{index}/_search", func(w http.ResponseWriter, req *http.Request) {
		if ct := req.Header.Get("Content-Type"); ct != "application/json" {
			http.Error(w, "bad content type "+ct, http.StatusUnsupportedMediaType)
			return
		}
		body, _ := io.ReadAll(req.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body) // echo the request body back
	})
	r.Get("/{index}/{docType}/{id}", func(w http.ResponseWriter, req *http.Request) {
		if chi.URLParam(req, "id") == "missing" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"found":false}`))
			return
		}
		_, _ = w.Write([]byte(`{"found":true,"_id":"` + chi.URLParam(req, "id") + `"}`))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestNewHTTP_BadBaseURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"no scheme", "localhost:9200"},
		{"wrong scheme", "redis://localhost:6379"},
		{"garbage", "http://\x00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewHTTP(Config{BaseURL: tt.url}); err == nil {
				t.Errorf("expected error for %q", tt.url)
			}
		})
	}
}

func TestHTTP_Perform(t *testing.T) {
	srv := fakeEngine(t)
	tr, err := NewHTTP(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("new transport: %v", err)
	}

	data, err := tr.Perform(context.Background(), "GET", "/messages/_search?q=hello", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(data), `"hits"`) {
		t.Errorf("body = %s", data)
	}
}

func TestHTTP_PerformWithBody(t *testing.T) {
	srv := fakeEngine(t)
	tr, err := NewHTTP(Config{BaseURL: srv.URL + "/"}) // trailing slash is tolerated
	if err != nil {
		t.Fatalf("new transport: %v", err)
	}

	body := []byte(`{"query":{"match_all":{}}}`)
	data, err := tr.Perform(context.Background(), "POST", "/messages/_search", body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != string(body) {
		t.Errorf("echoed body = %s, want %s", data, body)
	}
}

func TestHTTP_StatusError(t *testing.T) {
	srv := fakeEngine(t)
	tr, err := NewHTTP(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("new transport: %v", err)
	}

	_, err = tr.Perform(context.Background(), "GET", "/messages/comment/missing", nil)
	if err == nil {
		t.Fatal("expected status error")
	}

	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("error is %T, want *StatusError", err)
	}
	if se.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", se.StatusCode)
	}
	if !strings.Contains(string(se.Body), `"found":false`) {
		t.Errorf("Body = %s", se.Body)
	}
	if !strings.Contains(se.Error(), "404") {
		t.Errorf("Error() = %q", se.Error())
	}
}

func TestHTTP_ConnectionError(t *testing.T) {
	srv := fakeEngine(t)
	base := srv.URL
	srv.Close()

	tr, err := NewHTTP(Config{BaseURL: base, Timeout: time.Second})
	if err != nil {
		t.Fatalf("new transport: %v", err)
	}

	_, err = tr.Perform(context.Background(), "GET", "/messages/_search", nil)
	if err == nil {
		t.Fatal("expected connection error")
	}
	var se *StatusError
	if errors.As(err, &se) {
		t.Error("connection failure must not be a StatusError")
	}
}

func TestHTTP_ContextCancellation(t *testing.T) {
	srv := fakeEngine(t)
	tr, err := NewHTTP(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("new transport: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := tr.Perform(ctx, "GET", "/messages/_search", nil); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
