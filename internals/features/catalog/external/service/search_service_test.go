package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearcher_ReturnsUpstreamRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "사회복지" {
			t.Fatalf("upstream query = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"institution":"한국평생교육원","name":"사회복지개론","category":"전공","credits":3}]`))
	}))
	defer srv.Close()

	s := NewSearcherWithClient(srv.Client(), srv.URL)
	results := s.Search(context.Background(), "사회복지")
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if results[0].Name != "사회복지개론" || results[0].Credits != 3 {
		t.Fatalf("row = %+v", results[0])
	}
}

func TestSearcher_DegradesToEmptyOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s := NewSearcherWithClient(srv.Client(), srv.URL)
	if got := s.Search(context.Background(), "anything"); len(got) != 0 {
		t.Fatalf("expected empty results on upstream 502, got %d", len(got))
	}

	// unreachable host degrades the same way
	dead := NewSearcherWithClient(srv.Client(), "http://127.0.0.1:1")
	if got := dead.Search(context.Background(), "anything"); len(got) != 0 {
		t.Fatalf("expected empty results on connect failure, got %d", len(got))
	}
}

func TestSearcher_EmptyQueryAndUnsetURLShortCircuit(t *testing.T) {
	s := NewSearcherWithClient(http.DefaultClient, "")
	if got := s.Search(context.Background(), "사회복지"); got == nil || len(got) != 0 {
		t.Fatalf("unset URL: got %v", got)
	}

	s2 := NewSearcherWithClient(http.DefaultClient, "http://example.invalid")
	if got := s2.Search(context.Background(), ""); got == nil || len(got) != 0 {
		t.Fatalf("empty query: got %v", got)
	}
}
