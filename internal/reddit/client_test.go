package reddit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kamik423/quadrant/internal/cache"
	"github.com/kamik423/quadrant/internal/model"
)

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Credentials = model.Credentials{
		ClientID:     "id",
		ClientSecret: "secret",
		Username:     "user",
		Password:     "pass",
		UserAgent:    "quadrant-test/0.1",
	}
	cfg.Communities = []string{"golang"}
	cfg.HTTP.RequestsPerSecond = 1000 // don't slow the tests down
	cfg.HTTP.Burst = 1000
	cfg.HTTP.RetryCount = 0
	return cfg
}

func tokenHandler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "id" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if r.Form.Get("grant_type") != "password" {
			t.Errorf("grant_type = %q, want password", r.Form.Get("grant_type"))
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-123",
			"token_type":   "bearer",
			"expires_in":   3600,
			"scope":        "*",
		})
	}
}

func listingBody(kind string, things ...map[string]any) map[string]any {
	children := make([]map[string]any, len(things))
	for i, data := range things {
		children[i] = map[string]any{"kind": kind, "data": data}
	}
	return map[string]any{
		"kind": "Listing",
		"data": map[string]any{"after": "", "children": children},
	}
}

func TestAuthenticate_BadCredentials(t *testing.T) {
	auth := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Bad user password: the endpoint answers 200 with an error field.
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "invalid_grant"})
	}))
	defer auth.Close()

	client := NewClient(testConfig(), WithBaseURLs(auth.URL, auth.URL))

	err := client.Authenticate(context.Background())
	var authErr *model.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
}

func TestAuthenticate_RejectedClient(t *testing.T) {
	auth := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer auth.Close()

	client := NewClient(testConfig(), WithBaseURLs(auth.URL, auth.URL))

	err := client.Authenticate(context.Background())
	var authErr *model.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
}

func TestFetch_HotPosts(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/access_token", tokenHandler(t))
	mux.HandleFunc("/r/golang/hot", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("Authorization = %q, want Bearer tok-123", got)
		}
		_ = json.NewEncoder(w).Encode(listingBody("t3",
			map[string]any{"id": "a1", "title": "Free markets", "selftext": "discuss", "score": 42, "author_flair_text": "libright"},
			map[string]any{"id": "a2", "title": "Union drive", "score": 7},
		))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewClient(testConfig(), WithBaseURLs(srv.URL, srv.URL))
	if err := client.Authenticate(context.Background()); err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	items, err := client.Fetch(context.Background(), "golang")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Text != "Free markets\n\ndiscuss" {
		t.Errorf("unexpected text %q", items[0].Text)
	}
	if items[0].Weight != 42 {
		t.Errorf("weight = %f, want 42", items[0].Weight)
	}
	if items[0].Flair != "libright" {
		t.Errorf("flair = %q, want libright", items[0].Flair)
	}
	if items[1].Text != "Union drive" {
		t.Errorf("title-only post should have no body suffix, got %q", items[1].Text)
	}
}

func TestFetch_CommentsMode(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/access_token", tokenHandler(t))
	mux.HandleFunc("/r/memes/new", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(listingBody("t3",
			map[string]any{"id": "p1", "title": "post one", "score": 1},
		))
	})
	mux.HandleFunc("/r/memes/comments/p1", func(w http.ResponseWriter, r *http.Request) {
		pair := []any{
			listingBody("t3", map[string]any{"id": "p1", "title": "post one"}),
			listingBody("t1",
				map[string]any{"id": "c1", "body": "liberty now", "score": 3, "author_flair_text": ""},
				map[string]any{"id": "c2", "body": "", "score": 9}, // deleted, dropped
			),
		}
		_ = json.NewEncoder(w).Encode(pair)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cfg := testConfig()
	cfg.Mode = model.ModeComments
	client := NewClient(cfg, WithBaseURLs(srv.URL, srv.URL))

	items, err := client.Fetch(context.Background(), "memes")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 comment item, got %d", len(items))
	}
	if items[0].Text != "liberty now" {
		t.Errorf("unexpected comment text %q", items[0].Text)
	}
}

func TestFetch_MissingCommunity(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/access_token", tokenHandler(t))
	mux.HandleFunc("/r/nope/hot", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewClient(testConfig(), WithBaseURLs(srv.URL, srv.URL))

	_, err := client.Fetch(context.Background(), "nope")
	var fetchErr *model.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if fetchErr.Community != "nope" {
		t.Errorf("community = %q, want nope", fetchErr.Community)
	}
}

func TestFetch_CacheHit(t *testing.T) {
	var listingCalls int
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/access_token", tokenHandler(t))
	mux.HandleFunc("/r/golang/hot", func(w http.ResponseWriter, r *http.Request) {
		listingCalls++
		_ = json.NewEncoder(w).Encode(listingBody("t3",
			map[string]any{"id": "a1", "title": fmt.Sprintf("call %d", listingCalls), "score": 1},
		))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := cache.NewMemoryCache(time.Minute, time.Minute)
	client := NewClient(testConfig(), WithBaseURLs(srv.URL, srv.URL), WithCache(store, time.Minute))

	first, err := client.Fetch(context.Background(), "golang")
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	second, err := client.Fetch(context.Background(), "golang")
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}

	if listingCalls != 1 {
		t.Errorf("expected 1 upstream call, got %d", listingCalls)
	}
	if first[0].Text != second[0].Text {
		t.Errorf("cache returned different items: %q vs %q", first[0].Text, second[0].Text)
	}
}
