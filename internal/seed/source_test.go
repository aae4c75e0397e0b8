package seed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestEmbeddedSourceFetch(t *testing.T) {
	ds, err := NewEmbeddedSource().Fetch(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(ds.Users) != 4 {
		t.Fatalf("expected 4 users, got %d", len(ds.Users))
	}
	if len(ds.Posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(ds.Posts))
	}
	me, ok := ds.FindUser("me")
	if !ok || me.Name != "Alex Rivera" {
		t.Fatalf("expected Alex Rivera as self profile, got %+v", me)
	}
	if len(me.Reviews) != 4 || me.WeeklyReviewCount() != 12 {
		t.Fatalf("unexpected self profile: %+v", me)
	}
}

func TestHTTPSourceFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		_, _ = w.Write([]byte(`{"users":[{"id":"u1","name":"Ana","username":"ana","trustScore":70,"activeDomains":["Social"],"reviews":[]}],"posts":[]}`))
	}))
	defer srv.Close()

	ds, err := NewHTTPSource(srv.URL, srv.Client()).Fetch(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(ds.Users) != 1 || ds.Users[0].Username != "ana" {
		t.Fatalf("unexpected dataset: %+v", ds)
	}
}

func TestHTTPSourceFetchFailures(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusInternalServerError) }},
		{"not json", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("<html>nope</html>")) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			if _, err := NewHTTPSource(srv.URL, srv.Client()).Fetch(context.Background()); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
