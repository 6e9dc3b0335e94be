package client

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIdentityHeaderSent(t *testing.T) {
	var gotIdentity string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotIdentity = r.Header.Get("X-Ressido-Identity")
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`[]`)); err != nil {
			t.Errorf("write: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "user-a")
	if _, err := c.ListProperties(); err != nil {
		t.Fatalf("list: %v", err)
	}
	if gotIdentity != "user-a" {
		t.Errorf("identity header = %q, want %q", gotIdentity, "user-a")
	}
}

func TestErrorResponseSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		if _, err := w.Write([]byte(`{"error":"draft is not submittable","messages":["address is required"]}`)); err != nil {
			t.Errorf("write: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "user-a")
	_, err := c.ListProperties()
	if err == nil {
		t.Fatal("expected error")
	}
	want := "draft is not submittable: [address is required]"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestCurrentDecodesLoadingFlag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/current" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if _, err := w.Write([]byte(`{"property": null, "loading": true}`)); err != nil {
			t.Errorf("write: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "user-a")
	cur, err := c.Current()
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if cur.Property != nil || !cur.Loading {
		t.Errorf("current = %+v", cur)
	}
}
