package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestLoginKeepsSessionCookie(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "auth_token", Value: "tok-123", Path: "/"})
		json.NewEncoder(w).Encode(map[string]string{"id": "u1", "email": "a@example.com"})
	})
	mux.HandleFunc("GET /api/goals", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("auth_token")
		if err != nil || cookie.Value != "tok-123" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "authentication required"})
			return
		}
		json.NewEncoder(w).Encode([]Goal{})
	})

	c := newTestClient(t, mux)
	s, err := c.Login(context.Background(), "a@example.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if s.UserID != "u1" {
		t.Errorf("UserID = %q", s.UserID)
	}
	if c.AuthToken() != "tok-123" {
		t.Errorf("AuthToken = %q", c.AuthToken())
	}

	if _, err := c.ListGoals(context.Background(), s); err != nil {
		t.Errorf("ListGoals with cookie: %v", err)
	}
}

func TestSetAuthTokenRestoresSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("auth_token")
		if err != nil || cookie.Value != "saved-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"id": "u1", "email": "a@example.com"})
	})

	c := newTestClient(t, mux)
	c.SetAuthToken("saved-token")

	s, err := c.Me(context.Background())
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if s.Email != "a@example.com" {
		t.Errorf("email = %q", s.Email)
	}
}

func TestNoSessionShortCircuits(t *testing.T) {
	called := false
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	if _, err := c.ListGoals(context.Background(), nil); !errors.Is(err, ErrNoSession) {
		t.Errorf("nil session: err = %v", err)
	}
	if _, err := c.ListGoals(context.Background(), &Session{}); !errors.Is(err, ErrNoSession) {
		t.Errorf("empty session: err = %v", err)
	}
	if called {
		t.Error("request reached the server without a session")
	}
}

func TestErrorMapping(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/goals", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "goal not found"})
	})
	mux.HandleFunc("POST /api/goals", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error":  "validation failed",
			"fields": map[string]string{"title": "is required"},
		})
	})
	mux.HandleFunc("GET /api/goals", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "something went wrong"})
	})

	c := newTestClient(t, mux)
	s := &Session{UserID: "u1"}
	ctx := context.Background()

	if err := c.DeleteGoal(ctx, s, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("404: err = %v, want ErrNotFound", err)
	}

	_, err := c.CreateGoal(ctx, s, GoalInput{})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("400: err = %v, want *ValidationError", err)
	}
	if verr.Fields["title"] != "is required" {
		t.Errorf("fields = %v", verr.Fields)
	}

	_, err = c.ListGoals(ctx, s)
	var rerr *RequestError
	if !errors.As(err, &rerr) {
		t.Fatalf("500: err = %v, want *RequestError", err)
	}
	if rerr.Status != http.StatusInternalServerError || rerr.Message != "something went wrong" {
		t.Errorf("status = %d message = %q", rerr.Status, rerr.Message)
	}
}
