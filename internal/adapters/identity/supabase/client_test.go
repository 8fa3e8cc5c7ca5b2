package supabase_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/randomtoy/humor-go/internal/adapters/identity/supabase"
	"github.com/randomtoy/humor-go/internal/domain"
)

func TestClient_SignUp_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/auth/v1/signup" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("apikey") != "anon-key" {
			t.Errorf("bad apikey header: %s", r.Header.Get("apikey"))
		}

		body, _ := io.ReadAll(r.Body)
		var creds map[string]string
		_ = json.Unmarshal(body, &creds)
		if creds["email"] != "a@b.com" || creds["password"] != "hunter2" {
			t.Errorf("unexpected credentials: %v", creds)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u1","email":"a@b.com"}`))
	}))
	defer srv.Close()

	client := supabase.NewClient(srv.Client(), srv.URL, "anon-key", slog.Default())

	if err := client.SignUp(context.Background(), "a@b.com", "hunter2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_SignUp_DuplicateAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"msg":"User already registered"}`))
	}))
	defer srv.Close()

	client := supabase.NewClient(srv.Client(), srv.URL, "anon-key", slog.Default())

	err := client.SignUp(context.Background(), "a@b.com", "hunter2")

	var authErr *domain.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if authErr.Message != "User already registered" {
		t.Errorf("message = %q", authErr.Message)
	}
}

func TestClient_SignIn_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/token" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("grant_type") != "password" {
			t.Errorf("unexpected grant_type: %s", r.URL.Query().Get("grant_type"))
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"jwt","user":{"id":"u1","email":"a@b.com"}}`))
	}))
	defer srv.Close()

	client := supabase.NewClient(srv.Client(), srv.URL, "anon-key", slog.Default())

	principal, err := client.SignIn(context.Background(), "a@b.com", "hunter2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if principal.Email != "a@b.com" || principal.ID != "u1" {
		t.Errorf("unexpected principal: %+v", principal)
	}
}

func TestClient_SignIn_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`))
	}))
	defer srv.Close()

	client := supabase.NewClient(srv.Client(), srv.URL, "anon-key", slog.Default())

	_, err := client.SignIn(context.Background(), "a@b.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestClient_SignIn_NoPrincipal(t *testing.T) {
	// A 200 without a user object still means no authenticated principal.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":""}`))
	}))
	defer srv.Close()

	client := supabase.NewClient(srv.Client(), srv.URL, "anon-key", slog.Default())

	_, err := client.SignIn(context.Background(), "a@b.com", "hunter2")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestClient_SignIn_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client := supabase.NewClient(http.DefaultClient, srv.URL, "anon-key", slog.Default())

	_, err := client.SignIn(context.Background(), "a@b.com", "hunter2")
	if !errors.Is(err, domain.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestClient_SignUp_ServiceOutage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	client := supabase.NewClient(srv.Client(), srv.URL, "anon-key", slog.Default())

	err := client.SignUp(context.Background(), "a@b.com", "hunter2")

	var authErr *domain.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if authErr.Message != "upstream down" {
		t.Errorf("message = %q", authErr.Message)
	}
}
