package sessions_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/randomtoy/humor-go/internal/adapters/sessions"
	"github.com/randomtoy/humor-go/internal/domain"
)

func TestMemoryStore_CreateGetDelete(t *testing.T) {
	store := sessions.NewMemoryStore(0)
	ctx := context.Background()

	sess := domain.Session{UserEmail: "a@b.com", CreatedAt: time.Now().UTC()}

	token, err := store.Create(ctx, sess)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	got, err := store.Get(ctx, token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.UserEmail != "a@b.com" {
		t.Errorf("email = %q", got.UserEmail)
	}

	if err := store.Delete(ctx, token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Get(ctx, token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
	}

	// Deleting again is not an error.
	if err := store.Delete(ctx, token); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestMemoryStore_UnknownToken(t *testing.T) {
	store := sessions.NewMemoryStore(0)

	if _, err := store.Get(context.Background(), "nope"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestMemoryStore_TokensAreUnique(t *testing.T) {
	store := sessions.NewMemoryStore(0)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := store.Create(ctx, domain.Session{UserEmail: "a@b.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[token] {
			t.Fatalf("duplicate token %q", token)
		}
		seen[token] = true
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := sessions.NewMemoryStore(time.Millisecond)
	ctx := context.Background()

	token, err := store.Create(ctx, domain.Session{UserEmail: "a@b.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	if _, err := store.Get(ctx, token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("expected expired session to be gone, got %v", err)
	}
}
