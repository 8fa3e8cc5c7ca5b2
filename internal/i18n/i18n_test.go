package i18n_test

import (
	"strings"
	"testing"

	"github.com/randomtoy/humor-go/internal/i18n"
)

func TestMessages_English(t *testing.T) {
	m := i18n.NewMessages("en")

	got := m.T("en", "welcome", map[string]any{"Email": "a@b.com"})
	if got != "Welcome, a@b.com!" {
		t.Errorf("welcome = %q", got)
	}

	got = m.T("en", "service_error", map[string]any{"Status": 500, "Body": "oops"})
	if got != "Error 500: oops" {
		t.Errorf("service_error = %q", got)
	}
}

func TestMessages_LocaleFallback(t *testing.T) {
	m := i18n.NewMessages("en")

	// Unknown locale falls back to English.
	got := m.T("sw", "logged_out", nil)
	if got != "Logged out!" {
		t.Errorf("fallback = %q", got)
	}

	// Known locale is honored.
	got = m.T("hi", "logged_out", nil)
	if got == "Logged out!" || got == "" {
		t.Errorf("expected Hindi translation, got %q", got)
	}
}

func TestMessages_UnknownKeyReturnsKey(t *testing.T) {
	m := i18n.NewMessages("en")

	if got := m.T("en", "no_such_key", nil); got != "no_such_key" {
		t.Errorf("unknown key = %q", got)
	}
}

func TestMessages_RateLimitDistinctFromServiceError(t *testing.T) {
	m := i18n.NewMessages("en")

	rate := m.T("en", "rate_limited", nil)
	svc := m.T("en", "service_error", map[string]any{"Status": 429, "Body": ""})
	if rate == svc {
		t.Error("rate-limit message must differ from the generic service error")
	}
	if !strings.Contains(rate, "OpenRouter key") {
		t.Errorf("rate-limit message not actionable: %q", rate)
	}
}
