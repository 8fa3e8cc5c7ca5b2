package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/randomtoy/humor-go/internal/domain"
	"github.com/randomtoy/humor-go/internal/ports"
)

// AuthService orchestrates the identity service and the session store.
type AuthService struct {
	identity ports.Identity
	sessions ports.SessionStore
	logger   *slog.Logger
}

func NewAuthService(identity ports.Identity, sessions ports.SessionStore, logger *slog.Logger) *AuthService {
	return &AuthService{
		identity: identity,
		sessions: sessions,
		logger:   logger,
	}
}

// SignUp registers an account. On success the user still has to log in; no
// session is created here.
func (s *AuthService) SignUp(ctx context.Context, email, password string) error {
	if err := s.identity.SignUp(ctx, email, password); err != nil {
		return fmt.Errorf("sign up: %w", err)
	}
	return nil
}

// SignIn authenticates against the identity service and, only on a confirmed
// principal, creates a session. Any failure leaves the store untouched.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, domain.Session, error) {
	principal, err := s.identity.SignIn(ctx, email, password)
	if err != nil {
		return "", domain.Session{}, fmt.Errorf("sign in: %w", err)
	}

	sess := domain.Session{
		UserEmail: principal.Email,
		CreatedAt: time.Now().UTC(),
	}
	token, err := s.sessions.Create(ctx, sess)
	if err != nil {
		return "", domain.Session{}, fmt.Errorf("create session: %w", err)
	}

	s.logger.InfoContext(ctx, "user signed in", "email", principal.Email)
	return token, sess, nil
}

// SignOut deletes the session for token. Idempotent: an empty or unknown
// token is a no-op.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Resolve looks up the session for token. ok is false for an empty token, an
// unknown token, or an expired session.
func (s *AuthService) Resolve(ctx context.Context, token string) (domain.Session, bool) {
	if token == "" {
		return domain.Session{}, false
	}
	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			s.logger.WarnContext(ctx, "session lookup failed", "error", err)
		}
		return domain.Session{}, false
	}
	return sess, true
}

// TranslationService turns a validated request into one completion call.
type TranslationService struct {
	completer ports.Completer
	logger    *slog.Logger
}

func NewTranslationService(completer ports.Completer, logger *slog.Logger) *TranslationService {
	return &TranslationService{
		completer: completer,
		logger:    logger,
	}
}

// Translate validates the joke text, builds the prompt, and issues exactly
// one completion call. An empty joke returns domain.ErrEmptyJoke before any
// network activity.
func (s *TranslationService) Translate(ctx context.Context, req domain.TranslationRequest) (domain.TranslationResult, error) {
	if strings.TrimSpace(req.JokeText) == "" {
		return domain.TranslationResult{}, domain.ErrEmptyJoke
	}

	prompt := domain.BuildPrompt(req)

	start := time.Now()
	out, err := s.completer.Complete(ctx, prompt)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return domain.TranslationResult{}, fmt.Errorf("complete: %w", err)
	}

	s.logger.InfoContext(ctx, "joke translated",
		"source_culture", req.SourceCulture,
		"target_culture", req.TargetCulture,
		"target_language", req.TargetLanguage,
		"model", out.Model,
		"latency_ms", latency,
	)

	return domain.TranslationResult{
		Text:      out.Text,
		Model:     out.Model,
		LatencyMS: latency,
	}, nil
}
