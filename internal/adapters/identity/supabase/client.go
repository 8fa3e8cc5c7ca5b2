package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/randomtoy/humor-go/internal/domain"
	"github.com/randomtoy/humor-go/internal/ports"
)

// Client implements ports.Identity against the Supabase GoTrue API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	anonKey    string
	logger     *slog.Logger
}

func NewClient(httpClient *http.Client, baseURL, anonKey string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		anonKey:    anonKey,
		logger:     logger,
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// tokenResponse is the subset of the password-grant response we care about.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// errorResponse covers the message shapes GoTrue uses across versions.
type errorResponse struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
}

func (e errorResponse) text(fallback string) string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.Message != "":
		return e.Message
	case e.ErrorDescription != "":
		return e.ErrorDescription
	default:
		return fallback
	}
}

// SignUp registers a new account. Success does not authenticate the user.
func (c *Client) SignUp(ctx context.Context, email, password string) error {
	status, body, err := c.post(ctx, "/auth/v1/signup", credentials{Email: email, Password: password})
	if err != nil {
		return err
	}

	if status < 200 || status > 299 {
		var er errorResponse
		_ = json.Unmarshal(body, &er)
		return &domain.AuthError{Message: er.text(string(body))}
	}

	return nil
}

// SignIn exchanges credentials for a principal via the password grant.
func (c *Client) SignIn(ctx context.Context, email, password string) (ports.Principal, error) {
	status, body, err := c.post(ctx, "/auth/v1/token?grant_type=password", credentials{Email: email, Password: password})
	if err != nil {
		return ports.Principal{}, err
	}

	switch {
	case status == http.StatusOK:
		// Fall through to principal extraction.
	case status == http.StatusBadRequest || status == http.StatusUnauthorized:
		// GoTrue reports bad credentials as invalid_grant on these codes.
		return ports.Principal{}, domain.ErrInvalidCredentials
	default:
		var er errorResponse
		_ = json.Unmarshal(body, &er)
		return ports.Principal{}, &domain.AuthError{Message: er.text(string(body))}
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return ports.Principal{}, &domain.AuthError{Message: "unreadable token response"}
	}

	// A 200 without a user object means the service confirmed no principal.
	if tok.User.ID == "" && tok.User.Email == "" {
		return ports.Principal{}, domain.ErrInvalidCredentials
	}

	return ports.Principal{ID: tok.User.ID, Email: tok.User.Email}, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) (int, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.anonKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: read response: %v", domain.ErrTransport, err)
	}

	return resp.StatusCode, respBody, nil
}
