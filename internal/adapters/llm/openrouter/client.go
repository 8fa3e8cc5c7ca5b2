package openrouter

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

// systemPrompt fixes the assistant persona for every request.
const systemPrompt = "You are a multilingual humor and cultural adaptation assistant."

// Client implements ports.Completer via the OpenRouter API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
	logger     *slog.Logger
}

func NewClient(httpClient *http.Client, apiKey, baseURL, model string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		logger:     logger,
	}
}

// chatRequest / chatResponse mirror the OpenAI-compatible API shapes.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete issues exactly one chat-completion call. There is no retry and no
// fallback model; the user resubmits after a failure.
func (c *Client) Complete(ctx context.Context, prompt string) (ports.CompletionOutput, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return ports.CompletionOutput{}, fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return ports.CompletionOutput{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.CompletionOutput{}, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return ports.CompletionOutput{}, fmt.Errorf("%w: read response: %v", domain.ErrTransport, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		// Fall through to parsing.
	case resp.StatusCode == http.StatusTooManyRequests:
		c.logger.WarnContext(ctx, "completion rate limited", "model", c.model)
		return ports.CompletionOutput{}, domain.ErrRateLimited
	default:
		return ports.CompletionOutput{}, &domain.ServiceError{
			Status: resp.StatusCode,
			Body:   string(respBody),
		}
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return ports.CompletionOutput{}, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}

	if len(chatResp.Choices) == 0 {
		return ports.CompletionOutput{}, fmt.Errorf("%w: no choices", domain.ErrParse)
	}

	return ports.CompletionOutput{
		Text:  strings.TrimSpace(chatResp.Choices[0].Message.Content),
		Model: c.model,
	}, nil
}
