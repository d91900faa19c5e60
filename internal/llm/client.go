package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"shopsmart-ai/pkg/config"

	"go.uber.org/zap"
)

// Client talks to an OpenAI-compatible chat completions API. The
// configuration is fixed at construction and never mutated, so a single
// Client is safe for concurrent use across requests.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(cfg *config.LLMConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     logger,
	}
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

// Complete performs one chat-completion round trip and returns the text of
// the first generated choice. A response with no choices yields an empty
// string, not an error; transport, auth, and provider errors all surface as a
// single generic failure.
func (c *Client) Complete(ctx context.Context, messages []Message, format ResponseFormat) (string, error) {
	reqBody := chatRequest{
		Model:    c.model,
		Messages: messages,
	}
	if format != FormatText {
		reqBody.ResponseFormat = &responseFormat{Type: string(format)}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("encode completion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("completion error %d: %s", resp.StatusCode, string(body))
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		c.logger.Warn("Completion returned no choices", zap.String("model", c.model))
		return "", nil
	}

	return parsed.Choices[0].Message.Content, nil
}
