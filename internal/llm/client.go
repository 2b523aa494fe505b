package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"resumebuilder/internal/config"
)

const (
	// SystemPrompt is the fixed persona sent with every request.
	SystemPrompt = "You are a professional career advisor and content writer specializing in resumes, cover letters, and portfolios."
	// Temperature is the sampling temperature.
	Temperature = 0.7
	// MaxTokens caps the completion length.
	MaxTokens = 2000
	// RequestTimeout bounds a whole request, body included.
	RequestTimeout = 30 * time.Second

	maxErrorBody = 512
)

// ContentGenerator produces text for a prompt.
type ContentGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Client is a minimal OpenAI-compatible chat completions client for Cerebras.
type Client struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a client. An empty API key is accepted; every call then
// fails with KindConfiguration instead of reaching the network.
func NewClient(cfg config.LLMConfig) (client *Client) {
	model := cfg.Model
	if model == "" {
		model = config.DefaultLLMModel
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = config.DefaultLLMEndpoint
	}
	client = &Client{
		apiKey:   strings.TrimSpace(cfg.APIKey),
		model:    model,
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout:   RequestTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	return client
}

// Complete sends prompt with the fixed system persona and returns
// choices[0].message.content. Any failure, panics included, is returned as *Error.
func (c *Client) Complete(ctx context.Context, prompt string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = newError(KindUnexpected, errors.Errorf("%v", r))
		}
	}()

	if c.apiKey == "" {
		err = newError(KindConfiguration, ErrMissingAPIKey)
		return text, err
	}

	reqBody := ChatRequest{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
	}

	var data []byte
	data, err = json.Marshal(reqBody)
	if err != nil {
		err = newError(KindUnexpected, errors.Wrap(err, "failed to marshal request"))
		return text, err
	}

	var httpReq *http.Request
	httpReq, err = http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(data))
	if err != nil {
		err = newError(KindTransport, errors.Wrap(err, "failed to create HTTP request"))
		return text, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	var resp *http.Response
	resp, err = c.httpClient.Do(httpReq)
	if err != nil {
		err = classifyTransport(err)
		return text, err
	}
	defer resp.Body.Close()

	var respBody []byte
	respBody, err = io.ReadAll(resp.Body)
	if err != nil {
		err = classifyTransport(errors.Wrap(err, "failed to read response body"))
		return text, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err = newError(KindTransport, errors.Errorf("HTTP %d: %s", resp.StatusCode, truncate(string(respBody), maxErrorBody)))
		return text, err
	}

	var chatResp ChatResponse
	err = json.Unmarshal(respBody, &chatResp)
	if err != nil {
		err = newError(KindResponseShape, errors.Wrap(err, "failed to parse response"))
		return text, err
	}

	if len(chatResp.Choices) == 0 {
		err = newError(KindResponseShape, errors.New("no choices in response"))
		return text, err
	}

	content := chatResp.Choices[0].Message.Content
	if content == nil {
		err = newError(KindResponseShape, errors.New("choices[0].message.content missing"))
		return text, err
	}

	text = *content
	return text, err
}

func classifyTransport(err error) *Error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return newError(KindTimeout, err)
	}
	return newError(KindTransport, err)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
