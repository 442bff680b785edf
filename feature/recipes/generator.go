package recipes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	pmodels "pantry-pal/feature/pantry/models"
	"pantry-pal/feature/recipes/models"

	"go.uber.org/zap"
)

// Config holds configuration for the recipe generation service.
type Config struct {
	// BaseURL is the completion API base URL.
	BaseURL string `mapstructure:"base_url" default:"https://api.anthropic.com"`
	// ApiKey authenticates against the completion API. When empty, recipe
	// generation is disabled.
	ApiKey string `mapstructure:"api_key" default:""`
	// Model is the completion model identifier.
	Model string `mapstructure:"model" default:"claude-3-5-haiku-latest"`
	// MaxTokens bounds the completion length.
	MaxTokens int `mapstructure:"max_tokens" default:"1024"`
	// TimeoutSeconds is the request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}

// Generator produces a recipe suggestion from a set of inventory records.
type Generator interface {
	Generate(ctx context.Context, records []pmodels.Record) (*models.Suggestion, error)
}

type httpGenerator struct {
	cfg    Config
	http   *http.Client
	logger *zap.Logger
}

// NewGenerator creates a Generator backed by the configured completion API.
func NewGenerator(cfg Config, logger *zap.Logger) Generator {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 60
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: timeoutDuration,
	}

	return &httpGenerator{
		cfg: cfg,
		http: &http.Client{
			Timeout:   timeoutDuration,
			Transport: transport,
		},
		logger: logger,
	}
}

// messagesRequest is the completion API request payload.
type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// messagesResponse is the subset of the completion API response we consume.
type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func buildPrompt(records []pmodels.Record) string {
	var b strings.Builder
	b.WriteString("You are a recipe assistant. Create one recipe using only the pantry items below.\n")
	b.WriteString("Available items:\n")
	for _, rec := range records {
		fmt.Fprintf(&b, "- %s (%g %s) [upc: %s]\n", rec.Name, rec.Quantity, rec.Units, rec.Code)
	}
	b.WriteString("\nRespond with a single JSON object and nothing else, in this exact shape:\n")
	b.WriteString(`{"title": "...", "steps": ["..."], "ingredients": [{"upc": "...", "name": "...", "required": 1, "units": "..."}]}`)
	b.WriteString("\nFor each ingredient, 'required' must not exceed the available quantity and 'units' must match the pantry units.")
	return b.String()
}

func (g *httpGenerator) Generate(ctx context.Context, records []pmodels.Record) (*models.Suggestion, error) {
	if g.cfg.ApiKey == "" {
		return nil, fmt.Errorf("recipe generation is not configured (missing API key)")
	}

	payload, err := json.Marshal(messagesRequest{
		Model:     g.cfg.Model,
		MaxTokens: g.cfg.MaxTokens,
		Messages: []message{
			{Role: "user", Content: buildPrompt(records)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode generation request: %w", err)
	}

	endpoint := strings.TrimSuffix(g.cfg.BaseURL, "/") + "/v1/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", g.cfg.ApiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("recipe generation request failed: %w", err)
	}
	defer resp.Body.Close()

	var body messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("unparseable generation response: %w", err)
	}
	if body.Error != nil {
		return nil, fmt.Errorf("generation API error: %s: %s", body.Error.Type, body.Error.Message)
	}
	if len(body.Content) == 0 || body.Content[0].Text == "" {
		return nil, fmt.Errorf("generation response contained no content")
	}

	suggestion, err := parseSuggestion(body.Content[0].Text)
	if err != nil {
		g.logger.Warn("Model returned a malformed suggestion", zap.Error(err))
		return nil, err
	}
	return suggestion, nil
}

// parseSuggestion extracts the JSON suggestion from the model's text output,
// tolerating markdown code fences around the object.
func parseSuggestion(text string) (*models.Suggestion, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	var s models.Suggestion
	if err := json.Unmarshal([]byte(text), &s); err != nil {
		return nil, fmt.Errorf("suggestion is not valid JSON: %w", err)
	}
	if s.Title == "" {
		return nil, fmt.Errorf("suggestion is missing a title")
	}
	return &s, nil
}
