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
)

// Config holds LLM adapter configuration
type Config struct {
	APIKey      string        // OpenAI API key; empty means offline
	BaseURL     string        // Optional override (default: https://api.openai.com/v1)
	Model       string        // e.g. "gpt-4o-mini"
	EmbedModel  string        // e.g. "text-embedding-3-small"
	Temperature float64       // 0.0-1.0, lower = more deterministic
	MaxTokens   int           // Max tokens in response
	Timeout     time.Duration // Request timeout
}

func (c Config) baseURL() string {
	url := strings.TrimSpace(c.BaseURL)
	if url == "" {
		url = "https://api.openai.com/v1"
	}
	return strings.TrimRight(url, "/")
}

// OpenAIClient talks to an OpenAI-compatible chat-completions and
// embeddings API.
type OpenAIClient struct {
	config Config
}

// NewOpenAIClient creates a client from config. The API key is
// checked per call, not here, so a keyless client can still be wired
// and the engine degrades at runtime instead of failing to start.
func NewOpenAIClient(config Config) *OpenAIClient {
	return &OpenAIClient{config: config}
}

// ChatCompletion sends one system + one user message and returns the
// first choice's content.
func (c *OpenAIClient) ChatCompletion(ctx context.Context, model string, prompt string, maxTokens int) (string, error) {
	if c.config.APIKey == "" {
		return "", fmt.Errorf("missing OpenAI API key")
	}
	if strings.TrimSpace(model) == "" {
		return "", fmt.Errorf("missing model")
	}
	if maxTokens <= 0 {
		maxTokens = 600
	}

	type msg struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	type reqBody struct {
		Model       string  `json:"model"`
		Messages    []msg   `json:"messages"`
		Temperature float64 `json:"temperature,omitempty"`
		MaxTokens   int     `json:"max_tokens,omitempty"`
	}
	body := reqBody{
		Model: model,
		Messages: []msg{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: c.config.Temperature,
		MaxTokens:   maxTokens,
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	respRaw, err := c.post(ctx, "/chat/completions", raw)
	if err != nil {
		return "", err
	}

	type choice struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	}
	type respBody struct {
		Choices []choice `json:"choices"`
	}
	var decoded respBody
	if err := json.Unmarshal(respRaw, &decoded); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("openai response missing choices")
	}
	return decoded.Choices[0].Message.Content, nil
}

// Embed returns the embedding vector for text.
func (c *OpenAIClient) Embed(ctx context.Context, text string) ([]float64, error) {
	if c.config.APIKey == "" {
		return nil, fmt.Errorf("missing OpenAI API key")
	}
	model := c.config.EmbedModel
	if model == "" {
		model = "text-embedding-3-small"
	}

	type reqBody struct {
		Model string `json:"model"`
		Input string `json:"input"`
	}
	raw, err := json.Marshal(reqBody{Model: model, Input: text})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	respRaw, err := c.post(ctx, "/embeddings", raw)
	if err != nil {
		return nil, err
	}

	type datum struct {
		Embedding []float64 `json:"embedding"`
	}
	type respBody struct {
		Data []datum `json:"data"`
	}
	var decoded respBody
	if err := json.Unmarshal(respRaw, &decoded); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if len(decoded.Data) == 0 {
		return nil, fmt.Errorf("openai response missing embedding data")
	}
	return decoded.Data[0].Embedding, nil
}

func (c *OpenAIClient) post(ctx context.Context, path string, body []byte) ([]byte, error) {
	client := &http.Client{Timeout: c.config.Timeout}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.baseURL()+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}
	defer resp.Body.Close()

	respRaw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openai http %d: %s", resp.StatusCode, string(respRaw))
	}
	return respRaw, nil
}

// ScriptedClient is a test double that replays canned responses.
type ScriptedClient struct {
	Responses []string             // consumed front to back; last one repeats
	Err       error                // returned by every call when set
	Vectors   map[string][]float64 // Embed lookup by input text
	calls     int
}

func (m *ScriptedClient) ChatCompletion(ctx context.Context, model string, prompt string, maxTokens int) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Responses) == 0 {
		return "", fmt.Errorf("scripted client has no responses")
	}
	idx := m.calls
	if idx >= len(m.Responses) {
		idx = len(m.Responses) - 1
	}
	m.calls++
	return m.Responses[idx], nil
}

func (m *ScriptedClient) Embed(ctx context.Context, text string) ([]float64, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if vec, ok := m.Vectors[text]; ok {
		return vec, nil
	}
	return nil, fmt.Errorf("no scripted vector for %q", text)
}
