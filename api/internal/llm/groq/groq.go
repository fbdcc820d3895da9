package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"tsql-bridge/api/internal/llm"
	"tsql-bridge/api/internal/llm/prompt"
	"tsql-bridge/api/internal/util"
)

const defaultBaseURL = "https://api.groq.com/openai/v1"

// Near-deterministic sampling: the task is a translation, not generation.
const (
	temperature = 0.05
	maxTokens   = 8000
	topP        = 0.9
)

type Engine struct {
	APIKey  string
	Model   string
	BaseURL string
	httpc   *http.Client
}

func New(key, model string) *Engine {
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second, // TCP connect
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: 10 * time.Second,
		// A full procedure rewrite can take a while before first byte.
		ResponseHeaderTimeout: 120 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		IdleConnTimeout:       90 * time.Second,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   100,
	}

	return &Engine{
		APIKey:  key,
		Model:   model,
		BaseURL: defaultBaseURL,
		// Timeout=0: the per-request bound comes from the caller's context.
		httpc: &http.Client{
			Timeout:   0,
			Transport: tr,
		},
	}
}

// WithHTTPClient overrides the internal HTTP client (e.g., for custom timeouts or tests).
func (e *Engine) WithHTTPClient(c *http.Client) *Engine {
	if c != nil {
		e.httpc = c
	}
	return e
}

// WithBaseURL overrides the API endpoint. Groq speaks the OpenAI
// chat-completions dialect, so any compatible gateway works.
func (e *Engine) WithBaseURL(u string) *Engine {
	if strings.TrimSpace(u) != "" {
		e.BaseURL = strings.TrimSuffix(u, "/")
	}
	return e
}

// WithModel returns a copy of the engine bound to another model. The HTTP
// client and credentials are shared with the receiver.
func (e *Engine) WithModel(model string) llm.Engine {
	c := *e
	c.Model = strings.TrimSpace(model)
	return &c
}

func (e *Engine) Name() string     { return "groq" }
func (e *Engine) GetModel() string { return e.Model }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	TopP        float64       `json:"top_p"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Translate submits the normalized procedure body for conversion and
// returns the model's PostgreSQL text with any code fences stripped.
func (e *Engine) Translate(ctx context.Context, sql string) (string, error) {
	if e.APIKey == "" {
		return "", fmt.Errorf("GROQ_API_KEY is empty")
	}
	model := strings.TrimSpace(e.Model)
	if model == "" {
		model = "llama-3.3-70b-versatile"
	}

	body := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: prompt.System()},
			{Role: "user", Content: prompt.BuildUser(sql)},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
		TopP:        topP,
	}

	payload, _ := json.Marshal(body)
	req, err := http.NewRequestWithContext(ctx, "POST", e.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.APIKey)

	resp, err := e.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("groq chat %d: %s", resp.StatusCode, truncateBytes(raw, 1024))
	}

	var cr chatResponse
	if err := json.Unmarshal(raw, &cr); err != nil {
		return "", fmt.Errorf("groq chat: bad JSON: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("groq chat: empty choices; body=%s", truncateBytes(raw, 1024))
	}

	out := util.StripCodeFences(strings.TrimSpace(cr.Choices[0].Message.Content))
	if out == "" {
		return "", fmt.Errorf("groq chat: empty output")
	}
	return out, nil
}

func truncateBytes(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return strings.TrimSpace(string(b))
}
