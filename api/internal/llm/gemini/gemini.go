package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tsql-bridge/api/internal/llm"
	"tsql-bridge/api/internal/llm/prompt"
	"tsql-bridge/api/internal/util"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type Engine struct {
	APIKey string
	Model  string
}

func New(apiKey, model string) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
	}
}

// WithModel returns a copy of the engine bound to another model.
func (e *Engine) WithModel(model string) llm.Engine {
	c := *e
	c.Model = strings.TrimSpace(model)
	return &c
}

func (e *Engine) Name() string     { return "gemini" }
func (e *Engine) GetModel() string { return e.Model }

// Translate sends the same instruction document the groq engine uses,
// through the Gemini SDK. Transient failures are retried three times.
func (e *Engine) Translate(ctx context.Context, sql string) (string, error) {
	if e.APIKey == "" {
		return "", errors.New("GEMINI_API_KEY is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return "", err
	}
	defer cl.Close()

	m := cl.GenerativeModel(strings.TrimSpace(e.Model))
	if m == nil {
		return "", fmt.Errorf("gemini: model is nil")
	}
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:     ptrFloat32(0.05),
		TopP:            ptrFloat32(0.9),
		MaxOutputTokens: ptrInt32(8000),
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(prompt.System())},
	}

	parts := []genai.Part{genai.Text(prompt.BuildUser(sql))}

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		resp, err := m.GenerateContent(ctx, parts...)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(attempt) * 300 * time.Millisecond)
			continue
		}
		txt := firstText(resp)
		if txt == "" {
			return "", fmt.Errorf("gemini translate: empty response")
		}
		out := util.StripCodeFences(strings.TrimSpace(txt))
		if out == "" {
			return "", fmt.Errorf("gemini translate: empty output")
		}
		return out, nil
	}
	return "", lastErr
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
func ptrInt32(v int32) *int32       { return &v }
