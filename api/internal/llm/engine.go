package llm

import (
	"context"
	"errors"
)

// Engine is a translation backend: it receives a normalized T-SQL procedure
// body and returns PostgreSQL source, already stripped of code fences.
type Engine interface {
	Name() string
	GetModel() string
	Translate(ctx context.Context, sql string) (string, error)
}

// ModelSwitcher is implemented by engines that can be rebound to another
// model without re-reading configuration. Used by per-chat overrides.
type ModelSwitcher interface {
	WithModel(model string) Engine
}

// Engines holds the configured backends. A nil field means that backend
// has no credential and cannot be selected.
type Engines struct {
	Groq   Engine
	Gemini Engine
}

// Default returns the backend used when the caller does not pick one.
func (e *Engines) Default() Engine {
	if e == nil {
		return nil
	}
	if e.Groq != nil {
		return e.Groq
	}
	return e.Gemini
}

func (e *Engines) GetEngine(llmName string) (Engine, error) {
	switch llmName {
	case "":
		if d := e.Default(); d != nil {
			return d, nil
		}
		return nil, errors.New("no translation backend configured")
	case "groq", "llama":
		if e.Groq != nil {
			return e.Groq, nil
		}
		return nil, errors.New("groq backend is not configured")
	case "gemini":
		if e.Gemini != nil {
			return e.Gemini, nil
		}
		return nil, errors.New("gemini backend is not configured")
	default:
		return nil, errors.New("unknown llm_name; use 'groq' or 'gemini'")
	}
}
