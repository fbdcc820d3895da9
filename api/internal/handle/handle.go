package handle

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"tsql-bridge/api/internal/convert"
	"tsql-bridge/api/internal/llm"
	"tsql-bridge/api/internal/store"
)

type Handle struct {
	engs    *llm.Engines
	conv    *convert.Converter
	repo    *store.ConversionRepo // nil when DATABASE_URL is unset
	timeout time.Duration
}

func New(engs *llm.Engines, conv *convert.Converter, repo *store.ConversionRepo, timeout time.Duration) *Handle {
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &Handle{
		engs:    engs,
		conv:    conv,
		repo:    repo,
		timeout: timeout,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// run performs exactly one conversion with the per-request timeout bound
// and records it in the audit log when one is configured.
func (h *Handle) run(ctx context.Context, conv *convert.Converter, engine llm.Engine, raw string) string {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	out := conv.Convert(ctx, raw)

	if h.repo != nil {
		name, model := "none", ""
		if engine != nil {
			name, model = engine.Name(), engine.GetModel()
		}
		if err := h.repo.Insert(ctx, name, model, store.HashInput(raw), convert.CountWarnings(out)); err != nil {
			log.Printf("audit insert: %v", err)
		}
	}
	return out
}
