package telegram

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tsql-bridge/api/internal/convert"
	"tsql-bridge/api/internal/llm"
	"tsql-bridge/api/internal/store"
)

// Telegram caps messages at 4096 chars; leave headroom for the code fence.
const msgLimit = 4000

type Router struct {
	Bot     *tgbotapi.BotAPI
	Engs    *llm.Engines
	Conv    *convert.Converter
	Repo    *store.ConversionRepo // nil when no database is configured
	Timeout time.Duration

	mu       sync.Mutex
	byChatEn map[int64]llm.Engine // per-chat engine override
}

func (r *Router) HandleUpdate(upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	if upd.Message.IsCommand() {
		r.handleCommand(upd)
		return
	}
	r.handleSQL(upd)
}

func (r *Router) handleCommand(upd tgbotapi.Update) {
	cid := upd.Message.Chat.ID
	switch upd.Message.Command() {
	case "start":
		r.send(cid, "Send me a SQL Server stored procedure — I'll return the PostgreSQL function.\nCommands: /health, /engine")
	case "health":
		r.send(cid, "✅ OK")
	case "engine":
		r.send(cid, r.switchEngine(cid, upd.Message.Text))
	default:
		r.send(cid, "Unknown command")
	}
}

// switchEngine handles "/engine [name [model]]" and returns the reply text.
// With no arguments it reports the current selection; a second argument
// rebinds the chosen engine to that model for this chat.
func (r *Router) switchEngine(cid int64, text string) string {
	args := strings.Fields(strings.TrimSpace(strings.TrimPrefix(text, "/engine")))
	if len(args) == 0 {
		cur := r.engineFor(cid)
		name := "none"
		if cur != nil {
			name = cur.Name() + " (" + cur.GetModel() + ")"
		}
		return "Current engine: " + name + "\nUsage:\n/engine groq [model]\n/engine gemini [model]"
	}
	eng, err := r.Engs.GetEngine(strings.ToLower(args[0]))
	if err != nil {
		return "Unknown engine. Available: groq | gemini"
	}
	if len(args) > 1 {
		sw, ok := eng.(llm.ModelSwitcher)
		if !ok {
			return "Engine " + eng.Name() + " does not support a model override"
		}
		eng = sw.WithModel(args[1])
	}
	r.mu.Lock()
	if r.byChatEn == nil {
		r.byChatEn = make(map[int64]llm.Engine)
	}
	r.byChatEn[cid] = eng
	r.mu.Unlock()
	return "OK, switching to: " + eng.Name() + " (" + eng.GetModel() + ")"
}

func (r *Router) engineFor(cid int64) llm.Engine {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.byChatEn[cid]; ok {
		return e
	}
	return r.Engs.Default()
}

// handleSQL treats any plain text message as raw T-SQL: one message, one
// conversion, same contract as the web form.
func (r *Router) handleSQL(upd tgbotapi.Update) {
	cid := upd.Message.Chat.ID
	raw := upd.Message.Text
	if strings.TrimSpace(raw) == "" {
		r.send(cid, convert.MsgEmptyInput)
		return
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	engine := r.engineFor(cid)
	conv := r.Conv
	if engine != nil {
		conv = conv.WithEngine(engine)
	}
	out := conv.Convert(ctx, raw)

	if r.Repo != nil {
		name, model := "none", ""
		if engine != nil {
			name, model = engine.Name(), engine.GetModel()
		}
		if err := r.Repo.Insert(ctx, name, model, store.HashInput(raw), convert.CountWarnings(out)); err != nil {
			log.Printf("audit insert: %v", err)
		}
	}

	r.sendChunks(cid, out)
}
