package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"tsql-bridge/api/internal/config"
	"tsql-bridge/api/internal/convert"
	"tsql-bridge/api/internal/handle"
	"tsql-bridge/api/internal/llm"
	"tsql-bridge/api/internal/llm/gemini"
	"tsql-bridge/api/internal/llm/groq"
	"tsql-bridge/api/internal/store"
)

func main() {
	cfg := config.Load()

	engines := &llm.Engines{}
	if cfg.GroqAPIKey != "" {
		engines.Groq = groq.New(cfg.GroqAPIKey, cfg.GroqModel).WithBaseURL(cfg.GroqBaseURL)
	}
	if cfg.GeminiAPIKey != "" {
		engines.Gemini = gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel)
	}

	// Capability flag: fixed here for the process lifetime.
	conv := convert.New(engines.Default())

	var repo *store.ConversionRepo
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("sql.Open: %v", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(1 * time.Hour)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("db.Ping: %v", err)
		}
		repo = store.NewConversionRepo(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatalf("ensure schema: %v", err)
		}
		log.Printf("audit log enabled")
	}

	h := handle.New(engines, conv, repo, time.Duration(cfg.LLMTimeoutSeconds)*time.Second)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/v1/convert", h.Convert)
	mux.HandleFunc("/v1/recent", h.Recent)
	mux.HandleFunc("/", h.Index)

	if conv.Enabled() {
		def := engines.Default()
		log.Printf("AI status: enabled (engine=%s model=%s)", def.Name(), def.GetModel())
	} else {
		log.Printf("AI status: NOT CONFIGURED — set GROQ_API_KEY (https://console.groq.com)")
	}

	addr := ":" + cfg.Port
	log.Printf("tsql-bridge listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}
