package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"tsql-bridge/api/internal/config"
	"tsql-bridge/api/internal/convert"
	"tsql-bridge/api/internal/httpserver"
	"tsql-bridge/api/internal/llm"
	"tsql-bridge/api/internal/llm/gemini"
	"tsql-bridge/api/internal/llm/groq"
	"tsql-bridge/api/internal/store"
	"tsql-bridge/api/internal/telegram"
)

func main() {
	cfg := config.Load()

	if cfg.TelegramBotToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is empty")
	}

	engines := &llm.Engines{}
	if cfg.GroqAPIKey != "" {
		engines.Groq = groq.New(cfg.GroqAPIKey, cfg.GroqModel).WithBaseURL(cfg.GroqBaseURL)
	}
	if cfg.GeminiAPIKey != "" {
		engines.Gemini = gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel)
	}
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
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		log.Fatal(err)
	}
	bot.Debug = false
	log.Printf("authorized as @%s", bot.Self.UserName)

	router := &telegram.Router{
		Bot:     bot,
		Engs:    engines,
		Conv:    conv,
		Repo:    repo,
		Timeout: time.Duration(cfg.LLMTimeoutSeconds) * time.Second,
	}

	go func() {
		if err := httpserver.StartHTTP(":"+cfg.Port, "ok"); err != nil {
			log.Fatalf("httpserver: %v", err)
		}
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	for upd := range bot.GetUpdatesChan(u) {
		go router.HandleUpdate(upd)
	}
}
