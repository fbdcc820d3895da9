package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	GroqAPIKey  string
	GroqModel   string
	GroqBaseURL string

	GeminiAPIKey string
	GeminiModel  string

	// Upper bound for a single translation round trip.
	LLMTimeoutSeconds int

	// Optional: when empty the conversion audit log is disabled.
	DatabaseURL string

	TelegramBotToken string
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func Load() *Config {
	// Same startup convenience as a local .env file; missing file is fine.
	_ = godotenv.Load()

	return &Config{
		Port: getEnv("PORT", "8000"),

		GroqAPIKey:  os.Getenv("GROQ_API_KEY"),
		GroqModel:   getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		GroqBaseURL: getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		LLMTimeoutSeconds: getEnvInt("LLM_TIMEOUT_SECONDS", 90),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}
}

// Translation is available iff at least one backend credential is present.
func (c *Config) AIEnabled() bool {
	return c.GroqAPIKey != "" || c.GeminiAPIKey != ""
}
