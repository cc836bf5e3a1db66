// Package config reads the bot settings from the environment, after loading
// an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const DefaultPort = "10000"

var ErrMissingToken = errors.New("BOT_TOKEN is not set")

type Config struct {
	BotToken string
	// AdminID is the reviewer chat. Zero when unset.
	AdminID int64

	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string

	Port string

	FirebaseKeyPath     string
	FirebaseDatabaseURL string

	LogLevel  zerolog.Level
	LogPretty bool
}

// Load reads the configuration. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		BotToken:            env("BOT_TOKEN"),
		GeminiAPIKey:        env("GEMINI_API_KEY"),
		GeminiModel:         env("GEMINI_MODEL"),
		OpenAIAPIKey:        env("OPENAI_API_KEY"),
		OpenAIModel:         env("OPENAI_MODEL"),
		Port:                env("PORT"),
		FirebaseKeyPath:     env("FIREBASE_SERVICE_ACCOUNT_KEY_PATH"),
		FirebaseDatabaseURL: env("FIREBASE_DATABASE_URL"),
		LogLevel:            zerolog.InfoLevel,
	}
	if cfg.BotToken == "" {
		return nil, ErrMissingToken
	}
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}

	if raw := env("ADMIN_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse ADMIN_ID %q: %w", raw, err)
		}
		cfg.AdminID = id
	}

	if raw := env("LOG_LEVEL"); raw != "" {
		lvl, err := zerolog.ParseLevel(strings.ToLower(raw))
		if err != nil {
			return nil, fmt.Errorf("parse LOG_LEVEL %q: %w", raw, err)
		}
		cfg.LogLevel = lvl
	}
	if raw := env("LOG_PRETTY"); raw != "" {
		pretty, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("parse LOG_PRETTY %q: %w", raw, err)
		}
		cfg.LogPretty = pretty
	}
	return cfg, nil
}

// UseFirebase reports whether both Firebase settings are present.
func (c *Config) UseFirebase() bool {
	return c.FirebaseKeyPath != "" && c.FirebaseDatabaseURL != ""
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
