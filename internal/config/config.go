package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrMissingToken     = errors.New("BOT_TOKEN is not set")
	ErrMissingWebAppURL = errors.New("WEB_APP_URL is not set")
)

// провайдеры распознавания речи
const (
	STTWhisper  = "whisper"
	STTDeepgram = "deepgram"
	STTGoogle   = "google"
	STTNone     = "none"
)

type Config struct {
	BotToken  string
	WebAppURL string
	Port      string

	STTProvider       string
	OpenAIKey         string
	DeepgramKey       string
	GoogleCredentials string
	STTTimeout        time.Duration
	FFmpegPath        string

	AdminChatID int64
	TextsFile   string
	Debug       bool
}

// Load читает .env (если есть) и переменные окружения.
// Без токена бота и адреса веб-приложения запускаться нельзя.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:          strings.TrimSpace(os.Getenv("BOT_TOKEN")),
		WebAppURL:         strings.TrimSpace(os.Getenv("WEB_APP_URL")),
		Port:              getenv("PORT", "8080"),
		STTProvider:       strings.ToLower(getenv("STT_PROVIDER", STTWhisper)),
		OpenAIKey:         os.Getenv("OPENAI_API_KEY"),
		DeepgramKey:       os.Getenv("DEEPGRAM_API_KEY"),
		GoogleCredentials: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		STTTimeout:        30 * time.Second,
		FFmpegPath:        getenv("FFMPEG_PATH", "ffmpeg"),
		TextsFile:         os.Getenv("TEXTS_FILE"),
	}

	if cfg.BotToken == "" {
		return nil, ErrMissingToken
	}
	if cfg.WebAppURL == "" {
		return nil, ErrMissingWebAppURL
	}

	switch cfg.STTProvider {
	case STTWhisper, STTDeepgram, STTGoogle, STTNone:
	default:
		return nil, fmt.Errorf("unknown STT_PROVIDER %q", cfg.STTProvider)
	}

	if v := os.Getenv("STT_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("parse STT_TIMEOUT: %w", err)
		}
		cfg.STTTimeout = d
	}

	if v := os.Getenv("ADMIN_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse ADMIN_CHAT_ID: %w", err)
		}
		cfg.AdminChatID = id
	}

	if v := os.Getenv("BOT_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("parse BOT_DEBUG: %w", err)
		}
		cfg.Debug = debug
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
