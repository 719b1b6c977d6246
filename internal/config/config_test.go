package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var configEnv = []string{
	"BOT_TOKEN", "WEB_APP_URL", "PORT", "STT_PROVIDER", "OPENAI_API_KEY", "DEEPGRAM_API_KEY",
	"GOOGLE_APPLICATION_CREDENTIALS", "STT_TIMEOUT", "FFMPEG_PATH", "ADMIN_CHAT_ID",
	"TEXTS_FILE", "BOT_DEBUG",
}

// clearEnv обнуляет переменные конфига на время теста
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnv {
		t.Setenv(k, "")
	}
}

// TestLoad_DefaultValues проверяет значения по умолчанию
func TestLoad_DefaultValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("WEB_APP_URL", "https://example.com/app")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.BotToken != "123:abc" {
		t.Errorf("Expected BotToken=123:abc, got %s", cfg.BotToken)
	}
	if cfg.WebAppURL != "https://example.com/app" {
		t.Errorf("Expected WebAppURL, got %s", cfg.WebAppURL)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected Port=8080, got %s", cfg.Port)
	}
	if cfg.STTProvider != STTWhisper {
		t.Errorf("Expected STTProvider=whisper, got %s", cfg.STTProvider)
	}
	if cfg.STTTimeout != 30*time.Second {
		t.Errorf("Expected STTTimeout=30s, got %v", cfg.STTTimeout)
	}
	if cfg.FFmpegPath != "ffmpeg" {
		t.Errorf("Expected FFmpegPath=ffmpeg, got %s", cfg.FFmpegPath)
	}
	if cfg.AdminChatID != 0 || cfg.Debug {
		t.Errorf("Expected no admin chat and no debug, got %d %v", cfg.AdminChatID, cfg.Debug)
	}
}

// TestLoad_EnvironmentVariables проверяет чтение всех переменных
func TestLoad_EnvironmentVariables(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("WEB_APP_URL", "https://example.com/app")
	t.Setenv("PORT", "9090")
	t.Setenv("STT_PROVIDER", "Deepgram")
	t.Setenv("DEEPGRAM_API_KEY", "dg-key")
	t.Setenv("STT_TIMEOUT", "5s")
	t.Setenv("FFMPEG_PATH", "/usr/local/bin/ffmpeg")
	t.Setenv("ADMIN_CHAT_ID", "-100500")
	t.Setenv("BOT_DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Expected Port=9090, got %s", cfg.Port)
	}
	if cfg.STTProvider != STTDeepgram {
		t.Errorf("Expected STTProvider=deepgram, got %s", cfg.STTProvider)
	}
	if cfg.DeepgramKey != "dg-key" {
		t.Errorf("Expected DeepgramKey=dg-key, got %s", cfg.DeepgramKey)
	}
	if cfg.STTTimeout != 5*time.Second {
		t.Errorf("Expected STTTimeout=5s, got %v", cfg.STTTimeout)
	}
	if cfg.FFmpegPath != "/usr/local/bin/ffmpeg" {
		t.Errorf("Expected FFmpegPath, got %s", cfg.FFmpegPath)
	}
	if cfg.AdminChatID != -100500 {
		t.Errorf("Expected AdminChatID=-100500, got %d", cfg.AdminChatID)
	}
	if !cfg.Debug {
		t.Error("Expected Debug=true")
	}
}

// TestLoad_MissingRequired проверяет фатальные ошибки конфигурации
func TestLoad_MissingRequired(t *testing.T) {
	clearEnv(t)
	t.Setenv("WEB_APP_URL", "https://example.com/app")

	if _, err := Load(); !errors.Is(err, ErrMissingToken) {
		t.Errorf("Expected ErrMissingToken, got %v", err)
	}

	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("WEB_APP_URL", "   ")

	if _, err := Load(); !errors.Is(err, ErrMissingWebAppURL) {
		t.Errorf("Expected ErrMissingWebAppURL, got %v", err)
	}
}

// TestLoad_InvalidValues проверяет ошибки разбора
func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"STT_PROVIDER", "yandex"},
		{"STT_TIMEOUT", "soon"},
		{"ADMIN_CHAT_ID", "admin"},
		{"BOT_DEBUG", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("BOT_TOKEN", "123:abc")
			t.Setenv("WEB_APP_URL", "https://example.com/app")
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Errorf("Expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

// TestLoadTexts проверяет переопределение текстов из INI
func TestLoadTexts(t *testing.T) {
	texts, err := LoadTexts("")
	if err != nil {
		t.Fatalf("LoadTexts(\"\") failed: %v", err)
	}
	if texts != DefaultTexts() {
		t.Error("Expected default texts for empty path")
	}

	path := filepath.Join(t.TempDir(), "texts.ini")
	content := "[texts]\nblank = Ничего не понял\nblank_button = Открыть поиск\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write texts: %v", err)
	}

	texts, err = LoadTexts(path)
	if err != nil {
		t.Fatalf("LoadTexts failed: %v", err)
	}
	if texts.Blank != "Ничего не понял" {
		t.Errorf("Expected overridden Blank, got %q", texts.Blank)
	}
	if texts.BlankButton != "Открыть поиск" {
		t.Errorf("Expected overridden BlankButton, got %q", texts.BlankButton)
	}
	if texts.Prefilled != DefaultTexts().Prefilled {
		t.Errorf("Expected default Prefilled, got %q", texts.Prefilled)
	}

	if _, err := LoadTexts(filepath.Join(t.TempDir(), "missing.ini")); err == nil {
		t.Error("Expected error for missing file")
	}
}

// TestLoadTexts_TranscriptPlaceholder проверяет, что текст эха без %s не принимается
func TestLoadTexts_TranscriptPlaceholder(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.ini")
	if err := os.WriteFile(bad, []byte("[texts]\ntranscript = Вы сказали что-то\n"), 0o644); err != nil {
		t.Fatalf("write texts: %v", err)
	}
	if _, err := LoadTexts(bad); !errors.Is(err, ErrTranscriptPlaceholder) {
		t.Errorf("Expected ErrTranscriptPlaceholder, got %v", err)
	}

	good := filepath.Join(dir, "good.ini")
	if err := os.WriteFile(good, []byte("[texts]\ntranscript = Вы сказали: %s\n"), 0o644); err != nil {
		t.Fatalf("write texts: %v", err)
	}
	texts, err := LoadTexts(good)
	if err != nil {
		t.Fatalf("LoadTexts failed: %v", err)
	}
	if texts.Transcript != "Вы сказали: %s" {
		t.Errorf("Expected overridden Transcript, got %q", texts.Transcript)
	}
}
