package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/avia_link_bot/internal/config"
	"github.com/Vovarama1992/avia_link_bot/internal/delivery"
	"github.com/Vovarama1992/avia_link_bot/internal/error_notificator"
	"github.com/Vovarama1992/avia_link_bot/internal/responder"
	"github.com/Vovarama1992/avia_link_bot/internal/speech"
	"github.com/Vovarama1992/avia_link_bot/internal/telegram"
	"github.com/Vovarama1992/avia_link_bot/internal/textrules"
	"github.com/Vovarama1992/avia_link_bot/internal/travel"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const serviceName = "avia_link_bot"

func main() {

	// =========================================================================
	// ENV / LOGGER
	// =========================================================================

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	cfg, err := config.Load()
	if err != nil {
		baseLogger.Fatal("config", zap.Error(err))
	}

	texts, err := config.LoadTexts(cfg.TextsFile)
	if err != nil {
		baseLogger.Fatal("texts", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// =========================================================================
	// TELEGRAM
	// =========================================================================

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		baseLogger.Fatal("failed to init telegram bot", zap.Error(err))
	}
	bot.Debug = cfg.Debug
	baseLogger.Info("authorized", zap.String("bot", bot.Self.UserName))

	gateway := telegram.NewGateway(bot)

	// =========================================================================
	// ERROR NOTIFICATION
	// =========================================================================

	var errInfra error_notificator.Notificator
	if cfg.AdminChatID != 0 {
		errInfra = error_notificator.NewInfra(bot, cfg.AdminChatID, bot.Self.UserName)
	}
	errService := error_notificator.NewService(errInfra, baseLogger)

	// =========================================================================
	// SPEECH
	// =========================================================================

	stt := newSTTClient(ctx, cfg, baseLogger)
	if c, ok := stt.(interface{ Close() error }); ok {
		defer c.Close()
	}

	speechService := speech.NewService(
		speech.NewFFmpegTranscoder(cfg.FFmpegPath),
		stt,
		errService,
		cfg.STTTimeout,
		baseLogger,
	)

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	rulesRepo := textrules.NewDefaultRepo()
	extractor := travel.NewExtractor(
		travel.WithNormalizer(textrules.NewService(rulesRepo)),
	)
	links := travel.NewLinkBuilder(cfg.WebAppURL)
	resp := responder.NewResponder(extractor, links, texts, baseLogger)

	botApp := telegram.NewBotApp(gateway, resp, speechService, texts, cfg.WebAppURL, baseLogger)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	delivery.RegisterRoutes(
		r,
		delivery.NewParseHandler(resp, zl),
		delivery.NewTextRuleHandler(rulesRepo),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Log(logger.LogEntry{
			Level:   "info",
			Message: "listening at " + srv.Addr,
			Service: serviceName,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("server error", zap.Error(err))
		}
	}()

	// =========================================================================
	// POLLING
	// =========================================================================

	updates, err := telegram.StartPolling(bot)
	if err != nil {
		baseLogger.Fatal("failed to start polling", zap.Error(err))
	}

	go func() {
		<-ctx.Done()
		bot.StopReceivingUpdates()
	}()

	botApp.Run(ctx, updates)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Warn("server shutdown", zap.Error(err))
	}
}

// newSTTClient выбирает провайдера распознавания. Нет ключа, бот работает,
// но голосовые всегда ведут на пустую форму.
func newSTTClient(ctx context.Context, cfg *config.Config, log *zap.Logger) speech.STTClient {
	switch cfg.STTProvider {
	case config.STTWhisper:
		if cfg.OpenAIKey != "" {
			return speech.NewWhisperClient(cfg.OpenAIKey, "")
		}
	case config.STTDeepgram:
		if cfg.DeepgramKey != "" {
			return speech.NewDeepgramClient(cfg.DeepgramKey, "")
		}
	case config.STTGoogle:
		c, err := speech.NewGoogleClient(ctx, cfg.GoogleCredentials)
		if err == nil {
			return c
		}
		log.Warn("google speech init failed", zap.Error(err))
	case config.STTNone:
		return speech.DisabledClient{}
	}

	log.Warn("speech recognition disabled", zap.String("provider", cfg.STTProvider))
	return speech.DisabledClient{}
}
