package telegram

import (
	"context"
	"strings"

	"github.com/Vovarama1992/avia_link_bot/internal/config"
	"github.com/dustin/go-humanize"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// handleVoice: скачать -> распознать -> дальше как текст.
// Не скачалось или не распозналось, отвечаем как на пустой текст, пользователь
// всё равно получает кнопку на форму.
func (app *BotApp) handleVoice(ctx context.Context, log *zap.Logger, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	log = log.With(zap.String("file_id", msg.Voice.FileID), zap.Int("duration", msg.Voice.Duration))
	log.Info("[voice] start")

	app.notice(ctx, log, chatID, app.texts.VoiceReceived)

	var text string
	ogg, err := app.gateway.DownloadFile(ctx, msg.Voice.FileID)
	if err != nil {
		log.Error("[voice] download fail", zap.Error(err))
	} else {
		log.Info("[voice] downloaded", zap.String("size", humanize.Bytes(uint64(len(ogg)))))
		text = app.transcriber.Transcribe(ctx, ogg)
	}

	if text != "" {
		log.Info("[voice] transcribed", zap.String("text", text))
		app.notice(ctx, log, chatID, strings.ReplaceAll(app.texts.Transcript, config.TranscriptPlaceholder, text))
	} else {
		log.Info("[voice] no transcript, falling back to blank form")
	}

	app.handleText(ctx, log, msg.Chat, text)
}
