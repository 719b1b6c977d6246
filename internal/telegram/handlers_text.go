package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (app *BotApp) handleText(ctx context.Context, log *zap.Logger, chat *tgbotapi.Chat, text string) {
	log.Info("[text] start", zap.Int("chars", len([]rune(text))))

	// === 0. "готовлю форму…" ===
	app.notice(ctx, log, chat.ID, app.responder.Processing())

	// === 1. разбор + ссылка ===
	reply := app.responder.Respond(text)
	btn := Button{Label: reply.ButtonLabel, URL: reply.ButtonURL}

	// === 2. ответ: одна повторная попытка, потом только лог ===
	err := app.sendLink(ctx, chat, reply.Text, btn)
	if err != nil {
		log.Warn("[text] reply send fail, retrying", zap.Error(err))
		err = app.sendLink(ctx, chat, reply.Text, btn)
	}
	if err != nil {
		log.Error("[text] reply dropped", zap.Error(err))
		return
	}

	log.Info("[text] done", zap.String("url", reply.ButtonURL))
}
