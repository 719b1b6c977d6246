package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartPolling снимает вебхук вместе с накопившимися апдейтами и включает long polling.
func StartPolling(bot *tgbotapi.BotAPI) (tgbotapi.UpdatesChannel, error) {
	if _, err := bot.Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: true}); err != nil {
		return nil, fmt.Errorf("delete webhook: %w", err)
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	return bot.GetUpdatesChan(u), nil
}

// Run: главный цикл: каждый апдейт в своей горутине, чтобы медленное
// распознавание одного голосового не задерживало остальных.
// Возвращается, когда закрыт канал или отменён ctx, дождавшись начатых обработчиков.
func (app *BotApp) Run(ctx context.Context, updates <-chan tgbotapi.Update) {
	app.log.Info("[bot_loop] started")
	defer func() {
		app.wg.Wait()
		app.log.Info("[bot_loop] stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			app.wg.Add(1)
			go func() {
				defer app.wg.Done()
				app.handleUpdate(ctx, update)
			}()
		}
	}
}

func (app *BotApp) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return
	}

	log := app.log.With(
		zap.Int("update_id", update.UpdateID),
		zap.Int64("chat_id", msg.Chat.ID),
		zap.String("request_id", uuid.NewString()),
	)

	defer func() {
		if r := recover(); r != nil {
			log.Error("[bot_loop] handler panic", zap.Any("panic", r))
		}
	}()

	switch {
	case msg.IsCommand() && msg.Command() == "start":
		app.handleStart(ctx, log, msg)
	case msg.Voice != nil:
		app.handleVoice(ctx, log, msg)
	case msg.Text != "":
		app.handleText(ctx, log, msg.Chat, msg.Text)
	default:
		app.notice(ctx, log, msg.Chat.ID, app.texts.Unsupported)
	}
}

func (app *BotApp) handleStart(ctx context.Context, log *zap.Logger, msg *tgbotapi.Message) {
	log.Info("[start]")
	btn := Button{Label: app.texts.WelcomeButton, URL: app.webAppURL}
	if err := app.sendLink(ctx, msg.Chat, app.texts.Welcome, btn); err != nil {
		log.Warn("[start] send fail", zap.Error(err))
	}
}

// notice: служебное сообщение без кнопки; ошибку только логируем.
func (app *BotApp) notice(ctx context.Context, log *zap.Logger, chatID int64, text string) {
	if text == "" {
		return
	}
	if err := app.gateway.SendText(ctx, chatID, text); err != nil {
		log.Warn("[notice] send fail", zap.Error(err))
	}
}

// web_app кнопки Telegram разрешает только в личке, в группах даём обычную ссылку
func (app *BotApp) sendLink(ctx context.Context, chat *tgbotapi.Chat, text string, btn Button) error {
	if chat.IsPrivate() {
		return app.gateway.SendWebApp(ctx, chat.ID, text, btn)
	}
	return app.gateway.SendURLButton(ctx, chat.ID, text, btn)
}
