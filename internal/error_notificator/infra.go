package error_notificator

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Infra struct {
	bot         Sender
	adminChatID int64
	botName     string
}

func NewInfra(bot Sender, adminChatID int64, botName string) *Infra {
	return &Infra{bot: bot, adminChatID: adminChatID, botName: botName}
}

func (i *Infra) Notify(ctx context.Context, err error, details string) error {
	text := fmt.Sprintf(
		"❗ Ошибка в боте (%s)\n\nОшибка: %v\n\nДетали: %s",
		i.botName,
		err,
		details,
	)

	if _, sendErr := i.bot.Send(tgbotapi.NewMessage(i.adminChatID, text)); sendErr != nil {
		return fmt.Errorf("send admin notification: %w", sendErr)
	}
	return nil
}
