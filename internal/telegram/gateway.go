package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// голосовые в Telegram небольшие; больше, не качаем
const maxVoiceSize = 20 << 20

// Gateway: всё, что BotApp нужно от Telegram.
type Gateway interface {
	SendText(ctx context.Context, chatID int64, text string) error
	SendWebApp(ctx context.Context, chatID int64, text string, btn Button) error
	SendURLButton(ctx context.Context, chatID int64, text string, btn Button) error
	DownloadFile(ctx context.Context, fileID string) ([]byte, error)
}

type tgGateway struct {
	bot  *tgbotapi.BotAPI
	http *http.Client
}

func NewGateway(bot *tgbotapi.BotAPI) Gateway {
	return &tgGateway{
		bot:  bot,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *tgGateway) SendText(_ context.Context, chatID int64, text string) error {
	_, err := g.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (g *tgGateway) SendWebApp(_ context.Context, chatID int64, text string, btn Button) error {
	params, err := webAppMessageParams(chatID, text, btn)
	if err != nil {
		return fmt.Errorf("build web app markup: %w", err)
	}
	_, err = g.bot.MakeRequest("sendMessage", params)
	return err
}

func (g *tgGateway) SendURLButton(_ context.Context, chatID int64, text string, btn Button) error {
	_, err := g.bot.Send(urlButtonMessage(chatID, text, btn))
	return err
}

func (g *tgGateway) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := g.bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(g.bot.Token), nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: http %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxVoiceSize))
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}
