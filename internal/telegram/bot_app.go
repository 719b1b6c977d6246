package telegram

import (
	"context"
	"sync"

	"github.com/Vovarama1992/avia_link_bot/internal/config"
	"github.com/Vovarama1992/avia_link_bot/internal/responder"
	"go.uber.org/zap"
)

type Responder interface {
	Respond(text string) responder.Reply
	Processing() string
}

// Transcriber возвращает "" при любой неудаче распознавания.
type Transcriber interface {
	Transcribe(ctx context.Context, ogg []byte) string
}

type BotApp struct {
	gateway     Gateway
	responder   Responder
	transcriber Transcriber
	texts       config.Texts
	webAppURL   string
	log         *zap.Logger

	wg sync.WaitGroup
}

func NewBotApp(
	gateway Gateway,
	resp Responder,
	transcriber Transcriber,
	texts config.Texts,
	webAppURL string,
	log *zap.Logger,
) *BotApp {
	if log == nil {
		log = zap.NewNop()
	}
	return &BotApp{
		gateway:     gateway,
		responder:   resp,
		transcriber: transcriber,
		texts:       texts,
		webAppURL:   webAppURL,
		log:         log,
	}
}
