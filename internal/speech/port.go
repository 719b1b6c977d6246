package speech

import (
	"context"
	"errors"
)

const (
	Language       = "ru"
	LanguageRegion = "ru-RU"
)

var (
	// речь не разобрана: сервис ответил, но текста нет
	ErrEmptyTranscript = errors.New("empty transcript")
	// провайдер распознавания не настроен
	ErrDisabled = errors.New("speech recognition disabled")
)

type STTClient interface {
	Transcribe(ctx context.Context, wav []byte) (string, error) // голос → текст
}

// Transcoder переводит голосовое из Telegram (ogg/opus) в wav 16 kHz mono.
type Transcoder interface {
	ToWAV(ctx context.Context, ogg []byte) ([]byte, error)
}

type Notifier interface {
	Notify(ctx context.Context, err error, details string) error
}
