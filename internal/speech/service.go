package speech

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

// Service: распознавание голосовых "по возможности": при любой ошибке
// возвращает пустую строку, ошибку только логирует. Повторов нет.
type Service struct {
	transcoder Transcoder
	stt        STTClient
	notifier   Notifier
	timeout    time.Duration
	log        *zap.Logger
}

func NewService(transcoder Transcoder, stt STTClient, notifier Notifier, timeout time.Duration, log *zap.Logger) *Service {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		transcoder: transcoder,
		stt:        stt,
		notifier:   notifier,
		timeout:    timeout,
		log:        log,
	}
}

func (s *Service) Transcribe(ctx context.Context, ogg []byte) string {
	if len(ogg) == 0 {
		s.log.Warn("[stt] empty voice file")
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	s.log.Info("[stt] start", zap.String("size", humanize.Bytes(uint64(len(ogg)))))

	wav, err := s.transcoder.ToWAV(ctx, ogg)
	if err != nil {
		s.fail(ctx, "transcode", err)
		return ""
	}

	text, err := s.stt.Transcribe(ctx, wav)
	switch {
	case errors.Is(err, ErrEmptyTranscript):
		s.log.Info("[stt] speech not recognized", zap.Duration("took", time.Since(start)))
		return ""
	case errors.Is(err, ErrDisabled):
		s.log.Warn("[stt] recognition disabled, skipping voice")
		return ""
	case err != nil:
		s.fail(ctx, "recognize", err)
		return ""
	}

	text = strings.TrimSpace(text)
	s.log.Info("[stt] done",
		zap.Duration("took", time.Since(start)),
		zap.Int("chars", len([]rune(text))),
	)
	return text
}

// fail: сбой сервиса (не пустая речь): лог + уведомление админу.
func (s *Service) fail(ctx context.Context, stage string, err error) {
	s.log.Error("[stt] "+stage+" fail", zap.Error(err))
	if s.notifier == nil {
		return
	}
	if nerr := s.notifier.Notify(ctx, err, fmt.Sprintf("Ошибка распознавания голоса (%s)", stage)); nerr != nil {
		s.log.Warn("[stt] notify fail", zap.Error(nerr))
	}
}
