package error_notificator

import (
	"context"

	"go.uber.org/zap"
)

// Service: обёртка над infra. Без infra (ADMIN_CHAT_ID не задан) ошибки только логируются.
type Service struct {
	infra Notificator
	log   *zap.Logger
}

func NewService(infra Notificator, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{infra: infra, log: log}
}

func (s *Service) Notify(ctx context.Context, err error, details string) error {
	s.log.Warn("[error_notificator] "+details, zap.Error(err))
	if s.infra == nil {
		return nil
	}
	if nerr := s.infra.Notify(ctx, err, details); nerr != nil {
		s.log.Error("[error_notificator] send fail", zap.Error(nerr))
		return nerr
	}
	return nil
}
