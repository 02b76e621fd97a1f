package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	notifyhandlers "russiabasket-bot/internal/notifyHandlers"
)

// Scheduler запускает плановые задания пайплайна по времени источника.
type Scheduler struct {
	cron   *cron.Cron
	notify *notifyhandlers.Handler
	log    *zap.SugaredLogger
}

func New(notify *notifyhandlers.Handler, loc *time.Location, log *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(loc)),
		notify: notify,
		log:    log,
	}
}

// Start регистрирует утреннее (ближайшие матчи) и вечернее (сыгранные)
// задания и запускает планировщик. Задания не должны пересекаться по
// расписанию: внутри каждого идёт полная замена коллекции матчей.
func (s *Scheduler) Start(ctx context.Context, morningSpec, eveningSpec string) error {
	if _, err := s.cron.AddFunc(morningSpec, func() {
		s.notify.ParseAndNotify(ctx, true)
	}); err != nil {
		return fmt.Errorf("утреннее задание: %w", err)
	}
	if _, err := s.cron.AddFunc(eveningSpec, func() {
		s.notify.ParseAndNotify(ctx, false)
	}); err != nil {
		return fmt.Errorf("вечернее задание: %w", err)
	}

	s.cron.Start()
	s.log.Infof("Планировщик запущен: утро %q, вечер %q", morningSpec, eveningSpec)
	return nil
}

// Stop останавливает планировщик, не прерывая уже идущее задание.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}
