// Package scheduler запускает фоновые задачи по cron-расписанию.
package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job — единица работы, запускаемая по расписанию.
type Job func(ctx context.Context) error

type Scheduler struct {
	cron *cron.Cron
	log  *zap.Logger
}

func NewScheduler(log *zap.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		log:  log,
	}
}

// Add регистрирует задачу на cron-spec. Контекст передаётся в задачу при
// каждом срабатывании; ошибки выполнения только логируются.
func (s *Scheduler) Add(ctx context.Context, spec, name string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.log.Info("запуск задачи", zap.String("job", name))
		if err := job(ctx); err != nil {
			s.log.Error("задача завершилась с ошибкой",
				zap.String("job", name), zap.Error(err))
			return
		}
		s.log.Info("задача выполнена", zap.String("job", name))
	})
	return err
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop останавливает планировщик и ждёт завершения запущенных задач.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
