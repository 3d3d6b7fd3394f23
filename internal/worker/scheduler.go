// Package worker запускает фоновые задачи сервиса по расписанию.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// EventCompleter закрывает прошедшие события.
type EventCompleter interface {
	CompletePastEvents(ctx context.Context) (int64, error)
}

// NotificationDispatcher отправляет уведомления из очереди.
type NotificationDispatcher interface {
	DispatchPending(ctx context.Context, limit int) (int, error)
}

// Config задаёт интервалы задач.
type Config struct {
	EventSweepInterval    time.Duration
	NotificationInterval  time.Duration
	NotificationBatchSize int
	JobTimeout            time.Duration
}

// Scheduler оборачивает gocron и держит задачи FairPlay10X.
type Scheduler struct {
	sched         gocron.Scheduler
	events        EventCompleter
	notifications NotificationDispatcher
	cfg           Config
	log           *slog.Logger
}

// NewScheduler регистрирует задачи, но не запускает их.
func NewScheduler(events EventCompleter, notifications NotificationDispatcher, cfg Config, log *slog.Logger) (*Scheduler, error) {
	sched, err := gocron.NewScheduler(gocron.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	if cfg.JobTimeout == 0 {
		cfg.JobTimeout = time.Minute
	}

	s := &Scheduler{
		sched:         sched,
		events:        events,
		notifications: notifications,
		cfg:           cfg,
		log:           log,
	}
	return s, nil
}

// Start регистрирует задачи и запускает планировщик. Задачи получают ctx
// и прекращают работу при его отмене.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.sched.NewJob(
		gocron.DurationJob(s.cfg.EventSweepInterval),
		gocron.NewTask(func() { s.CompleteEvents(ctx) }),
		gocron.WithName("complete_past_events"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	); err != nil {
		return fmt.Errorf("register complete_past_events: %w", err)
	}

	if _, err := s.sched.NewJob(
		gocron.DurationJob(s.cfg.NotificationInterval),
		gocron.NewTask(func() { s.DispatchNotifications(ctx) }),
		gocron.WithName("dispatch_notifications"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	); err != nil {
		return fmt.Errorf("register dispatch_notifications: %w", err)
	}

	s.sched.Start()
	s.log.Info("scheduler started",
		slog.Duration("event_sweep_interval", s.cfg.EventSweepInterval),
		slog.Duration("notification_interval", s.cfg.NotificationInterval),
	)
	return nil
}

// Shutdown останавливает планировщик и ждёт завершения текущих задач.
func (s *Scheduler) Shutdown() error {
	return s.sched.Shutdown()
}

// CompleteEvents выполняет один проход закрытия прошедших событий.
func (s *Scheduler) CompleteEvents(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.JobTimeout)
	defer cancel()

	n, err := s.events.CompletePastEvents(ctx)
	if err != nil {
		s.log.Error("complete past events failed", slog.Any("err", err))
		return
	}
	if n > 0 {
		s.log.Info("past events completed", slog.Int64("count", n))
	}
}

// DispatchNotifications выполняет один проход отправки уведомлений.
func (s *Scheduler) DispatchNotifications(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.JobTimeout)
	defer cancel()

	n, err := s.notifications.DispatchPending(ctx, s.cfg.NotificationBatchSize)
	if err != nil {
		s.log.Error("dispatch notifications failed", slog.Any("err", err))
		return
	}
	if n > 0 {
		s.log.Info("notifications sent", slog.Int("count", n))
	}
}
