package service

import (
	"context"
	"log/slog"
	"time"

	"fairplay10x/internal/model"
)

// NotificationRepository читает и отмечает очередь уведомлений.
type NotificationRepository interface {
	NotificationQueue
	ClaimPending(ctx context.Context, limit int) ([]model.Notification, error)
	MarkSent(ctx context.Context, ids []string, at time.Time) error
}

// Notifier доставляет одно уведомление.
type Notifier interface {
	Notify(ctx context.Context, n model.Notification) error
}

// LogNotifier пишет уведомления в журнал.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier создаёт LogNotifier.
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify реализует Notifier.
func (n *LogNotifier) Notify(ctx context.Context, item model.Notification) error {
	n.log.InfoContext(ctx, "notification",
		slog.String("id", item.ID),
		slog.String("user_id", item.UserID),
		slog.String("event_id", item.EventID),
		slog.String("kind", string(item.Kind)),
		slog.String("payload", string(item.Payload)),
	)
	return nil
}

// NotificationService отправляет уведомления из очереди.
type NotificationService struct {
	tm       TransactionManager
	repo     NotificationRepository
	notifier Notifier
	log      *slog.Logger
}

// NewNotificationService создаёт сервис уведомлений.
func NewNotificationService(tm TransactionManager, repo NotificationRepository, notifier Notifier, log *slog.Logger) *NotificationService {
	return &NotificationService{tm: tm, repo: repo, notifier: notifier, log: log}
}

// DispatchPending отправляет до limit уведомлений и возвращает число отправленных.
// Неотправленные остаются в очереди до следующего запуска.
func (s *NotificationService) DispatchPending(ctx context.Context, limit int) (int, error) {
	sent := 0
	err := s.tm.RunInTransaction(ctx, func(ctx context.Context) error {
		items, err := s.repo.ClaimPending(ctx, limit)
		if err != nil {
			return errInternal("failed to claim notifications", err)
		}

		ids := make([]string, 0, len(items))
		for _, n := range items {
			if err := s.notifier.Notify(ctx, n); err != nil {
				s.log.Warn("notification delivery failed",
					slog.String("id", n.ID),
					slog.String("error", err.Error()),
				)
				continue
			}
			ids = append(ids, n.ID)
		}

		if err := s.repo.MarkSent(ctx, ids, time.Now().UTC()); err != nil {
			return errInternal("failed to mark notifications sent", err)
		}
		sent = len(ids)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return sent, nil
}
