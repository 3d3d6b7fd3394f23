package repository

import (
	"context"
	"fmt"
	"time"

	"fairplay10x/internal/model"

	"github.com/jackc/pgx/v5"
)

// NotificationRepo — очередь уведомлений (outbox) в PostgreSQL.
type NotificationRepo struct {
	db *Postgres
}

// NewNotificationRepo создаёт новый экземпляр NotificationRepo.
func NewNotificationRepo(db *Postgres) *NotificationRepo {
	return &NotificationRepo{db: db}
}

// Enqueue добавляет уведомления в очередь.
func (r *NotificationRepo) Enqueue(ctx context.Context, items []model.Notification) error {
	if len(items) == 0 {
		return nil
	}
	q := r.db.GetQueryExecutor(ctx)

	batch := &pgx.Batch{}
	for _, n := range items {
		batch.Queue(`
INSERT INTO notifications (id, user_id, event_id, kind, payload)
VALUES ($1, $2, $3, $4, $5)
`, n.ID, n.UserID, n.EventID, string(n.Kind), n.Payload)
	}
	br := q.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("enqueue notifications: %w", err)
	}
	return nil
}

// ClaimPending возвращает до limit неотправленных уведомлений, блокируя их строки
// от параллельных обработчиков до конца транзакции.
func (r *NotificationRepo) ClaimPending(ctx context.Context, limit int) ([]model.Notification, error) {
	q := r.db.GetQueryExecutor(ctx)
	rows, err := q.Query(ctx, `
SELECT id, user_id, event_id, kind, payload, created_at
FROM notifications
WHERE sent_at IS NULL
ORDER BY created_at
LIMIT $1
FOR UPDATE SKIP LOCKED`, limit)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	defer rows.Close()

	res := make([]model.Notification, 0)
	for rows.Next() {
		var n model.Notification
		var kind string
		var eventID *string
		if err := rows.Scan(&n.ID, &n.UserID, &eventID, &kind, &n.Payload, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		if eventID != nil {
			n.EventID = *eventID
		}
		n.Kind = model.NotificationKind(kind)
		res = append(res, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return res, nil
}

// MarkSent помечает уведомления отправленными.
func (r *NotificationRepo) MarkSent(ctx context.Context, ids []string, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	q := r.db.GetQueryExecutor(ctx)
	if _, err := q.Exec(ctx, `UPDATE notifications SET sent_at = $2 WHERE id = ANY($1::uuid[])`, ids, at); err != nil {
		return fmt.Errorf("mark notifications sent: %w", err)
	}
	return nil
}
