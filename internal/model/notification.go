package model

import "time"

// NotificationKind описывает тип уведомления.
type NotificationKind string

// NotificationTeamsConfirmed отправляется игроку после утверждения составов.
const NotificationTeamsConfirmed NotificationKind = "teams_confirmed"

// Notification — запись очереди уведомлений (outbox).
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	EventID   string           `json:"event_id"`
	Kind      NotificationKind `json:"kind"`
	Payload   []byte           `json:"payload"`
	CreatedAt time.Time        `json:"created_at"`
	SentAt    *time.Time       `json:"sent_at,omitempty"`
}

// DashboardSummary — сводка для главной страницы.
type DashboardSummary struct {
	UpcomingEvents []Event       `json:"upcoming_events"`
	MySignups      []EventSignup `json:"my_signups"`
	PendingUsers   *int          `json:"pending_users,omitempty"`
	PlayersCount   int           `json:"players_count"`
}
