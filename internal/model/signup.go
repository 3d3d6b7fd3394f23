package model

import "time"

// SignupStatus описывает жизненный цикл записи на событие.
type SignupStatus string

const (
	SignupStatusPending   SignupStatus = "pending"
	SignupStatusConfirmed SignupStatus = "confirmed"
	SignupStatusWithdrawn SignupStatus = "withdrawn"
)

// Valid сообщает, является ли статус известным.
func (s SignupStatus) Valid() bool {
	return s == SignupStatusPending || s == SignupStatusConfirmed || s == SignupStatusWithdrawn
}

// EventSignup связывает игрока с событием.
type EventSignup struct {
	ID                   string       `json:"id"`
	EventID              string       `json:"event_id"`
	PlayerID             string       `json:"player_id"`
	Status               SignupStatus `json:"status"`
	SignupDate           time.Time    `json:"signup_date"`
	ResignationTimestamp *time.Time   `json:"resignation_timestamp,omitempty"`
	Player               *Player      `json:"player,omitempty"`
}
