package model

import (
	"errors"
	"time"
)

// DrawStatus описывает состояние жеребьёвки: черновик или утверждённые составы.
type DrawStatus string

const (
	DrawStatusDraft     DrawStatus = "draft"
	DrawStatusConfirmed DrawStatus = "confirmed"
)

// ErrDrawConfirmed возвращается при попытке изменить утверждённые составы.
var ErrDrawConfirmed = errors.New("draw already confirmed")

// Draw хранит результат жеребьёвки события.
type Draw struct {
	EventID         string          `json:"event_id"`
	TeamCount       int             `json:"team_count"`
	Status          DrawStatus      `json:"status"`
	Version         int64           `json:"version"`
	Teams           []TeamViewModel `json:"teams"`
	BalanceAchieved bool            `json:"balance_achieved"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	ConfirmedAt     *time.Time      `json:"confirmed_at,omitempty"`
}

// IsConfirmed сообщает, утверждены ли составы.
func (d *Draw) IsConfirmed() bool {
	return d.Status == DrawStatusConfirmed
}

// Confirm переводит черновик в утверждённое состояние. Переход необратим.
func (d *Draw) Confirm(at time.Time) error {
	if d.IsConfirmed() {
		return ErrDrawConfirmed
	}
	d.Status = DrawStatusConfirmed
	d.ConfirmedAt = &at
	d.UpdatedAt = at
	return nil
}

// Assignments возвращает полный список назначений по текущим составам.
func (d *Draw) Assignments() []TeamAssignment {
	res := make([]TeamAssignment, 0)
	for _, t := range d.Teams {
		for _, p := range t.Players {
			res = append(res, TeamAssignment{SignupID: p.SignupID, TeamNumber: t.TeamNumber, TeamColor: t.TeamColor})
		}
	}
	return res
}

// SignupIDs возвращает идентификаторы всех записей в составах.
func (d *Draw) SignupIDs() []string {
	res := make([]string, 0)
	for _, t := range d.Teams {
		for _, p := range t.Players {
			res = append(res, p.SignupID)
		}
	}
	return res
}
