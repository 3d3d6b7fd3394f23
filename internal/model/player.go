// Package model содержит доменные структуры игроков, пользователей, событий, записей и составов.
package model

import "time"

// Position описывает позицию игрока на поле.
type Position string

const (
	PositionForward    Position = "forward"
	PositionMidfielder Position = "midfielder"
	PositionDefender   Position = "defender"
	PositionGoalkeeper Position = "goalkeeper"
)

// Positions перечисляет все допустимые позиции в порядке отображения.
var Positions = []Position{PositionForward, PositionMidfielder, PositionDefender, PositionGoalkeeper}

// Valid сообщает, является ли позиция одной из известных.
func (p Position) Valid() bool {
	for _, known := range Positions {
		if p == known {
			return true
		}
	}
	return false
}

const (
	// MinSkillRate и MaxSkillRate ограничивают оценку умений игрока.
	MinSkillRate = 1
	MaxSkillRate = 10
)

// Player описывает игрока. SkillRate видит только администратор.
type Player struct {
	ID          string     `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Position    Position   `json:"position"`
	SkillRate   *int       `json:"skill_rate,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// PlayerFilter задаёт параметры выборки списка игроков.
type PlayerFilter struct {
	Position Position
	Search   string
	Limit    int
	Offset   int
}
