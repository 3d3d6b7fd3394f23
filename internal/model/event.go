package model

import "time"

// EventStatus описывает состояние события.
type EventStatus string

const (
	EventStatusActive    EventStatus = "active"
	EventStatusCompleted EventStatus = "completed"
)

const (
	// MinTeamCount и MaxTeamCount ограничивают число команд в жеребьёвке.
	MinTeamCount = 2
	MaxTeamCount = 10
	// MinSignupsForDraw — минимальное число записей, при котором разрешена жеребьёвка.
	MinSignupsForDraw = 4
)

// Event описывает запланированную встречу.
type Event struct {
	ID                  string      `json:"id"`
	Name                string      `json:"name"`
	Slug                string      `json:"slug"`
	Location            string      `json:"location"`
	EventDatetime       time.Time   `json:"event_datetime"`
	MaxPlaces           int         `json:"max_places"`
	CurrentSignupsCount int         `json:"current_signups_count"`
	PreferredTeamCount  int         `json:"preferred_team_count"`
	Status              EventStatus `json:"status"`
	OrganizerID         string      `json:"organizer_id"`
	TeamsConfirmedAt    *time.Time  `json:"teams_confirmed_at,omitempty"`
	ConfirmedTeamCount  *int        `json:"confirmed_team_count,omitempty"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
	DeletedAt           *time.Time  `json:"deleted_at,omitempty"`
}

// IsFull сообщает, заняты ли все места.
func (e Event) IsFull() bool {
	return e.CurrentSignupsCount >= e.MaxPlaces
}

// TeamsConfirmed сообщает, утверждены ли составы на событие.
func (e Event) TeamsConfirmed() bool {
	return e.TeamsConfirmedAt != nil
}

// EventFilter задаёт параметры выборки событий.
type EventFilter struct {
	Status   EventStatus
	Upcoming bool
	Limit    int
	Offset   int
}
