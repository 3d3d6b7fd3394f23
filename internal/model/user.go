package model

import "time"

// Role определяет права пользователя.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleOrganizer Role = "organizer"
	RolePlayer    Role = "player"
)

// Valid сообщает, является ли роль известной.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleOrganizer || r == RolePlayer
}

// CanManageEvents сообщает, может ли роль создавать события и управлять составами.
func (r Role) CanManageEvents() bool {
	return r == RoleAdmin || r == RoleOrganizer
}

// UserStatus описывает состояние учётной записи.
type UserStatus string

const (
	UserStatusPending  UserStatus = "pending"
	UserStatusApproved UserStatus = "approved"
)

// User описывает учётную запись. С игроком связан через PlayerID.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Role         Role       `json:"role"`
	Status       UserStatus `json:"status"`
	PlayerID     *string    `json:"player_id,omitempty"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// Viewer описывает того, кто выполняет запрос.
type Viewer struct {
	UserID   string
	Role     Role
	PlayerID string
}
