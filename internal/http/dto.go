// Package http реализует HTTP-обработчики и DTO поверх доменных сервисов.
package http

import (
	"time"

	"fairplay10x/internal/model"
	"fairplay10x/internal/service"
)

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
	User      model.User `json:"user"`
}

type userResponse struct {
	User model.User `json:"user"`
}

type usersResponse struct {
	Users []model.User `json:"users"`
}

type setRoleRequest struct {
	Role model.Role `json:"role"`
}

type linkPlayerRequest struct {
	PlayerID string `json:"player_id"`
}

type playerRequest struct {
	FirstName   string         `json:"first_name"`
	LastName    string         `json:"last_name"`
	Position    model.Position `json:"position"`
	SkillRate   *int           `json:"skill_rate"`
	DateOfBirth *string        `json:"date_of_birth"`
}

type playerResponse struct {
	Player model.Player `json:"player"`
}

type playersResponse struct {
	Players []model.Player `json:"players"`
}

type eventRequest struct {
	Name               string    `json:"name"`
	Location           string    `json:"location"`
	EventDatetime      time.Time `json:"event_datetime"`
	MaxPlaces          int       `json:"max_places"`
	PreferredTeamCount int       `json:"preferred_team_count"`
}

type eventResponse struct {
	Event model.Event `json:"event"`
}

type eventsResponse struct {
	Events []model.Event `json:"events"`
}

type signupRequest struct {
	PlayerID string `json:"player_id"`
}

type signupStatusRequest struct {
	Status model.SignupStatus `json:"status"`
}

type signupResponse struct {
	Signup model.EventSignup `json:"signup"`
}

type signupsResponse struct {
	Signups []model.EventSignup `json:"signups"`
}

type runDrawRequest struct {
	TeamCount int `json:"team_count"`
}

type moveRequest struct {
	SignupID         string `json:"signup_id"`
	TargetTeamNumber int    `json:"target_team_number"`
	Version          int64  `json:"version"`
}

type assignmentsRequest struct {
	Assignments []model.TeamAssignment `json:"assignments"`
	Version     int64                  `json:"version"`
}

type confirmRequest struct {
	Version int64 `json:"version"`
}

type drawResponse struct {
	Draw service.DrawView `json:"draw"`
}

type moveResponse struct {
	Draw    service.DrawView `json:"draw"`
	Changed bool             `json:"changed"`
}
