package http

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"fairplay10x/internal/model"
	"fairplay10x/internal/service"
)

// dateLayout задаёт формат даты рождения в запросах.
const dateLayout = "2006-01-02"

// maxPageSize ограничивает limit в списках.
const maxPageSize = 100

// ValidateID проверяет, что идентификатор является UUID.
func ValidateID(field, id string) error {
	if id == "" {
		return service.ErrBadRequest(field + " is required")
	}
	if _, err := uuid.Parse(id); err != nil {
		return service.ErrBadRequest(field + " must be a UUID")
	}
	return nil
}

// Players

// ValidatePlayerRequest проверяет тело запроса создания/изменения игрока и строит модель.
func ValidatePlayerRequest(req playerRequest) (model.Player, error) {
	p := model.Player{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Position:  req.Position,
		SkillRate: req.SkillRate,
	}
	if p.FirstName == "" {
		return p, service.ErrBadRequest("first_name is required")
	}
	if p.LastName == "" {
		return p, service.ErrBadRequest("last_name is required")
	}
	if !p.Position.Valid() {
		return p, service.ErrBadRequest("position must be one of forward, midfielder, defender, goalkeeper")
	}
	if p.SkillRate != nil && (*p.SkillRate < model.MinSkillRate || *p.SkillRate > model.MaxSkillRate) {
		return p, service.ErrBadRequest(fmt.Sprintf("skill_rate must be between %d and %d", model.MinSkillRate, model.MaxSkillRate))
	}
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		dob, err := time.Parse(dateLayout, *req.DateOfBirth)
		if err != nil {
			return p, service.ErrBadRequest("date_of_birth must be YYYY-MM-DD")
		}
		p.DateOfBirth = &dob
	}
	return p, nil
}

// Events

// ValidateEventRequest проверяет тело запроса события.
func ValidateEventRequest(req eventRequest) error {
	if req.Name == "" {
		return service.ErrBadRequest("name is required")
	}
	if req.EventDatetime.IsZero() {
		return service.ErrBadRequest("event_datetime is required")
	}
	if req.MaxPlaces < model.MinSignupsForDraw {
		return service.ErrBadRequest(fmt.Sprintf("max_places must be at least %d", model.MinSignupsForDraw))
	}
	if req.PreferredTeamCount != 0 {
		if err := ValidateTeamCount(req.PreferredTeamCount); err != nil {
			return err
		}
	}
	return nil
}

// Draw

// ValidateTeamCount проверяет диапазон числа команд.
func ValidateTeamCount(n int) error {
	if n < model.MinTeamCount || n > model.MaxTeamCount {
		return service.ErrBadRequest(fmt.Sprintf("team_count must be between %d and %d", model.MinTeamCount, model.MaxTeamCount))
	}
	return nil
}

// ValidateMoveRequest /draw/move — тело запроса
func ValidateMoveRequest(req moveRequest) error {
	if err := ValidateID("signup_id", req.SignupID); err != nil {
		return err
	}
	if req.TargetTeamNumber < 1 || req.TargetTeamNumber > model.MaxTeamCount {
		return service.ErrBadRequest("target_team_number is out of range")
	}
	if req.Version < 0 {
		return service.ErrBadRequest("version must not be negative")
	}
	return nil
}

// ValidateAssignmentsRequest /draw/assignments — тело запроса
func ValidateAssignmentsRequest(req assignmentsRequest) error {
	if len(req.Assignments) == 0 {
		return service.ErrBadRequest("assignments must not be empty")
	}
	for i, a := range req.Assignments {
		if err := ValidateID(fmt.Sprintf("assignments[%d].signup_id", i), a.SignupID); err != nil {
			return err
		}
		if a.TeamNumber < 1 || a.TeamNumber > model.MaxTeamCount {
			return service.ErrBadRequest(fmt.Sprintf("assignments[%d].team_number is out of range", i))
		}
	}
	if req.Version < 0 {
		return service.ErrBadRequest("version must not be negative")
	}
	return nil
}

// Query

func parsePage(limitRaw, offsetRaw string) (int, int, error) {
	limit, offset := 0, 0
	var err error
	if limitRaw != "" {
		if limit, err = strconv.Atoi(limitRaw); err != nil || limit < 0 || limit > maxPageSize {
			return 0, 0, service.ErrBadRequest(fmt.Sprintf("limit must be between 0 and %d", maxPageSize))
		}
	}
	if offsetRaw != "" {
		if offset, err = strconv.Atoi(offsetRaw); err != nil || offset < 0 {
			return 0, 0, service.ErrBadRequest("offset must not be negative")
		}
	}
	return limit, offset, nil
}
