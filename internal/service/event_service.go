package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"fairplay10x/internal/model"
	"fairplay10x/internal/repository"
)

// EventRepository описывает контракт репозитория событий.
type EventRepository interface {
	Create(ctx context.Context, e model.Event) (model.Event, error)
	GetByID(ctx context.Context, id string) (model.Event, error)
	GetByIDForUpdate(ctx context.Context, id string) (model.Event, error)
	List(ctx context.Context, f model.EventFilter) ([]model.Event, error)
	Update(ctx context.Context, e model.Event) (model.Event, error)
	SoftDelete(ctx context.Context, id string, at time.Time) error
	AdjustSignupsCount(ctx context.Context, id string, delta int) error
	MarkTeamsConfirmed(ctx context.Context, id string, at time.Time, teamCount int) error
	CompletePast(ctx context.Context, now time.Time) (int64, error)
}

// EventService управляет событиями.
type EventService struct {
	repo EventRepository
}

// NewEventService создаёт сервис событий.
func NewEventService(repo EventRepository) *EventService {
	return &EventService{repo: repo}
}

func validateEvent(e model.Event) error {
	if strings.TrimSpace(e.Name) == "" {
		return ErrBadRequest("name is required")
	}
	if e.EventDatetime.IsZero() {
		return ErrBadRequest("event_datetime is required")
	}
	if e.MaxPlaces < model.MinSignupsForDraw {
		return ErrBadRequest(fmt.Sprintf("max_places must be at least %d", model.MinSignupsForDraw))
	}
	if e.PreferredTeamCount < model.MinTeamCount || e.PreferredTeamCount > model.MaxTeamCount {
		return ErrBadRequest(fmt.Sprintf("preferred_team_count must be between %d and %d", model.MinTeamCount, model.MaxTeamCount))
	}
	return nil
}

// eventSlug строит читаемый адрес события: название, дата и начало идентификатора.
func eventSlug(e model.Event) string {
	base := slug.MakeLang(fmt.Sprintf("%s %s", e.Name, e.EventDatetime.Format("2006-01-02")), "pl")
	return base + "-" + e.ID[:8]
}

// Create создаёт событие от имени viewer.
func (s *EventService) Create(ctx context.Context, e model.Event, viewer model.Viewer) (model.Event, error) {
	if e.PreferredTeamCount == 0 {
		e.PreferredTeamCount = model.MinTeamCount
	}
	if err := validateEvent(e); err != nil {
		return model.Event{}, err
	}
	if e.EventDatetime.Before(time.Now()) {
		return model.Event{}, ErrBadRequest("event_datetime must be in the future")
	}

	e.ID = uuid.NewString()
	e.Name = strings.TrimSpace(e.Name)
	e.Slug = eventSlug(e)
	e.Status = model.EventStatusActive
	e.OrganizerID = viewer.UserID

	created, err := s.repo.Create(ctx, e)
	if err != nil {
		return model.Event{}, errInternal("failed to create event", err)
	}
	return created, nil
}

// Get возвращает событие.
func (s *EventService) Get(ctx context.Context, id string) (model.Event, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return model.Event{}, ErrNotFound("event not found")
		}
		return model.Event{}, errInternal("failed to get event", err)
	}
	return e, nil
}

// List возвращает события по фильтру.
func (s *EventService) List(ctx context.Context, f model.EventFilter) ([]model.Event, error) {
	if f.Status != "" && f.Status != model.EventStatusActive && f.Status != model.EventStatusCompleted {
		return nil, ErrBadRequest("unknown status")
	}
	events, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, errInternal("failed to list events", err)
	}
	return events, nil
}

// Update меняет параметры события. Организатор может менять только свои события.
func (s *EventService) Update(ctx context.Context, e model.Event, viewer model.Viewer) (model.Event, error) {
	current, err := s.Get(ctx, e.ID)
	if err != nil {
		return model.Event{}, err
	}
	if err := canManage(current, viewer); err != nil {
		return model.Event{}, err
	}
	if err := validateEvent(e); err != nil {
		return model.Event{}, err
	}
	if e.MaxPlaces < current.CurrentSignupsCount {
		return model.Event{}, ErrBadRequest("max_places cannot be lower than current_signups_count")
	}

	updated, err := s.repo.Update(ctx, e)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return model.Event{}, ErrNotFound("event not found")
		}
		return model.Event{}, errInternal("failed to update event", err)
	}
	return updated, nil
}

// Delete мягко удаляет событие.
func (s *EventService) Delete(ctx context.Context, id string, viewer model.Viewer) error {
	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := canManage(current, viewer); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id, time.Now().UTC()); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return ErrNotFound("event not found")
		}
		return errInternal("failed to delete event", err)
	}
	return nil
}

// CompletePastEvents закрывает прошедшие события. Вызывается планировщиком.
func (s *EventService) CompletePastEvents(ctx context.Context) (int64, error) {
	n, err := s.repo.CompletePast(ctx, time.Now().UTC())
	if err != nil {
		return 0, errInternal("failed to complete past events", err)
	}
	return n, nil
}

func canManage(e model.Event, viewer model.Viewer) error {
	if viewer.Role == model.RoleAdmin {
		return nil
	}
	if viewer.Role == model.RoleOrganizer && e.OrganizerID == viewer.UserID {
		return nil
	}
	return ErrForbidden("only the event organizer or an admin can change this event")
}
