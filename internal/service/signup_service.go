package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"fairplay10x/internal/draw"
	"fairplay10x/internal/model"
	"fairplay10x/internal/repository"
)

// SignupRepository описывает контракт репозитория записей на события.
type SignupRepository interface {
	Create(ctx context.Context, s model.EventSignup) (model.EventSignup, error)
	GetByID(ctx context.Context, id string) (model.EventSignup, error)
	ListByEvent(ctx context.Context, eventID string) ([]model.EventSignup, error)
	ListActiveByPlayer(ctx context.Context, playerID string) ([]model.EventSignup, error)
	UpdateStatus(ctx context.Context, id string, status model.SignupStatus, at time.Time) (model.EventSignup, error)
	ListConfirmedMembers(ctx context.Context, eventID string) ([]model.TeamMember, error)
}

// SignupService управляет записями игроков на события.
type SignupService struct {
	tm      TransactionManager
	signups SignupRepository
	events  EventRepository
	players PlayerGetter
}

// NewSignupService создаёт сервис записей.
func NewSignupService(tm TransactionManager, signups SignupRepository, events EventRepository, players PlayerGetter) *SignupService {
	return &SignupService{tm: tm, signups: signups, events: events, players: players}
}

// SignUp записывает игрока на событие. Игрок может записать только себя;
// запись от организатора или администратора сразу подтверждена.
func (s *SignupService) SignUp(ctx context.Context, eventID, playerID string, viewer model.Viewer) (model.EventSignup, error) {
	if playerID == "" {
		playerID = viewer.PlayerID
	}
	if playerID == "" {
		return model.EventSignup{}, ErrBadRequest("player_id is required")
	}
	status := model.SignupStatusConfirmed
	if !viewer.Role.CanManageEvents() {
		if playerID != viewer.PlayerID {
			return model.EventSignup{}, ErrForbidden("players can only sign up themselves")
		}
		status = model.SignupStatusPending
	}

	if _, err := s.players.GetByID(ctx, playerID); err != nil {
		if errors.Is(err, repository.ErrPlayerNotFound) {
			return model.EventSignup{}, ErrNotFound("player not found")
		}
		return model.EventSignup{}, errInternal("failed to get player", err)
	}

	var created model.EventSignup
	err := s.tm.RunInTransaction(ctx, func(ctx context.Context) error {
		event, err := s.events.GetByIDForUpdate(ctx, eventID)
		if err != nil {
			if errors.Is(err, repository.ErrEventNotFound) {
				return ErrNotFound("event not found")
			}
			return errInternal("failed to get event", err)
		}
		if event.Status != model.EventStatusActive {
			return ErrDomain("EVENT_COMPLETED", "event is completed")
		}
		if event.TeamsConfirmed() {
			return ErrDomain("TEAMS_CONFIRMED", "teams are already confirmed")
		}
		if event.IsFull() {
			return ErrDomain("EVENT_FULL", "no places left")
		}

		created, err = s.signups.Create(ctx, model.EventSignup{
			ID:       uuid.NewString(),
			EventID:  eventID,
			PlayerID: playerID,
			Status:   status,
		})
		if err != nil {
			if errors.Is(err, repository.ErrSignupExists) {
				return ErrDomain("SIGNUP_EXISTS", "player is already signed up")
			}
			return errInternal("failed to create signup", err)
		}
		if err := s.events.AdjustSignupsCount(ctx, eventID, 1); err != nil {
			return errInternal("failed to update signups count", err)
		}
		return nil
	})
	if err != nil {
		return model.EventSignup{}, err
	}
	return created, nil
}

// UpdateStatus подтверждает запись или снимает игрока с события.
// Снятие окончательно; игрок может снять только свою запись.
func (s *SignupService) UpdateStatus(ctx context.Context, eventID, signupID string, status model.SignupStatus, viewer model.Viewer) (model.EventSignup, error) {
	if !status.Valid() || status == model.SignupStatusPending {
		return model.EventSignup{}, ErrBadRequest("status must be confirmed or withdrawn")
	}

	var updated model.EventSignup
	err := s.tm.RunInTransaction(ctx, func(ctx context.Context) error {
		event, err := s.events.GetByIDForUpdate(ctx, eventID)
		if err != nil {
			if errors.Is(err, repository.ErrEventNotFound) {
				return ErrNotFound("event not found")
			}
			return errInternal("failed to get event", err)
		}

		current, err := s.signups.GetByID(ctx, signupID)
		if err != nil {
			if errors.Is(err, repository.ErrSignupNotFound) {
				return ErrNotFound("signup not found")
			}
			return errInternal("failed to get signup", err)
		}
		if current.EventID != event.ID {
			return ErrNotFound("signup not found")
		}

		if !viewer.Role.CanManageEvents() {
			if status != model.SignupStatusWithdrawn || current.PlayerID != viewer.PlayerID {
				return ErrForbidden("players can only withdraw their own signup")
			}
		}
		if current.Status == model.SignupStatusWithdrawn {
			return ErrDomain("SIGNUP_WITHDRAWN", "signup is already withdrawn")
		}
		if current.Status == status {
			updated = current
			return nil
		}
		if event.TeamsConfirmed() {
			return ErrDomain("TEAMS_CONFIRMED", "teams are already confirmed")
		}

		updated, err = s.signups.UpdateStatus(ctx, signupID, status, time.Now().UTC())
		if err != nil {
			return errInternal("failed to update signup", err)
		}
		if status == model.SignupStatusWithdrawn {
			if err := s.events.AdjustSignupsCount(ctx, eventID, -1); err != nil {
				return errInternal("failed to update signups count", err)
			}
		}
		return nil
	})
	if err != nil {
		return model.EventSignup{}, err
	}
	return updated, nil
}

// List возвращает записи события; оценки игроков видны только администратору.
func (s *SignupService) List(ctx context.Context, eventID string, viewer model.Viewer) ([]model.EventSignup, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, ErrNotFound("event not found")
		}
		return nil, errInternal("failed to get event", err)
	}

	signups, err := s.signups.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, errInternal("failed to list signups", err)
	}
	caps := draw.CapabilitiesFor(viewer.Role)
	for i := range signups {
		if signups[i].Player != nil {
			p := draw.ProjectPlayer(*signups[i].Player, caps)
			signups[i].Player = &p
		}
	}
	return signups, nil
}
