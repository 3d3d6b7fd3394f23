package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"fairplay10x/internal/draw"
	"fairplay10x/internal/model"
	"fairplay10x/internal/repository"
)

// PlayerRepository описывает контракт репозитория игроков.
type PlayerRepository interface {
	Create(ctx context.Context, p model.Player) (model.Player, error)
	GetByID(ctx context.Context, id string) (model.Player, error)
	List(ctx context.Context, f model.PlayerFilter) ([]model.Player, error)
	Update(ctx context.Context, p model.Player) (model.Player, error)
	SoftDelete(ctx context.Context, id string, at time.Time) error
	Count(ctx context.Context) (int, error)
}

// PlayerService управляет карточками игроков.
type PlayerService struct {
	repo PlayerRepository
}

// NewPlayerService создаёт сервис игроков.
func NewPlayerService(repo PlayerRepository) *PlayerService {
	return &PlayerService{repo: repo}
}

func validatePlayer(p model.Player) error {
	if strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == "" {
		return ErrBadRequest("first_name and last_name are required")
	}
	if !p.Position.Valid() {
		return ErrBadRequest("position must be one of forward, midfielder, defender, goalkeeper")
	}
	if p.SkillRate != nil && (*p.SkillRate < model.MinSkillRate || *p.SkillRate > model.MaxSkillRate) {
		return ErrBadRequest("skill_rate must be between 1 and 10")
	}
	if p.DateOfBirth != nil && p.DateOfBirth.After(time.Now()) {
		return ErrBadRequest("date_of_birth must be in the past")
	}
	return nil
}

// Create создаёт игрока.
func (s *PlayerService) Create(ctx context.Context, p model.Player) (model.Player, error) {
	if err := validatePlayer(p); err != nil {
		return model.Player{}, err
	}
	p.ID = uuid.NewString()
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return model.Player{}, errInternal("failed to create player", err)
	}
	return created, nil
}

// Get возвращает игрока; оценка видна только администратору.
func (s *PlayerService) Get(ctx context.Context, id string, viewer model.Viewer) (model.Player, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPlayerNotFound) {
			return model.Player{}, ErrNotFound("player not found")
		}
		return model.Player{}, errInternal("failed to get player", err)
	}
	return draw.ProjectPlayer(p, draw.CapabilitiesFor(viewer.Role)), nil
}

// List возвращает игроков с учётом видимости оценок.
func (s *PlayerService) List(ctx context.Context, f model.PlayerFilter, viewer model.Viewer) ([]model.Player, error) {
	if f.Position != "" && !f.Position.Valid() {
		return nil, ErrBadRequest("unknown position")
	}
	players, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, errInternal("failed to list players", err)
	}
	caps := draw.CapabilitiesFor(viewer.Role)
	for i := range players {
		players[i] = draw.ProjectPlayer(players[i], caps)
	}
	return players, nil
}

// Update обновляет игрока. Оценку может менять только администратор:
// для остальных ролей сохраняется прежнее значение.
func (s *PlayerService) Update(ctx context.Context, p model.Player, viewer model.Viewer) (model.Player, error) {
	if err := validatePlayer(p); err != nil {
		return model.Player{}, err
	}

	current, err := s.repo.GetByID(ctx, p.ID)
	if err != nil {
		if errors.Is(err, repository.ErrPlayerNotFound) {
			return model.Player{}, ErrNotFound("player not found")
		}
		return model.Player{}, errInternal("failed to get player", err)
	}
	if viewer.Role != model.RoleAdmin {
		p.SkillRate = current.SkillRate
	}

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		if errors.Is(err, repository.ErrPlayerNotFound) {
			return model.Player{}, ErrNotFound("player not found")
		}
		return model.Player{}, errInternal("failed to update player", err)
	}
	return draw.ProjectPlayer(updated, draw.CapabilitiesFor(viewer.Role)), nil
}

// Delete мягко удаляет игрока.
func (s *PlayerService) Delete(ctx context.Context, id string) error {
	if err := s.repo.SoftDelete(ctx, id, time.Now().UTC()); err != nil {
		if errors.Is(err, repository.ErrPlayerNotFound) {
			return ErrNotFound("player not found")
		}
		return errInternal("failed to delete player", err)
	}
	return nil
}
