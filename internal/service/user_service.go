package service

import (
	"context"
	"errors"
	"time"

	"fairplay10x/internal/model"
	"fairplay10x/internal/repository"
)

// UserRepository описывает контракт репозитория пользователей для бизнес-слоя.
type UserRepository interface {
	Create(ctx context.Context, u model.User) (model.User, error)
	GetByID(ctx context.Context, id string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	List(ctx context.Context, status model.UserStatus) ([]model.User, error)
	CountByStatus(ctx context.Context, status model.UserStatus) (int, error)
	SetStatus(ctx context.Context, id string, status model.UserStatus) (model.User, error)
	SetRole(ctx context.Context, id string, role model.Role) (model.User, error)
	SetPlayer(ctx context.Context, id string, playerID *string) (model.User, error)
	SoftDelete(ctx context.Context, id string, at time.Time) error
	ListByPlayerIDs(ctx context.Context, playerIDs []string) ([]model.User, error)
}

// PlayerGetter проверяет существование игрока.
type PlayerGetter interface {
	GetByID(ctx context.Context, id string) (model.Player, error)
}

// UserService содержит операции администратора над учётными записями.
type UserService struct {
	repo    UserRepository
	players PlayerGetter
}

// NewUserService создаёт новый сервис для операций над пользователями.
func NewUserService(repo UserRepository, players PlayerGetter) *UserService {
	return &UserService{repo: repo, players: players}
}

// List возвращает пользователей, опционально только с указанным статусом.
func (s *UserService) List(ctx context.Context, status model.UserStatus) ([]model.User, error) {
	if status != "" && status != model.UserStatusPending && status != model.UserStatusApproved {
		return nil, ErrBadRequest("unknown status")
	}
	users, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, errInternal("failed to list users", err)
	}
	return users, nil
}

// Get возвращает пользователя по id.
func (s *UserService) Get(ctx context.Context, id string) (model.User, error) {
	return s.wrap(s.repo.GetByID(ctx, id))
}

// Approve подтверждает учётную запись.
func (s *UserService) Approve(ctx context.Context, id string) (model.User, error) {
	return s.wrap(s.repo.SetStatus(ctx, id, model.UserStatusApproved))
}

// SetRole меняет роль пользователя. Администратор не может снять роль с самого себя.
func (s *UserService) SetRole(ctx context.Context, id string, role model.Role, viewer model.Viewer) (model.User, error) {
	if !role.Valid() {
		return model.User{}, ErrBadRequest("unknown role")
	}
	if id == viewer.UserID && role != model.RoleAdmin {
		return model.User{}, ErrDomain("SELF_DEMOTION", "admin cannot change own role")
	}
	return s.wrap(s.repo.SetRole(ctx, id, role))
}

// LinkPlayer привязывает учётную запись к игроку; пустой playerID отвязывает.
func (s *UserService) LinkPlayer(ctx context.Context, id, playerID string) (model.User, error) {
	if playerID == "" {
		return s.wrap(s.repo.SetPlayer(ctx, id, nil))
	}
	if _, err := s.players.GetByID(ctx, playerID); err != nil {
		if errors.Is(err, repository.ErrPlayerNotFound) {
			return model.User{}, ErrNotFound("player not found")
		}
		return model.User{}, errInternal("failed to get player", err)
	}
	return s.wrap(s.repo.SetPlayer(ctx, id, &playerID))
}

// Delete мягко удаляет учётную запись.
func (s *UserService) Delete(ctx context.Context, id string, viewer model.Viewer) error {
	if id == viewer.UserID {
		return ErrDomain("SELF_DELETE", "admin cannot delete own account")
	}
	if err := s.repo.SoftDelete(ctx, id, time.Now().UTC()); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrNotFound("user not found")
		}
		return errInternal("failed to delete user", err)
	}
	return nil
}

func (s *UserService) wrap(user model.User, err error) (model.User, error) {
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.User{}, ErrNotFound("user not found")
		}
		return model.User{}, errInternal("failed to access user", err)
	}
	return user, nil
}
