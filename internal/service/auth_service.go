package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"fairplay10x/internal/model"
	"fairplay10x/internal/repository"
)

// MinPasswordLength — минимальная длина пароля при регистрации.
const MinPasswordLength = 8

// TokenIssuer выпускает токены доступа.
type TokenIssuer interface {
	Issue(u model.User) (string, time.Time, error)
}

// RegisterInput содержит данные для регистрации.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// LoginResult возвращается после успешного входа.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      model.User
}

// AuthService отвечает за регистрацию и вход пользователей.
type AuthService struct {
	users      UserRepository
	tokens     TokenIssuer
	bcryptCost int
}

// NewAuthService создаёт сервис аутентификации.
func NewAuthService(users UserRepository, tokens TokenIssuer, bcryptCost int) *AuthService {
	return &AuthService{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

// Register создаёт учётную запись со статусом pending и ролью player.
// Войти можно только после подтверждения администратором.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (model.User, error) {
	in.Email = strings.TrimSpace(in.Email)
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return model.User{}, ErrBadRequest("email is invalid")
	}
	if len(in.Password) < MinPasswordLength {
		return model.User{}, ErrBadRequest("password is too short")
	}
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return model.User{}, ErrBadRequest("first_name and last_name are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return model.User{}, errInternal("failed to hash password", err)
	}

	user, err := s.users.Create(ctx, model.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Role:         model.RolePlayer,
		Status:       model.UserStatusPending,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return model.User{}, ErrDomain("EMAIL_TAKEN", "email is already registered")
		}
		return model.User{}, errInternal("failed to create user", err)
	}
	return user, nil
}

// Login проверяет пароль и выпускает токен.
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if email == "" || password == "" {
		return LoginResult{}, ErrBadRequest("email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return LoginResult{}, ErrUnauthorized("invalid credentials")
		}
		return LoginResult{}, errInternal("failed to get user", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return LoginResult{}, ErrUnauthorized("invalid credentials")
	}
	if user.Status != model.UserStatusApproved {
		return LoginResult{}, ErrForbidden("account is waiting for approval")
	}

	token, expires, err := s.tokens.Issue(user)
	if err != nil {
		return LoginResult{}, errInternal("failed to issue token", err)
	}
	return LoginResult{Token: token, ExpiresAt: expires, User: user}, nil
}
