package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"fairplay10x/internal/model"
	"fairplay10x/internal/repository"
	"fairplay10x/internal/service"
	"fairplay10x/internal/service/mocks"
)

func TestAuthService_Register(t *testing.T) {
	valid := service.RegisterInput{Email: "jan@example.com", Password: "secret123", FirstName: "Jan", LastName: "Kowalski"}

	tests := []struct {
		name       string
		in         service.RegisterInput
		setupMocks func(ur *mocks.UserRepository)
		wantCode   string
	}{
		{
			name: "Success",
			in:   valid,
			setupMocks: func(ur *mocks.UserRepository) {
				ur.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
					return u.Email == valid.Email &&
						u.Role == model.RolePlayer &&
						u.Status == model.UserStatusPending &&
						bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(valid.Password)) == nil
				})).Return(func(_ context.Context, u model.User) model.User { return u }, nil)
			},
		},
		{
			name:       "Fail: Bad email",
			in:         service.RegisterInput{Email: "not-an-email", Password: "secret123", FirstName: "A", LastName: "B"},
			setupMocks: func(ur *mocks.UserRepository) {},
			wantCode:   "BAD_REQUEST",
		},
		{
			name:       "Fail: Short password",
			in:         service.RegisterInput{Email: "a@b.pl", Password: "short", FirstName: "A", LastName: "B"},
			setupMocks: func(ur *mocks.UserRepository) {},
			wantCode:   "BAD_REQUEST",
		},
		{
			name: "Fail: Email taken",
			in:   valid,
			setupMocks: func(ur *mocks.UserRepository) {
				ur.On("Create", mock.Anything, mock.Anything).Return(model.User{}, repository.ErrEmailTaken)
			},
			wantCode: "EMAIL_TAKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ur := new(mocks.UserRepository)
			tt.setupMocks(ur)

			svc := service.NewAuthService(ur, new(mocks.TokenIssuer), bcrypt.MinCost)
			user, err := svc.Register(context.Background(), tt.in)

			if tt.wantCode != "" {
				requireAppError(t, err, tt.wantCode)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, user.ID)
				assert.Equal(t, model.UserStatusPending, user.Status)
			}
			ur.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	approved := model.User{ID: "u1", Email: "jan@example.com", Role: model.RoleOrganizer, Status: model.UserStatusApproved, PasswordHash: string(hash)}
	pending := approved
	pending.Status = model.UserStatusPending

	tests := []struct {
		name       string
		password   string
		user       model.User
		repoErr    error
		issue      bool
		wantStatus int
	}{
		{name: "Success", password: "secret123", user: approved, issue: true},
		{name: "Fail: Wrong password", password: "wrong-pass", user: approved, wantStatus: http.StatusUnauthorized},
		{name: "Fail: Unknown email", password: "secret123", repoErr: repository.ErrUserNotFound, wantStatus: http.StatusUnauthorized},
		{name: "Fail: Pending account", password: "secret123", user: pending, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ur := new(mocks.UserRepository)
			ti := new(mocks.TokenIssuer)
			ur.On("GetByEmail", mock.Anything, "jan@example.com").Return(tt.user, tt.repoErr)
			expires := time.Now().Add(time.Hour)
			if tt.issue {
				ti.On("Issue", tt.user).Return("token", expires, nil)
			}

			res, err := service.NewAuthService(ur, ti, bcrypt.MinCost).Login(context.Background(), "jan@example.com", tt.password)

			if tt.wantStatus != 0 {
				var appErr *service.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantStatus, appErr.Status)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "token", res.Token)
				assert.Equal(t, expires, res.ExpiresAt)
			}
			ti.AssertExpectations(t)
		})
	}
}
