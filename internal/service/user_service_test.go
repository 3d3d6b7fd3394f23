package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fairplay10x/internal/model"
	"fairplay10x/internal/repository"
	"fairplay10x/internal/service"
	"fairplay10x/internal/service/mocks"
)

func TestUserService_SetRole(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		role       model.Role
		setupMocks func(ur *mocks.UserRepository)
		wantCode   string
	}{
		{
			name:   "Success",
			userID: "u1",
			role:   model.RoleOrganizer,
			setupMocks: func(ur *mocks.UserRepository) {
				ur.On("SetRole", mock.Anything, "u1", model.RoleOrganizer).
					Return(model.User{ID: "u1", Role: model.RoleOrganizer}, nil)
			},
		},
		{
			name:       "Fail: Unknown role",
			userID:     "u1",
			role:       "captain",
			setupMocks: func(ur *mocks.UserRepository) {},
			wantCode:   "BAD_REQUEST",
		},
		{
			name:       "Fail: Self demotion",
			userID:     admin.UserID,
			role:       model.RolePlayer,
			setupMocks: func(ur *mocks.UserRepository) {},
			wantCode:   "SELF_DEMOTION",
		},
		{
			name:   "Fail: Not found",
			userID: "missing",
			role:   model.RolePlayer,
			setupMocks: func(ur *mocks.UserRepository) {
				ur.On("SetRole", mock.Anything, "missing", model.RolePlayer).
					Return(model.User{}, repository.ErrUserNotFound)
			},
			wantCode: "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ur := new(mocks.UserRepository)
			pr := new(mocks.PlayerRepository)
			tt.setupMocks(ur)

			svc := service.NewUserService(ur, pr)
			user, err := svc.SetRole(context.Background(), tt.userID, tt.role, admin)

			if tt.wantCode != "" {
				requireAppError(t, err, tt.wantCode)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.role, user.Role)
			}
			ur.AssertExpectations(t)
		})
	}
}

func TestUserService_LinkPlayer(t *testing.T) {
	t.Run("links existing player", func(t *testing.T) {
		ur := new(mocks.UserRepository)
		pr := new(mocks.PlayerRepository)
		pid := "p1"
		pr.On("GetByID", mock.Anything, pid).Return(model.Player{ID: pid}, nil)
		ur.On("SetPlayer", mock.Anything, "u1", &pid).Return(model.User{ID: "u1", PlayerID: &pid}, nil)

		user, err := service.NewUserService(ur, pr).LinkPlayer(context.Background(), "u1", pid)

		assert.NoError(t, err)
		assert.Equal(t, pid, *user.PlayerID)
	})

	t.Run("unknown player", func(t *testing.T) {
		ur := new(mocks.UserRepository)
		pr := new(mocks.PlayerRepository)
		pr.On("GetByID", mock.Anything, "nope").Return(model.Player{}, repository.ErrPlayerNotFound)

		_, err := service.NewUserService(ur, pr).LinkPlayer(context.Background(), "u1", "nope")

		requireAppError(t, err, "NOT_FOUND")
		ur.AssertNotCalled(t, "SetPlayer", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty player id unlinks", func(t *testing.T) {
		ur := new(mocks.UserRepository)
		pr := new(mocks.PlayerRepository)
		ur.On("SetPlayer", mock.Anything, "u1", (*string)(nil)).Return(model.User{ID: "u1"}, nil)

		user, err := service.NewUserService(ur, pr).LinkPlayer(context.Background(), "u1", "")

		assert.NoError(t, err)
		assert.Nil(t, user.PlayerID)
	})
}

func TestUserService_Delete(t *testing.T) {
	ur := new(mocks.UserRepository)
	svc := service.NewUserService(ur, new(mocks.PlayerRepository))

	err := svc.Delete(context.Background(), admin.UserID, admin)
	requireAppError(t, err, "SELF_DELETE")

	ur.On("SoftDelete", mock.Anything, "u2", mock.Anything).Return(nil)
	assert.NoError(t, svc.Delete(context.Background(), "u2", admin))

	ur.On("SoftDelete", mock.Anything, "u3", mock.Anything).Return(repository.ErrUserNotFound)
	requireAppError(t, svc.Delete(context.Background(), "u3", admin), "NOT_FOUND")
}

func TestUserService_List(t *testing.T) {
	ur := new(mocks.UserRepository)
	ur.On("List", mock.Anything, model.UserStatusPending).Return([]model.User{{ID: "u1"}}, nil)
	svc := service.NewUserService(ur, new(mocks.PlayerRepository))

	users, err := svc.List(context.Background(), model.UserStatusPending)
	assert.NoError(t, err)
	assert.Len(t, users, 1)

	_, err = svc.List(context.Background(), "banned")
	requireAppError(t, err, "BAD_REQUEST")
}

func TestUserService_Get(t *testing.T) {
	ur := new(mocks.UserRepository)
	ur.On("GetByID", mock.Anything, "u1").Return(model.User{ID: "u1", Email: "jan@example.com"}, nil)
	ur.On("GetByID", mock.Anything, "u2").Return(model.User{}, repository.ErrUserNotFound)
	svc := service.NewUserService(ur, new(mocks.PlayerRepository))

	user, err := svc.Get(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Equal(t, "jan@example.com", user.Email)

	_, err = svc.Get(context.Background(), "u2")
	requireAppError(t, err, "NOT_FOUND")
}
