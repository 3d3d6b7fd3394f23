package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fairplay10x/internal/model"
	"fairplay10x/internal/service"
	"fairplay10x/internal/service/mocks"
)

var (
	admin     = model.Viewer{UserID: "u-admin", Role: model.RoleAdmin}
	organizer = model.Viewer{UserID: "u-org", Role: model.RoleOrganizer}
	player    = model.Viewer{UserID: "u-player", Role: model.RolePlayer, PlayerID: "p1"}
)

func passthroughTx(tm *mocks.TransactionManager) {
	tm.On("RunInTransaction", mock.Anything, mock.Anything).Return(func(ctx context.Context, fn func(context.Context) error) error {
		return fn(ctx)
	})
}

func requireAppError(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *service.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	require.Equal(t, code, appErr.Code)
}

func intPtr(v int) *int { return &v }
