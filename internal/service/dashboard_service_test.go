package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fairplay10x/internal/model"
	"fairplay10x/internal/service"
	"fairplay10x/internal/service/mocks"
)

func TestDashboardService_Summary(t *testing.T) {
	tests := []struct {
		name        string
		viewer      model.Viewer
		wantPending bool
		wantSignups int
	}{
		{name: "admin sees pending users", viewer: admin, wantPending: true},
		{name: "player sees own signups", viewer: player, wantSignups: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			er := new(mocks.EventRepository)
			sr := new(mocks.SignupRepository)
			ur := new(mocks.UserRepository)
			pr := new(mocks.PlayerRepository)

			er.On("List", mock.Anything, mock.MatchedBy(func(f model.EventFilter) bool {
				return f.Upcoming && f.Limit == service.DashboardUpcomingLimit
			})).Return([]model.Event{{ID: "e1"}}, nil)
			pr.On("Count", mock.Anything).Return(42, nil)
			ur.On("CountByStatus", mock.Anything, model.UserStatusPending).Return(3, nil).Maybe()
			sr.On("ListActiveByPlayer", mock.Anything, "p1").Return([]model.EventSignup{{ID: "s1"}}, nil).Maybe()

			summary, err := service.NewDashboardService(er, sr, ur, pr).Summary(context.Background(), tt.viewer)

			require.NoError(t, err)
			assert.Len(t, summary.UpcomingEvents, 1)
			assert.Equal(t, 42, summary.PlayersCount)
			assert.Len(t, summary.MySignups, tt.wantSignups)
			if tt.wantPending {
				require.NotNil(t, summary.PendingUsers)
				assert.Equal(t, 3, *summary.PendingUsers)
			} else {
				assert.Nil(t, summary.PendingUsers)
				ur.AssertNotCalled(t, "CountByStatus", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestDashboardService_SummaryError(t *testing.T) {
	er := new(mocks.EventRepository)
	pr := new(mocks.PlayerRepository)
	er.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
	pr.On("Count", mock.Anything).Return(0, nil).Maybe()

	_, err := service.NewDashboardService(er, new(mocks.SignupRepository), new(mocks.UserRepository), pr).
		Summary(context.Background(), organizer)

	requireAppError(t, err, "INTERNAL")
}
