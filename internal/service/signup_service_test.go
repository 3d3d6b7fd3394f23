package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fairplay10x/internal/model"
	"fairplay10x/internal/repository"
	"fairplay10x/internal/service"
	"fairplay10x/internal/service/mocks"
)

type signupMocks struct {
	tm      *mocks.TransactionManager
	signups *mocks.SignupRepository
	events  *mocks.EventRepository
	players *mocks.PlayerRepository
}

func newSignupService() (*service.SignupService, signupMocks) {
	m := signupMocks{
		tm:      new(mocks.TransactionManager),
		signups: new(mocks.SignupRepository),
		events:  new(mocks.EventRepository),
		players: new(mocks.PlayerRepository),
	}
	passthroughTx(m.tm)
	return service.NewSignupService(m.tm, m.signups, m.events, m.players), m
}

func TestSignupService_SignUp(t *testing.T) {
	open := model.Event{ID: "e1", Status: model.EventStatusActive, MaxPlaces: 10, CurrentSignupsCount: 3}
	full := open
	full.CurrentSignupsCount = 10
	confirmedAt := time.Now()
	locked := open
	locked.TeamsConfirmedAt = &confirmedAt

	tests := []struct {
		name       string
		playerID   string
		viewer     model.Viewer
		event      model.Event
		setupMocks func(m signupMocks)
		wantCode   string
		wantStatus model.SignupStatus
	}{
		{
			name:   "Player signs up self as pending",
			viewer: player,
			event:  open,
			setupMocks: func(m signupMocks) {
				m.signups.On("Create", mock.Anything, mock.MatchedBy(func(s model.EventSignup) bool {
					return s.PlayerID == "p1" && s.Status == model.SignupStatusPending
				})).Return(func(_ context.Context, s model.EventSignup) model.EventSignup { return s }, nil)
				m.events.On("AdjustSignupsCount", mock.Anything, "e1", 1).Return(nil)
			},
			wantStatus: model.SignupStatusPending,
		},
		{
			name:     "Organizer signs up a player as confirmed",
			playerID: "p2",
			viewer:   organizer,
			event:    open,
			setupMocks: func(m signupMocks) {
				m.signups.On("Create", mock.Anything, mock.Anything).
					Return(func(_ context.Context, s model.EventSignup) model.EventSignup { return s }, nil)
				m.events.On("AdjustSignupsCount", mock.Anything, "e1", 1).Return(nil)
			},
			wantStatus: model.SignupStatusConfirmed,
		},
		{name: "Fail: Player signs up someone else", playerID: "p2", viewer: player, event: open, wantCode: "FORBIDDEN"},
		{name: "Fail: Event full", viewer: player, event: full, wantCode: "EVENT_FULL"},
		{name: "Fail: Teams confirmed", viewer: player, event: locked, wantCode: "TEAMS_CONFIRMED"},
		{
			name:   "Fail: Duplicate",
			viewer: player,
			event:  open,
			setupMocks: func(m signupMocks) {
				m.signups.On("Create", mock.Anything, mock.Anything).Return(model.EventSignup{}, repository.ErrSignupExists)
			},
			wantCode: "SIGNUP_EXISTS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newSignupService()
			m.players.On("GetByID", mock.Anything, mock.Anything).Return(model.Player{}, nil).Maybe()
			m.events.On("GetByIDForUpdate", mock.Anything, "e1").Return(tt.event, nil).Maybe()
			if tt.setupMocks != nil {
				tt.setupMocks(m)
			}

			s, err := svc.SignUp(context.Background(), "e1", tt.playerID, tt.viewer)

			if tt.wantCode != "" {
				requireAppError(t, err, tt.wantCode)
				m.events.AssertNotCalled(t, "AdjustSignupsCount", mock.Anything, mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantStatus, s.Status)
			}
			m.signups.AssertExpectations(t)
			m.events.AssertExpectations(t)
		})
	}
}

func TestSignupService_Withdraw(t *testing.T) {
	event := model.Event{ID: "e1", Status: model.EventStatusActive, MaxPlaces: 10, CurrentSignupsCount: 5}
	own := model.EventSignup{ID: "s1", EventID: "e1", PlayerID: "p1", Status: model.SignupStatusConfirmed}
	foreign := model.EventSignup{ID: "s2", EventID: "e1", PlayerID: "p9", Status: model.SignupStatusConfirmed}

	t.Run("player withdraws own signup", func(t *testing.T) {
		svc, m := newSignupService()
		m.events.On("GetByIDForUpdate", mock.Anything, "e1").Return(event, nil)
		m.signups.On("GetByID", mock.Anything, "s1").Return(own, nil)
		withdrawn := own
		withdrawn.Status = model.SignupStatusWithdrawn
		m.signups.On("UpdateStatus", mock.Anything, "s1", model.SignupStatusWithdrawn, mock.Anything).Return(withdrawn, nil)
		m.events.On("AdjustSignupsCount", mock.Anything, "e1", -1).Return(nil)

		s, err := svc.UpdateStatus(context.Background(), "e1", "s1", model.SignupStatusWithdrawn, player)

		require.NoError(t, err)
		assert.Equal(t, model.SignupStatusWithdrawn, s.Status)
		m.events.AssertExpectations(t)
	})

	t.Run("player cannot withdraw foreign signup", func(t *testing.T) {
		svc, m := newSignupService()
		m.events.On("GetByIDForUpdate", mock.Anything, "e1").Return(event, nil)
		m.signups.On("GetByID", mock.Anything, "s2").Return(foreign, nil)

		_, err := svc.UpdateStatus(context.Background(), "e1", "s2", model.SignupStatusWithdrawn, player)

		requireAppError(t, err, "FORBIDDEN")
	})

	t.Run("player cannot confirm", func(t *testing.T) {
		svc, m := newSignupService()
		m.events.On("GetByIDForUpdate", mock.Anything, "e1").Return(event, nil)
		m.signups.On("GetByID", mock.Anything, "s1").Return(own, nil)

		_, err := svc.UpdateStatus(context.Background(), "e1", "s1", model.SignupStatusConfirmed, player)

		requireAppError(t, err, "FORBIDDEN")
	})

	t.Run("withdrawn is terminal", func(t *testing.T) {
		svc, m := newSignupService()
		gone := own
		gone.Status = model.SignupStatusWithdrawn
		m.events.On("GetByIDForUpdate", mock.Anything, "e1").Return(event, nil)
		m.signups.On("GetByID", mock.Anything, "s1").Return(gone, nil)

		_, err := svc.UpdateStatus(context.Background(), "e1", "s1", model.SignupStatusConfirmed, organizer)

		requireAppError(t, err, "SIGNUP_WITHDRAWN")
	})

	t.Run("signup of another event", func(t *testing.T) {
		svc, m := newSignupService()
		other := own
		other.EventID = "e2"
		m.events.On("GetByIDForUpdate", mock.Anything, "e1").Return(event, nil)
		m.signups.On("GetByID", mock.Anything, "s1").Return(other, nil)

		_, err := svc.UpdateStatus(context.Background(), "e1", "s1", model.SignupStatusWithdrawn, organizer)

		requireAppError(t, err, "NOT_FOUND")
	})
}

func TestSignupService_ListHidesSkill(t *testing.T) {
	svc, m := newSignupService()
	m.events.On("GetByID", mock.Anything, "e1").Return(model.Event{ID: "e1"}, nil)
	m.signups.On("ListByEvent", mock.Anything, "e1").Return([]model.EventSignup{
		{ID: "s1", Player: &model.Player{ID: "p1", SkillRate: intPtr(9)}},
	}, nil)

	res, err := svc.List(context.Background(), "e1", player)

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Nil(t, res[0].Player.SkillRate)
}
