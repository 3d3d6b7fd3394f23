package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fairplay10x/internal/model"
	"fairplay10x/internal/repository"
	"fairplay10x/internal/service"
	"fairplay10x/internal/service/mocks"
)

func TestPlayerService_Create(t *testing.T) {
	tests := []struct {
		name     string
		in       model.Player
		wantCode string
	}{
		{name: "Success", in: model.Player{FirstName: "Jan", LastName: "Nowak", Position: model.PositionDefender, SkillRate: intPtr(7)}},
		{name: "Success without rating", in: model.Player{FirstName: "Jan", LastName: "Nowak", Position: model.PositionGoalkeeper}},
		{name: "Fail: Missing name", in: model.Player{LastName: "Nowak", Position: model.PositionDefender}, wantCode: "BAD_REQUEST"},
		{name: "Fail: Unknown position", in: model.Player{FirstName: "Jan", LastName: "Nowak", Position: "libero"}, wantCode: "BAD_REQUEST"},
		{name: "Fail: Skill out of range", in: model.Player{FirstName: "Jan", LastName: "Nowak", Position: model.PositionForward, SkillRate: intPtr(11)}, wantCode: "BAD_REQUEST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr := new(mocks.PlayerRepository)
			if tt.wantCode == "" {
				pr.On("Create", mock.Anything, mock.AnythingOfType("model.Player")).
					Return(func(_ context.Context, p model.Player) model.Player { return p }, nil)
			}

			p, err := service.NewPlayerService(pr).Create(context.Background(), tt.in)

			if tt.wantCode != "" {
				requireAppError(t, err, tt.wantCode)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, p.ID)
			}
			pr.AssertExpectations(t)
		})
	}
}

func TestPlayerService_SkillVisibility(t *testing.T) {
	pr := new(mocks.PlayerRepository)
	pr.On("GetByID", mock.Anything, "p1").Return(model.Player{ID: "p1", SkillRate: intPtr(8)}, nil)
	svc := service.NewPlayerService(pr)

	asAdmin, err := svc.Get(context.Background(), "p1", admin)
	require.NoError(t, err)
	require.NotNil(t, asAdmin.SkillRate)
	assert.Equal(t, 8, *asAdmin.SkillRate)

	asOrganizer, err := svc.Get(context.Background(), "p1", organizer)
	require.NoError(t, err)
	assert.Nil(t, asOrganizer.SkillRate)
}

func TestPlayerService_UpdateKeepsRatingForNonAdmin(t *testing.T) {
	pr := new(mocks.PlayerRepository)
	current := model.Player{ID: "p1", FirstName: "Jan", LastName: "Nowak", Position: model.PositionForward, SkillRate: intPtr(6)}
	pr.On("GetByID", mock.Anything, "p1").Return(current, nil)
	pr.On("Update", mock.Anything, mock.MatchedBy(func(p model.Player) bool {
		return p.SkillRate != nil && *p.SkillRate == 6
	})).Return(current, nil)

	in := current
	in.SkillRate = intPtr(10)
	_, err := service.NewPlayerService(pr).Update(context.Background(), in, organizer)

	require.NoError(t, err)
	pr.AssertExpectations(t)
}

func TestPlayerService_Delete(t *testing.T) {
	pr := new(mocks.PlayerRepository)
	pr.On("SoftDelete", mock.Anything, "p404", mock.Anything).Return(repository.ErrPlayerNotFound)

	err := service.NewPlayerService(pr).Delete(context.Background(), "p404")
	requireAppError(t, err, "NOT_FOUND")
}
