package draw_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fairplay10x/internal/draw"
	"fairplay10x/internal/model"
)

func TestProject_RoleVisibility(t *testing.T) {
	members := roster(4)
	members[0].Position = model.PositionGoalkeeper
	teams, err := draw.BuildTeams(2, members, []model.TeamAssignment{
		{SignupID: "s01", TeamNumber: 1},
		{SignupID: "s02", TeamNumber: 1},
		{SignupID: "s03", TeamNumber: 2},
		{SignupID: "s04", TeamNumber: 2},
	})
	require.NoError(t, err)

	admin := draw.Project(teams, draw.CapabilitiesFor(model.RoleAdmin))
	player := draw.Project(teams, draw.CapabilitiesFor(model.RolePlayer))
	organizer := draw.Project(teams, draw.CapabilitiesFor(model.RoleOrganizer))

	for i := range teams {
		require.NotNil(t, admin[i].AvgSkillRate)
		assert.Equal(t, teams[i].AvgSkillRate, *admin[i].AvgSkillRate)
		for _, p := range admin[i].Players {
			assert.NotNil(t, p.SkillRate)
		}

		assert.Nil(t, player[i].AvgSkillRate)
		assert.Nil(t, organizer[i].AvgSkillRate)
		for _, p := range player[i].Players {
			assert.Nil(t, p.SkillRate)
		}

		assert.Equal(t, teams[i].Positions, player[i].Positions)
		assert.Equal(t, teams[i].Positions, admin[i].Positions)
	}
	assert.Equal(t, 1, player[0].Positions[model.PositionGoalkeeper])
}

func TestProjectPlayer(t *testing.T) {
	p := model.Player{ID: "p1", SkillRate: rate(9)}

	assert.Nil(t, draw.ProjectPlayer(p, draw.CapabilitiesFor(model.RolePlayer)).SkillRate)
	assert.Equal(t, 9, *draw.ProjectPlayer(p, draw.CapabilitiesFor(model.RoleAdmin)).SkillRate)
}
