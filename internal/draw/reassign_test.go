package draw_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fairplay10x/internal/draw"
	"fairplay10x/internal/model"
)

// threeTeams возвращает 12 игроков в 3 командах по 4.
func threeTeams(t *testing.T) []model.TeamViewModel {
	t.Helper()
	members := roster(12)
	assignments := make([]model.TeamAssignment, 0, len(members))
	for i, m := range members {
		assignments = append(assignments, model.TeamAssignment{SignupID: m.SignupID, TeamNumber: i/4 + 1})
	}
	teams, err := draw.BuildTeams(3, members, assignments)
	require.NoError(t, err)
	return teams
}

func TestReassign_NoOpOnSameTeam(t *testing.T) {
	teams := threeTeams(t)

	entries, changed, err := draw.Reassign(teams, "s01", 1)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Nil(t, entries)
	assert.Len(t, teams[0].Players, 4)
}

func TestReassign_EmitsTotalList(t *testing.T) {
	teams := threeTeams(t)

	entries, changed, err := draw.Reassign(teams, "s01", 3)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Len(t, entries, 12)
}

func TestReassign_ColorConsistency(t *testing.T) {
	teams := threeTeams(t)
	before := map[string]model.TeamAssignment{}
	for _, tm := range teams {
		for _, p := range tm.Players {
			before[p.SignupID] = model.TeamAssignment{SignupID: p.SignupID, TeamNumber: tm.TeamNumber, TeamColor: tm.TeamColor}
		}
	}

	// s05 сидит во второй команде (white) и уходит в первую (black).
	entries, changed, err := draw.Reassign(teams, "s05", 1)
	require.NoError(t, err)
	require.True(t, changed)

	for _, e := range entries {
		if e.SignupID == "s05" {
			assert.Equal(t, 1, e.TeamNumber)
			assert.Equal(t, model.ColorBlack, e.TeamColor)
			continue
		}
		assert.Equal(t, before[e.SignupID], e)
	}

	rebuilt, err := draw.ApplyAssignments(teams, entries)
	require.NoError(t, err)
	assert.Len(t, rebuilt[0].Players, 5)
	assert.Len(t, rebuilt[1].Players, 3)
	assert.Len(t, rebuilt[2].Players, 4)
}

func TestReassign_Errors(t *testing.T) {
	teams := threeTeams(t)

	_, _, err := draw.Reassign(teams, "s01", 4)
	assert.ErrorIs(t, err, draw.ErrUnknownTeam)

	_, _, err = draw.Reassign(teams, "missing", 2)
	assert.ErrorIs(t, err, draw.ErrUnknownSignup)
}
