package draw_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fairplay10x/internal/draw"
	"fairplay10x/internal/model"
)

func rate(v int) *int { return &v }

func roster(n int) []model.TeamMember {
	positions := []model.Position{model.PositionForward, model.PositionMidfielder, model.PositionDefender}
	res := make([]model.TeamMember, 0, n)
	for i := 0; i < n; i++ {
		res = append(res, model.TeamMember{
			SignupID:  fmt.Sprintf("s%02d", i+1),
			PlayerID:  fmt.Sprintf("p%02d", i+1),
			FirstName: "Jan",
			LastName:  fmt.Sprintf("Kowalski%02d", i+1),
			Position:  positions[i%len(positions)],
			SkillRate: rate(i%10 + 1),
		})
	}
	return res
}

func TestPartition(t *testing.T) {
	tests := []struct {
		name      string
		players   int
		teamCount int
		wantErr   error
		wantSizes []int
	}{
		{name: "12 players in 3 teams", players: 12, teamCount: 3, wantSizes: []int{4, 4, 4}},
		{name: "uneven split", players: 10, teamCount: 4, wantSizes: []int{3, 3, 2, 2}},
		{name: "team count too low", players: 10, teamCount: 1, wantErr: draw.ErrInvalidTeamCount},
		{name: "team count too high", players: 20, teamCount: 11, wantErr: draw.ErrInvalidTeamCount},
		{name: "fewer players than teams", players: 3, teamCount: 4, wantErr: draw.ErrNotEnoughPlayers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teams, err := draw.Partition(roster(tt.players), tt.teamCount, rand.New(rand.NewSource(1)))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, teams, tt.teamCount)

			sizes := make([]int, 0, len(teams))
			for i, team := range teams {
				assert.Equal(t, i+1, team.TeamNumber)
				assert.Equal(t, model.ColorFor(i+1), team.TeamColor)
				sizes = append(sizes, len(team.Players))
			}
			assert.ElementsMatch(t, tt.wantSizes, sizes)
		})
	}
}

func TestPartition_EverySignupExactlyOnce(t *testing.T) {
	members := roster(17)
	teams, err := draw.Partition(members, 4, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	seen := map[string]int{}
	for _, team := range teams {
		for _, p := range team.Players {
			seen[p.SignupID]++
		}
	}
	assert.Len(t, seen, len(members))
	for id, n := range seen {
		assert.Equal(t, 1, n, "signup %s", id)
	}
}

func TestPartition_SpreadsGoalkeepers(t *testing.T) {
	members := roster(12)
	for i := 0; i < 3; i++ {
		members[i].Position = model.PositionGoalkeeper
	}

	teams, err := draw.Partition(members, 3, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	for _, team := range teams {
		assert.Equal(t, 1, team.Positions[model.PositionGoalkeeper], "team %d", team.TeamNumber)
	}
}

func TestPartition_BalancedSkill(t *testing.T) {
	teams, err := draw.Partition(roster(20), 2, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	assert.True(t, draw.EvaluateBalance(teams))
}

func TestStats(t *testing.T) {
	members := []model.TeamMember{
		{SignupID: "a", Position: model.PositionForward, SkillRate: rate(8)},
		{SignupID: "b", Position: model.PositionForward, SkillRate: rate(6)},
		{SignupID: "c", Position: model.PositionGoalkeeper},
	}
	avg, positions := draw.Stats(members)
	assert.InDelta(t, 7.0, avg, 1e-9)
	assert.Equal(t, 2, positions[model.PositionForward])
	assert.Equal(t, 1, positions[model.PositionGoalkeeper])
	assert.Equal(t, 0, positions[model.PositionDefender])

	avg, _ = draw.Stats(nil)
	assert.Zero(t, avg)
}

func TestBuildTeams(t *testing.T) {
	members := roster(4)

	t.Run("Success", func(t *testing.T) {
		teams, err := draw.BuildTeams(2, members, []model.TeamAssignment{
			{SignupID: "s01", TeamNumber: 1, TeamColor: model.ColorBlack},
			{SignupID: "s02", TeamNumber: 2, TeamColor: model.ColorWhite},
			{SignupID: "s03", TeamNumber: 1},
			{SignupID: "s04", TeamNumber: 2},
		})
		require.NoError(t, err)
		assert.Len(t, teams[0].Players, 2)
		assert.Len(t, teams[1].Players, 2)
	})

	t.Run("Missing player", func(t *testing.T) {
		_, err := draw.BuildTeams(2, members, []model.TeamAssignment{
			{SignupID: "s01", TeamNumber: 1},
			{SignupID: "s02", TeamNumber: 2},
		})
		assert.ErrorIs(t, err, draw.ErrIncompleteAssignments)
	})

	t.Run("Duplicate player", func(t *testing.T) {
		_, err := draw.BuildTeams(2, members, []model.TeamAssignment{
			{SignupID: "s01", TeamNumber: 1},
			{SignupID: "s01", TeamNumber: 2},
		})
		assert.ErrorIs(t, err, draw.ErrDuplicateAssignment)
	})

	t.Run("Wrong color", func(t *testing.T) {
		_, err := draw.BuildTeams(2, members, []model.TeamAssignment{
			{SignupID: "s01", TeamNumber: 1, TeamColor: model.ColorRed},
		})
		assert.ErrorIs(t, err, draw.ErrColorMismatch)
	})

	t.Run("Unknown team", func(t *testing.T) {
		_, err := draw.BuildTeams(2, members, []model.TeamAssignment{
			{SignupID: "s01", TeamNumber: 3},
		})
		assert.ErrorIs(t, err, draw.ErrUnknownTeam)
	})
}

func TestBuildTeams_PolishOrder(t *testing.T) {
	members := []model.TeamMember{
		{SignupID: "1", FirstName: "Adam", LastName: "Żak"},
		{SignupID: "2", FirstName: "Ewa", LastName: "Łuczak"},
		{SignupID: "3", FirstName: "Piotr", LastName: "Lis"},
		{SignupID: "4", FirstName: "Anna", LastName: "Zając"},
	}
	teams, err := draw.BuildTeams(1, members, []model.TeamAssignment{
		{SignupID: "1", TeamNumber: 1},
		{SignupID: "2", TeamNumber: 1},
		{SignupID: "3", TeamNumber: 1},
		{SignupID: "4", TeamNumber: 1},
	})
	require.NoError(t, err)

	names := make([]string, 0, 4)
	for _, p := range teams[0].Players {
		names = append(names, p.LastName)
	}
	assert.Equal(t, []string{"Lis", "Łuczak", "Zając", "Żak"}, names)
}

func TestColorFor(t *testing.T) {
	assert.Equal(t, model.ColorBlack, model.ColorFor(1))
	assert.Equal(t, model.ColorWhite, model.ColorFor(2))
	assert.Equal(t, model.ColorRed, model.ColorFor(3))
	assert.Equal(t, model.ColorBlue, model.ColorFor(4))
	assert.Equal(t, model.ColorBlack, model.ColorFor(5))
	assert.Equal(t, model.ColorBlue, model.ColorFor(8))
}
