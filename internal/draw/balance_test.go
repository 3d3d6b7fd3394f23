package draw_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fairplay10x/internal/draw"
	"fairplay10x/internal/model"
)

func teamsWithAverages(avgs ...float64) []model.TeamViewModel {
	teams := make([]model.TeamViewModel, 0, len(avgs))
	for i, avg := range avgs {
		teams = append(teams, model.TeamViewModel{TeamNumber: i + 1, AvgSkillRate: avg})
	}
	return teams
}

func TestEvaluateBalance(t *testing.T) {
	tests := []struct {
		name string
		avgs []float64
		want bool
	}{
		{name: "Equal averages", avgs: []float64{6, 6, 6}, want: true},
		{name: "Spread rounds to 7 percent", avgs: []float64{8.0, 8.5, 7.9}, want: true},
		{name: "Spread of 8 percent", avgs: []float64{10, 9.2}, want: false},
		{name: "Large spread", avgs: []float64{8, 5}, want: false},
		{name: "Single team", avgs: []float64{4}, want: true},
		{name: "No ratings", avgs: []float64{0, 0}, want: true},
		{name: "Unrated team is not compared", avgs: []float64{7, 0, 7.2}, want: true},
		{name: "Unrated team beside spread teams", avgs: []float64{8, 0, 5}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, draw.EvaluateBalance(teamsWithAverages(tt.avgs...)))
		})
	}
}

func TestSpreadPercent(t *testing.T) {
	assert.Equal(t, 7.0, draw.SpreadPercent(teamsWithAverages(8.0, 8.5, 7.9)))
	assert.Equal(t, 50.0, draw.SpreadPercent(teamsWithAverages(4, 8)))
}

func TestEvaluateBalance_UnratedTeam(t *testing.T) {
	rated := []model.TeamMember{
		{SignupID: "s1", LastName: "Nowak", Position: model.PositionForward, SkillRate: rate(6)},
		{SignupID: "s2", LastName: "Lis", Position: model.PositionDefender, SkillRate: rate(6)},
	}
	unrated := []model.TeamMember{
		{SignupID: "s3", LastName: "Kot", Position: model.PositionForward},
		{SignupID: "s4", LastName: "Żak", Position: model.PositionDefender},
	}
	members := append(append([]model.TeamMember{}, rated...), unrated...)
	teams, err := draw.BuildTeams(2, members, []model.TeamAssignment{
		{SignupID: "s1", TeamNumber: 1},
		{SignupID: "s2", TeamNumber: 1},
		{SignupID: "s3", TeamNumber: 2},
		{SignupID: "s4", TeamNumber: 2},
	})
	assert.NoError(t, err)

	assert.Equal(t, 0.0, teams[1].AvgSkillRate)
	assert.Equal(t, 0.0, draw.SpreadPercent(teams))
	assert.True(t, draw.EvaluateBalance(teams))
}
