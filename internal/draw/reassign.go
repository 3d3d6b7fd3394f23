package draw

import "fairplay10x/internal/model"

// Reassign переносит игрока signupID в команду targetTeam.
// Если игрок уже в этой команде, возвращает (nil, false, nil).
// Иначе возвращает полный список назначений для всех игроков всех команд,
// где изменена только запись перенесённого игрока.
func Reassign(teams []model.TeamViewModel, signupID string, targetTeam int) ([]model.TeamAssignment, bool, error) {
	var target *model.TeamViewModel
	for i := range teams {
		if teams[i].TeamNumber == targetTeam {
			target = &teams[i]
			break
		}
	}
	if target == nil {
		return nil, false, ErrUnknownTeam
	}

	current := 0
	for _, t := range teams {
		for _, p := range t.Players {
			if p.SignupID == signupID {
				current = t.TeamNumber
			}
		}
	}
	if current == 0 {
		return nil, false, ErrUnknownSignup
	}
	if current == targetTeam {
		return nil, false, nil
	}

	entries := make([]model.TeamAssignment, 0)
	for _, t := range teams {
		for _, p := range t.Players {
			entry := model.TeamAssignment{SignupID: p.SignupID, TeamNumber: t.TeamNumber, TeamColor: t.TeamColor}
			if p.SignupID == signupID {
				entry.TeamNumber = target.TeamNumber
				entry.TeamColor = target.TeamColor
			}
			entries = append(entries, entry)
		}
	}
	return entries, true, nil
}

// ApplyAssignments перестраивает составы по полному списку назначений.
func ApplyAssignments(teams []model.TeamViewModel, entries []model.TeamAssignment) ([]model.TeamViewModel, error) {
	return BuildTeams(len(teams), Members(teams), entries)
}
