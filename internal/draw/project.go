package draw

import "fairplay10x/internal/model"

// Capabilities описывает, что смотрящему разрешено видеть.
type Capabilities struct {
	CanSeeSkillRate bool
}

// CapabilitiesFor возвращает возможности роли. Оценки видит только администратор.
func CapabilitiesFor(role model.Role) Capabilities {
	return Capabilities{CanSeeSkillRate: role == model.RoleAdmin}
}

// PublicMember — игрок в составе, как его видит конкретный пользователь.
type PublicMember struct {
	SignupID  string         `json:"signup_id"`
	PlayerID  string         `json:"player_id"`
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	Position  model.Position `json:"position"`
	SkillRate *int           `json:"skill_rate,omitempty"`
}

// PublicTeamView — команда, как её видит конкретный пользователь.
type PublicTeamView struct {
	TeamNumber   int                    `json:"team_number"`
	TeamColor    model.TeamColor        `json:"team_color"`
	Players      []PublicMember         `json:"players"`
	AvgSkillRate *float64               `json:"avg_skill_rate,omitempty"`
	Positions    map[model.Position]int `json:"positions"`
}

// Project строит представление составов с учётом возможностей смотрящего.
func Project(teams []model.TeamViewModel, caps Capabilities) []PublicTeamView {
	res := make([]PublicTeamView, 0, len(teams))
	for _, t := range teams {
		view := PublicTeamView{
			TeamNumber: t.TeamNumber,
			TeamColor:  t.TeamColor,
			Players:    make([]PublicMember, 0, len(t.Players)),
			Positions:  make(map[model.Position]int, len(t.Positions)),
		}
		for pos, n := range t.Positions {
			view.Positions[pos] = n
		}
		if caps.CanSeeSkillRate {
			avg := t.AvgSkillRate
			view.AvgSkillRate = &avg
		}
		for _, p := range t.Players {
			m := PublicMember{
				SignupID:  p.SignupID,
				PlayerID:  p.PlayerID,
				FirstName: p.FirstName,
				LastName:  p.LastName,
				Position:  p.Position,
			}
			if caps.CanSeeSkillRate && p.SkillRate != nil {
				rate := *p.SkillRate
				m.SkillRate = &rate
			}
			view.Players = append(view.Players, m)
		}
		res = append(res, view)
	}
	return res
}

// ProjectPlayer скрывает оценку игрока, если смотрящему она недоступна.
func ProjectPlayer(p model.Player, caps Capabilities) model.Player {
	if !caps.CanSeeSkillRate {
		p.SkillRate = nil
	}
	return p
}
