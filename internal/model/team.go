package model

// TeamColor — цвет манишек команды.
type TeamColor string

const (
	ColorBlack TeamColor = "black"
	ColorWhite TeamColor = "white"
	ColorRed   TeamColor = "red"
	ColorBlue  TeamColor = "blue"
)

// Palette — фиксированная палитра цветов команд.
var Palette = []TeamColor{ColorBlack, ColorWhite, ColorRed, ColorBlue}

// ColorFor возвращает цвет команды с номером teamNumber (нумерация с 1).
// Для команд с номером больше длины палитры цвета повторяются по кругу.
func ColorFor(teamNumber int) TeamColor {
	if teamNumber < 1 {
		return Palette[0]
	}
	return Palette[(teamNumber-1)%len(Palette)]
}

// TeamAssignment привязывает запись к команде.
type TeamAssignment struct {
	SignupID   string    `json:"signup_id"`
	TeamNumber int       `json:"team_number"`
	TeamColor  TeamColor `json:"team_color"`
}

// TeamMember описывает игрока внутри состава.
type TeamMember struct {
	SignupID  string   `json:"signup_id"`
	PlayerID  string   `json:"player_id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Position  Position `json:"position"`
	SkillRate *int     `json:"skill_rate,omitempty"`
}

// TeamViewModel — вычисляемое представление команды.
type TeamViewModel struct {
	TeamNumber   int              `json:"team_number"`
	TeamColor    TeamColor        `json:"team_color"`
	Players      []TeamMember     `json:"players"`
	AvgSkillRate float64          `json:"avg_skill_rate"`
	Positions    map[Position]int `json:"positions"`
}
