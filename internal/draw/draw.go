// Package draw реализует жеребьёвку составов, оценку баланса и ручное переназначение игроков.
// Пакет не выполняет ввода-вывода: на вход получает участников и текущие составы,
// на выход отдаёт новые составы или полный список назначений.
package draw

import (
	"errors"
	"math/rand"
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"fairplay10x/internal/model"
)

var (
	// ErrInvalidTeamCount возвращается, если число команд вне диапазона 2..10.
	ErrInvalidTeamCount = errors.New("team count out of range")

	// ErrNotEnoughPlayers возвращается, если игроков меньше, чем команд.
	ErrNotEnoughPlayers = errors.New("not enough players for team count")

	// ErrUnknownSignup возвращается, если запись не входит ни в один состав.
	ErrUnknownSignup = errors.New("signup is not in any team")

	// ErrUnknownTeam возвращается, если команды с таким номером нет.
	ErrUnknownTeam = errors.New("team does not exist")

	// ErrIncompleteAssignments возвращается, если список назначений покрывает не всех игроков.
	ErrIncompleteAssignments = errors.New("assignments must cover every player")

	// ErrDuplicateAssignment возвращается, если игрок назначен больше одного раза.
	ErrDuplicateAssignment = errors.New("player assigned more than once")

	// ErrColorMismatch возвращается, если цвет не соответствует номеру команды.
	ErrColorMismatch = errors.New("team color does not match team number")
)

// DefaultSkillRate используется при раскладе для игроков без оценки.
const DefaultSkillRate = 5

// Partition раскладывает участников по teamCount командам.
// Вратари расходятся по командам первыми, остальные игроки в порядке убывания
// оценки попадают в команду с наименьшим числом игроков, а при равенстве —
// с наименьшей суммой оценок. Игроки с одинаковой оценкой перемешиваются rng,
// поэтому повторная жеребьёвка может дать другой, но столь же сбалансированный результат.
func Partition(members []model.TeamMember, teamCount int, rng *rand.Rand) ([]model.TeamViewModel, error) {
	if teamCount < model.MinTeamCount || teamCount > model.MaxTeamCount {
		return nil, ErrInvalidTeamCount
	}
	if len(members) < teamCount {
		return nil, ErrNotEnoughPlayers
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	pool := make([]model.TeamMember, len(members))
	copy(pool, members)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	var keepers, field []model.TeamMember
	for _, m := range pool {
		if m.Position == model.PositionGoalkeeper {
			keepers = append(keepers, m)
		} else {
			field = append(field, m)
		}
	}
	bySkillDesc := func(list []model.TeamMember) {
		sort.SliceStable(list, func(i, j int) bool {
			return partitionSkill(list[i]) > partitionSkill(list[j])
		})
	}
	bySkillDesc(keepers)
	bySkillDesc(field)

	buckets := make([]bucket, teamCount)
	for _, m := range keepers {
		buckets[pickBucket(buckets, true)].add(m)
	}
	for _, m := range field {
		buckets[pickBucket(buckets, false)].add(m)
	}

	teams := make([]model.TeamViewModel, teamCount)
	for i := range buckets {
		teams[i] = newTeam(i+1, buckets[i].members)
	}
	return teams, nil
}

type bucket struct {
	members []model.TeamMember
	total   int
	keepers int
}

func (b *bucket) add(m model.TeamMember) {
	b.members = append(b.members, m)
	b.total += partitionSkill(m)
	if m.Position == model.PositionGoalkeeper {
		b.keepers++
	}
}

// pickBucket выбирает команду для очередного игрока.
func pickBucket(buckets []bucket, keeper bool) int {
	best := 0
	for i := 1; i < len(buckets); i++ {
		a, b := buckets[i], buckets[best]
		if keeper && a.keepers != b.keepers {
			if a.keepers < b.keepers {
				best = i
			}
			continue
		}
		if len(a.members) != len(b.members) {
			if len(a.members) < len(b.members) {
				best = i
			}
			continue
		}
		if a.total < b.total {
			best = i
		}
	}
	return best
}

func partitionSkill(m model.TeamMember) int {
	if m.SkillRate == nil {
		return DefaultSkillRate
	}
	return *m.SkillRate
}

// BuildTeams собирает teamCount составов из участников и полного списка назначений.
// Каждый участник должен встречаться в assignments ровно один раз.
func BuildTeams(teamCount int, members []model.TeamMember, assignments []model.TeamAssignment) ([]model.TeamViewModel, error) {
	if teamCount < 1 {
		return nil, ErrInvalidTeamCount
	}

	bySignup := make(map[string]model.TeamMember, len(members))
	for _, m := range members {
		bySignup[m.SignupID] = m
	}

	grouped := make([][]model.TeamMember, teamCount)
	seen := make(map[string]struct{}, len(assignments))
	for _, a := range assignments {
		m, ok := bySignup[a.SignupID]
		if !ok {
			return nil, ErrUnknownSignup
		}
		if _, dup := seen[a.SignupID]; dup {
			return nil, ErrDuplicateAssignment
		}
		if a.TeamNumber < 1 || a.TeamNumber > teamCount {
			return nil, ErrUnknownTeam
		}
		if a.TeamColor != "" && a.TeamColor != model.ColorFor(a.TeamNumber) {
			return nil, ErrColorMismatch
		}
		seen[a.SignupID] = struct{}{}
		grouped[a.TeamNumber-1] = append(grouped[a.TeamNumber-1], m)
	}
	if len(seen) != len(bySignup) {
		return nil, ErrIncompleteAssignments
	}

	teams := make([]model.TeamViewModel, teamCount)
	for i := range grouped {
		teams[i] = newTeam(i+1, grouped[i])
	}
	return teams, nil
}

// Members возвращает всех игроков из составов.
func Members(teams []model.TeamViewModel) []model.TeamMember {
	res := make([]model.TeamMember, 0)
	for _, t := range teams {
		res = append(res, t.Players...)
	}
	return res
}

func newTeam(number int, members []model.TeamMember) model.TeamViewModel {
	if members == nil {
		members = make([]model.TeamMember, 0)
	}
	sortMembers(members)
	avg, positions := Stats(members)
	return model.TeamViewModel{
		TeamNumber:   number,
		TeamColor:    model.ColorFor(number),
		Players:      members,
		AvgSkillRate: avg,
		Positions:    positions,
	}
}

// Stats считает среднюю оценку (по игрокам, у которых она есть) и гистограмму позиций.
func Stats(members []model.TeamMember) (float64, map[model.Position]int) {
	positions := make(map[model.Position]int, len(model.Positions))
	for _, p := range model.Positions {
		positions[p] = 0
	}

	sum, rated := 0, 0
	for _, m := range members {
		positions[m.Position]++
		if m.SkillRate != nil {
			sum += *m.SkillRate
			rated++
		}
	}
	if rated == 0 {
		return 0, positions
	}
	return float64(sum) / float64(rated), positions
}

// sortMembers упорядочивает состав по фамилии и имени по правилам польского алфавита.
func sortMembers(members []model.TeamMember) {
	c := collate.New(language.Polish, collate.IgnoreCase)
	sort.SliceStable(members, func(i, j int) bool {
		if r := c.CompareString(members[i].LastName, members[j].LastName); r != 0 {
			return r < 0
		}
		if r := c.CompareString(members[i].FirstName, members[j].FirstName); r != 0 {
			return r < 0
		}
		return members[i].SignupID < members[j].SignupID
	})
}
