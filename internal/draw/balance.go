package draw

import (
	"math"

	"fairplay10x/internal/model"
)

// BalanceThresholdPercent — допустимый разброс средних оценок между командами, в процентах от максимума.
const BalanceThresholdPercent = 7

// BalanceWarning — текст предупреждения для интерфейса.
const BalanceWarning = "Różnica średniego skill rate między drużynami przekracza 7%"

// SpreadPercent возвращает разницу между наибольшей и наименьшей средней оценкой команд
// в процентах от наибольшей, округлённую до целого. Команды без оценённых игроков
// (средняя 0, так как оценки начинаются с 1) в сравнении не участвуют.
func SpreadPercent(teams []model.TeamViewModel) float64 {
	hi, lo := 0.0, math.Inf(1)
	rated := 0
	for _, t := range teams {
		if t.AvgSkillRate <= 0 {
			continue
		}
		hi = math.Max(hi, t.AvgSkillRate)
		lo = math.Min(lo, t.AvgSkillRate)
		rated++
	}
	if rated < 2 {
		return 0
	}
	return math.Round((hi - lo) / hi * 100)
}

// EvaluateBalance сообщает, укладывается ли разброс в порог (включительно).
func EvaluateBalance(teams []model.TeamViewModel) bool {
	return SpreadPercent(teams) <= BalanceThresholdPercent
}
