// Package impact est le moteur de gamification : il transforme l'historique
// brut des actions d'un utilisateur en statistiques dérivées (total CO₂,
// total du jour, série de jours consécutifs, niveau, badges). Fonctions
// pures, sans état : tout est recalculé à chaque appel depuis l'instantané
// passé en paramètre.
package impact

import (
	"math"
	"sort"
	"time"

	model "github.com/Ri4dH/EcoTrack/internal/models"
	"github.com/Ri4dH/EcoTrack/internal/units"
)

// LbPerLevel : un niveau tous les 5 lb de CO₂ économisés
const LbPerLevel = 5.0

// ComputeStats calcule les quatre valeurs dérivées depuis le même instantané
// immuable. Les jours calendaires sont évalués dans le fuseau horaire de
// `now` (celui de l'appareil/du serveur évaluateur), pas en UTC. Aucun chemin
// d'erreur : l'historique vide produit un résultat défini.
func ComputeStats(records []model.ActionRecord, now time.Time) model.UserStats {
	var total, today float64

	for _, rec := range records {
		lb := units.Co2Lb(rec)
		total += lb
		if sameDay(rec.Timestamp().In(now.Location()), now) {
			today += lb
		}
	}

	return model.UserStats{
		TotalCo2SavedLb: total,
		TodayCo2SavedLb: today,
		Streak:          ComputeStreak(records, now),
		Level:           Level(total),
		Badges:          evaluateBadges(total),
		TotalActions:    len(records),
	}
}

// Level retourne floor(total/5) + 1, toujours ≥ 1
func Level(totalLb float64) int {
	if totalLb < 0 {
		return 1
	}
	return int(math.Floor(totalLb/LbPerLevel)) + 1
}

// ComputeStreak compte les jours calendaires consécutifs avec au moins une
// action, en remontant depuis le jour actif le plus récent. La série est
// cassée (0) si ce jour n'est ni aujourd'hui ni hier. Seule la suite contiguë
// se terminant au jour le plus récent compte : actif aujourd'hui, hier et il
// y a trois jours donne 2.
func ComputeStreak(records []model.ActionRecord, now time.Time) int {
	if len(records) == 0 {
		return 0
	}

	// Réduire l'historique aux jours calendaires locaux distincts
	seen := map[time.Time]bool{}
	for _, rec := range records {
		seen[dayOf(rec.Timestamp().In(now.Location()))] = true
	}

	days := make([]time.Time, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	today := dayOf(now)
	yesterday := today.AddDate(0, 0, -1)

	// Série cassée si le jour actif le plus récent est avant hier
	if !days[0].Equal(today) && !days[0].Equal(yesterday) {
		return 0
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if days[i-1].AddDate(0, 0, -1).Equal(days[i]) {
			streak++
			continue
		}
		break
	}
	return streak
}

// ChartSeries construit la série journalière (CO₂ en lb + nombre d'actions)
// pour les `days` derniers jours, bornes incluses, dans le fuseau de `now`.
func ChartSeries(records []model.ActionRecord, now time.Time, days int) []model.ChartPoint {
	type bucket struct {
		lb      float64
		actions int
	}
	buckets := map[time.Time]*bucket{}
	for _, rec := range records {
		d := dayOf(rec.Timestamp().In(now.Location()))
		if buckets[d] == nil {
			buckets[d] = &bucket{}
		}
		buckets[d].lb += units.Co2Lb(rec)
		buckets[d].actions++
	}

	series := make([]model.ChartPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		d := dayOf(now).AddDate(0, 0, -i)
		point := model.ChartPoint{Date: d.Format("2006-01-02")}
		if b := buckets[d]; b != nil {
			point.Co2SavedLb = b.lb
			point.Actions = b.actions
		}
		series = append(series, point)
	}
	return series
}

// dayOf tronque un instant à minuit local
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
