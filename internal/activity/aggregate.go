package activity

import (
	"time"

	model "github.com/Yash-007/zenith-engine/internal/models"
)

// DefaultWindowDays est la fenêtre glissante de la heatmap annuelle.
const DefaultWindowDays = 365

// MaxIntensity plafonne les niveaux d'affichage: au-delà de 5 soumissions un
// jour rend pareil. Décision d'affichage volontairement lossy, le compte réel
// reste intact dans la map.
const MaxIntensity = 5

const dayFormat = "2006-01-02"

// Aggregate groupe les soumissions par jour calendaire UTC sur la fenêtre
// donnée. Représentation creuse: les jours sans soumission sont absents de la
// map. Idempotent et insensible à l'ordre d'entrée.
func Aggregate(submissions []model.Submission, windowDays int) map[string]int {
	return AggregateAt(time.Now(), submissions, windowDays)
}

// AggregateAt est Aggregate avec une horloge injectée (tests).
func AggregateAt(now time.Time, submissions []model.Submission, windowDays int) map[string]int {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	cutoff := now.UTC().AddDate(0, 0, -windowDays)

	counts := make(map[string]int)
	for _, s := range submissions {
		at := s.SubmittedAt.UTC()
		if at.IsZero() || at.Before(cutoff) || at.After(now.UTC()) {
			continue
		}
		counts[at.Format(dayFormat)]++
	}
	return counts
}

// IntensityLevel ramène un compte journalier sur l'échelle d'affichage 0..5.
func IntensityLevel(count int) int {
	if count <= 0 {
		return 0
	}
	if count > MaxIntensity {
		return MaxIntensity
	}
	return count
}
