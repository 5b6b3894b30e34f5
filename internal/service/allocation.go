package service

import (
	"math"

	"github.com/vidro-absolut/study-api/internal/models"
)

// AllocateHours returns the share of budget owed to weight, rounded half up.
// It returns 0 when totalWeight is not positive.
func AllocateHours(weight, totalWeight, budget int) int {
	if totalWeight <= 0 {
		return 0
	}
	return int(math.Floor(float64(weight)/float64(totalWeight)*float64(budget) + 0.5))
}

// TotalWeight sums the weights of subjects.
func TotalWeight(subjects []models.StudySubject) int {
	total := 0
	for _, s := range subjects {
		total += s.Weight
	}
	return total
}

// RecomputeAll rewrites CalculatedHours of every subject in place from its weight share of
// budget, clamping CompletedHours to the new allotment. It leaves subjects untouched and
// returns false when the total weight is zero.
func RecomputeAll(subjects []models.StudySubject, budget int) bool {
	total := TotalWeight(subjects)
	if total == 0 {
		return false
	}
	for i := range subjects {
		subjects[i].CalculatedHours = AllocateHours(subjects[i].Weight, total, budget)
		if subjects[i].CompletedHours > subjects[i].CalculatedHours {
			subjects[i].CompletedHours = subjects[i].CalculatedHours
		}
	}
	return true
}

// NextCompleted advances the hour progress bar by one square, wrapping back to zero once full.
func NextCompleted(completed, calculated int) int {
	if completed >= calculated {
		return 0
	}
	return completed + 1
}

// Progress totals completed against calculated hours.
func Progress(subjects []models.StudySubject) models.StudyProgress {
	var p models.StudyProgress
	for _, s := range subjects {
		p.CompletedHours += s.CompletedHours
		p.CalculatedHours += s.CalculatedHours
	}
	denominator := p.CalculatedHours
	if denominator < 1 {
		denominator = 1
	}
	p.Percentage = math.Round(float64(p.CompletedHours)/float64(denominator)*10000) / 100
	return p
}
