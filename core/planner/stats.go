package planner

import (
	"math"
	"time"
)

// dueSoonDays is the due-soon window. Overdue assignments fall inside it too.
const dueSoonDays = 2

// ComputeStats derives Stats from the given collections at instant now.
func ComputeStats(assignments []Assignment, classes []Class, notes []Note, profile Profile, now time.Time) Stats {
	stats := Stats{
		TotalNotes:       len(notes),
		TotalAssignments: len(assignments),
		ClassesToday:     len(classesOn(classes, now.Weekday().String())),
		StudyHours:       profile.StudyHours,
		CurrentStreak:    profile.CurrentStreak,
		ComputedAt:       now,
	}

	for _, a := range assignments {
		switch a.Status {
		case StatusCompleted:
			stats.CompletedAssignments++
			continue
		case StatusInProgress:
			stats.InProgressAssignments++
		default:
			stats.PendingAssignments++
		}
		if IsDueSoon(a, now) {
			stats.DueSoon++
		}
		if a.DueDateTime.Before(now) {
			stats.Overdue++
		}
	}

	if stats.TotalAssignments > 0 {
		ratio := float64(stats.CompletedAssignments) / float64(stats.TotalAssignments)
		stats.OverallProgress = int(math.Round(ratio * 100))
	}
	return stats
}

// IsDueSoon reports whether a is not completed and due within dueSoonDays of now,
// counting fractional days. Past due dates give a negative delta and therefore count.
func IsDueSoon(a Assignment, now time.Time) bool {
	if a.IsCompleted() {
		return false
	}
	days := float64(a.DueDateTime.Sub(now)) / float64(24*time.Hour)
	return days <= dueSoonDays
}
