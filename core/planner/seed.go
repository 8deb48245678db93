package planner

import (
	"strings"
	"time"
)

const defaultColor = "#8E8E93"

var subjectColors = map[string]string{
	"mathematics": "#007AFF",
	"physics":     "#34C759",
	"english":     "#FF9500",
	"chemistry":   "#FF3B30",
	"history":     "#AF52DE",
	"biology":     "#00C7BE",
}

// SubjectColor returns the color token used for subject, grey for unknown subjects.
func SubjectColor(subject string) string {
	if c, ok := subjectColors[strings.ToLower(strings.TrimSpace(subject))]; ok {
		return c
	}
	return defaultColor
}

func DefaultProfile() Profile {
	return Profile{
		Name:          "Priya Sharma",
		Class:         "Class 12, Science Stream",
		School:        "Delhi Public School",
		StudyHours:    156,
		CurrentStreak: 7,
	}
}

// SampleData returns the collections a fresh install starts with, dated relative to now.
func SampleData(now time.Time) ([]Assignment, []Class, []Note) {
	day := 24 * time.Hour

	assignments := []Assignment{
		{
			Title: "Math Homework - Chapter 5", Subject: "Mathematics",
			DueDate: "Today", DueDateTime: now,
			Priority: PriorityHigh, Status: StatusPending,
			Description: "Complete exercises 5.1 to 5.3",
		},
		{
			Title: "History Essay - World War II", Subject: "History",
			DueDate: "Tomorrow", DueDateTime: now.Add(day),
			Priority: PriorityMedium, Status: StatusInProgress,
			Description: "Write 1000 words on causes of WWII",
		},
		{
			Title: "Science Lab Report", Subject: "Physics",
			DueDateTime: now.Add(5 * day),
			Priority:    PriorityLow, Status: StatusPending,
			Description: "Submit pendulum experiment report",
		},
		{
			Title: "English Presentation", Subject: "English",
			DueDate: "Next Week", DueDateTime: now.Add(7 * day),
			Priority: PriorityMedium, Status: StatusPending,
			Description: "Prepare presentation on Shakespeare",
		},
	}
	assignments[2].DueDate = DueLabel(assignments[2].DueDateTime, now)

	classes := []Class{
		{Subject: "Mathematics", Time: "9:00 AM", Duration: "1h", Room: "Room 101", Day: "Monday"},
		{Subject: "Physics", Time: "11:00 AM", Duration: "1h", Room: "Lab 201", Day: "Monday"},
		{Subject: "English", Time: "2:00 PM", Duration: "45m", Room: "Room 205", Day: "Monday"},
		{Subject: "Chemistry", Time: "9:00 AM", Duration: "1h", Room: "Lab 301", Day: "Tuesday"},
		{Subject: "History", Time: "10:30 AM", Duration: "1h", Room: "Room 102", Day: "Tuesday"},
		{Subject: "Mathematics", Time: "1:00 PM", Duration: "1h", Room: "Room 101", Day: "Tuesday"},
	}

	notes := []Note{
		{
			Title: "Quadratic Equations - Chapter 4", Subject: "Mathematics", Type: NoteText,
			Content:   "A quadratic equation is a polynomial equation of degree 2...",
			CreatedAt: now.Add(-2 * time.Hour), UpdatedAt: now.Add(-2 * time.Hour),
		},
		{
			Title: "Newton's Laws of Motion", Subject: "Physics", Type: NoteText,
			Content:   "First Law: An object at rest stays at rest...",
			CreatedAt: now.Add(-day), UpdatedAt: now.Add(-day),
		},
	}

	for i := range assignments {
		assignments[i].ID = newID()
	}
	for i := range classes {
		classes[i].ID = newID()
		classes[i].Color = SubjectColor(classes[i].Subject)
	}
	for i := range notes {
		notes[i].ID = newID()
	}
	return assignments, classes, notes
}
