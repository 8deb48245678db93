package planner

import (
	"math"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/blink-new/study-saathi-app-dwaa98jh/core"
)

// minTitleSimilarity is the fuzzy match threshold used by SearchNotes.
const minTitleSimilarity = .7

// TodayClasses returns the classes held on the current weekday, in insertion order.
func (s *Store) TodayClasses() []Class {
	return s.ClassesOn(s.now().Weekday().String())
}

// ClassesOn returns the classes held on day ("Monday" ... "Sunday"), in insertion order.
func (s *Store) ClassesOn(day string) []Class {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return classesOn(s.classes, day)
}

func classesOn(classes []Class, day string) []Class {
	out := make([]Class, 0)
	for _, c := range classes {
		if c.Day == day {
			out = append(out, c)
		}
	}
	return out
}

type DaySchedule struct {
	Day     string  `json:"day"`
	Classes []Class `json:"classes"`
}

// WeekSchedule groups all classes by day, Monday first. Every weekday is present.
func (s *Store) WeekSchedule() []DaySchedule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	week := make([]DaySchedule, 0, len(Weekdays))
	for _, day := range Weekdays {
		week = append(week, DaySchedule{Day: day, Classes: classesOn(s.classes, day)})
	}
	return week
}

// UpcomingAssignments returns the assignments not yet completed, earliest due first.
// Equal due times keep their insertion order.
func (s *Store) UpcomingAssignments(limit int) []Assignment {
	if limit <= 0 {
		limit = DefaultLimit
	}

	s.mu.RLock()
	upcoming := make([]Assignment, 0, len(s.assignments))
	for _, a := range s.assignments {
		if !a.IsCompleted() {
			upcoming = append(upcoming, a)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDateTime.Before(upcoming[j].DueDateTime)
	})
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// FilterAssignments returns the assignments having one of statuses, in insertion order.
// No statuses means all assignments.
func (s *Store) FilterAssignments(statuses ...Status) []Assignment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(statuses) == 0 {
		return slices.Clone(s.assignments)
	}
	out := make([]Assignment, 0)
	for _, a := range s.assignments {
		if slices.Contains(statuses, a.Status) {
			out = append(out, a)
		}
	}
	return out
}

// RecentNotes returns the most recently updated notes first.
func (s *Store) RecentNotes(limit int) []Note {
	if limit <= 0 {
		limit = DefaultLimit
	}
	notes := byRecentUpdate(s.Notes())
	if len(notes) > limit {
		notes = notes[:limit]
	}
	return notes
}

func byRecentUpdate(notes []Note) []Note {
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
	return notes
}

// SearchNotes matches query case-insensitively against title, subject and content,
// and fuzzily against the title. A non-empty subject restricts results to that subject.
// Results are ordered like RecentNotes.
func (s *Store) SearchNotes(query, subject string) []Note {
	q := core.CleanString(query, true /* lower */)
	subject = core.CleanString(subject, true /* lower */)

	out := make([]Note, 0)
	for _, n := range s.Notes() {
		if subject != "" && strings.ToLower(n.Subject) != subject {
			continue
		}
		if q == "" || noteMatches(n, q) {
			out = append(out, n)
		}
	}
	return byRecentUpdate(out)
}

func noteMatches(n Note, q string) bool {
	title := strings.ToLower(n.Title)
	if strings.Contains(title, q) ||
		strings.Contains(strings.ToLower(n.Subject), q) ||
		strings.Contains(strings.ToLower(n.Content), q) {
		return true
	}
	return similarity(q, title) >= minTitleSimilarity
}

func similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	return difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, "")).QuickRatio()
}

// NoteSubjects summarizes notes per subject, most recently updated subject first.
func (s *Store) NoteSubjects() []SubjectSummary {
	bySubject := make(map[string]*SubjectSummary)
	order := make([]string, 0)
	for _, n := range s.Notes() {
		sum, ok := bySubject[n.Subject]
		if !ok {
			sum = &SubjectSummary{Subject: n.Subject}
			bySubject[n.Subject] = sum
			order = append(order, n.Subject)
		}
		sum.NoteCount++
		if n.UpdatedAt.After(sum.LastUpdated) {
			sum.LastUpdated = n.UpdatedAt
		}
	}

	out := make([]SubjectSummary, 0, len(order))
	for _, subj := range order {
		out = append(out, *bySubject[subj])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastUpdated.After(out[j].LastUpdated)
	})
	return out
}

// DueLabel renders the display label of a due date relative to now:
// "Today", "Tomorrow", a weekday name within the week, "Next Week", or the date.
func DueLabel(due, now time.Time) string {
	due = due.In(now.Location())
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	dy, dm, dd := due.Date()
	dueDay := time.Date(dy, dm, dd, 0, 0, 0, 0, now.Location())
	days := int(math.Round(dueDay.Sub(today).Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days > 1 && days < 7:
		return due.Weekday().String()
	case days >= 7 && days < 14:
		return "Next Week"
	default:
		return due.Format("Jan 2, 2006")
	}
}
