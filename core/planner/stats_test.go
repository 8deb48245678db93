package planner_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/blink-new/study-saathi-app-dwaa98jh/core/planner"
	"github.com/blink-new/study-saathi-app-dwaa98jh/tests"
)

func TestIsDueSoon(t *testing.T) {
	now := testutil.Now
	tests := []struct {
		name   string
		due    time.Time
		status planner.Status
		want   bool
	}{
		{name: "due in 1 day", due: now.Add(day), status: planner.StatusPending, want: true},
		{name: "due in 1 day but completed", due: now.Add(day), status: planner.StatusCompleted, want: false},
		{name: "due in exactly 2 days", due: now.Add(2 * day), status: planner.StatusInProgress, want: true},
		{name: "due in 2 days and a minute", due: now.Add(2*day + time.Minute), status: planner.StatusPending, want: false},
		{name: "overdue", due: now.Add(-3 * day), status: planner.StatusPending, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := planner.Assignment{DueDateTime: tt.due, Status: tt.status}
			assert.Equal(t, tt.want, planner.IsDueSoon(a, now))
		})
	}
}

func TestComputeStats(t *testing.T) {
	now := testutil.Now // Monday
	assignments := []planner.Assignment{
		{Status: planner.StatusCompleted, DueDateTime: now.Add(-day)},
		{Status: planner.StatusCompleted, DueDateTime: now.Add(day)},
		{Status: planner.StatusPending, DueDateTime: now.Add(-day)},
		{Status: planner.StatusInProgress, DueDateTime: now.Add(10 * day)},
	}
	classes := []planner.Class{{Day: "Monday"}, {Day: "Monday"}, {Day: "Tuesday"}}
	notes := []planner.Note{{}, {}, {}}
	profile := planner.Profile{StudyHours: 12, CurrentStreak: 3}

	got := planner.ComputeStats(assignments, classes, notes, profile, now)
	want := planner.Stats{
		TotalNotes:            3,
		TotalAssignments:      4,
		CompletedAssignments:  2,
		PendingAssignments:    1,
		InProgressAssignments: 1,
		ClassesToday:          2,
		DueSoon:               1,
		Overdue:               1,
		OverallProgress:       50,
		StudyHours:            12,
		CurrentStreak:         3,
		ComputedAt:            now,
	}
	assert.Equal(t, want, got)
}

func TestComputeStats_Progress(t *testing.T) {
	tests := []struct {
		name     string
		statuses []planner.Status
		want     int
	}{
		{name: "no assignments", want: 0},
		{name: "one of three", statuses: []planner.Status{planner.StatusCompleted, planner.StatusPending, planner.StatusPending}, want: 33},
		{name: "two of three", statuses: []planner.Status{planner.StatusCompleted, planner.StatusCompleted, planner.StatusPending}, want: 67},
		{name: "all", statuses: []planner.Status{planner.StatusCompleted}, want: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assignments := make([]planner.Assignment, 0, len(tt.statuses))
			for _, s := range tt.statuses {
				assignments = append(assignments, planner.Assignment{Status: s, DueDateTime: testutil.Now})
			}
			got := planner.ComputeStats(assignments, nil, nil, planner.Profile{}, testutil.Now)
			assert.Equal(t, tt.want, got.OverallProgress)
		})
	}
}

func TestAssignment_Progress(t *testing.T) {
	assert.Equal(t, 0, planner.Assignment{Status: planner.StatusPending}.Progress())
	assert.Equal(t, 50, planner.Assignment{Status: planner.StatusInProgress}.Progress())
	assert.Equal(t, 100, planner.Assignment{Status: planner.StatusCompleted}.Progress())
}

func TestDueLabel(t *testing.T) {
	now := testutil.Now // Monday, Jan 15 2024 10:00
	tests := []struct {
		name string
		due  time.Time
		want string
	}{
		{name: "earlier today", due: now.Add(-5 * time.Hour), want: "Today"},
		{name: "later today", due: now.Add(13 * time.Hour), want: "Today"},
		{name: "tomorrow", due: now.Add(day), want: "Tomorrow"},
		{name: "this week", due: now.Add(3 * day), want: "Thursday"},
		{name: "next week", due: now.Add(7 * day), want: "Next Week"},
		{name: "far away", due: now.Add(30 * day), want: "Feb 14, 2024"},
		{name: "past", due: now.Add(-2 * day), want: "Jan 13, 2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, planner.DueLabel(tt.due, now))
		})
	}
}

func TestSampleData(t *testing.T) {
	assignments, classes, notes := planner.SampleData(testutil.Now)
	assert.Len(t, assignments, 4)
	assert.Len(t, classes, 6)
	assert.Len(t, notes, 2)
	assert.Equal(t, "Saturday", assignments[2].DueDate)
	for _, c := range classes {
		assert.Equal(t, planner.SubjectColor(c.Subject), c.Color)
	}

	ids := make(map[string]bool)
	for _, a := range assignments {
		ids[a.ID] = true
	}
	assert.Len(t, ids, 4, "sample IDs are unique")
}

func TestSubjectColor(t *testing.T) {
	assert.Equal(t, "#007AFF", planner.SubjectColor("Mathematics"))
	assert.Equal(t, "#34C759", planner.SubjectColor(" physics "))
	assert.Equal(t, "#8E8E93", planner.SubjectColor("Sanskrit"))
}

func TestStatus_Next(t *testing.T) {
	assert.Equal(t, planner.StatusInProgress, planner.StatusPending.Next())
	assert.Equal(t, planner.StatusCompleted, planner.StatusInProgress.Next())
	assert.Equal(t, planner.StatusPending, planner.StatusCompleted.Next())
}

func TestCodecByName(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: "", want: "json"},
		{name: "json", want: "json"},
		{name: "yaml", want: "yaml"},
		{name: "yml", want: "yaml"},
		{name: "xml", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec, err := planner.CodecByName(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, codec.Name())
		})
	}
}
