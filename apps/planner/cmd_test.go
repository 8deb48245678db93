package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/blink-new/study-saathi-app-dwaa98jh/core/planner"
	"github.com/blink-new/study-saathi-app-dwaa98jh/tests"
)

func setup(t *testing.T) (*commandLine, *bytes.Buffer) {
	t.Helper()
	out := new(bytes.Buffer)
	return &commandLine{
		out:   out,
		store: testutil.NewStore(t, nil),
		now:   func() time.Time { return testutil.Now },
	}, out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	wantOut    []string
}

func runCLITests(t *testing.T, cli *commandLine, out *bytes.Buffer, tests []cliTest) {
	t.Helper()
	for _, tt := range tests {
		args := append([]string{"saathi"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			err := cli.run(args)
			switch {
			case tt.wantErr != nil:
				assert.Equal(t, tt.wantErr, errors.Cause(err), "cli.run() error = %v", err)
			case tt.wantErrStr != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrStr)
			default:
				require.NoError(t, err)
			}
			for _, want := range tt.wantOut {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func Test_commandLine_assignment(t *testing.T) {
	cli, out := setup(t)
	a := testutil.CreateAssignment(t, cli.store, "Essay", "History", testutil.Now.Add(3*24*time.Hour), planner.StatusPending)

	tests := []cliTest{
		{name: "add: missing fields", args: []string{"assignment", "add", "--title", "Lab"}, wantErr: errInvalidInput, wantOut: []string{"subject: this field is required", "dueDateTime: this field is required"}},
		{name: "add: bad due date", args: []string{"assignment", "add", "-t", "Lab", "-s", "Physics", "--due", "tomorrow"}, wantErr: errInvalidInput, wantOut: []string{"dueDateTime: must be YYYY-MM-DD"}},
		{name: "add: bad priority", args: []string{"assignment", "add", "-t", "Lab", "-s", "Physics", "--due", "2024-01-16", "-p", "urgent"}, wantErr: errInvalidInput, wantOut: []string{"priority"}},
		{name: "add", args: []string{"assignment", "add", "-t", "Lab Report", "-s", "Physics", "--due", "2024-01-16 09:00", "-p", "high"}, wantOut: []string{"added assignment", "Lab Report", "Tomorrow"}},
		{name: "list", args: []string{"assignment", "list"}, wantOut: []string{"Essay", "Lab Report"}},
		{name: "list: by status", args: []string{"assignment", "list", "--status", "completed"}, wantOut: []string{"no assignments"}},
		{name: "list: bad status", args: []string{"assignment", "list", "--status", "done"}, wantErr: errInvalidInput},
		{name: "upcoming", args: []string{"a", "upcoming", "-n", "1"}, wantOut: []string{"Lab Report"}},
		{name: "update: unknown id", args: []string{"assignment", "update", "nope", "-t", "x"}, wantErr: errNotFound},
		{name: "update: bad status", args: []string{"assignment", "update", a.ID, "--status", "done"}, wantErr: errInvalidInput},
		{name: "update", args: []string{"assignment", "update", a.ID[:8], "--status", "in-progress"}, wantOut: []string{"updated assignment", "in-progress"}},
		{name: "update: description", args: []string{"assignment", "update", a.ID, "--description", "Read chapter 4"}, wantOut: []string{"Read chapter 4"}},
		{name: "update: set and clear description", args: []string{"assignment", "update", a.ID, "--description", "x", "--clear-description"}, wantErr: errInvalidInput, wantOut: []string{"description must be empty when it is being cleared"}},
		{name: "update: clear description", args: []string{"assignment", "update", a.ID, "--clear-description"}, wantOut: []string{"updated assignment"}},
		{name: "cycle", args: []string{"assignment", "cycle", a.ID}, wantOut: []string{"Essay is now completed (100%)"}},
		{name: "cycle: unknown id", args: []string{"assignment", "cycle", "nope"}, wantErr: errNotFound},
		{name: "delete", args: []string{"assignment", "delete", a.ID}, wantOut: []string{"deleted assignment"}},
		{name: "delete again", args: []string{"assignment", "delete", a.ID}, wantErr: errNotFound},
		{name: "missing id arg", args: []string{"assignment", "delete"}, wantErrStr: "accepts 1 arg(s)"},
	}
	runCLITests(t, cli, out, tests)

	all := cli.store.Assignments()
	require.Len(t, all, 1)
	assert.Equal(t, "Lab Report", all[0].Title)
	assert.Equal(t, planner.PriorityHigh, all[0].Priority)
	assert.Equal(t, time.Date(2024, time.January, 16, 9, 0, 0, 0, time.UTC), all[0].DueDateTime)
}

func Test_commandLine_class(t *testing.T) {
	cli, out := setup(t)
	c := testutil.CreateClass(t, cli.store, "Chemistry", "Wednesday")

	tests := []cliTest{
		{name: "add: bad day", args: []string{"class", "add", "-s", "Physics", "--time", "9:00 AM", "-r", "Lab 1", "-d", "Funday"}, wantErr: errInvalidInput, wantOut: []string{"day must be a day of the week"}},
		{name: "add", args: []string{"class", "add", "-s", "Physics", "--time", "9:00 AM", "-r", "Lab 1", "-d", "monday"}, wantOut: []string{"added class", "Physics", "Lab 1", "Monday"}},
		{name: "today", args: []string{"class", "today"}, wantOut: []string{"Today (Monday)", "Physics"}},
		{name: "list: by day", args: []string{"class", "list", "--day", "wednesday"}, wantOut: []string{"Wednesday", "Chemistry"}},
		{name: "list: bad day", args: []string{"class", "list", "--day", "someday"}, wantErr: errInvalidInput},
		{name: "week", args: []string{"class", "week"}, wantOut: []string{"Monday", "Sunday", "no classes"}},
		{name: "update", args: []string{"class", "update", c.ID, "-r", "Lab 3"}, wantOut: []string{"updated class", "Lab 3"}},
		{name: "update: bad color", args: []string{"class", "update", c.ID, "--color", "red"}, wantErr: errInvalidInput},
		{name: "delete", args: []string{"class", "delete", c.ID}, wantOut: []string{"deleted class"}},
		{name: "delete: unknown id", args: []string{"class", "delete", c.ID}, wantErr: errNotFound},
	}
	runCLITests(t, cli, out, tests)

	classes := cli.store.Classes()
	require.Len(t, classes, 1)
	assert.Equal(t, planner.SubjectColor("Physics"), classes[0].Color)
	assert.Equal(t, "1h", classes[0].Duration)
}

func Test_commandLine_note(t *testing.T) {
	cli, out := setup(t)
	n := testutil.CreateNote(t, cli.store, "Quadratic Equations", "Mathematics", "degree 2")

	tests := []cliTest{
		{name: "add: missing content", args: []string{"note", "add", "-t", "Optics", "-s", "Physics"}, wantErr: errInvalidInput, wantOut: []string{"content: this field is required"}},
		{name: "add", args: []string{"note", "add", "-t", "Optics", "-s", "Physics", "-c", "light bends"}, wantOut: []string{"added note", "Optics"}},
		{name: "list", args: []string{"note", "list"}, wantOut: []string{"Optics", "Quadratic Equations"}},
		{name: "recent", args: []string{"note", "recent", "-n", "1"}, wantOut: []string{"Quadratic Equations"}},
		{name: "search", args: []string{"note", "search", "bends"}, wantOut: []string{"Optics"}},
		{name: "search: subject", args: []string{"note", "search", "-s", "mathematics"}, wantOut: []string{"Quadratic Equations"}},
		{name: "search: no match", args: []string{"note", "search", "zzz"}, wantOut: []string{"no notes"}},
		{name: "subjects", args: []string{"note", "subjects"}, wantOut: []string{"Mathematics", "Physics", "1 note(s)"}},
		{name: "update: bad type", args: []string{"note", "update", n.ID, "--type", "audio"}, wantErr: errInvalidInput},
		{name: "update", args: []string{"note", "update", n.ID, "-c", "ax^2 + bx + c = 0"}, wantOut: []string{"updated note", "ax^2 + bx + c = 0"}},
		{name: "delete", args: []string{"note", "delete", n.ID}, wantOut: []string{"deleted note"}},
		{name: "delete: unknown id", args: []string{"note", "delete", n.ID}, wantErr: errNotFound},
	}
	runCLITests(t, cli, out, tests)

	notes := cli.store.Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, "Optics", notes[0].Title)
}

func Test_commandLine_profile(t *testing.T) {
	cli, out := setup(t)

	tests := []cliTest{
		{name: "show", args: []string{"profile"}, wantOut: []string{"Priya Sharma", "Delhi Public School", "study hours: 156"}},
		{name: "edit: negative hours", args: []string{"profile", "edit", "--study-hours", "-5"}, wantErr: errInvalidInput, wantOut: []string{"studyHours"}},
		{name: "edit", args: []string{"profile", "edit", "--name", "Meera", "--streak", "0"}, wantOut: []string{"profile updated", "Meera", "streak: 0"}},
	}
	runCLITests(t, cli, out, tests)

	p := cli.store.Profile()
	assert.Equal(t, "Meera", p.Name)
	assert.Equal(t, 0, p.CurrentStreak)
	assert.Equal(t, 156, p.StudyHours)
}

func Test_commandLine_homeAndStats(t *testing.T) {
	cli, out := setup(t)
	testutil.CreateAssignment(t, cli.store, "Essay", "History", testutil.Now.Add(24*time.Hour), planner.StatusPending)
	testutil.CreateAssignment(t, cli.store, "Worksheet", "Mathematics", testutil.Now, planner.StatusCompleted)
	testutil.CreateClass(t, cli.store, "Physics", "Monday")
	testutil.CreateNote(t, cli.store, "Cells", "Biology", "...")

	tests := []cliTest{
		{name: "root", wantOut: []string{"Hello, Priya Sharma", "Monday, Jan 15", "Physics", "Essay", "Cells"}},
		{name: "home", args: []string{"home"}, wantOut: []string{"Today's classes", "Upcoming assignments", "Recent notes"}},
		{name: "stats", args: []string{"stats"}, wantOut: []string{"progress: 50%", "due soon: 1", "classes today: 1"}},
		{name: "unknown command", args: []string{"lol"}, wantErrStr: "unknown command"},
	}
	runCLITests(t, cli, out, tests)
}

func Test_commandLine_export(t *testing.T) {
	cli, out := setup(t)
	a := testutil.CreateAssignment(t, cli.store, "Essay", "History", testutil.Now.Add(24*time.Hour), planner.StatusPending)

	t.Run("json", func(t *testing.T) {
		out.Reset()
		require.NoError(t, cli.run([]string{"saathi", "export"}))
		var got export
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		require.Len(t, got.Assignments, 1)
		assert.Equal(t, a.ID, got.Assignments[0].ID)
		assert.Equal(t, "Priya Sharma", got.Profile.Name)
		assert.Equal(t, 1, got.Stats.TotalAssignments)
	})

	t.Run("yaml", func(t *testing.T) {
		out.Reset()
		require.NoError(t, cli.run([]string{"saathi", "export", "--format", "yaml"}))
		var got export
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
		require.Len(t, got.Assignments, 1)
		assert.True(t, a.DueDateTime.Equal(got.Assignments[0].DueDateTime))
	})

	t.Run("unknown format", func(t *testing.T) {
		err := cli.run([]string{"saathi", "export", "-f", "xml"})
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "unknown encoding"))
	})
}

func Test_resolveID(t *testing.T) {
	ids := []string{"abc123", "abd456", "abc"}
	tests := []struct {
		name    string
		ref     string
		want    string
		wantErr error
	}{
		{name: "exact", ref: "abc", want: "abc"},
		{name: "unique prefix", ref: "abd", want: "abd456"},
		{name: "case and space", ref: " ABD4 ", want: "abd456"},
		{name: "ambiguous prefix", ref: "ab", wantErr: errAmbiguousID},
		{name: "unknown", ref: "zz", wantErr: errNotFound},
		{name: "empty", ref: "", wantErr: errNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveID(ids, tt.ref, "note")
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, errors.Cause(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_parseDue(t *testing.T) {
	loc := time.UTC
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: ""},
		{in: "2024-01-16", want: time.Date(2024, time.January, 16, 23, 59, 0, 0, loc)},
		{in: "2024-01-16 08:30", want: time.Date(2024, time.January, 16, 8, 30, 0, 0, loc)},
		{in: "2024-01-16T08:30", want: time.Date(2024, time.January, 16, 8, 30, 0, 0, loc)},
		{in: "16/01/2024", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDue(tt.in, loc)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "parseDue() = %v, want %v", got, tt.want)
		})
	}
}
