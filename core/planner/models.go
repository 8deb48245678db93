package planner

import "time"

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Next returns the status following s in the tap-to-advance cycle:
// pending -> in-progress -> completed -> pending.
func (s Status) Next() Status {
	switch s {
	case StatusPending:
		return StatusInProgress
	case StatusInProgress:
		return StatusCompleted
	default:
		return StatusPending
	}
}

type NoteType string

const (
	NoteText  NoteType = "text"
	NoteImage NoteType = "image"
	NoteVideo NoteType = "video"
)

// Weekdays lists the recognized class days, Monday first.
var Weekdays = []string{
	time.Monday.String(),
	time.Tuesday.String(),
	time.Wednesday.String(),
	time.Thursday.String(),
	time.Friday.String(),
	time.Saturday.String(),
	time.Sunday.String(),
}

type Assignment struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Subject     string    `json:"subject" yaml:"subject"`
	DueDate     string    `json:"dueDate" yaml:"dueDate"`         // display label, eg. "Tomorrow"
	DueDateTime time.Time `json:"dueDateTime" yaml:"dueDateTime"` // used for sorting
	Priority    Priority  `json:"priority" yaml:"priority"`
	Status      Status    `json:"status" yaml:"status"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
}

// Progress is the completion percentage shown next to an assignment.
func (a Assignment) Progress() int {
	switch a.Status {
	case StatusCompleted:
		return 100
	case StatusInProgress:
		return 50
	default:
		return 0
	}
}

func (a Assignment) IsCompleted() bool { return a.Status == StatusCompleted }

type Class struct {
	ID       string `json:"id" yaml:"id"`
	Subject  string `json:"subject" yaml:"subject"`
	Time     string `json:"time" yaml:"time"`
	Duration string `json:"duration" yaml:"duration"`
	Room     string `json:"room,omitempty" yaml:"room,omitempty"`
	Day      string `json:"day" yaml:"day"`
	Color    string `json:"color" yaml:"color"`
}

type Note struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Subject   string    `json:"subject" yaml:"subject"`
	Content   string    `json:"content" yaml:"content"`
	Type      NoteType  `json:"type" yaml:"type"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

type Profile struct {
	Name          string `json:"name" yaml:"name"`
	Class         string `json:"class" yaml:"class"`
	School        string `json:"school" yaml:"school"`
	StudyHours    int    `json:"studyHours" yaml:"studyHours"`
	CurrentStreak int    `json:"currentStreak" yaml:"currentStreak"`
}

// Stats is derived from the collections; it is never stored.
type Stats struct {
	TotalNotes            int       `json:"totalNotes" yaml:"totalNotes"`
	TotalAssignments      int       `json:"totalAssignments" yaml:"totalAssignments"`
	CompletedAssignments  int       `json:"completedAssignments" yaml:"completedAssignments"`
	PendingAssignments    int       `json:"pendingAssignments" yaml:"pendingAssignments"`
	InProgressAssignments int       `json:"inProgressAssignments" yaml:"inProgressAssignments"`
	ClassesToday          int       `json:"classesToday" yaml:"classesToday"`
	DueSoon               int       `json:"dueSoon" yaml:"dueSoon"`
	Overdue               int       `json:"overdue" yaml:"overdue"`
	OverallProgress       int       `json:"overallProgress" yaml:"overallProgress"`
	StudyHours            int       `json:"studyHours" yaml:"studyHours"`
	CurrentStreak         int       `json:"currentStreak" yaml:"currentStreak"`
	ComputedAt            time.Time `json:"computedAt" yaml:"computedAt"`
}

// SubjectSummary groups notes of one subject.
type SubjectSummary struct {
	Subject     string    `json:"subject" yaml:"subject"`
	NoteCount   int       `json:"noteCount" yaml:"noteCount"`
	LastUpdated time.Time `json:"lastUpdated" yaml:"lastUpdated"`
}

// Patches only apply their non-nil fields.
type (
	AssignmentPatch struct {
		Title       *string
		Subject     *string
		DueDate     *string
		DueDateTime *time.Time
		Priority    *Priority
		Status      *Status
		Description *string
	}

	ClassPatch struct {
		Subject  *string
		Time     *string
		Duration *string
		Room     *string
		Day      *string
		Color    *string
	}

	NotePatch struct {
		Title   *string
		Subject *string
		Content *string
		Type    *NoteType
	}

	ProfilePatch struct {
		Name          *string
		Class         *string
		School        *string
		StudyHours    *int
		CurrentStreak *int
	}
)

func (p AssignmentPatch) apply(a *Assignment) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Subject != nil {
		a.Subject = *p.Subject
	}
	if p.DueDate != nil {
		a.DueDate = *p.DueDate
	}
	if p.DueDateTime != nil {
		a.DueDateTime = *p.DueDateTime
	}
	if p.Priority != nil {
		a.Priority = *p.Priority
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
}

func (p ClassPatch) apply(c *Class) {
	if p.Subject != nil {
		c.Subject = *p.Subject
	}
	if p.Time != nil {
		c.Time = *p.Time
	}
	if p.Duration != nil {
		c.Duration = *p.Duration
	}
	if p.Room != nil {
		c.Room = *p.Room
	}
	if p.Day != nil {
		c.Day = *p.Day
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
}

func (p NotePatch) apply(n *Note) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Subject != nil {
		n.Subject = *p.Subject
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Type != nil {
		n.Type = *p.Type
	}
}

func (p ProfilePatch) apply(pr *Profile) {
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.Class != nil {
		pr.Class = *p.Class
	}
	if p.School != nil {
		pr.School = *p.School
	}
	if p.StudyHours != nil {
		pr.StudyHours = *p.StudyHours
	}
	if p.CurrentStreak != nil {
		pr.CurrentStreak = *p.CurrentStreak
	}
}
