package planner

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/blink-new/study-saathi-app-dwaa98jh/core"
)

// Forms validate user input before it reaches the Store; the Store itself accepts anything.

// RegisterValidators registers the struct level validations of the planner forms.
func RegisterValidators(validate *validator.Validate) {
	validate.RegisterStructValidation(assignmentStructValidation, NewAssignment{})
}

// assignmentStructValidation requires a due instant on NewAssignment.
func assignmentStructValidation(sl validator.StructLevel) {
	na, ok := sl.Current().Interface().(NewAssignment)
	if !ok {
		return
	}
	if na.DueDateTime.IsZero() {
		sl.ReportError(na.DueDateTime, "dueDateTime", "DueDateTime", "required", "")
	}
}

// NewAssignment contains information needed to create a new Assignment.
type NewAssignment struct {
	Title       string    `json:"title" validate:"required"`
	Subject     string    `json:"subject" validate:"required"`
	DueDate     string    `json:"dueDate" validate:"required"`
	DueDateTime time.Time `json:"dueDateTime"`
	Priority    Priority  `json:"priority" validate:"omitempty,oneof=high medium low"`
	Description string    `json:"description"`
}

// Validate cleans the form and validates it. An empty DueDate label is derived
// from DueDateTime relative to now, and Priority defaults to medium.
func (na *NewAssignment) Validate(validate *validator.Validate, now time.Time) error {
	na.Title = core.CleanString(na.Title)
	na.Subject = core.CleanString(na.Subject)
	na.DueDate = core.CleanString(na.DueDate)
	na.Description = core.CleanString(na.Description)
	na.Priority = Priority(core.CleanString(string(na.Priority), true /* lower */))

	if na.DueDate == "" && !na.DueDateTime.IsZero() {
		na.DueDate = DueLabel(na.DueDateTime, now)
	}
	if na.Priority == "" {
		na.Priority = PriorityMedium
	}
	return validate.Struct(na)
}

// Assignment builds a pending Assignment from the form.
func (na NewAssignment) Assignment() Assignment {
	return Assignment{
		Title:       na.Title,
		Subject:     na.Subject,
		DueDate:     na.DueDate,
		DueDateTime: na.DueDateTime,
		Priority:    na.Priority,
		Status:      StatusPending,
		Description: na.Description,
	}
}

// UpdateAssignment defines what information may be provided to modify an existing Assignment.
// Empty fields are left unchanged; ClearDescription empties the description.
type UpdateAssignment struct {
	Title            string    `json:"title"`
	Subject          string    `json:"subject"`
	DueDate          string    `json:"dueDate"`
	DueDateTime      time.Time `json:"dueDateTime"`
	Priority         Priority  `json:"priority" validate:"omitempty,oneof=high medium low"`
	Status           Status    `json:"status" validate:"omitempty,oneof=pending in-progress completed"`
	Description      string    `json:"description" validate:"excluded_with=ClearDescription"`
	ClearDescription bool      `json:"clearDescription"`
}

func (ua *UpdateAssignment) Validate(validate *validator.Validate, now time.Time) error {
	ua.Title = core.CleanString(ua.Title)
	ua.Subject = core.CleanString(ua.Subject)
	ua.DueDate = core.CleanString(ua.DueDate)
	ua.Description = core.CleanString(ua.Description)
	ua.Priority = Priority(core.CleanString(string(ua.Priority), true /* lower */))
	ua.Status = Status(core.CleanString(string(ua.Status), true /* lower */))

	if ua.DueDate == "" && !ua.DueDateTime.IsZero() {
		ua.DueDate = DueLabel(ua.DueDateTime, now)
	}
	return validate.Struct(ua)
}

func (ua UpdateAssignment) Patch() AssignmentPatch {
	var p AssignmentPatch
	p.Title = strPtr(ua.Title)
	p.Subject = strPtr(ua.Subject)
	p.DueDate = strPtr(ua.DueDate)
	p.Description = strPtr(ua.Description)
	if ua.ClearDescription {
		empty := ""
		p.Description = &empty
	}
	if !ua.DueDateTime.IsZero() {
		due := ua.DueDateTime
		p.DueDateTime = &due
	}
	if ua.Priority != "" {
		prio := ua.Priority
		p.Priority = &prio
	}
	if ua.Status != "" {
		status := ua.Status
		p.Status = &status
	}
	return p
}

// NewClass contains information needed to add a Class to the schedule.
type NewClass struct {
	Subject  string `json:"subject" validate:"required"`
	Time     string `json:"time" validate:"required"`
	Duration string `json:"duration"`
	Room     string `json:"room" validate:"required"`
	Day      string `json:"day" validate:"required,weekday"`
	Color    string `json:"color" validate:"omitempty,hexcolor"`
}

// Validate cleans the form and validates it. Duration defaults to "1h" and
// Color to the subject's color.
func (nc *NewClass) Validate(validate *validator.Validate) error {
	nc.Subject = core.CleanString(nc.Subject)
	nc.Time = core.CleanString(nc.Time)
	nc.Duration = core.CleanString(nc.Duration)
	nc.Room = core.CleanString(nc.Room)
	nc.Day = weekdayName(nc.Day)
	nc.Color = core.CleanString(nc.Color)

	if nc.Duration == "" {
		nc.Duration = "1h"
	}
	if nc.Color == "" {
		nc.Color = SubjectColor(nc.Subject)
	}
	return validate.Struct(nc)
}

func (nc NewClass) Class() Class {
	return Class{
		Subject:  nc.Subject,
		Time:     nc.Time,
		Duration: nc.Duration,
		Room:     nc.Room,
		Day:      nc.Day,
		Color:    nc.Color,
	}
}

// UpdateClass defines what information may be provided to modify an existing Class.
// Empty fields are left unchanged.
type UpdateClass struct {
	Subject  string `json:"subject"`
	Time     string `json:"time"`
	Duration string `json:"duration"`
	Room     string `json:"room"`
	Day      string `json:"day" validate:"omitempty,weekday"`
	Color    string `json:"color" validate:"omitempty,hexcolor"`
}

func (uc *UpdateClass) Validate(validate *validator.Validate) error {
	uc.Subject = core.CleanString(uc.Subject)
	uc.Time = core.CleanString(uc.Time)
	uc.Duration = core.CleanString(uc.Duration)
	uc.Room = core.CleanString(uc.Room)
	uc.Day = weekdayName(uc.Day)
	uc.Color = core.CleanString(uc.Color)
	return validate.Struct(uc)
}

func (uc UpdateClass) Patch() ClassPatch {
	return ClassPatch{
		Subject:  strPtr(uc.Subject),
		Time:     strPtr(uc.Time),
		Duration: strPtr(uc.Duration),
		Room:     strPtr(uc.Room),
		Day:      strPtr(uc.Day),
		Color:    strPtr(uc.Color),
	}
}

// NewNote contains information needed to create a new Note.
type NewNote struct {
	Title   string   `json:"title" validate:"required"`
	Subject string   `json:"subject" validate:"required"`
	Content string   `json:"content" validate:"required"`
	Type    NoteType `json:"type" validate:"omitempty,oneof=text image video"`
}

func (nn *NewNote) Validate(validate *validator.Validate) error {
	nn.Title = core.CleanString(nn.Title)
	nn.Subject = core.CleanString(nn.Subject)
	nn.Content = core.CleanString(nn.Content)
	nn.Type = NoteType(core.CleanString(string(nn.Type), true /* lower */))
	if nn.Type == "" {
		nn.Type = NoteText
	}
	return validate.Struct(nn)
}

func (nn NewNote) Note() Note {
	return Note{
		Title:   nn.Title,
		Subject: nn.Subject,
		Content: nn.Content,
		Type:    nn.Type,
	}
}

// UpdateNote defines what information may be provided to modify an existing Note.
// Empty fields are left unchanged.
type UpdateNote struct {
	Title   string   `json:"title"`
	Subject string   `json:"subject"`
	Content string   `json:"content"`
	Type    NoteType `json:"type" validate:"omitempty,oneof=text image video"`
}

func (un *UpdateNote) Validate(validate *validator.Validate) error {
	un.Title = core.CleanString(un.Title)
	un.Subject = core.CleanString(un.Subject)
	un.Content = core.CleanString(un.Content)
	un.Type = NoteType(core.CleanString(string(un.Type), true /* lower */))
	return validate.Struct(un)
}

func (un UpdateNote) Patch() NotePatch {
	var p NotePatch
	p.Title = strPtr(un.Title)
	p.Subject = strPtr(un.Subject)
	p.Content = strPtr(un.Content)
	if un.Type != "" {
		typ := un.Type
		p.Type = &typ
	}
	return p
}

// EditProfile is the edit-profile form. Empty fields are left unchanged.
type EditProfile struct {
	Name          string `json:"name"`
	Class         string `json:"class"`
	School        string `json:"school"`
	StudyHours    *int   `json:"studyHours" validate:"omitempty,min=0"`
	CurrentStreak *int   `json:"currentStreak" validate:"omitempty,min=0"`
}

func (ep *EditProfile) Validate(validate *validator.Validate) error {
	ep.Name = core.CleanString(ep.Name)
	ep.Class = core.CleanString(ep.Class)
	ep.School = core.CleanString(ep.School)
	return validate.Struct(ep)
}

func (ep EditProfile) Patch() ProfilePatch {
	return ProfilePatch{
		Name:          strPtr(ep.Name),
		Class:         strPtr(ep.Class),
		School:        strPtr(ep.School),
		StudyHours:    ep.StudyHours,
		CurrentStreak: ep.CurrentStreak,
	}
}

// weekdayName cleans s and capitalizes it, so "monday" becomes "Monday".
func weekdayName(s string) string {
	s = core.CleanString(s, true /* lower */)
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
