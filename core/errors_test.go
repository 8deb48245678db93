package core

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrKeyNotFound))
	assert.True(t, IsNotFound(errors.Wrap(ErrKeyNotFound, "loading notes_data")))
	assert.False(t, IsNotFound(errors.New("disk full")))
	assert.False(t, IsNotFound(nil))
}

func TestFieldErrors(t *testing.T) {
	validate, translator := NewValidator()

	type form struct {
		Day  string `json:"day" validate:"required,weekday"`
		Room string `json:"room" validate:"required"`
	}

	tests := []struct {
		name   string
		err    error
		want   map[string]string
		wantOk bool
	}{
		{
			name:   "validator errors",
			err:    validate.Struct(form{Day: "Funday"}),
			want:   map[string]string{"day": "day must be a day of the week (Monday to Sunday)", "room": "this field is required"},
			wantOk: true,
		},
		{
			name:   "validation error",
			err:    NewValidationError(nil, FieldError{Field: "dueDateTime", Error: "bad date"}),
			want:   map[string]string{"dueDateTime": "bad date"},
			wantOk: true,
		},
		{
			name:   "validation error without fields",
			err:    NewValidationError(errors.New("nope")),
			want:   map[string]string{"error": "nope"},
			wantOk: true,
		},
		{name: "other error", err: errors.New("boom")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FieldErrors(tt.err, translator)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsWeekday(t *testing.T) {
	assert.True(t, IsWeekday("Monday"))
	assert.True(t, IsWeekday("Sunday"))
	assert.False(t, IsWeekday("monday"))
	assert.False(t, IsWeekday(""))
}

func TestCleanString(t *testing.T) {
	assert.Equal(t, "Physics", CleanString("  Physics\n"))
	assert.Equal(t, "high", CleanString(" HIGH ", true))
}
