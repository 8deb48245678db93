package core

import (
	"github.com/go-playground/validator/v10"
	ut "github.com/go-playground/universal-translator"
	"github.com/pkg/errors"
)

// ErrKeyNotFound is returned by a KVStore when nothing is stored under a key.
var ErrKeyNotFound = errors.New("key not found")

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		if len(err.Fields) > 0 {
			return err.Fields[0].Field + ": " + err.Fields[0].Error
		}
		return ""
	}
	return err.Err.Error()
}

// IsNotFound reports whether err (or its cause) is ErrKeyNotFound.
func IsNotFound(err error) bool {
	return errors.Cause(err) == ErrKeyNotFound
}

// FieldErrors flattens validation errors into a map of field -> message.
// ok is false when err is not a validation error.
func FieldErrors(err error, translator ut.Translator) (fields map[string]string, ok bool) {
	switch origErr := errors.Cause(err).(type) {
	case validator.ValidationErrors:
		fields = make(map[string]string, len(origErr))
		for _, vErr := range origErr {
			fields[vErr.Field()] = vErr.Translate(translator)
		}
		return fields, true
	case *ValidationError:
		fields = make(map[string]string, len(origErr.Fields))
		for _, fErr := range origErr.Fields {
			fields[fErr.Field] = fErr.Error
		}
		if len(fields) == 0 && origErr.Err != nil {
			fields["error"] = origErr.Err.Error()
		}
		return fields, true
	default:
		return nil, false
	}
}
