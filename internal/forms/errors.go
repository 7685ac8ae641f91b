package forms

import (
	"errors"
	"strings"
)

// RuleUnique marks a field error caused by a value that already exists in the store.
const RuleUnique = "unique"

// ErrUniquenessConflict matches, via errors.Is, any ValidationError that
// contains at least one uniqueness failure.
var ErrUniquenessConflict = errors.New("uniqueness conflict")

type FieldError struct {
	Field   string
	Rule    string
	Message string
}

// ValidationError collects every failed field of a form submission.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, fe := range e.Fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(fe.Field + ": " + fe.Message)
	}
	return b.String()
}

func (e *ValidationError) Is(target error) bool {
	if target != ErrUniquenessConflict {
		return false
	}
	for _, fe := range e.Fields {
		if fe.Rule == RuleUnique {
			return true
		}
	}
	return false
}

// Add records a failure. Only the first failure per field is kept.
func (e *ValidationError) Add(field, rule, message string) {
	if e.Has(field) {
		return
	}
	e.Fields = append(e.Fields, FieldError{Field: field, Rule: rule, Message: message})
}

func (e *ValidationError) Has(field string) bool {
	_, ok := e.Get(field)
	return ok
}

func (e *ValidationError) Get(field string) (FieldError, bool) {
	for _, fe := range e.Fields {
		if fe.Field == field {
			return fe, true
		}
	}
	return FieldError{}, false
}

// Conflict reports whether field failed its uniqueness check.
func (e *ValidationError) Conflict(field string) bool {
	fe, ok := e.Get(field)
	return ok && fe.Rule == RuleUnique
}

// Messages returns field name → message, for templates.
func (e *ValidationError) Messages() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, fe := range e.Fields {
		out[fe.Field] = fe.Message
	}
	return out
}

func (e *ValidationError) empty() bool { return len(e.Fields) == 0 }

// orNil keeps a typed nil *ValidationError from escaping as a non-nil error.
func (e *ValidationError) orNil() error {
	if e.empty() {
		return nil
	}
	return e
}
