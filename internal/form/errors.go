package form

import (
	"errors"
	"sort"

	"github.com/fadilmartias/skillsyncer/internal/apperror"
)

var (
	ErrUnknownPath  = errors.New("unknown form path")
	ErrIndexRange   = errors.New("index out of range")
	ErrTypeMismatch = errors.New("value type does not match field")
	ErrNotSequence  = errors.New("path does not address an ordered sequence")
	ErrLastProject  = errors.New("at least one project slot is required")
)

// ValidationErrors maps "<section>.<field>" to a human-readable message.
type ValidationErrors map[string]string

func (v ValidationErrors) Empty() bool { return len(v) == 0 }

// Keys returns the error keys in a stable order.
func (v ValidationErrors) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (v ValidationErrors) Messages() []string {
	out := make([]string, 0, len(v))
	for _, k := range v.Keys() {
		out = append(out, v[k])
	}
	return out
}

func (v ValidationErrors) Clone() ValidationErrors {
	out := make(ValidationErrors, len(v))
	for k, msg := range v {
		out[k] = msg
	}
	return out
}

func (v ValidationErrors) merge(other ValidationErrors) {
	for k, msg := range other {
		v[k] = msg
	}
}

// Err converts a non-empty set into a client validation error.
func (v ValidationErrors) Err() error {
	if v.Empty() {
		return nil
	}
	return apperror.New(apperror.KindClientValidation, "Please complete the required fields", v.Messages()...)
}
