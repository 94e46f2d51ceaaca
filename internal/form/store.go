package form

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/fadilmartias/skillsyncer/internal/dto"
)

// Store holds one in-progress application draft and its current error set.
// Every mutation builds a fresh copy of the draft; readers always get deep
// copies, so a draft handed out earlier never changes underneath its holder.
type Store struct {
	mu     sync.RWMutex
	draft  dto.ApplicationDraft
	errors ValidationErrors
}

func NewStore(initial dto.ApplicationDraft) *Store {
	return &Store{draft: ensureShape(initial.Clone()), errors: ValidationErrors{}}
}

func ensureShape(d dto.ApplicationDraft) dto.ApplicationDraft {
	if d.Skills.TechnicalSkills == nil {
		d.Skills.TechnicalSkills = []string{}
	}
	if d.Skills.SoftSkills == nil {
		d.Skills.SoftSkills = []string{}
	}
	if len(d.Projects) == 0 {
		d.Projects = []dto.Project{{TechnologiesUsed: []string{}}}
	}
	for i := range d.Projects {
		if d.Projects[i].TechnologiesUsed == nil {
			d.Projects[i].TechnologiesUsed = []string{}
		}
	}
	return d
}

func (s *Store) Draft() dto.ApplicationDraft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draft.Clone()
}

func (s *Store) Errors() ValidationErrors {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errors.Clone()
}

// SetErrors replaces the whole error set.
func (s *Store) SetErrors(errs ValidationErrors) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = errs.Clone()
}

func (s *Store) SetError(key, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors[key] = message
}

func (s *Store) ClearError(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.errors, key)
}

// Reset discards the draft and errors.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = dto.NewApplicationDraft()
	s.errors = ValidationErrors{}
}

// Set replaces one leaf value. section may address a project slot
// ("projects.1"); field is the JSON name of the leaf.
func (s *Store) Set(section, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.draft.Clone()
	target, err := resolve(reflect.ValueOf(&next).Elem(), splitPath(section+"."+field))
	if err != nil {
		return err
	}
	if err := assign(target, value); err != nil {
		return fmt.Errorf("set %s.%s: %w", section, field, err)
	}
	s.draft = next
	delete(s.errors, section+"."+field)
	return nil
}

// Append adds item to the end of the sequence at path. Blank strings are
// ignored; duplicates are kept.
func (s *Store) Append(path string, item any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.draft.Clone()
	seq, err := resolve(reflect.ValueOf(&next).Elem(), splitPath(path))
	if err != nil {
		return err
	}
	if seq.Kind() != reflect.Slice {
		return fmt.Errorf("%w: %s", ErrNotSequence, path)
	}

	if str, ok := item.(string); ok {
		item = strings.TrimSpace(str)
		if item == "" {
			return nil
		}
	}
	if p, ok := item.(dto.Project); ok && p.TechnologiesUsed == nil {
		p.TechnologiesUsed = []string{}
		item = p
	}

	elem := reflect.New(seq.Type().Elem()).Elem()
	if err := assign(elem, item); err != nil {
		return fmt.Errorf("append %s: %w", path, err)
	}
	seq.Set(reflect.Append(seq, elem))
	s.draft = next
	delete(s.errors, path)
	return nil
}

// Remove deletes the element at index from the sequence at path. The last
// project slot can never be removed.
func (s *Store) Remove(path string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.draft.Clone()
	seq, err := resolve(reflect.ValueOf(&next).Elem(), splitPath(path))
	if err != nil {
		return err
	}
	if seq.Kind() != reflect.Slice {
		return fmt.Errorf("%w: %s", ErrNotSequence, path)
	}
	if index < 0 || index >= seq.Len() {
		return fmt.Errorf("%w: %s[%d]", ErrIndexRange, path, index)
	}
	if path == "projects" && seq.Len() == 1 {
		return ErrLastProject
	}

	out := reflect.MakeSlice(seq.Type(), 0, seq.Len()-1)
	out = reflect.AppendSlice(out, seq.Slice(0, index))
	out = reflect.AppendSlice(out, seq.Slice(index+1, seq.Len()))
	seq.Set(out)
	s.draft = next
	return nil
}

func splitPath(path string) []string {
	parts := strings.Split(path, ".")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func resolve(v reflect.Value, path []string) (reflect.Value, error) {
	if len(path) == 0 {
		return reflect.Value{}, ErrUnknownPath
	}
	for _, part := range path {
		switch v.Kind() {
		case reflect.Struct:
			f, ok := fieldByJSONName(v, part)
			if !ok {
				return reflect.Value{}, fmt.Errorf("%w: %q", ErrUnknownPath, part)
			}
			v = f
		case reflect.Slice:
			i, err := strconv.Atoi(part)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("%w: %q", ErrUnknownPath, part)
			}
			if i < 0 || i >= v.Len() {
				return reflect.Value{}, fmt.Errorf("%w: %d", ErrIndexRange, i)
			}
			v = v.Index(i)
		default:
			return reflect.Value{}, fmt.Errorf("%w: %q", ErrUnknownPath, part)
		}
	}
	return v, nil
}

func fieldByJSONName(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		tag, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if tag == name {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func assign(target reflect.Value, value any) error {
	if value == nil {
		return ErrTypeMismatch
	}
	rv := reflect.ValueOf(value)
	switch {
	case rv.Type().AssignableTo(target.Type()):
		if rv.Kind() == reflect.Slice {
			cp := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
			reflect.Copy(cp, rv)
			rv = cp
		}
		target.Set(rv)
	case isNumber(rv.Kind()) && isNumber(target.Kind()):
		target.Set(rv.Convert(target.Type()))
	default:
		return fmt.Errorf("%w: %s into %s", ErrTypeMismatch, rv.Type(), target.Type())
	}
	return nil
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
