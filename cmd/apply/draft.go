package main

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/fadilmartias/skillsyncer/internal/dto"
	"github.com/fadilmartias/skillsyncer/internal/form"
	"gopkg.in/yaml.v3"
)

// loadDraftFile reads a YAML application draft.
func loadDraftFile(path string) (dto.ApplicationDraft, error) {
	var d dto.ApplicationDraft
	raw, err := os.ReadFile(path)
	if err != nil {
		return d, fmt.Errorf("read draft file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return d, fmt.Errorf("parse draft file %s: %w", path, err)
	}
	return d, nil
}

// mergeDraft writes every non-empty value of file into the store through its
// path setters, so values pre-filled from the profile survive unless the file
// overrides them. List entries are appended unless the list already holds
// them; strings compare case-insensitively.
func mergeDraft(store *form.Store, file dto.ApplicationDraft) error {
	v := reflect.ValueOf(file)
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		section := jsonName(t.Field(i))
		if section == "projects" {
			if err := mergeProjects(store, file.Projects); err != nil {
				return err
			}
			continue
		}
		if err := mergeSection(store, section, v.Field(i)); err != nil {
			return err
		}
	}
	return nil
}

func mergeProjects(store *form.Store, projects []dto.Project) error {
	for i, p := range projects {
		if i >= len(store.Draft().Projects) {
			if err := store.Append("projects", dto.Project{}); err != nil {
				return err
			}
		}
		if err := mergeSection(store, fmt.Sprintf("projects.%d", i), reflect.ValueOf(p)); err != nil {
			return err
		}
	}
	return nil
}

func mergeSection(store *form.Store, section string, v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := jsonName(t.Field(i))
		fv := v.Field(i)
		if fv.IsZero() {
			continue
		}
		if fv.Kind() == reflect.Slice {
			path := section + "." + field
			for j := 0; j < fv.Len(); j++ {
				item := fv.Index(j).Interface()
				if containsItem(valueAt(store.Draft(), path), item) {
					continue
				}
				if err := store.Append(path, item); err != nil {
					return err
				}
			}
			continue
		}
		if err := store.Set(section, field, fv.Interface()); err != nil {
			return err
		}
	}
	return nil
}

// valueAt follows a dotted JSON path such as "projects.0.technologiesUsed".
// It returns the zero Value when the path does not resolve.
func valueAt(d dto.ApplicationDraft, path string) reflect.Value {
	v := reflect.ValueOf(d)
	for _, part := range strings.Split(path, ".") {
		switch v.Kind() {
		case reflect.Slice:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= v.Len() {
				return reflect.Value{}
			}
			v = v.Index(i)
		case reflect.Struct:
			next := reflect.Value{}
			for k := 0; k < v.NumField(); k++ {
				if jsonName(v.Type().Field(k)) == part {
					next = v.Field(k)
					break
				}
			}
			if !next.IsValid() {
				return next
			}
			v = next
		default:
			return reflect.Value{}
		}
	}
	return v
}

func containsItem(list reflect.Value, item any) bool {
	if !list.IsValid() || list.Kind() != reflect.Slice {
		return false
	}
	want, isString := item.(string)
	for i := 0; i < list.Len(); i++ {
		cur := list.Index(i).Interface()
		if isString {
			if got, ok := cur.(string); ok && strings.EqualFold(strings.TrimSpace(got), strings.TrimSpace(want)) {
				return true
			}
			continue
		}
		if reflect.DeepEqual(cur, item) {
			return true
		}
	}
	return false
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	return name
}
