// Package strings provides string normalization used by request DTOs.
package strings

import (
	"reflect"
	"strings"
)

// DedupeAndTrim trims each element and drops empties and repeats. Order is preserved.
//
//	DedupeAndTrim([]string{"  go ", "rust", "go", "", "  "})
//	// []string{"go", "rust"}
func DedupeAndTrim(values []string) []string {
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}

// DedupeFold is DedupeAndTrim with case-insensitive matching. The first
// spelling seen is kept.
func DedupeFold(values []string) []string {
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}

// TrimFields trims whitespace from every exported string and []string field
// of the struct pointed to by v. Other kinds are left alone.
func TrimFields(v any) {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return
	}
	val = val.Elem()
	if val.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if !field.CanSet() {
			continue
		}
		switch field.Kind() {
		case reflect.String:
			field.SetString(strings.TrimSpace(field.String()))
		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					elem := field.Index(j)
					elem.SetString(strings.TrimSpace(elem.String()))
				}
			}
		}
	}
}

// Humanize turns a snake_case field name into words: "phone_number" -> "phone number".
func Humanize(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}
