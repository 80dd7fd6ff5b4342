package services

import (
	"errors"
	"sort"
	"strings"
)

var ErrPollNotFound = errors.New("poll not found")

// ValidationError carries per-field messages meant to be shown back on the
// form that produced them.
type ValidationError struct {
	Fields map[string]string
}

func (v *ValidationError) Error() string {
	keys := make([]string, 0, len(v.Fields))
	for k := range v.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, k := range keys {
		parts = append(parts, k+": "+v.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
