package check

import (
	"fmt"
	"log/slog"
	"strings"
)

// Severity classifies how serious an Issue is. Warning-level issues are
// collected separately and never invalidate a result.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Issue describes a single problem found during validation. Message is a
// developer-facing description; Code plus Context carry the machine-readable
// parameters, so message translation stays entirely on the caller's side.
type Issue struct {
	Message  string
	Field    string
	Code     string
	Severity Severity
	Path     string
	Value    any
	Context  map[string]any
}

// LogValue renders the issue as a structured slog group.
func (i Issue) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("code", i.Code),
		slog.String("severity", i.Severity.String()),
		slog.String("path", i.Path),
		slog.String("message", i.Message),
	}
	if i.Field != "" {
		attrs = append(attrs, slog.String("field", i.Field))
	}
	return slog.GroupValue(attrs...)
}

// Issues is an ordered collection of issues that satisfies the error
// interface, so validation failures can bubble up a single error value
// while preserving every field-level detail.
type Issues []Issue

func (is Issues) Error() string {
	if len(is) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(is))
	for _, iss := range is {
		parts = append(parts, fmt.Sprintf("%s: %s", iss.Path, iss.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (is *Issues) Add(iss Issue) {
	*is = append(*is, iss)
}

// Has reports whether any issue was recorded for the given field.
func (is Issues) Has(field string) bool {
	for _, iss := range is {
		if iss.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for the given field, in order.
func (is Issues) Get(field string) []string {
	var messages []string
	for _, iss := range is {
		if iss.Field == field {
			messages = append(messages, iss.Message)
		}
	}
	return messages
}

// Fields returns the distinct field names with issues, in first-seen order.
func (is Issues) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, iss := range is {
		if iss.Field != "" && !seen[iss.Field] {
			fields = append(fields, iss.Field)
			seen[iss.Field] = true
		}
	}
	return fields
}

func (is Issues) IsEmpty() bool {
	return len(is) == 0
}

// LogValue renders the collection as an indexed slog group.
func (is Issues) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(is))
	for i, iss := range is {
		attrs = append(attrs, slog.Any(fmt.Sprintf("%d", i), iss))
	}
	return slog.GroupValue(attrs...)
}
