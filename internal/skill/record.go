package skill

import (
	"fmt"
	"slices"
	"strings"
)

// Record is one discovered skill.
type Record struct {
	// Name is the header's name, or the directory name when absent.
	Name string `json:"name"`
	// Path is the directory containing the skill document.
	Path string `json:"path"`
	// DocumentPath is the full path to SKILL.md.
	DocumentPath string `json:"document_path"`
	// Description is the header's description or a summary of the body.
	Description string `json:"description"`
	// Directory is the base name of Path.
	Directory string `json:"directory"`
	// WhenToUse is copied from the header when present; nil otherwise.
	WhenToUse any `json:"when_to_use,omitempty"`
}

// HasWhenToUse reports whether the header supplied when_to_use.
func (r Record) HasWhenToUse() bool {
	return r.WhenToUse != nil
}

// SortRecords orders records by name. Equal names keep their relative order.
func SortRecords(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) int {
		return strings.Compare(a.Name, b.Name)
	})
}

// FormatValue renders a decoded header value as display text.
// Strings are returned verbatim and lists are joined with ", ".
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []any:
		parts := make([]string, len(t))
		for i, item := range t {
			parts[i] = FormatValue(item)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(t)
	}
}
