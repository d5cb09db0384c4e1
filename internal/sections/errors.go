// Package sections provides per-section validation contracts and the
// emptiness policy deciding which instances are persisted and rendered.
package sections

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// FieldError pins a validation failure to one field of one section
// instance. It is recoverable locally and never network-triggered.
type FieldError struct {
	Section types.SectionType `json:"section"`
	Index   int               `json:"index"`
	Field   string            `json:"field"`
	Message string            `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s[%d].%s: %s", e.Section, e.Index, e.Field, e.Message)
}

// SectionError aggregates the field errors of one section's filled
// instances. It is surfaced before any network call.
type SectionError struct {
	Section types.SectionType `json:"section"`
	Fields  []FieldError      `json:"fields"`
}

func (e *SectionError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "section %s failed validation:\n", e.Section)
	for i, fe := range e.Fields {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, fe.Error())
	}
	return sb.String()
}

// ErrorMap groups field errors by (index, field) for editor display.
func (e *SectionError) ErrorMap() map[int]map[string]string {
	out := make(map[int]map[string]string)
	for _, fe := range e.Fields {
		if out[fe.Index] == nil {
			out[fe.Index] = make(map[string]string)
		}
		// First message per field wins.
		if _, ok := out[fe.Index][fe.Field]; !ok {
			out[fe.Index][fe.Field] = fe.Message
		}
	}
	return out
}
