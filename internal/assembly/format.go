// Package assembly projects the resume document into the two shapes
// its consumers render: the live preview and the final export. Both
// projections derive every displayed value through the helpers in this
// file so they cannot disagree on formatting.
package assembly

import (
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/sections"
)

// TagDelimiter joins skill and interest lists everywhere.
const TagDelimiter = ", "

// FormatDate renders a stored "YYYY-MM" date as "Jan 2006". Values
// that do not parse are shown as typed.
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01", s); err == nil {
		return t.Format("Jan 2006")
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("Jan 2006")
	}
	return s
}

// FormatPeriod renders a start/end date pair.
func FormatPeriod(start, end string) string {
	return FormatDate(start) + " - " + FormatDate(end)
}

// JoinTags trims, drops blanks and joins a tag list with the shared
// delimiter.
func JoinTags(tags []string) string {
	return strings.Join(sections.CleanTags(tags), TagDelimiter)
}
