package types

import "fmt"

// UnknownSectionError indicates a section type outside the fixed set,
// or an operation a section does not support.
type UnknownSectionError struct {
	Section SectionType
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("unknown or unsupported section: %q", string(e.Section))
}

// IndexOutOfRangeError indicates an instance index outside the current
// bounds of a repeatable section.
type IndexOutOfRangeError struct {
	Section SectionType
	Index   int
	Length  int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("section %s: instance index %d out of range (have %d)", e.Section, e.Index, e.Length)
}
