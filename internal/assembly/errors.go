package assembly

// NotReadyForExportError indicates an export was attempted on a draft
// with nothing persisted yet. It blocks the export action only.
type NotReadyForExportError struct{}

func (e *NotReadyForExportError) Error() string {
	return "resume has not been saved yet, nothing to export"
}
