package extraction

import "fmt"

// ExtractionError indicates a document could not be converted to text.
// Batch processing treats it as a per-item failure and keeps going.
type ExtractionError struct {
	Filename string
	Reason   string
	Err      error
}

func (e *ExtractionError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("extraction failed for %s: %s", e.Filename, e.Reason)
	}
	return fmt.Sprintf("extraction failed: %s", e.Reason)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
