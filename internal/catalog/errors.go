// Package catalog loads, normalizes and serves the workout catalog.
package catalog

import "fmt"

// LoadError represents an error during file I/O, schema validation or JSON parsing
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// NormalizationError represents an entry that cannot be normalized
type NormalizationError struct {
	EntryID int
	Message string
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("normalization error: entry %d: %s", e.EntryID, e.Message)
}
