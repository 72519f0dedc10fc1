package store

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for archive operations. Callers classify failures with
// errors.Is against these markers.
var (
	// ErrNotFound marks operations that referenced a video absent from the archive.
	ErrNotFound = errors.New("not found")
	// ErrInvalidQuery marks malformed or empty search input.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrUnavailable marks failures to open or reach the archive database.
	ErrUnavailable = errors.New("archive unavailable")
	// ErrIntegrity marks structurally invalid input: duplicate batch ids,
	// captions referencing unknown videos, empty correction text.
	ErrIntegrity = errors.New("integrity violation")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		return fmt.Errorf("%s: %w", detail, err)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "store failure"
	}
	return strings.Join(parts, ": ")
}
