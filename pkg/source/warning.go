package source

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Warning is a recoverable source diagnostic, currently emitted only when
// a contained overlay file is missing. Warnings are recorded on the
// Source and surfaced through the container rather than silently dropped.
type Warning struct {
	// ID uniquely identifies this diagnostic occurrence.
	ID uuid.UUID

	// Path is the overlay file the warning refers to.
	Path string

	// Message describes the condition and the fallback taken.
	Message string

	// Time is when the warning was recorded.
	Time time.Time
}

// String formats the warning for human-readable output.
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Path, w.Message)
}

func newWarning(path, message string) Warning {
	return Warning{
		ID:      uuid.New(),
		Path:    path,
		Message: message,
		Time:    time.Now(),
	}
}
