// errors.go
package brewkit

import (
	"fmt"
)

// Error wraps an error with the operation and formula it occurred on
type Error struct {
	Op      string // Operation that failed
	Package string // Formula name if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Package, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
