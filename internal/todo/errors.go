package todo

import (
	"errors"
	"fmt"
)

// NotFoundError is returned by the by-id mutations when no todo with the
// requested id exists. The manager makes no change before returning it.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no todo with ID %d", e.ID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
