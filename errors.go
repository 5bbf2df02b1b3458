package shape

import "github.com/cockroachdb/errors"

var (
	// ErrEmpty is returned when operating on the zero value of a Shape.
	ErrEmpty = errors.New("shape is empty")

	// ErrMovedFrom is returned when operating on a Shape after its value
	// was moved to another Shape.
	ErrMovedFrom = errors.New("shape was moved")

	// ErrDropped is returned when operating on a Shape after it was dropped.
	ErrDropped = errors.New("shape was dropped")

	// ErrCloneFailed marks all errors that occur while cloning a Shape.
	ErrCloneFailed = errors.New("clone failed")
)
