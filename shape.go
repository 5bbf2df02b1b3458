package shape

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

type state uint8

const (
	stateEmpty state = iota
	stateLive
	stateMoved
	stateDropped
)

// Shape exclusively owns one value of some concrete type implementing HasArea.
//
// The zero value is an empty Shape, all operations on it fail with ErrEmpty.
// A Shape must not be copied by assignment, use Clone or Move instead.
type Shape struct {
	_ noCopy

	object concept
	state  state
}

// Of creates a new Shape that takes ownership of the given value.
// The caller must not modify memory referenced by value afterward.
func Of[T HasArea](value T) Shape {
	return Shape{
		object: newModel(value),
		state:  stateLive,
	}
}

func (s *Shape) check() error {
	switch s.state {
	case stateLive:
		return nil
	case stateMoved:
		return errors.WithStack(ErrMovedFrom)
	case stateDropped:
		return errors.WithStack(ErrDropped)
	default:
		return errors.WithStack(ErrEmpty)
	}
}

// Valid returns true if the Shape currently owns a value.
func (s *Shape) Valid() bool {
	return s.state == stateLive
}

// Area calculates the area of the owned value.
// Calling Area on a Shape that does not own a value panics.
func (s *Shape) Area() float64 {
	area, err := s.TryArea()
	if err != nil {
		panic(errors.WithAssertionFailure(errors.Wrap(err, "calculate area")))
	}

	return area
}

// TryArea calculates the area of the owned value. It returns an error
// if the Shape does not own a value.
func (s *Shape) TryArea() (float64, error) {
	if err := s.check(); err != nil {
		return 0, err
	}

	return s.object.area(), nil
}

// Clone creates a new Shape holding a deep copy of the value.
// If the value can not be copied, an error marked with ErrCloneFailed
// is returned and s stays unchanged.
func (s *Shape) Clone() (Shape, error) {
	if err := s.check(); err != nil {
		return Shape{}, err
	}

	object, err := s.object.clone()
	if err != nil {
		return Shape{}, err
	}

	return Shape{object: object, state: stateLive}, nil
}

// Move transfers ownership of the value to a new Shape. Afterward s does
// not own a value anymore and every operation on it fails with ErrMovedFrom.
func (s *Shape) Move() Shape {
	if err := s.check(); err != nil {
		panic(errors.WithAssertionFailure(errors.Wrap(err, "move")))
	}

	object := s.object

	s.object = nil
	s.state = stateMoved

	return Shape{object: object, state: stateLive}
}

// Drop destroys the owned value. If the value implements Destroyer,
// its Destroy method is called. Dropping a Shape that does not own
// a value does nothing.
func (s *Shape) Drop() {
	if s.state != stateLive {
		return
	}

	s.object.destroy()

	s.object = nil
	s.state = stateDropped
}

// Kind returns the Kind of the owned value or nil, if the Shape does not
// own a value.
func (s *Shape) Kind() *Kind {
	if s.state != stateLive {
		return nil
	}

	return s.object.kind()
}

func (s *Shape) String() string {
	if err := s.check(); err != nil {
		return fmt.Sprintf("Shape(%s)", err)
	}

	return fmt.Sprintf("Shape(%s, area=%v)", s.object.kind(), s.object.area())
}

// As returns the value owned by the shape, if it is of type T.
// The value is still owned by the shape, memory referenced by it
// must not be modified.
func As[T HasArea](s *Shape) (T, bool) {
	if s.state != stateLive {
		var zero T
		return zero, false
	}

	m, ok := s.object.(*model[T])
	if !ok {
		var zero T
		return zero, false
	}

	return m.data, true
}
