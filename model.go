package shape

import (
	"github.com/cockroachdb/errors"
	"github.com/oliverbestmann/shape/internal/kind"
)

// concept is the dynamic interface every adapter is accessed through.
type concept interface {
	area() float64
	clone() (concept, error)
	destroy()
	kind() *kind.Kind
}

// model adapts one concrete value of type T to the concept interface.
// There is exactly one model type per concrete type.
type model[T HasArea] struct {
	data      T
	ty        *kind.Kind
	destroyed bool
}

func newModel[T HasArea](value T) *model[T] {
	return &model[T]{
		data: value,
		ty:   kind.For[T](),
	}
}

func (m *model[T]) area() float64 {
	if m.destroyed {
		// only reachable through a shape that was copied by assignment
		panic(errors.WithAssertionFailure(errors.Wrapf(ErrDropped, "area of %s", m.ty)))
	}

	return m.data.Area()
}

func (m *model[T]) kind() *kind.Kind {
	return m.ty
}

func (m *model[T]) clone() (concept, error) {
	if m.destroyed {
		return nil, errors.Wrapf(ErrDropped, "clone %s", m.ty)
	}

	dup, err := m.copyData()
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "clone %s", m.ty), ErrCloneFailed)
	}

	return &model[T]{data: dup, ty: m.ty}, nil
}

func (m *model[T]) copyData() (T, error) {
	var zero T

	switch m.ty.Strategy {
	case kind.CopyTrivial:
		return m.data, nil

	case kind.CopyMethod:
		copyable, ok := any(m.data).(Copyable[T])
		if !ok {
			return zero, errors.Newf("%s holds no value", m.ty)
		}

		return copyable.Copy(), nil

	case kind.CopyFallibleMethod:
		copyable, ok := any(m.data).(TryCopyable[T])
		if !ok {
			return zero, errors.Newf("%s holds no value", m.ty)
		}

		dup, err := copyable.TryCopy()
		if err != nil {
			return zero, err
		}

		return dup, nil

	case kind.CopyReflect:
		dup, err := m.ty.DeepCopy(m.data)
		if err != nil {
			return zero, err
		}

		return assertCopy[T](m.ty, dup)

	case kind.CopyDynamic:
		dup, err := kind.CloneDynamic(any(m.data))
		if err != nil {
			return zero, err
		}

		return assertCopy[T](m.ty, dup)

	default:
		return zero, errors.Newf("values of type %s reference memory that can not be copied", m.ty)
	}
}

func assertCopy[T HasArea](ty *kind.Kind, dup any) (T, error) {
	typed, ok := dup.(T)
	if !ok {
		var zero T
		return zero, errors.AssertionFailedf("copy of %s returned %T", ty, dup)
	}

	return typed, nil
}

func (m *model[T]) destroy() {
	if m.destroyed {
		return
	}

	m.destroyed = true

	if destroyer, ok := any(m.data).(Destroyer); ok {
		destroyer.Destroy()
	}

	// release the value
	var zero T
	m.data = zero
}
