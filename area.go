package shape

// HasArea must be implemented by every type that is stored in a Shape.
// Area must not have side effects.
type HasArea interface {
	Area() float64
}

// Copyable can be implemented by a type that references memory, e.g. a slice
// of points, to create a deep copy when a Shape is cloned. Types without any
// references are copied by assignment, other types are copied using reflection.
type Copyable[T any] interface {
	Copy() T
}

// TryCopyable is like Copyable, but creating the copy might fail.
// A failed copy aborts the clone, the source stays untouched.
type TryCopyable[T any] interface {
	TryCopy() (T, error)
}

// Destroyer is called exactly once when the Shape owning a value is dropped.
type Destroyer interface {
	Destroy()
}
