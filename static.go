package shape

// IsStatic is implemented by types embedding Static[S] with S being the
// type itself.
type IsStatic[S any] interface {
	HasArea
	IsStatic(S)
}

// Static binds a concrete type to itself. Embed it into a type to store
// that type in a Homogeneous collection:
//
//	type Square struct {
//	   Static[Square]
//	   Side float64
//	}
//
// Embedding Static with a different type parameter, e.g. Static[Circle] in
// Square, does not satisfy IsStatic[Square] and fails to compile at the
// place where Square is used as IsStatic.
type Static[S IsStatic[S]] struct{}

func (Static[S]) IsStatic(S) {}

// ValidateStatic should be called to verify that Static is embedded
// with the correct type parameter.
//
//	var _ = ValidateStatic[Square]()
func ValidateStatic[S IsStatic[S]]() struct{} {
	return struct{}{}
}

// Homogeneous stores values of exactly one concrete type. Calls to Area
// are bound at compile time, no value is boxed.
type Homogeneous[S IsStatic[S]] struct {
	values []S
}

// Push appends the values to the collection.
func (h *Homogeneous[S]) Push(values ...S) {
	h.values = append(h.values, values...)
}

// Len returns the number of values.
func (h *Homogeneous[S]) Len() int {
	return len(h.values)
}

// Values returns the stored values. The slice must not be modified.
func (h *Homogeneous[S]) Values() []S {
	return h.values
}

// TotalArea sums up the areas of all values without dynamic dispatch.
func (h *Homogeneous[S]) TotalArea() float64 {
	var total float64
	for idx := range h.values {
		total += h.values[idx].Area()
	}

	return total
}

// Erase copies all values into a new Collection of erased shapes.
func (h *Homogeneous[S]) Erase() *Collection {
	c := NewCollection(WithCapacity(len(h.values)))
	Push(c, h.values...)
	return c
}
