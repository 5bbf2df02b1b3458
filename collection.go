package shape

import (
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/cockroachdb/errors"
)

// Collection is an ordered sequence of shapes. Each shape is owned by
// the collection.
type Collection struct {
	_ noCopy

	shapes []Shape
}

// CollectionOption configures a Collection created by NewCollection.
type CollectionOption func(c *Collection)

// WithCapacity preallocates space for n shapes.
func WithCapacity(n int) CollectionOption {
	return func(c *Collection) {
		c.shapes = make([]Shape, 0, n)
	}
}

// NewCollection creates a new, empty collection.
func NewCollection(opts ...CollectionOption) *Collection {
	var c Collection

	for _, opt := range opts {
		opt(&c)
	}

	return &c
}

// Push wraps each value into a new Shape and appends it to the collection.
func Push[T HasArea](c *Collection, values ...T) {
	for _, value := range values {
		c.shapes = append(c.shapes, Of(value))
	}
}

// Append moves the value of the given shape into the collection.
// Afterward, the shape passed in does not own a value anymore.
func (c *Collection) Append(s *Shape) error {
	if err := s.check(); err != nil {
		return errors.Wrap(err, "append shape")
	}

	c.shapes = append(c.shapes, s.Move())
	return nil
}

// Len returns the number of slots in the collection. A shape moved out of
// its slot using At(idx).Move() still occupies the slot and is counted,
// use Remove to get rid of the slot.
func (c *Collection) Len() int {
	return len(c.shapes)
}

// At returns the shape at the given index. The pointer is valid until the
// collection is modified.
func (c *Collection) At(idx int) *Shape {
	return &c.shapes[idx]
}

// All iterates over all shapes in insertion order.
func (c *Collection) All() iter.Seq2[int, *Shape] {
	return func(yield func(int, *Shape) bool) {
		for idx := range c.shapes {
			if !yield(idx, &c.shapes[idx]) {
				return
			}
		}
	}
}

// Areas iterates over the areas of all shapes in insertion order.
func (c *Collection) Areas() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for idx := range c.shapes {
			if !yield(c.shapes[idx].Area()) {
				return
			}
		}
	}
}

// TotalArea sums up the areas of all shapes. Like Area, it panics if a
// slot does not own a value anymore.
func (c *Collection) TotalArea() float64 {
	var total float64
	for idx := range c.shapes {
		total += c.shapes[idx].Area()
	}

	return total
}

// Take removes the shape at the given index from the collection
// and transfers ownership to the caller.
func (c *Collection) Take(idx int) Shape {
	taken := c.shapes[idx].Move()
	c.shapes = slices.Delete(c.shapes, idx, idx+1)
	return taken
}

// Remove drops the shape at the given index and removes it from the collection.
func (c *Collection) Remove(idx int) {
	c.shapes[idx].Drop()
	c.shapes = slices.Delete(c.shapes, idx, idx+1)
}

// Clear drops all shapes.
func (c *Collection) Clear() {
	for idx := range c.shapes {
		c.shapes[idx].Drop()
	}

	clear(c.shapes)
	c.shapes = c.shapes[:0]
}

// Clone creates a deep copy of the collection by cloning each shape.
// If any shape fails to clone, all clones created so far are dropped
// and the error is returned.
func (c *Collection) Clone() (*Collection, error) {
	dup := NewCollection(WithCapacity(len(c.shapes)))

	for idx := range c.shapes {
		cloned, err := c.shapes[idx].Clone()
		if err != nil {
			dup.Clear()
			return nil, errors.Wrapf(err, "clone shape at index %d", idx)
		}

		dup.shapes = append(dup.shapes, cloned.Move())
	}

	return dup, nil
}

// WriteAreas writes one line per shape in insertion order.
func (c *Collection) WriteAreas(w io.Writer) error {
	for area := range c.Areas() {
		if _, err := fmt.Fprintf(w, "Area: %v\n", area); err != nil {
			return errors.Wrap(err, "write area")
		}
	}

	return nil
}
