// Package shape stores values of unrelated concrete types behind one
// value type.
//
// A concrete type only needs an Area method to be stored, it does not need
// to embed or implement anything defined in this package:
//
//	type Circle struct {
//	   Radius float64
//	}
//
//	func (c Circle) Area() float64 {
//	   return math.Pi * c.Radius * c.Radius
//	}
//
//	shapes := shape.NewCollection()
//	shape.Push(shapes, Circle{Radius: 5})
//	shape.Push(shapes, Square{Side: 4})
//
//	for area := range shapes.Areas() {
//	   fmt.Println("Area:", area)
//	}
//
// A Shape exclusively owns its value. Use Shape.Clone to create an
// independent deep copy and Shape.Move to transfer ownership to a new handle.
// Copying a Shape by assignment is flagged by go vet.
package shape
