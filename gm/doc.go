// Package gm (stands for geometry math) provides the geometry primitives
// used to describe figures.
//
// It includes a simple 2d vector type called Vec, an axis aligned Rect and
// a 2d matrix type Mat.
//
// There is also a type named Rad to represent angle values in radian.
package gm
