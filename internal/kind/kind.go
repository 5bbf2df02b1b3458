package kind

import (
	"fmt"
	"reflect"
)

type Id uint16

// Strategy describes how a value of a kind is duplicated when a
// shape is cloned.
type Strategy uint8

const (
	// CopyTrivial values do not reference any mutable memory, a plain
	// assignment produces an independent copy.
	CopyTrivial Strategy = iota

	// CopyMethod values provide a `Copy() T` method.
	CopyMethod

	// CopyFallibleMethod values provide a `TryCopy() (T, error)` method.
	CopyFallibleMethod

	// CopyReflect values are deep copied using reflection.
	CopyReflect

	// CopyUnsupported values reference memory that can not be reached by
	// reflection, e.g. through unexported fields, channels or functions.
	CopyUnsupported

	// CopyDynamic is used for interface types. The strategy of the
	// dynamic type stored in the interface is looked up when cloning.
	CopyDynamic
)

func (s Strategy) String() string {
	switch s {
	case CopyTrivial:
		return "trivial"
	case CopyMethod:
		return "method"
	case CopyFallibleMethod:
		return "fallible-method"
	case CopyReflect:
		return "reflect"
	case CopyUnsupported:
		return "unsupported"
	case CopyDynamic:
		return "dynamic"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// Kind describes one concrete type stored behind an erased shape.
// There is exactly one Kind instance per type.
type Kind struct {
	Name string
	Type reflect.Type

	// The Id of the kind, assigned in order of registration starting at 1
	Id Id

	// HasReferences indicates that a value of the type references memory
	// that is shared on assignment, e.g. by having a field of type *T,
	// a slice or a map value. Strings are immutable and do not count.
	HasReferences bool

	// Strategy used to clone values of this kind
	Strategy Strategy

	// Destroyable indicates that the type has a `Destroy()` method that must
	// be called once the owning shape is dropped.
	Destroyable bool
}

// Cloneable reports if values of this kind can be cloned at all.
// Cloning a value of a dynamic kind can still fail, depending on the
// value stored in the interface.
func (k *Kind) Cloneable() bool {
	return k.Strategy != CopyUnsupported
}

func (k *Kind) String() string {
	return k.Name
}

func makeKind(ty reflect.Type, id Id) *Kind {
	k := &Kind{
		Id:   id,
		Type: ty,
		Name: ty.String(),
	}

	k.HasReferences = typeHasReferences(ty)
	k.Destroyable = hasMethod(ty, "Destroy")

	switch {
	case hasMethod(ty, "TryCopy", ty, errorType):
		k.Strategy = CopyFallibleMethod

	case hasMethod(ty, "Copy", ty):
		k.Strategy = CopyMethod

	case ty.Kind() == reflect.Interface:
		k.Strategy = CopyDynamic

	case !k.HasReferences:
		k.Strategy = CopyTrivial

	case typeIsReflectCopyable(ty, map[reflect.Type]bool{}):
		k.Strategy = CopyReflect

	default:
		k.Strategy = CopyUnsupported
	}

	return k
}

var errorType = reflect.TypeFor[error]()

// hasMethod checks if the method set of ty contains a method with the given name,
// no parameters and exactly the given result types.
func hasMethod(ty reflect.Type, name string, results ...reflect.Type) bool {
	method, ok := ty.MethodByName(name)
	if !ok {
		return false
	}

	// methods of a concrete type take the receiver as first parameter,
	// methods of an interface type do not.
	receiver := 1
	if ty.Kind() == reflect.Interface {
		receiver = 0
	}

	if method.Type.NumIn() != receiver || method.Type.NumOut() != len(results) {
		return false
	}

	for idx, result := range results {
		if method.Type.Out(idx) != result {
			return false
		}
	}

	return true
}
