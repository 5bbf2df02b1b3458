package shape

import "github.com/oliverbestmann/shape/internal/kind"

// Kind describes one concrete type stored in a Shape.
type Kind = kind.Kind

// Strategy describes how values of a Kind are cloned.
type Strategy = kind.Strategy

const (
	CopyTrivial        = kind.CopyTrivial
	CopyMethod         = kind.CopyMethod
	CopyFallibleMethod = kind.CopyFallibleMethod
	CopyReflect        = kind.CopyReflect
	CopyUnsupported    = kind.CopyUnsupported
	CopyDynamic        = kind.CopyDynamic
)

// KindOf returns the Kind of T, registering it on first use.
func KindOf[T HasArea]() *Kind {
	return kind.For[T]()
}

// Kinds returns all kinds that were stored in a Shape so far.
func Kinds() []*Kind {
	return kind.All()
}
