package kind

import (
	"cmp"
	"log/slog"
	"maps"
	"reflect"
	"slices"
	"sync/atomic"
)

var kinds atomic.Pointer[map[reflect.Type]*Kind]

func init() {
	// initialize the lookup table
	kinds.Store(&map[reflect.Type]*Kind{})
}

// For returns the Kind of type T. The kind is registered on first use.
func For[T any]() *Kind {
	return Of(reflect.TypeFor[T]())
}

// Of returns the Kind of the given type. The kind is registered on first use.
func Of(ty reflect.Type) *Kind {
	if cached, ok := (*kinds.Load())[ty]; ok {
		return cached
	}

	return ensureKind(ty)
}

func ensureKind(ty reflect.Type) *Kind {
	for {
		previousKinds := kinds.Load()
		if cached, ok := (*previousKinds)[ty]; ok {
			return cached
		}

		newKind := makeKind(ty, Id(len(*previousKinds)+1))

		newKinds := maps.Clone(*previousKinds)
		newKinds[ty] = newKind

		if kinds.CompareAndSwap(previousKinds, &newKinds) {
			slog.Debug(
				"New shape kind registered",
				slog.String("name", newKind.Name),
				slog.Int("id", int(newKind.Id)),
				slog.String("strategy", newKind.Strategy.String()),
			)

			if newKind.Strategy == CopyUnsupported {
				slog.Warn(
					"Shapes of this kind can not be cloned, implement a Copy method",
					slog.String("name", newKind.Name),
				)
			}

			return newKind
		}
	}
}

// All returns all kinds registered so far, ordered by their Id.
func All() []*Kind {
	all := slices.Collect(maps.Values(*kinds.Load()))

	slices.SortFunc(all, func(a, b *Kind) int {
		return cmp.Compare(a.Id, b.Id)
	})

	return all
}
