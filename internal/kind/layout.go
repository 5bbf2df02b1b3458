package kind

import (
	"reflect"

	"github.com/mitchellh/copystructure"
)

func typeHasReferences(ty reflect.Type) bool {
	switch ty.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Slice, reflect.Map,
		reflect.Chan, reflect.Func, reflect.Interface:
		return true

	case reflect.Array:
		return ty.Len() > 0 && typeHasReferences(ty.Elem())

	case reflect.Struct:
		for idx := range ty.NumField() {
			if typeHasReferences(ty.Field(idx).Type) {
				return true
			}
		}

		return false

	default:
		return false
	}
}

// typeIsReflectCopyable checks if a deep copy created by copystructure
// is equivalent to the original value. copystructure skips unexported fields,
// so every field holding data must be reachable through exported fields only.
func typeIsReflectCopyable(ty reflect.Type, visited map[reflect.Type]bool) bool {
	if visited[ty] {
		return true
	}

	visited[ty] = true

	if _, ok := copystructure.Copiers[ty]; ok {
		return true
	}

	switch ty.Kind() {
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return false

	case reflect.Interface:
		// copystructure copies the dynamic value field by field and
		// would drop its unexported state
		return false

	case reflect.Pointer, reflect.Slice, reflect.Array:
		return typeIsReflectCopyable(ty.Elem(), visited)

	case reflect.Map:
		return typeIsReflectCopyable(ty.Key(), visited) &&
			typeIsReflectCopyable(ty.Elem(), visited)

	case reflect.Struct:
		for idx := range ty.NumField() {
			field := ty.Field(idx)

			// zero sized marker fields do not carry any state
			if field.Type.Size() == 0 && !typeHasReferences(field.Type) {
				continue
			}

			if !field.IsExported() {
				return false
			}

			if !typeIsReflectCopyable(field.Type, visited) {
				return false
			}
		}

		return true

	default:
		// scalars and strings
		return true
	}
}
