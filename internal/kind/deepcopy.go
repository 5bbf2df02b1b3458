package kind

import (
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/mitchellh/copystructure"
)

// DeepCopy creates a copy of value that does not share any memory with value.
// The kind must use the CopyReflect strategy.
func (k *Kind) DeepCopy(value any) (any, error) {
	if k.Strategy != CopyReflect {
		return nil, errors.AssertionFailedf("kind %s uses strategy %s, not %s", k, k.Strategy, CopyReflect)
	}

	if reflect.TypeOf(value) != k.Type {
		return nil, errors.AssertionFailedf("value of type %T does not match kind %s", value, k)
	}

	dup, err := copystructure.Copy(value)
	if err != nil {
		return nil, errors.Wrapf(err, "deep copy %s", k)
	}

	return dup, nil
}

// CloneDynamic clones the value stored in an interface using the
// strategy of its dynamic type.
func CloneDynamic(value any) (any, error) {
	if value == nil {
		return nil, errors.New("interface holds no value")
	}

	k := Of(reflect.TypeOf(value))

	switch k.Strategy {
	case CopyTrivial:
		return value, nil

	case CopyMethod:
		results := reflect.ValueOf(value).MethodByName("Copy").Call(nil)
		return results[0].Interface(), nil

	case CopyFallibleMethod:
		results := reflect.ValueOf(value).MethodByName("TryCopy").Call(nil)
		if err, _ := results[1].Interface().(error); err != nil {
			return nil, errors.Wrapf(err, "copy %s", k)
		}

		return results[0].Interface(), nil

	case CopyReflect:
		return k.DeepCopy(value)

	default:
		return nil, errors.Newf("values of type %s reference memory that can not be copied", k)
	}
}
