package kind

import (
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

type plain struct {
	X, Y float64
	Name string
}

type withSlice struct {
	Points []float64
}

type withMethod struct {
	Points []float64
}

func (w withMethod) Copy() withMethod {
	return withMethod{Points: append([]float64(nil), w.Points...)}
}

type withFallibleMethod struct {
	Points []float64
}

func (w withFallibleMethod) TryCopy() (withFallibleMethod, error) {
	return w, nil
}

type withHiddenState struct {
	Points []float64
	scale  float64
}

type withFunc struct {
	Area func() float64
}

type withMarker struct {
	marker struct{}
	Values map[string]float64
}

type withTime struct {
	Created *time.Time
}

type node struct {
	Next  *node
	Value float64
}

type withInterface struct {
	Value fmt.Stringer
}

type failingCopy struct {
	Points []float64
}

func (f failingCopy) TryCopy() (failingCopy, error) {
	return failingCopy{}, errors.New("out of memory")
}

type destroyable struct{}

func (destroyable) Destroy() {}

func TestKind_Strategy(t *testing.T) {
	require.Equal(t, CopyTrivial, For[plain]().Strategy)
	require.Equal(t, CopyTrivial, For[[4]float64]().Strategy)
	require.Equal(t, CopyReflect, For[withSlice]().Strategy)
	require.Equal(t, CopyReflect, For[*plain]().Strategy)
	require.Equal(t, CopyMethod, For[withMethod]().Strategy)
	require.Equal(t, CopyFallibleMethod, For[withFallibleMethod]().Strategy)
	require.Equal(t, CopyUnsupported, For[withHiddenState]().Strategy)
	require.Equal(t, CopyUnsupported, For[withFunc]().Strategy)
	require.Equal(t, CopyReflect, For[withMarker]().Strategy)
	require.Equal(t, CopyReflect, For[withTime]().Strategy)
	require.Equal(t, CopyReflect, For[node]().Strategy)
	require.Equal(t, CopyDynamic, For[fmt.Stringer]().Strategy)
	require.Equal(t, CopyUnsupported, For[withInterface]().Strategy)
}

func TestKind_HasReferences(t *testing.T) {
	require.False(t, For[plain]().HasReferences)
	require.False(t, For[[0]*plain]().HasReferences)
	require.True(t, For[withSlice]().HasReferences)
	require.True(t, For[*plain]().HasReferences)
}

func TestKind_Destroyable(t *testing.T) {
	require.True(t, For[destroyable]().Destroyable)
	require.False(t, For[plain]().Destroyable)
}

func TestKind_Unique(t *testing.T) {
	require.Same(t, For[plain](), For[plain]())
	require.Same(t, For[plain](), Of(reflect.TypeFor[plain]()))
	require.NotSame(t, For[plain](), For[*plain]())
	require.NotEqual(t, For[plain]().Id, For[*plain]().Id)
}

func TestKind_UniqueConcurrent(t *testing.T) {
	type concurrent struct{ X float64 }

	results := make([]*Kind, 16)

	var wg sync.WaitGroup
	for idx := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[idx] = For[concurrent]()
		}()
	}

	wg.Wait()

	for _, result := range results {
		require.Same(t, results[0], result)
	}
}

func TestAll(t *testing.T) {
	type first struct{ X float64 }
	type second struct{ X float64 }

	a := For[first]()
	b := For[second]()

	all := All()
	require.Contains(t, all, a)
	require.Contains(t, all, b)

	for idx := 1; idx < len(all); idx++ {
		require.Less(t, all[idx-1].Id, all[idx].Id)
	}
}

func TestKind_DeepCopy(t *testing.T) {
	source := withSlice{Points: []float64{1, 2, 3}}

	dup, err := For[withSlice]().DeepCopy(source)
	require.NoError(t, err)

	copied := dup.(withSlice)
	require.Equal(t, source, copied)

	// must not share memory with the source
	source.Points[0] = 10
	require.Equal(t, 1.0, copied.Points[0])
}

func TestKind_DeepCopyPointer(t *testing.T) {
	source := &plain{X: 1, Y: 2, Name: "a"}

	dup, err := For[*plain]().DeepCopy(source)
	require.NoError(t, err)

	copied := dup.(*plain)
	require.NotSame(t, source, copied)
	require.Equal(t, *source, *copied)
}

func TestKind_DeepCopyWrongStrategy(t *testing.T) {
	_, err := For[plain]().DeepCopy(plain{})
	require.Error(t, err)

	// interface kinds are cloned through the dynamic type
	_, err = For[fmt.Stringer]().DeepCopy(time.Second)
	require.Error(t, err)
}

func TestStrategy_String(t *testing.T) {
	require.Equal(t, "reflect", CopyReflect.String())
	require.Equal(t, "dynamic", CopyDynamic.String())
	require.Equal(t, "Strategy(42)", Strategy(42).String())
}

func TestCloneDynamic(t *testing.T) {
	t.Run("trivial", func(t *testing.T) {
		dup, err := CloneDynamic(plain{X: 1, Y: 2, Name: "a"})
		require.NoError(t, err)
		require.Equal(t, plain{X: 1, Y: 2, Name: "a"}, dup)
	})

	t.Run("copy method", func(t *testing.T) {
		source := withMethod{Points: []float64{1, 2}}

		dup, err := CloneDynamic(source)
		require.NoError(t, err)

		source.Points[0] = 42
		require.Equal(t, withMethod{Points: []float64{1, 2}}, dup)
	})

	t.Run("reflect", func(t *testing.T) {
		source := withSlice{Points: []float64{1, 2}}

		dup, err := CloneDynamic(source)
		require.NoError(t, err)

		source.Points[0] = 42
		require.Equal(t, withSlice{Points: []float64{1, 2}}, dup)
	})

	t.Run("fallible copy fails", func(t *testing.T) {
		_, err := CloneDynamic(failingCopy{})
		require.ErrorContains(t, err, "out of memory")
	})

	t.Run("hidden state", func(t *testing.T) {
		_, err := CloneDynamic(withHiddenState{Points: []float64{1}, scale: 2})
		require.Error(t, err)
	})

	t.Run("nil", func(t *testing.T) {
		_, err := CloneDynamic(nil)
		require.Error(t, err)
	})
}
