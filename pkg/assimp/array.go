package assimp

import (
	"iter"
	"slices"
	"unsafe"

	"github.com/Faultbox/assimp-go/pkg/assimp/abi"
)

// Element types exposed by array views. Values are copies.
type (
	Vector2D     = abi.Vector2D
	Vector3D     = abi.Vector3D
	Color3D      = abi.Color3D
	Color4D      = abi.Color4D
	VertexWeight = abi.VertexWeight
	Texel        = abi.Texel
	AABB         = abi.AABB
)

// Array is a bounds-checked view over a count-tagged foreign array of
// values. The zero Array is empty.
type Array[T any] struct {
	s    *Scene
	name string
	base *T
	n    int
}

func newArray[T any](s *Scene, name string, base *T, n uint32) Array[T] {
	if base == nil {
		return Array[T]{name: name}
	}
	return Array[T]{s: s, name: name, base: base, n: int(n)}
}

// Len returns the element count.
func (a Array[T]) Len() int { return a.n }

// At returns a copy of element i.
func (a Array[T]) At(i int) (T, error) {
	if err := checkIndex(a.name, i, a.n); err != nil {
		var zero T
		return zero, err
	}
	return read(a.s, a.name, func() T { return unsafe.Slice(a.base, a.n)[i] }), nil
}

// All iterates copies of the elements in order.
func (a Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.n; i++ {
			v := read(a.s, a.name, func() T { return unsafe.Slice(a.base, a.n)[i] })
			if !yield(i, v) {
				return
			}
		}
	}
}

// Collect copies the whole array into Go memory.
func (a Array[T]) Collect() []T {
	if a.n == 0 {
		return nil
	}
	return read(a.s, a.name, func() []T { return slices.Clone(unsafe.Slice(a.base, a.n)) })
}
