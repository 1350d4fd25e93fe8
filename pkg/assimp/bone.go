package assimp

import (
	"github.com/Faultbox/assimp-go/pkg/assimp/abi"
	"github.com/Faultbox/assimp-go/pkg/math"
)

// Bone is a read-only view of one aiBone.
type Bone struct {
	s *Scene
	b *abi.Bone
}

// Name returns mName, which matches the name of the node it deforms with.
func (b Bone) Name() Name {
	return read(b.s, "Bone.Name", func() Name { return newName(&b.b.Name) })
}

// Weights returns the (vertex, weight) pairs.
func (b Bone) Weights() Array[VertexWeight] {
	return read(b.s, "Bone.Weights", func() Array[VertexWeight] {
		return newArray(b.s, "bone weights", b.b.Weights, b.b.NumWeights)
	})
}

// OffsetMatrix returns the mesh-space to bone-space bind pose transform.
func (b Bone) OffsetMatrix() math.Mat4 {
	return read(b.s, "Bone.OffsetMatrix", func() math.Mat4 { return mat4(&b.b.OffsetMatrix) })
}

// Node returns the bone's node. It is only set when the scene was imported
// with PopulateArmatureData.
func (b Bone) Node() (Node, bool) {
	return b.nodeRef("Bone.Node", func() *abi.Node { return b.b.Node })
}

// Armature returns the root of the bone's skeleton. It is only set when
// the scene was imported with PopulateArmatureData.
func (b Bone) Armature() (Node, bool) {
	return b.nodeRef("Bone.Armature", func() *abi.Node { return b.b.Armature })
}

func (b Bone) nodeRef(op string, field func() *abi.Node) (Node, bool) {
	p := read(b.s, op, field)
	if p == nil {
		return Node{}, false
	}
	return Node{s: b.s, n: p}, true
}
