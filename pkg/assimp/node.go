package assimp

import (
	"iter"
	"unsafe"

	"github.com/Faultbox/assimp-go/pkg/assimp/abi"
	"github.com/Faultbox/assimp-go/pkg/math"
)

// Node is a read-only view of one aiNode. The zero Node is not valid.
type Node struct {
	s *Scene
	n *abi.Node
}

// Scene returns the handle the node borrows from.
func (n Node) Scene() *Scene { return n.s }

// Name returns mName.
func (n Node) Name() Name {
	return read(n.s, "Node.Name", func() Name { return newName(&n.n.Name) })
}

// Transform returns the transform relative to the parent.
func (n Node) Transform() math.Mat4 {
	return read(n.s, "Node.Transform", func() math.Mat4 { return mat4(&n.n.Transformation) })
}

// Parent returns the parent node; ok is false at the root.
func (n Node) Parent() (Node, bool) {
	p := read(n.s, "Node.Parent", func() *abi.Node { return n.n.Parent })
	if p == nil {
		return Node{}, false
	}
	return Node{s: n.s, n: p}, true
}

// NumChildren returns mNumChildren.
func (n Node) NumChildren() int {
	return read(n.s, "Node.NumChildren", func() int { return int(n.n.NumChildren) })
}

// ChildAt returns child i in declaration order.
func (n Node) ChildAt(i int) (Node, error) {
	n.s.live("Node.ChildAt")
	c, err := elem("children", n.n.Children, n.n.NumChildren, i)
	if err != nil {
		return Node{}, err
	}
	return Node{s: n.s, n: c}, nil
}

// Children iterates direct children in declaration order. The sequence can
// be ranged over any number of times.
func (n Node) Children() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for i := 0; ; i++ {
			n.s.live("Node.Children")
			if i >= int(n.n.NumChildren) {
				return
			}
			c := unsafe.Slice(n.n.Children, n.n.NumChildren)[i]
			if !yield(Node{s: n.s, n: c}) {
				return
			}
		}
	}
}

// NumMeshes returns mNumMeshes.
func (n Node) NumMeshes() int {
	return read(n.s, "Node.NumMeshes", func() int { return int(n.n.NumMeshes) })
}

// MeshIndexAt returns the i-th index into the scene's mesh collection.
func (n Node) MeshIndexAt(i int) (int, error) {
	if err := checkIndex("node meshes", i, n.NumMeshes()); err != nil {
		return 0, err
	}
	return read(n.s, "Node.MeshIndexAt", func() int {
		return int(unsafe.Slice(n.n.Meshes, n.n.NumMeshes)[i])
	}), nil
}

// MeshIndices iterates indices into the scene's mesh collection. Resolve
// them with Scene.MeshAt.
func (n Node) MeshIndices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; ; i++ {
			n.s.live("Node.MeshIndices")
			if i >= int(n.n.NumMeshes) {
				return
			}
			if !yield(int(unsafe.Slice(n.n.Meshes, n.n.NumMeshes)[i])) {
				return
			}
		}
	}
}

// Descendants walks the subtree rooted at n in pre-order, n first.
func (n Node) Descendants() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		stack := []*abi.Node{n.n}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(Node{s: n.s, n: cur}) {
				return
			}
			n.s.live("Node.Descendants")
			kids := unsafe.Slice(cur.Children, cur.NumChildren)
			for i := len(kids) - 1; i >= 0; i-- {
				stack = append(stack, kids[i])
			}
		}
	}
}

// WorldTransform composes the transforms from the root down to n.
func (n Node) WorldTransform() math.Mat4 {
	return read(n.s, "Node.WorldTransform", func() math.Mat4 {
		m := mat4(&n.n.Transformation)
		for p := n.n.Parent; p != nil; p = p.Parent {
			m = mat4(&p.Transformation).Mul(m)
		}
		return m
	})
}

// Depth is the number of edges between n and the root.
func (n Node) Depth() int {
	return read(n.s, "Node.Depth", func() int {
		d := 0
		for p := n.n.Parent; p != nil; p = p.Parent {
			d++
		}
		return d
	})
}

func mat4(m *abi.Matrix4x4) math.Mat4 {
	return math.FromRowMajor([16]float32{
		m.A1, m.A2, m.A3, m.A4,
		m.B1, m.B2, m.B3, m.B4,
		m.C1, m.C2, m.C3, m.C4,
		m.D1, m.D2, m.D3, m.D4,
	})
}
