package assimp

import (
	"fmt"

	"go.uber.org/multierr"
)

// weightTolerance absorbs float32 rounding in per-vertex weight sums.
const weightTolerance = 1e-4

// Violation is one structural property a scene fails.
type Violation struct {
	Rule   string // Short identifier, e.g. "face-index"
	Where  string // Element path, e.g. `mesh 0 face 3`
	Detail string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s: %s", v.Rule, v.Where, v.Detail)
}

// Validate checks the structural properties every imported scene should
// hold and returns all violations combined with multierr. Use
// multierr.Errors to list them.
//
// Per-vertex attribute arrays carry no length of their own in the C layout;
// their length is mNumVertices by construction, so only presence is checked.
func Validate(s *Scene) error {
	if _, err := s.get("Validate"); err != nil {
		return err
	}

	var errs error
	add := func(rule, where, format string, args ...any) {
		errs = multierr.Append(errs, &Violation{Rule: rule, Where: where, Detail: fmt.Sprintf(format, args...)})
	}

	root, hasRoot := s.RootNode()
	if !s.Incomplete() {
		if s.NumMeshes() == 0 {
			add("complete-scene", "scene", "no meshes but incomplete flag is clear")
		}
		if s.NumMaterials() == 0 {
			add("complete-scene", "scene", "no materials but incomplete flag is clear")
		}
		if !hasRoot {
			add("complete-scene", "scene", "no root node but incomplete flag is clear")
		}
	}

	if hasRoot {
		validateTree(s, root, add)
	}

	for i, m := range s.Meshes() {
		validateMesh(s, i, m, add)
	}

	return errs
}

type addFunc func(rule, where, format string, args ...any)

func validateTree(s *Scene, root Node, add addFunc) {
	if _, ok := root.Parent(); ok {
		add("tree", nodeWhere(root), "root node has a parent")
	}

	numMeshes := s.NumMeshes()
	seen := map[Node]bool{root: true}
	stack := []Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for i := range n.MeshIndices() {
			if i >= numMeshes {
				add("node-mesh-index", nodeWhere(n), "mesh index %d >= mesh count %d", i, numMeshes)
			}
		}

		for c := range n.Children() {
			if seen[c] {
				add("tree", nodeWhere(c), "reached twice, the node graph is not a tree")
				continue
			}
			seen[c] = true
			if p, ok := c.Parent(); !ok || p != n {
				add("tree", nodeWhere(c), "parent link does not point back to %s", nodeWhere(n))
			}
			stack = append(stack, c)
		}
	}
}

func validateMesh(s *Scene, i int, m Mesh, add addFunc) {
	where := fmt.Sprintf("mesh %d", i)
	nv := m.NumVertices()

	if _, ok := m.Positions(); !ok && nv > 0 {
		add("vertex-array", where, "%d vertices but no positions", nv)
	}
	for _, ch := range m.TexCoordChannels() {
		if ch.Components < 1 || ch.Components > 3 {
			add("vertex-array", where, "texture coord channel %d has %d components", ch.Slot, ch.Components)
		}
	}

	for fi, f := range m.Faces() {
		idx := f.Indices()
		if len(idx) == 0 {
			add("face-index", fmt.Sprintf("%s face %d", where, fi), "face has no indices")
		}
		for _, v := range idx {
			if int(v) >= nv {
				add("face-index", fmt.Sprintf("%s face %d", where, fi), "index %d >= vertex count %d", v, nv)
			}
		}
	}

	if nm := s.NumMaterials(); nm > 0 || !s.Incomplete() {
		if mi := m.MaterialIndex(); mi >= nm {
			add("material-index", where, "material index %d >= material count %d", mi, nm)
		}
	}

	sums := make(map[uint32]float64)
	for _, b := range m.Bones() {
		bwhere := fmt.Sprintf("%s bone %q", where, b.Name().String())
		for _, w := range b.Weights().All() {
			if int(w.VertexID) >= nv {
				add("bone-weight", bwhere, "vertex %d >= vertex count %d", w.VertexID, nv)
				continue
			}
			if w.Weight < 0 || w.Weight > 1 {
				add("bone-weight", bwhere, "weight %g for vertex %d outside [0,1]", w.Weight, w.VertexID)
			}
			sums[w.VertexID] += float64(w.Weight)
		}
	}
	for v, sum := range sums {
		if sum > 1+weightTolerance {
			add("bone-weight", where, "weights for vertex %d sum to %g", v, sum)
		}
	}
}

func nodeWhere(n Node) string {
	return fmt.Sprintf("node %q", n.Name().String())
}
