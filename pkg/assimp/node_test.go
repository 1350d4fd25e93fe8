package assimp

import (
	"testing"

	"github.com/Faultbox/assimp-go/internal/fakeimport"
	"github.com/Faultbox/assimp-go/pkg/encoding"
	"github.com/Faultbox/assimp-go/pkg/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func childNames(n Node) []string {
	var out []string
	for c := range n.Children() {
		out = append(out, c.Name().String())
	}
	return out
}

func TestNodeChildren(t *testing.T) {
	im, _ := newFakeImporter(t)
	s := mustImport(t, im, "two.fbx")
	root := mustRoot(t, s)

	require.Equal(t, 2, root.NumChildren())
	assert.Equal(t, []string{"body", "camera"}, childNames(root))
	// Sequences restart from the beginning on every range.
	assert.Equal(t, []string{"body", "camera"}, childNames(root))

	c, err := root.ChildAt(1)
	require.NoError(t, err)
	assert.Equal(t, "camera", c.Name().String())
	assert.Equal(t, 0, c.NumChildren())
	assert.Empty(t, childNames(c))

	_, err = root.ChildAt(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	var stopped []string
	for c := range root.Children() {
		stopped = append(stopped, c.Name().String())
		break
	}
	assert.Equal(t, []string{"body"}, stopped)
}

func TestNodeParent(t *testing.T) {
	im, _ := newFakeImporter(t)
	s := mustImport(t, im, "two.fbx")
	root := mustRoot(t, s)

	_, ok := root.Parent()
	assert.False(t, ok)

	arm := mustFind(t, s, "arm")
	body, ok := arm.Parent()
	require.True(t, ok)
	assert.Equal(t, "body", body.Name().String())

	p, ok := body.Parent()
	require.True(t, ok)
	assert.Equal(t, root, p)

	assert.Equal(t, 0, root.Depth())
	assert.Equal(t, 2, arm.Depth())
	assert.Same(t, s, arm.Scene())
}

func TestNodeMeshIndices(t *testing.T) {
	im, _ := newFakeImporter(t)
	s := mustImport(t, im, "two.fbx")
	arm := mustFind(t, s, "arm")

	var idx []int
	for i := range arm.MeshIndices() {
		idx = append(idx, i)
	}
	assert.Equal(t, []int{1}, idx)

	i, err := arm.MeshIndexAt(0)
	require.NoError(t, err)
	m, err := s.MeshAt(i)
	require.NoError(t, err)
	assert.Equal(t, "quad", m.Name().String())

	_, err = arm.MeshIndexAt(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	root := mustRoot(t, s)
	assert.Zero(t, root.NumMeshes())
	for range root.MeshIndices() {
		t.Fatal("root holds no meshes")
	}
}

func TestNodeDescendantsPreOrder(t *testing.T) {
	im, _ := newFakeImporter(t)
	s := mustImport(t, im, "two.fbx")

	var names []string
	for n := range mustRoot(t, s).Descendants() {
		names = append(names, n.Name().String())
	}
	assert.Equal(t, []string{"root", "body", "arm", "camera"}, names)

	names = names[:0]
	for n := range mustFind(t, s, "body").Descendants() {
		names = append(names, n.Name().String())
	}
	assert.Equal(t, []string{"body", "arm"}, names)
}

func TestNodeTransforms(t *testing.T) {
	im, _ := newFakeImporter(t)
	s := mustImport(t, im, "two.fbx")
	arm := mustFind(t, s, "arm")

	assert.Equal(t, math.Translate(0, 2, 0), arm.Transform())
	assert.Equal(t, math.Vec3{X: 0, Y: 2, Z: 0}, arm.WorldTransform().Translation())
	assert.Equal(t, math.Identity(), mustRoot(t, s).WorldTransform())
}

func TestNodeNameKeepsEmbeddedNUL(t *testing.T) {
	gw := fakeimport.New().AddFile("odd.dae", fakeimport.SceneSpec{
		Root: &fakeimport.NodeSpec{Name: "a\x00b\xff"},
	})
	s := mustImport(t, NewImporter(gw), "odd.dae")

	name := mustRoot(t, s).Name()
	assert.Equal(t, 4, name.Len())
	assert.Equal(t, []byte{'a', 0, 'b', 0xff}, name.Bytes())
	assert.Equal(t, "a\x00b\xff", name.String())

	// Bytes hands out a copy.
	b := name.Bytes()
	b[0] = 'z'
	assert.Equal(t, "a\x00b\xff", name.String())

	_, ok := s.FindNode("a")
	assert.False(t, ok)
	_, ok = s.FindNode("a\x00b\xff")
	assert.True(t, ok)
}

func TestNodeNameLegacyEncoding(t *testing.T) {
	euckr, err := encoding.Lookup("euc-kr")
	require.NoError(t, err)

	raw := string(encoding.Encode("몸통", euckr))
	gw := fakeimport.New().AddFile("legacy.3ds", fakeimport.SceneSpec{
		Root: &fakeimport.NodeSpec{Name: "root", Children: []fakeimport.NodeSpec{{Name: raw}}},
	})
	s := mustImport(t, NewImporter(gw), "legacy.3ds")

	child, err := mustRoot(t, s).ChildAt(0)
	require.NoError(t, err)
	assert.Equal(t, raw, child.Name().String(), "String keeps the raw bytes")
	assert.Equal(t, "몸통", child.Name().UTF8(euckr))
	assert.Equal(t, "root", mustRoot(t, s).Name().UTF8(euckr))
}
