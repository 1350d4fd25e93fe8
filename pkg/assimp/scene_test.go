package assimp

import (
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/Faultbox/assimp-go/internal/fakeimport"
	"github.com/Faultbox/assimp-go/pkg/assimp/abi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestImportMissingFile(t *testing.T) {
	im, gw := newFakeImporter(t)

	s, err := im.ImportFile("missing.obj", 0)
	require.Nil(t, s)
	require.ErrorIs(t, err, ErrLoadFailure)

	var lf *LoadFailure
	require.ErrorAs(t, err, &lf)
	assert.Equal(t, "missing.obj", lf.Path)
	assert.Contains(t, lf.Reason, "missing.obj")
	assert.Equal(t, 1, gw.Imports())
	assert.Zero(t, gw.Live())
}

func TestImportPathWithNUL(t *testing.T) {
	im, gw := newFakeImporter(t)

	s, err := im.ImportFile("triangle\x00.obj", 0)
	require.Nil(t, s)
	require.ErrorIs(t, err, ErrEncoding)

	var ee *EncodingError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "triangle\x00.obj", ee.Path)
	assert.Zero(t, gw.Imports(), "no foreign call may be made")
}

func TestImportTriangle(t *testing.T) {
	im, _ := newFakeImporter(t)
	s := mustImport(t, im, "triangle.obj")

	require.Equal(t, 1, s.NumMeshes())
	m, err := s.MeshAt(0)
	require.NoError(t, err)
	assert.Equal(t, 3, m.NumVertices())
	assert.Equal(t, 1, m.NumFaces())

	f, err := m.FaceAt(0)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 2}, f.Indices())
	assert.Equal(t, PrimitiveTriangle, m.PrimitiveTypes())
	assert.False(t, s.Incomplete())
	assert.Equal(t, "triangle.obj", s.Path())
	assert.Equal(t, "triangle", s.Name().String())
}

func TestMeshAtOutOfRange(t *testing.T) {
	im, _ := newFakeImporter(t)
	s := mustImport(t, im, "two.fbx")
	require.Equal(t, 2, s.NumMeshes())

	_, err := s.MeshAt(5)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	var ie *IndexOutOfRangeError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, IndexOutOfRangeError{Collection: "meshes", Index: 5, Len: 2}, *ie)

	_, err = s.MeshAt(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestCollectionAccessorsOutOfRange(t *testing.T) {
	im, _ := newFakeImporter(t)
	s := mustImport(t, im, "two.fbx")

	tests := []struct {
		name string
		at   func(int) error
		n    int
	}{
		{"materials", func(i int) error { _, err := s.MaterialAt(i); return err }, s.NumMaterials()},
		{"animations", func(i int) error { _, err := s.AnimationAt(i); return err }, s.NumAnimations()},
		{"textures", func(i int) error { _, err := s.TextureAt(i); return err }, s.NumTextures()},
		{"lights", func(i int) error { _, err := s.LightAt(i); return err }, s.NumLights()},
		{"cameras", func(i int) error { _, err := s.CameraAt(i); return err }, s.NumCameras()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < tt.n; i++ {
				assert.NoError(t, tt.at(i))
			}
			assert.ErrorIs(t, tt.at(tt.n), ErrIndexOutOfRange)
		})
	}
}

func TestSceneCollections(t *testing.T) {
	im, _ := newFakeImporter(t)
	s := mustImport(t, im, "two.fbx")

	var names []string
	for i, m := range s.Meshes() {
		assert.Equal(t, len(names), i)
		names = append(names, m.Name().String())
	}
	assert.Equal(t, []string{"tri", "quad"}, names)

	count := 0
	for range s.Materials() {
		count++
	}
	assert.Equal(t, 2, count)

	for _, c := range s.Cameras() {
		assert.Equal(t, "camera", c.Name().String())
		p := c.Params()
		assert.InDelta(t, 16.0/9.0, p.Aspect, 1e-6)
		assert.Equal(t, Vector3D{Z: -1}, p.LookAt)
	}

	l, err := s.LightAt(0)
	require.NoError(t, err)
	assert.Equal(t, LightDirectional, l.Type())
	assert.Equal(t, Vector3D{Y: -1}, l.Params().Direction)

	assert.Zero(t, s.NumAnimations())
	for range s.Animations() {
		t.Fatal("no animations expected")
	}
}

func TestCloseReleasesOnce(t *testing.T) {
	im, gw := newFakeImporter(t)
	s, err := im.ImportFile("triangle.obj", 0)
	require.NoError(t, err)
	require.Equal(t, 1, gw.Live())

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	assert.True(t, s.Closed())
	assert.Equal(t, 1, gw.Releases())
	assert.Zero(t, gw.BadReleases())
	assert.Zero(t, gw.Live())
}

func TestCloneSharesAllocation(t *testing.T) {
	im, gw := newFakeImporter(t)
	s, err := im.ImportFile("triangle.obj", 0)
	require.NoError(t, err)

	c, err := s.Clone()
	require.NoError(t, err)
	assert.Equal(t, s.ID(), c.ID())

	require.NoError(t, s.Close())
	assert.Zero(t, gw.Releases(), "clone still holds the scene")
	assert.Equal(t, 1, c.NumMeshes())

	requireUseAfterRelease(t, func() { s.NumMeshes() })

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	assert.Equal(t, 1, gw.Releases())
	assert.Zero(t, gw.BadReleases())

	_, err = s.Clone()
	assert.ErrorIs(t, err, ErrUseAfterRelease)
}

func TestUseAfterRelease(t *testing.T) {
	im, _ := newFakeImporter(t)
	s, err := im.ImportFile("two.fbx", 0)
	require.NoError(t, err)

	root := mustRoot(t, s)
	arm := mustFind(t, s, "arm")
	m, err := s.MeshAt(1)
	require.NoError(t, err)
	f, err := m.FaceAt(0)
	require.NoError(t, err)
	b, err := m.BoneAt(0)
	require.NoError(t, err)
	mat, err := s.MaterialAt(0)
	require.NoError(t, err)
	prop, err := mat.PropertyAt(0)
	require.NoError(t, err)
	pos, ok := m.Positions()
	require.True(t, ok)
	children := root.Children()

	require.NoError(t, s.Close())

	requireUseAfterRelease(t, func() { root.Name() })
	requireUseAfterRelease(t, func() { arm.Parent() })
	requireUseAfterRelease(t, func() { arm.Transform() })
	requireUseAfterRelease(t, func() {
		for range children {
		}
	})
	requireUseAfterRelease(t, func() { m.NumVertices() })
	requireUseAfterRelease(t, func() { f.Indices() })
	requireUseAfterRelease(t, func() { b.Weights() })
	requireUseAfterRelease(t, func() { prop.Data() })
	requireUseAfterRelease(t, func() { _, _ = pos.At(0) })
	requireUseAfterRelease(t, func() { pos.Collect() })
	requireUseAfterRelease(t, func() { s.RootNode() })

	_, err = s.MeshAt(0)
	assert.ErrorIs(t, err, ErrUseAfterRelease)
	_, err = s.CameraAt(0)
	assert.ErrorIs(t, err, ErrUseAfterRelease)
}

func TestCloseInsideIteration(t *testing.T) {
	im, _ := newFakeImporter(t)
	s, err := im.ImportFile("two.fbx", 0)
	require.NoError(t, err)

	seen := 0
	requireUseAfterRelease(t, func() {
		for range s.Meshes() {
			seen++
			_ = s.Close()
		}
	})
	assert.Equal(t, 1, seen)
}

func TestWithReleasesOnEveryPath(t *testing.T) {
	im, gw := newFakeImporter(t)

	var kept *Scene
	err := im.With("triangle.obj", 0, func(s *Scene) error {
		kept = s
		assert.Equal(t, 1, s.NumMeshes())
		return nil
	})
	require.NoError(t, err)
	assert.True(t, kept.Closed())
	assert.Equal(t, 1, gw.Releases())

	boom := errors.New("boom")
	err = im.With("triangle.obj", 0, func(*Scene) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, gw.Releases())

	assert.Panics(t, func() {
		_ = im.With("triangle.obj", 0, func(*Scene) error { panic("fn failed") })
	})
	assert.Equal(t, 3, gw.Releases())

	called := false
	err = im.With("missing.obj", 0, func(*Scene) error { called = true; return nil })
	assert.ErrorIs(t, err, ErrLoadFailure)
	assert.False(t, called)

	assert.Zero(t, gw.Live())
	assert.Zero(t, gw.BadReleases())
}

func TestImportTwiceIsIndependent(t *testing.T) {
	im, _ := newFakeImporter(t)
	a := mustImport(t, im, "two.fbx")
	b := mustImport(t, im, "two.fbx")

	assert.NotSame(t, a.raw, b.raw)
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, summarize(t, a), summarize(t, b))

	require.NoError(t, a.Close())
	assert.Equal(t, 2, b.NumMeshes(), "closing one import leaves the other intact")
}

type sceneSummary struct {
	Nodes       []string
	MeshIndices [][]int
	Vertices    []int
	Faces       []int
	Materials   int
}

func summarize(t *testing.T, s *Scene) sceneSummary {
	t.Helper()
	var out sceneSummary
	for n := range mustRoot(t, s).Descendants() {
		out.Nodes = append(out.Nodes, n.Name().String())
		var idx []int
		for i := range n.MeshIndices() {
			idx = append(idx, i)
		}
		out.MeshIndices = append(out.MeshIndices, idx)
	}
	for _, m := range s.Meshes() {
		out.Vertices = append(out.Vertices, m.NumVertices())
		out.Faces = append(out.Faces, m.NumFaces())
	}
	out.Materials = s.NumMaterials()
	return out
}

func TestLeakedSceneIsReleased(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	im, gw := newFakeImporter(t, WithLogger(zap.New(core)))

	leak := func() {
		s, err := im.ImportFile("triangle.obj", 0)
		require.NoError(t, err)
		require.Equal(t, 1, s.NumMeshes())
	}
	leak()

	require.Eventually(t, func() bool {
		runtime.GC()
		return gw.Releases() == 1
	}, 5*time.Second, 10*time.Millisecond)

	require.Eventually(t, func() bool {
		return logs.FilterMessage("scene garbage collected without Close").Len() == 1
	}, time.Second, 10*time.Millisecond)
	assert.Zero(t, gw.BadReleases())
}

func TestIncompleteScene(t *testing.T) {
	gw := fakeimport.New().AddFile("anim.fbx", fakeimport.SceneSpec{
		Flags: uint32(SceneIncomplete),
		Animations: []abi.Animation{{
			Name:           fakeimport.String("walk"),
			Duration:       48,
			TicksPerSecond: 24,
			NumChannels:    3,
		}},
	})
	im := NewImporter(gw)
	s := mustImport(t, im, "anim.fbx")

	assert.True(t, s.Incomplete())
	_, ok := s.RootNode()
	assert.False(t, ok)
	_, ok = s.FindNode("anything")
	assert.False(t, ok)

	a, err := s.AnimationAt(0)
	require.NoError(t, err)
	assert.Equal(t, "walk", a.Name().String())
	assert.InDelta(t, 48, a.Duration(), 1e-9)
	assert.InDelta(t, 24, a.TicksPerSecond(), 1e-9)
	assert.Equal(t, 3, a.NumChannels())
	assert.Zero(t, a.NumMeshChannels())
}
