package assimp

import (
	"testing"

	"github.com/Faultbox/assimp-go/internal/fakeimport"
	"github.com/stretchr/testify/require"
)

func newFakeImporter(t *testing.T, opts ...Option) (*Importer, *fakeimport.Gateway) {
	t.Helper()
	gw := fakeimport.New().
		AddFile("triangle.obj", fakeimport.Triangle()).
		AddFile("two.fbx", fakeimport.TwoMeshes())
	return NewImporter(gw, opts...), gw
}

func mustImport(t *testing.T, im *Importer, path string) *Scene {
	t.Helper()
	s, err := im.ImportFile(path, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func mustRoot(t *testing.T, s *Scene) Node {
	t.Helper()
	root, ok := s.RootNode()
	require.True(t, ok)
	return root
}

func mustFind(t *testing.T, s *Scene, name string) Node {
	t.Helper()
	n, ok := s.FindNode(name)
	require.True(t, ok, "node %q", name)
	return n
}

// requireUseAfterRelease asserts fn panics with an error wrapping
// ErrUseAfterRelease.
func requireUseAfterRelease(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, ErrUseAfterRelease)
	}()
	fn()
}
