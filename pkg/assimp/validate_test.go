package assimp

import (
	"errors"
	"testing"

	"github.com/Faultbox/assimp-go/internal/fakeimport"
	"github.com/Faultbox/assimp-go/pkg/assimp/abi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func violations(t *testing.T, err error) []*Violation {
	t.Helper()
	var out []*Violation
	for _, e := range multierr.Errors(err) {
		var v *Violation
		require.True(t, errors.As(e, &v), "unexpected error %v", e)
		out = append(out, v)
	}
	return out
}

func rules(vs []*Violation) []string {
	var out []string
	for _, v := range vs {
		out = append(out, v.Rule)
	}
	return out
}

func TestValidateWellFormed(t *testing.T) {
	im, _ := newFakeImporter(t)
	for _, path := range []string{"triangle.obj", "two.fbx"} {
		s := mustImport(t, im, path)
		assert.NoError(t, Validate(s), path)
	}
}

func TestValidateViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*fakeimport.SceneSpec)
		rules  []string
	}{
		{
			name:   "complete scene without materials",
			mutate: func(s *fakeimport.SceneSpec) { s.Materials = nil; s.Meshes[0].MaterialIndex = 0 },
			rules:  []string{"complete-scene", "material-index"},
		},
		{
			name:   "complete scene without root",
			mutate: func(s *fakeimport.SceneSpec) { s.Root = nil },
			rules:  []string{"complete-scene"},
		},
		{
			name:   "node mesh index out of range",
			mutate: func(s *fakeimport.SceneSpec) { s.Root.Children[0].Meshes = []uint32{0, 7} },
			rules:  []string{"node-mesh-index"},
		},
		{
			name:   "face index out of range",
			mutate: func(s *fakeimport.SceneSpec) { s.Meshes[0].Faces = [][]uint32{{0, 1, 3}} },
			rules:  []string{"face-index"},
		},
		{
			name:   "empty face",
			mutate: func(s *fakeimport.SceneSpec) { s.Meshes[0].Faces = append(s.Meshes[0].Faces, nil) },
			rules:  []string{"face-index"},
		},
		{
			name:   "material index out of range",
			mutate: func(s *fakeimport.SceneSpec) { s.Meshes[0].MaterialIndex = 1 },
			rules:  []string{"material-index"},
		},
		{
			name: "bone weight sum above one",
			mutate: func(s *fakeimport.SceneSpec) {
				s.Meshes[0].Bones = []fakeimport.BoneSpec{
					{Name: "a", Weights: []abi.VertexWeight{{VertexID: 0, Weight: 0.7}}},
					{Name: "b", Weights: []abi.VertexWeight{{VertexID: 0, Weight: 0.4}}},
				}
			},
			rules: []string{"bone-weight"},
		},
		{
			name: "bone weight vertex out of range",
			mutate: func(s *fakeimport.SceneSpec) {
				s.Meshes[0].Bones = []fakeimport.BoneSpec{
					{Name: "a", Weights: []abi.VertexWeight{{VertexID: 3, Weight: 1}}},
				}
			},
			rules: []string{"bone-weight"},
		},
		{
			name: "bone weight outside unit range",
			mutate: func(s *fakeimport.SceneSpec) {
				s.Meshes[0].Bones = []fakeimport.BoneSpec{
					{Name: "a", Weights: []abi.VertexWeight{{VertexID: 1, Weight: -0.5}}},
				}
			},
			rules: []string{"bone-weight"},
		},
		{
			name: "texture coords with bad component count",
			mutate: func(s *fakeimport.SceneSpec) {
				s.Meshes[0].TexCoords[0] = []abi.Vector3D{{}, {}, {}}
				s.Meshes[0].UVComponents[0] = 4
			},
			rules: []string{"vertex-array"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := fakeimport.Triangle()
			tt.mutate(&spec)
			s := mustImport(t, NewImporter(fakeimport.New().AddFile("bad.obj", spec)), "bad.obj")

			err := Validate(s)
			require.Error(t, err)
			assert.ElementsMatch(t, tt.rules, rules(violations(t, err)))
		})
	}
}

func TestValidateWeightTolerance(t *testing.T) {
	spec := fakeimport.Triangle()
	spec.Meshes[0].Bones = []fakeimport.BoneSpec{
		{Name: "a", Weights: []abi.VertexWeight{{VertexID: 0, Weight: 0.70001}}},
		{Name: "b", Weights: []abi.VertexWeight{{VertexID: 0, Weight: 0.30004}}},
	}
	s := mustImport(t, NewImporter(fakeimport.New().AddFile("ok.obj", spec)), "ok.obj")
	assert.NoError(t, Validate(s))
}

func TestValidateIncompleteScene(t *testing.T) {
	spec := fakeimport.SceneSpec{Flags: uint32(SceneIncomplete)}
	s := mustImport(t, NewImporter(fakeimport.New().AddFile("anim.bvh", spec)), "anim.bvh")
	assert.NoError(t, Validate(s))
}

func TestValidateDetectsCycle(t *testing.T) {
	im, _ := newFakeImporter(t)
	s := mustImport(t, im, "two.fbx")

	// Point arm's child list back at the root.
	root := s.raw.RootNode
	arm := mustFind(t, s, "arm").n
	back := []*abi.Node{root}
	arm.NumChildren, arm.Children = 1, &back[0]

	vs := violations(t, Validate(s))
	require.NotEmpty(t, vs)
	assert.Contains(t, rules(vs), "tree")
	assert.Contains(t, vs[0].Error(), "tree: ")
}

func TestValidateBrokenParentLink(t *testing.T) {
	im, _ := newFakeImporter(t)
	s := mustImport(t, im, "two.fbx")

	mustFind(t, s, "arm").n.Parent = s.raw.RootNode

	vs := violations(t, Validate(s))
	require.Len(t, vs, 1)
	assert.Equal(t, "tree", vs[0].Rule)
	assert.Equal(t, `node "arm"`, vs[0].Where)
}

func TestValidateAfterClose(t *testing.T) {
	im, _ := newFakeImporter(t)
	s, err := im.ImportFile("triangle.obj", 0)
	require.NoError(t, err)
	require.NoError(t, s.Close())
	assert.ErrorIs(t, Validate(s), ErrUseAfterRelease)
}
