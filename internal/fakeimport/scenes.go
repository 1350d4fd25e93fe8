package fakeimport

import "github.com/Faultbox/assimp-go/pkg/assimp/abi"

// Triangle is a single-triangle scene: one mesh of three vertices and one
// face {0,1,2}, one material, and a root with a single child holding the
// mesh.
func Triangle() SceneSpec {
	return SceneSpec{
		Name: "triangle",
		Root: &NodeSpec{
			Name: "root",
			Children: []NodeSpec{
				{Name: "triangle", Meshes: []uint32{0}},
			},
		},
		Meshes: []MeshSpec{{
			Name: "tri",
			Positions: []abi.Vector3D{
				{X: 0, Y: 0, Z: 0},
				{X: 1, Y: 0, Z: 0},
				{X: 0, Y: 1, Z: 0},
			},
			Normals: []abi.Vector3D{
				{Z: 1}, {Z: 1}, {Z: 1},
			},
			Faces: [][]uint32{{0, 1, 2}},
		}},
		Materials: []MaterialSpec{DefaultMaterial("default")},
	}
}

// TwoMeshes has two meshes and a small hierarchy:
//
//	root
//	├── body (mesh 0)
//	│   └── arm (mesh 1, translated by (0, 2, 0))
//	└── camera
func TwoMeshes() SceneSpec {
	quad := MeshSpec{
		Name: "quad",
		Positions: []abi.Vector3D{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
		},
		Faces: [][]uint32{{0, 1, 2}, {0, 2, 3}},
		TexCoords: [abi.MaxNumberOfTextureCoords][]abi.Vector3D{
			1: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
		},
		TexCoordNames: [abi.MaxNumberOfTextureCoords]string{1: "UVMap"},
		Bones: []BoneSpec{
			{Name: "arm", Weights: []abi.VertexWeight{{VertexID: 0, Weight: 0.5}, {VertexID: 1, Weight: 1}}},
			{Name: "body", Weights: []abi.VertexWeight{{VertexID: 0, Weight: 0.5}}},
		},
		MaterialIndex: 1,
	}
	lift := Identity()
	lift.B4 = 2

	return SceneSpec{
		Name: "two",
		Root: &NodeSpec{
			Name: "root",
			Children: []NodeSpec{
				{
					Name:   "body",
					Meshes: []uint32{0},
					Children: []NodeSpec{
						{Name: "arm", Transform: &lift, Meshes: []uint32{1}},
					},
				},
				{Name: "camera"},
			},
		},
		Meshes:    []MeshSpec{Triangle().Meshes[0], quad},
		Materials: []MaterialSpec{DefaultMaterial("first"), DefaultMaterial("second")},
		Cameras: []abi.Camera{{
			Name:          String("camera"),
			Up:            abi.Vector3D{Y: 1},
			LookAt:        abi.Vector3D{Z: -1},
			HorizontalFOV: 0.785,
			ClipPlaneNear: 0.1,
			ClipPlaneFar:  1000,
			Aspect:        16.0 / 9.0,
		}},
		Lights: []abi.Light{{
			Name:         String("sun"),
			Type:         1,
			Direction:    abi.Vector3D{Y: -1},
			ColorDiffuse: abi.Color3D{R: 1, G: 1, B: 1},
		}},
	}
}

// DefaultMaterial has a string name property and a float diffuse colour,
// encoded the way libassimp stores them.
func DefaultMaterial(name string) MaterialSpec {
	return MaterialSpec{Properties: []PropertySpec{
		{Key: "?mat.name", Type: 3, Data: aiStringBytes(name)},
		{Key: "$clr.diffuse", Type: 1, Data: []byte{
			0x00, 0x00, 0x80, 0x3f, // 1.0
			0x00, 0x00, 0x00, 0x3f, // 0.5
			0x00, 0x00, 0x00, 0x00, // 0.0
			0x00, 0x00, 0x80, 0x3f, // 1.0
		}},
	}}
}

// aiStringBytes encodes s as a string property: a little-endian uint32
// length, the bytes and a NUL.
func aiStringBytes(s string) []byte {
	n := len(s)
	out := []byte{byte(n), byte(n >> 8), byte(n >> 16), byte(n >> 24)}
	out = append(out, s...)
	return append(out, 0)
}
