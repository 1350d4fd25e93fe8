// Package fakeimport builds mirrored scenes in Go memory and serves them
// through an in-process gateway, so the binding can be tested without
// libassimp.
package fakeimport

import "github.com/Faultbox/assimp-go/pkg/assimp/abi"

// SceneSpec describes a scene to build.
type SceneSpec struct {
	Flags      uint32
	Name       string
	Root       *NodeSpec
	Meshes     []MeshSpec
	Materials  []MaterialSpec
	Textures   []abi.Texture
	Lights     []abi.Light
	Cameras    []abi.Camera
	Animations []abi.Animation
}

// NodeSpec describes a node and its subtree.
type NodeSpec struct {
	Name      string
	Transform *abi.Matrix4x4 // nil means identity
	Meshes    []uint32
	Children  []NodeSpec
}

// MeshSpec describes a mesh. Nil vertex arrays are absent.
type MeshSpec struct {
	Name           string
	PrimitiveTypes uint32
	Positions      []abi.Vector3D
	Normals        []abi.Vector3D
	Tangents       []abi.Vector3D
	Bitangents     []abi.Vector3D
	Colors         [abi.MaxNumberOfColorSets][]abi.Color4D
	TexCoords      [abi.MaxNumberOfTextureCoords][]abi.Vector3D
	UVComponents   [abi.MaxNumberOfTextureCoords]uint32
	TexCoordNames  [abi.MaxNumberOfTextureCoords]string
	Faces          [][]uint32
	Bones          []BoneSpec
	MaterialIndex  uint32
	AABB           abi.AABB
}

// BoneSpec describes a bone.
type BoneSpec struct {
	Name    string
	Weights []abi.VertexWeight
	Offset  *abi.Matrix4x4 // nil means identity
}

// MaterialSpec describes a material.
type MaterialSpec struct {
	Properties []PropertySpec
}

// PropertySpec describes one material property.
type PropertySpec struct {
	Key      string
	Semantic uint32
	Index    uint32
	Type     uint32
	Data     []byte
}

// String returns s as an aiString. Bytes beyond the buffer are dropped.
func String(s string) abi.String {
	var out abi.String
	n := copy(out.Data[:abi.MaxLen-1], s)
	out.Length = uint32(n)
	return out
}

// Identity returns the identity aiMatrix4x4.
func Identity() abi.Matrix4x4 {
	return abi.Matrix4x4{A1: 1, B2: 1, C3: 1, D4: 1}
}

// Build allocates the scene described by spec in Go memory. Every pointer
// in the result is a Go pointer, so the garbage collector keeps the graph
// alive for as long as the scene is referenced.
func Build(spec SceneSpec) *abi.Scene {
	s := &abi.Scene{
		Flags: spec.Flags,
		Name:  String(spec.Name),
	}
	if spec.Root != nil {
		s.RootNode = buildNode(spec.Root, nil)
	}

	s.NumMeshes, s.Meshes = ptrArray(spec.Meshes, buildMesh)
	s.NumMaterials, s.Materials = ptrArray(spec.Materials, buildMaterial)
	s.NumTextures, s.Textures = ptrArray(spec.Textures, clone[abi.Texture])
	s.NumLights, s.Lights = ptrArray(spec.Lights, clone[abi.Light])
	s.NumCameras, s.Cameras = ptrArray(spec.Cameras, clone[abi.Camera])
	s.NumAnimations, s.Animations = ptrArray(spec.Animations, clone[abi.Animation])
	return s
}

func buildNode(spec *NodeSpec, parent *abi.Node) *abi.Node {
	n := &abi.Node{
		Name:           String(spec.Name),
		Transformation: Identity(),
		Parent:         parent,
	}
	if spec.Transform != nil {
		n.Transformation = *spec.Transform
	}
	n.NumMeshes, n.Meshes = valArray(spec.Meshes)

	children := make([]*abi.Node, len(spec.Children))
	for i := range spec.Children {
		children[i] = buildNode(&spec.Children[i], n)
	}
	n.NumChildren, n.Children = valArray(children)
	return n
}

func buildMesh(spec *MeshSpec) *abi.Mesh {
	m := &abi.Mesh{
		PrimitiveTypes: spec.PrimitiveTypes,
		NumVertices:    uint32(len(spec.Positions)),
		Name:           String(spec.Name),
		MaterialIndex:  spec.MaterialIndex,
		AABB:           spec.AABB,
	}
	m.Vertices = first(spec.Positions)
	m.Normals = first(spec.Normals)
	m.Tangents = first(spec.Tangents)
	m.Bitangents = first(spec.Bitangents)
	for i, c := range spec.Colors {
		m.Colors[i] = first(c)
	}

	var names []*abi.String
	for i, t := range spec.TexCoords {
		m.TextureCoords[i] = first(t)
		if t != nil {
			m.NumUVComponents[i] = spec.UVComponents[i]
			if m.NumUVComponents[i] == 0 {
				m.NumUVComponents[i] = 2
			}
		}
		if spec.TexCoordNames[i] != "" {
			if names == nil {
				names = make([]*abi.String, abi.MaxNumberOfTextureCoords)
			}
			name := String(spec.TexCoordNames[i])
			names[i] = &name
		}
	}
	m.TextureCoordsNames = first(names)

	faces := make([]abi.Face, len(spec.Faces))
	var prim uint32
	for i, idx := range spec.Faces {
		n, p := valArray(idx)
		faces[i] = abi.Face{NumIndices: n, Indices: p}
		prim |= primitiveFor(len(idx))
	}
	m.NumFaces, m.Faces = valArray(faces)
	if m.PrimitiveTypes == 0 {
		m.PrimitiveTypes = prim
	}

	m.NumBones, m.Bones = ptrArray(spec.Bones, buildBone)
	return m
}

func primitiveFor(n int) uint32 {
	switch n {
	case 1:
		return 0x1
	case 2:
		return 0x2
	case 3:
		return 0x4
	default:
		return 0x8
	}
}

func buildBone(spec *BoneSpec) *abi.Bone {
	b := &abi.Bone{
		Name:         String(spec.Name),
		OffsetMatrix: Identity(),
	}
	if spec.Offset != nil {
		b.OffsetMatrix = *spec.Offset
	}
	b.NumWeights, b.Weights = valArray(spec.Weights)
	return b
}

func buildMaterial(spec *MaterialSpec) *abi.Material {
	m := &abi.Material{}
	m.NumProperties, m.Properties = ptrArray(spec.Properties, func(p *PropertySpec) *abi.MaterialProperty {
		prop := &abi.MaterialProperty{
			Key:      String(p.Key),
			Semantic: p.Semantic,
			Index:    p.Index,
			Type:     p.Type,
		}
		prop.DataLength, prop.Data = valArray(p.Data)
		return prop
	})
	m.NumAllocated = m.NumProperties
	return m
}

func clone[T any](v *T) *T {
	c := *v
	return &c
}

// ptrArray builds a count-tagged array of pointers, the T** shape aiScene
// uses for its collections.
func ptrArray[S, T any](specs []S, build func(*S) *T) (uint32, **T) {
	if len(specs) == 0 {
		return 0, nil
	}
	out := make([]*T, len(specs))
	for i := range specs {
		out[i] = build(&specs[i])
	}
	return uint32(len(out)), &out[0]
}

func valArray[T any](vals []T) (uint32, *T) {
	return uint32(len(vals)), first(vals)
}

func first[T any](vals []T) *T {
	if len(vals) == 0 {
		return nil
	}
	return &vals[0]
}
