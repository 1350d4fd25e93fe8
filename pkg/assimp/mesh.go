package assimp

import (
	"iter"
	"slices"
	"unsafe"

	"github.com/Faultbox/assimp-go/pkg/assimp/abi"
)

// Mesh is a read-only view of one aiMesh.
type Mesh struct {
	s *Scene
	m *abi.Mesh
}

// ColorChannel is one present vertex colour set.
type ColorChannel struct {
	Slot   int // Index in aiMesh::mColors
	Colors Array[Color4D]
}

// TexCoordChannel is one present texture coordinate set.
type TexCoordChannel struct {
	Slot       int  // Index in aiMesh::mTextureCoords
	Components int  // 1 (U), 2 (UV) or 3 (UVW)
	Name       Name // Empty when the importer gave none
	Coords     Array[Vector3D]
}

// Name returns mName.
func (m Mesh) Name() Name {
	return read(m.s, "Mesh.Name", func() Name { return newName(&m.m.Name) })
}

// NumVertices returns mNumVertices.
func (m Mesh) NumVertices() int {
	return read(m.s, "Mesh.NumVertices", func() int { return int(m.m.NumVertices) })
}

// NumFaces returns mNumFaces.
func (m Mesh) NumFaces() int {
	return read(m.s, "Mesh.NumFaces", func() int { return int(m.m.NumFaces) })
}

// PrimitiveTypes returns the primitive kinds present in the mesh.
func (m Mesh) PrimitiveTypes() PrimitiveType {
	return read(m.s, "Mesh.PrimitiveTypes", func() PrimitiveType { return PrimitiveType(m.m.PrimitiveTypes) })
}

// MaterialIndex indexes the scene's material collection.
func (m Mesh) MaterialIndex() int {
	return read(m.s, "Mesh.MaterialIndex", func() int { return int(m.m.MaterialIndex) })
}

// MorphingMethod returns mMethod.
func (m Mesh) MorphingMethod() MorphingMethod {
	return read(m.s, "Mesh.MorphingMethod", func() MorphingMethod { return MorphingMethod(m.m.Method) })
}

// NumAnimMeshes returns mNumAnimMeshes. The anim meshes themselves are
// not exposed.
func (m Mesh) NumAnimMeshes() int {
	return read(m.s, "Mesh.NumAnimMeshes", func() int { return int(m.m.NumAnimMeshes) })
}

// AABB returns mAABB. It is only filled when GenBoundingBoxes was requested.
func (m Mesh) AABB() AABB {
	return read(m.s, "Mesh.AABB", func() AABB { return m.m.AABB })
}

func (m Mesh) vertexArray(op string, field func() *Vector3D) (Array[Vector3D], bool) {
	a := read(m.s, op, func() Array[Vector3D] {
		return newArray(m.s, op, field(), m.m.NumVertices)
	})
	return a, a.base != nil
}

// Positions returns the vertex positions; ok is false when absent.
func (m Mesh) Positions() (Array[Vector3D], bool) {
	return m.vertexArray("Mesh.Positions", func() *Vector3D { return m.m.Vertices })
}

// Normals returns the vertex normals; ok is false when absent.
func (m Mesh) Normals() (Array[Vector3D], bool) {
	return m.vertexArray("Mesh.Normals", func() *Vector3D { return m.m.Normals })
}

// Tangents returns the vertex tangents; ok is false when absent.
func (m Mesh) Tangents() (Array[Vector3D], bool) {
	return m.vertexArray("Mesh.Tangents", func() *Vector3D { return m.m.Tangents })
}

// Bitangents returns the vertex bitangents; ok is false when absent.
func (m Mesh) Bitangents() (Array[Vector3D], bool) {
	return m.vertexArray("Mesh.Bitangents", func() *Vector3D { return m.m.Bitangents })
}

// ColorChannels returns the present colour sets, in slot order.
func (m Mesh) ColorChannels() []ColorChannel {
	return read(m.s, "Mesh.ColorChannels", func() []ColorChannel {
		var out []ColorChannel
		for slot, p := range m.m.Colors {
			if p != nil {
				out = append(out, ColorChannel{
					Slot:   slot,
					Colors: newArray(m.s, "mesh colors", p, m.m.NumVertices),
				})
			}
		}
		return out
	})
}

// TexCoordChannels returns the present texture coordinate sets, in slot
// order.
func (m Mesh) TexCoordChannels() []TexCoordChannel {
	return read(m.s, "Mesh.TexCoordChannels", func() []TexCoordChannel {
		var names []*abi.String
		if m.m.TextureCoordsNames != nil {
			names = unsafe.Slice(m.m.TextureCoordsNames, abi.MaxNumberOfTextureCoords)
		}
		var out []TexCoordChannel
		for slot, p := range m.m.TextureCoords {
			if p == nil {
				continue
			}
			ch := TexCoordChannel{
				Slot:       slot,
				Components: int(m.m.NumUVComponents[slot]),
				Coords:     newArray(m.s, "mesh texture coords", p, m.m.NumVertices),
			}
			if names != nil && names[slot] != nil {
				ch.Name = newName(names[slot])
			}
			out = append(out, ch)
		}
		return out
	})
}

// FaceAt returns face i.
func (m Mesh) FaceAt(i int) (Face, error) {
	if err := checkIndex("faces", i, m.NumFaces()); err != nil {
		return Face{}, err
	}
	return Face{s: m.s, f: read(m.s, "Mesh.FaceAt", func() *abi.Face {
		return &unsafe.Slice(m.m.Faces, m.m.NumFaces)[i]
	})}, nil
}

// Faces iterates faces in order.
func (m Mesh) Faces() iter.Seq2[int, Face] {
	return func(yield func(int, Face) bool) {
		for i := 0; ; i++ {
			m.s.live("Mesh.Faces")
			if i >= int(m.m.NumFaces) {
				return
			}
			if !yield(i, Face{s: m.s, f: &unsafe.Slice(m.m.Faces, m.m.NumFaces)[i]}) {
				return
			}
		}
	}
}

// NumBones returns mNumBones.
func (m Mesh) NumBones() int {
	return read(m.s, "Mesh.NumBones", func() int { return int(m.m.NumBones) })
}

// BoneAt returns bone i.
func (m Mesh) BoneAt(i int) (Bone, error) {
	m.s.live("Mesh.BoneAt")
	b, err := elem("bones", m.m.Bones, m.m.NumBones, i)
	if err != nil {
		return Bone{}, err
	}
	return Bone{s: m.s, b: b}, nil
}

// Bones iterates bones in order.
func (m Mesh) Bones() iter.Seq2[int, Bone] {
	return func(yield func(int, Bone) bool) {
		for i := 0; ; i++ {
			m.s.live("Mesh.Bones")
			if i >= int(m.m.NumBones) {
				return
			}
			if !yield(i, Bone{s: m.s, b: unsafe.Slice(m.m.Bones, m.m.NumBones)[i]}) {
				return
			}
		}
	}
}

// Face is a view of one aiFace.
type Face struct {
	s *Scene
	f *abi.Face
}

// Len returns mNumIndices.
func (f Face) Len() int {
	return read(f.s, "Face.Len", func() int { return int(f.f.NumIndices) })
}

// IndexAt returns vertex index i of the face.
func (f Face) IndexAt(i int) (int, error) {
	if err := checkIndex("face indices", i, f.Len()); err != nil {
		return 0, err
	}
	return read(f.s, "Face.IndexAt", func() int {
		return int(unsafe.Slice(f.f.Indices, f.f.NumIndices)[i])
	}), nil
}

// Indices returns a copy of the vertex indices.
func (f Face) Indices() []uint32 {
	return read(f.s, "Face.Indices", func() []uint32 {
		if f.f.NumIndices == 0 || f.f.Indices == nil {
			return nil
		}
		return slices.Clone(unsafe.Slice(f.f.Indices, f.f.NumIndices))
	})
}
