package abi

import "unsafe"

// Mesh mirrors aiMesh.
//
// Every per-vertex array that is non-nil holds NumVertices elements.
type Mesh struct {
	PrimitiveTypes uint32
	NumVertices    uint32
	NumFaces       uint32

	Vertices   *Vector3D
	Normals    *Vector3D
	Tangents   *Vector3D
	Bitangents *Vector3D

	Colors          [MaxNumberOfColorSets]*Color4D
	TextureCoords   [MaxNumberOfTextureCoords]*Vector3D
	NumUVComponents [MaxNumberOfTextureCoords]uint32

	Faces *Face

	NumBones uint32
	Bones    **Bone

	MaterialIndex uint32

	Name String

	NumAnimMeshes uint32
	// AnimMeshes points at aiAnimMesh* entries (not mirrored).
	AnimMeshes unsafe.Pointer

	// Method is an aiMorphingMethod value.
	Method uint32

	AABB AABB

	// TextureCoordsNames points at MaxNumberOfTextureCoords aiString*
	// entries, or is nil.
	TextureCoordsNames **String
}

// Bone mirrors aiBone.
type Bone struct {
	Name       String
	NumWeights uint32

	// Armature and Node are filled by the PopulateArmatureData step.
	Armature *Node
	Node     *Node

	Weights      *VertexWeight
	OffsetMatrix Matrix4x4
}
