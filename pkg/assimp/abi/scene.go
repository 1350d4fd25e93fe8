package abi

import "unsafe"

// Node mirrors aiNode.
type Node struct {
	Name           String
	Transformation Matrix4x4

	// Parent is nil for the root node.
	Parent *Node

	NumChildren uint32
	// Children is nil when NumChildren is 0.
	Children **Node

	NumMeshes uint32
	// Meshes holds indices into Scene.Meshes.
	Meshes *uint32

	// MetaData points at an aiMetadata record (not mirrored).
	MetaData unsafe.Pointer
}

// Scene mirrors aiScene.
type Scene struct {
	Flags    uint32
	RootNode *Node

	NumMeshes uint32
	Meshes    **Mesh

	NumMaterials uint32
	Materials    **Material

	NumAnimations uint32
	Animations    **Animation

	NumTextures uint32
	Textures    **Texture

	NumLights uint32
	Lights    **Light

	NumCameras uint32
	Cameras    **Camera

	// MetaData points at an aiMetadata record (not mirrored).
	MetaData unsafe.Pointer

	Name String

	NumSkeletons uint32
	// Skeletons points at aiSkeleton* entries (not mirrored).
	Skeletons unsafe.Pointer

	// Private is owned by the importer. Never touch it.
	Private unsafe.Pointer
}
