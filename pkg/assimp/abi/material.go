package abi

// MaterialProperty mirrors aiMaterialProperty.
type MaterialProperty struct {
	Key String

	// Semantic is an aiTextureType; 0 for non-texture properties.
	Semantic uint32
	// Index is the texture index; 0 for non-texture properties.
	Index uint32

	DataLength uint32
	// Type is an aiPropertyTypeInfo value describing Data.
	Type uint32
	Data *byte
}

// Material mirrors aiMaterial.
type Material struct {
	Properties    **MaterialProperty
	NumProperties uint32
	NumAllocated  uint32
}
