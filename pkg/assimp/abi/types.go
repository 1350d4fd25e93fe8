package abi

// Capacities of fixed-size arrays in the C headers.
const (
	// MaxLen is the size of aiString's inline buffer (MAXLEN).
	MaxLen = 1024

	// MaxNumberOfColorSets is AI_MAX_NUMBER_OF_COLOR_SETS.
	MaxNumberOfColorSets = 0x8

	// MaxNumberOfTextureCoords is AI_MAX_NUMBER_OF_TEXTURECOORDS.
	MaxNumberOfTextureCoords = 0x8

	// HintMaxTextureLen is the length of aiTexture::achFormatHint.
	HintMaxTextureLen = 9
)

// String mirrors aiString.
type String struct {
	// Length is the byte length excluding the terminating NUL. It is not the
	// number of UTF-8 code points.
	Length uint32
	Data   [MaxLen]byte
}

// Vector2D mirrors aiVector2D.
type Vector2D struct {
	X, Y float32
}

// Vector3D mirrors aiVector3D.
type Vector3D struct {
	X, Y, Z float32
}

// Color3D mirrors aiColor3D.
type Color3D struct {
	R, G, B float32
}

// Color4D mirrors aiColor4D.
type Color4D struct {
	R, G, B, A float32
}

// Matrix4x4 mirrors aiMatrix4x4. Storage is row-major: A1..A4 is the first
// row.
type Matrix4x4 struct {
	A1, A2, A3, A4 float32
	B1, B2, B3, B4 float32
	C1, C2, C3, C4 float32
	D1, D2, D3, D4 float32
}

// AABB mirrors aiAABB.
type AABB struct {
	Min Vector3D
	Max Vector3D
}

// Face mirrors aiFace.
type Face struct {
	NumIndices uint32
	Indices    *uint32
}

// VertexWeight mirrors aiVertexWeight.
type VertexWeight struct {
	VertexID uint32
	Weight   float32
}

// Texel mirrors aiTexel. Channel order is BGRA.
type Texel struct {
	B, G, R, A uint8
}
