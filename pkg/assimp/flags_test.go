package assimp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePostProcess(t *testing.T) {
	tests := []struct {
		names []string
		want  PostProcess
	}{
		{nil, 0},
		{[]string{"Triangulate"}, Triangulate},
		{[]string{"aiProcess_Triangulate", "flipuvs"}, Triangulate | FlipUVs},
		{[]string{"  GenSmoothNormals "}, GenSmoothNormals},
		{[]string{"aiProcess_TargetRealtime_Fast"}, TargetRealtimeFast},
		{[]string{"ConvertToLeftHanded", "GenBoundingBoxes"}, ConvertToLeftHanded | GenBoundingBoxes},
	}
	for _, tt := range tests {
		got, err := ParsePostProcess(tt.names)
		require.NoError(t, err, "%v", tt.names)
		assert.Equal(t, tt.want, got, "%v", tt.names)
	}

	_, err := ParsePostProcess([]string{"Triangulate", "MakeItPretty"})
	assert.ErrorContains(t, err, "MakeItPretty")
}

func TestPostProcessValues(t *testing.T) {
	assert.Equal(t, PostProcess(0x8), Triangulate)
	assert.Equal(t, PostProcess(0x8000), SortByPType)
	assert.Equal(t, PostProcess(0x80000000), GenBoundingBoxes)
	assert.Equal(t, PostProcess(0x1800004), ConvertToLeftHanded)
	assert.Equal(t, PostProcess(0x4802b), TargetRealtimeFast)
}

func TestPostProcessString(t *testing.T) {
	assert.Equal(t, "0", PostProcess(0).String())
	assert.Equal(t, "Triangulate", Triangulate.String())
	assert.Equal(t, "JoinIdenticalVertices|Triangulate|FlipUVs", (Triangulate | FlipUVs | JoinIdenticalVertices).String())

	// String and Parse agree on every single step.
	for i := 0; i < 32; i++ {
		bit := PostProcess(1) << i
		got, err := ParsePostProcess([]string{bit.String()})
		require.NoError(t, err)
		assert.Equal(t, bit, got)
	}
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "Triangle", PrimitiveTriangle.String())
	assert.Equal(t, "Point|Line|0x40", (PrimitivePoint | PrimitiveLine | 0x40).String())
	assert.Equal(t, "String", PropertyString.String())
	assert.Equal(t, "PropertyType(9)", PropertyType(9).String())
	assert.Equal(t, "BaseColor", TextureBaseColor.String())
	assert.Equal(t, "Transmission", TextureTransmission.String())
	assert.Equal(t, "TextureType(40)", TextureType(40).String())
	assert.Equal(t, "Spot", LightSpot.String())
	assert.Equal(t, "LightSourceType(7)", LightSourceType(7).String())
}
