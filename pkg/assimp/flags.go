package assimp

import (
	"fmt"
	"math/bits"
	"strings"
)

// PostProcess is the aiPostProcessSteps bitmask passed to an import.
type PostProcess uint32

// aiPostProcessSteps, assimp 5.3/5.4.
const (
	CalcTangentSpace         PostProcess = 0x1
	JoinIdenticalVertices    PostProcess = 0x2
	MakeLeftHanded           PostProcess = 0x4
	Triangulate              PostProcess = 0x8
	RemoveComponent          PostProcess = 0x10
	GenNormals               PostProcess = 0x20
	GenSmoothNormals         PostProcess = 0x40
	SplitLargeMeshes         PostProcess = 0x80
	PreTransformVertices     PostProcess = 0x100
	LimitBoneWeights         PostProcess = 0x200
	ValidateDataStructure    PostProcess = 0x400
	ImproveCacheLocality     PostProcess = 0x800
	RemoveRedundantMaterials PostProcess = 0x1000
	FixInfacingNormals       PostProcess = 0x2000
	PopulateArmatureData     PostProcess = 0x4000
	SortByPType              PostProcess = 0x8000
	FindDegenerates          PostProcess = 0x10000
	FindInvalidData          PostProcess = 0x20000
	GenUVCoords              PostProcess = 0x40000
	TransformUVCoords        PostProcess = 0x80000
	FindInstances            PostProcess = 0x100000
	OptimizeMeshes           PostProcess = 0x200000
	OptimizeGraph            PostProcess = 0x400000
	FlipUVs                  PostProcess = 0x800000
	FlipWindingOrder         PostProcess = 0x1000000
	SplitByBoneCount         PostProcess = 0x2000000
	Debone                   PostProcess = 0x4000000
	GlobalScale              PostProcess = 0x8000000
	EmbedTextures            PostProcess = 0x10000000
	ForceGenNormals          PostProcess = 0x20000000
	DropNormals              PostProcess = 0x40000000
	GenBoundingBoxes         PostProcess = 0x80000000
)

// Presets from postprocess.h.
const (
	ConvertToLeftHanded = MakeLeftHanded | FlipUVs | FlipWindingOrder

	TargetRealtimeFast = CalcTangentSpace | GenNormals | JoinIdenticalVertices |
		Triangulate | GenUVCoords | SortByPType

	TargetRealtimeQuality = CalcTangentSpace | GenSmoothNormals | JoinIdenticalVertices |
		ImproveCacheLocality | LimitBoneWeights | RemoveRedundantMaterials |
		SplitLargeMeshes | Triangulate | GenUVCoords | SortByPType |
		FindDegenerates | FindInvalidData

	TargetRealtimeMaxQuality = TargetRealtimeQuality | FindInstances |
		ValidateDataStructure | OptimizeMeshes
)

// postProcessNames is indexed by bit position.
var postProcessNames = [32]string{
	"CalcTangentSpace", "JoinIdenticalVertices", "MakeLeftHanded", "Triangulate",
	"RemoveComponent", "GenNormals", "GenSmoothNormals", "SplitLargeMeshes",
	"PreTransformVertices", "LimitBoneWeights", "ValidateDataStructure", "ImproveCacheLocality",
	"RemoveRedundantMaterials", "FixInfacingNormals", "PopulateArmatureData", "SortByPType",
	"FindDegenerates", "FindInvalidData", "GenUVCoords", "TransformUVCoords",
	"FindInstances", "OptimizeMeshes", "OptimizeGraph", "FlipUVs",
	"FlipWindingOrder", "SplitByBoneCount", "Debone", "GlobalScale",
	"EmbedTextures", "ForceGenNormals", "DropNormals", "GenBoundingBoxes",
}

var presetNames = map[string]PostProcess{
	"ConvertToLeftHanded":      ConvertToLeftHanded,
	"TargetRealtimeFast":       TargetRealtimeFast,
	"TargetRealtimeQuality":    TargetRealtimeQuality,
	"TargetRealtimeMaxQuality": TargetRealtimeMaxQuality,
}

func (p PostProcess) String() string {
	if p == 0 {
		return "0"
	}
	var parts []string
	for v := uint32(p); v != 0; v &= v - 1 {
		parts = append(parts, postProcessNames[bits.TrailingZeros32(v)])
	}
	return strings.Join(parts, "|")
}

// ParsePostProcess ORs together step and preset names, with or without the
// "aiProcess_" prefix (case-insensitive).
func ParsePostProcess(names []string) (PostProcess, error) {
	var p PostProcess
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if len(name) >= len("aiProcess_") && strings.EqualFold(name[:len("aiProcess_")], "aiProcess_") {
			name = name[len("aiProcess_"):]
		}
		name = strings.ReplaceAll(name, "_", "")
		bit, ok := lookupPostProcess(name)
		if !ok {
			return 0, fmt.Errorf("unknown post-process step %q", raw)
		}
		p |= bit
	}
	return p, nil
}

func lookupPostProcess(name string) (PostProcess, bool) {
	for i, n := range postProcessNames {
		if strings.EqualFold(n, name) {
			return PostProcess(1) << i, true
		}
	}
	for n, v := range presetNames {
		if strings.EqualFold(n, name) {
			return v, true
		}
	}
	return 0, false
}

// SceneFlags is aiScene::mFlags.
type SceneFlags uint32

const (
	SceneIncomplete        SceneFlags = 0x1
	SceneValidated         SceneFlags = 0x2
	SceneValidationWarning SceneFlags = 0x4
	SceneNonVerboseFormat  SceneFlags = 0x8
	SceneTerrain           SceneFlags = 0x10
	SceneAllowShared       SceneFlags = 0x20
)

// PrimitiveType is aiMesh::mPrimitiveTypes.
type PrimitiveType uint32

const (
	PrimitivePoint        PrimitiveType = 0x1
	PrimitiveLine         PrimitiveType = 0x2
	PrimitiveTriangle     PrimitiveType = 0x4
	PrimitivePolygon      PrimitiveType = 0x8
	PrimitiveNGONEncoding PrimitiveType = 0x10
)

func (p PrimitiveType) String() string {
	if p == 0 {
		return "0"
	}
	names := []struct {
		bit  PrimitiveType
		name string
	}{
		{PrimitivePoint, "Point"},
		{PrimitiveLine, "Line"},
		{PrimitiveTriangle, "Triangle"},
		{PrimitivePolygon, "Polygon"},
		{PrimitiveNGONEncoding, "NGONEncoding"},
	}
	var parts []string
	rest := p
	for _, n := range names {
		if p&n.bit != 0 {
			parts = append(parts, n.name)
			rest &^= n.bit
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// PropertyType is the aiPropertyTypeInfo tag on a material property.
type PropertyType uint32

const (
	PropertyFloat   PropertyType = 0x1
	PropertyDouble  PropertyType = 0x2
	PropertyString  PropertyType = 0x3
	PropertyInteger PropertyType = 0x4
	PropertyBuffer  PropertyType = 0x5
)

func (t PropertyType) String() string {
	switch t {
	case PropertyFloat:
		return "Float"
	case PropertyDouble:
		return "Double"
	case PropertyString:
		return "String"
	case PropertyInteger:
		return "Integer"
	case PropertyBuffer:
		return "Buffer"
	}
	return fmt.Sprintf("PropertyType(%d)", uint32(t))
}

// TextureType is aiTextureType, the semantic of texture material properties.
type TextureType uint32

const (
	TextureNone TextureType = iota
	TextureDiffuse
	TextureSpecular
	TextureAmbient
	TextureEmissive
	TextureHeight
	TextureNormals
	TextureShininess
	TextureOpacity
	TextureDisplacement
	TextureLightmap
	TextureReflection
	TextureBaseColor
	TextureNormalCamera
	TextureEmissionColor
	TextureMetalness
	TextureDiffuseRoughness
	TextureAmbientOcclusion
	TextureUnknown
	TextureSheen
	TextureClearcoat
	TextureTransmission
)

var textureTypeNames = [...]string{
	"None", "Diffuse", "Specular", "Ambient", "Emissive", "Height", "Normals",
	"Shininess", "Opacity", "Displacement", "Lightmap", "Reflection", "BaseColor",
	"NormalCamera", "EmissionColor", "Metalness", "DiffuseRoughness",
	"AmbientOcclusion", "Unknown", "Sheen", "Clearcoat", "Transmission",
}

func (t TextureType) String() string {
	if int(t) < len(textureTypeNames) {
		return textureTypeNames[t]
	}
	return fmt.Sprintf("TextureType(%d)", uint32(t))
}

// LightSourceType is aiLightSourceType.
type LightSourceType uint32

const (
	LightUndefined LightSourceType = iota
	LightDirectional
	LightPoint
	LightSpot
	LightAmbient
	LightArea
)

func (t LightSourceType) String() string {
	switch t {
	case LightUndefined:
		return "Undefined"
	case LightDirectional:
		return "Directional"
	case LightPoint:
		return "Point"
	case LightSpot:
		return "Spot"
	case LightAmbient:
		return "Ambient"
	case LightArea:
		return "Area"
	}
	return fmt.Sprintf("LightSourceType(%d)", uint32(t))
}

// MorphingMethod is aiMorphingMethod.
type MorphingMethod uint32

const (
	MorphingUnknown MorphingMethod = iota
	MorphingVertexBlend
	MorphingNormalized
	MorphingRelative
)
