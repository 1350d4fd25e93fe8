package assimp

import (
	"slices"
	"unsafe"

	"github.com/Faultbox/assimp-go/pkg/assimp/abi"
	"github.com/Faultbox/assimp-go/pkg/encoding"
)

// Texture is a read-only view of one embedded aiTexture.
type Texture struct {
	s *Scene
	t *abi.Texture
}

// Width is the texel width, or the byte size of compressed data.
func (t Texture) Width() int {
	return read(t.s, "Texture.Width", func() int { return int(t.t.Width) })
}

// Height is the texel height, 0 for compressed data.
func (t Texture) Height() int {
	return read(t.s, "Texture.Height", func() int { return int(t.t.Height) })
}

// Compressed reports whether the texture holds an encoded file (png, jpg,
// ...) instead of raw texels.
func (t Texture) Compressed() bool { return t.Height() == 0 }

// FormatHint returns achFormatHint, such as "png" or "rgba8888".
func (t Texture) FormatHint() string {
	return read(t.s, "Texture.FormatHint", func() string {
		return string(encoding.FixedString(t.t.FormatHint[:]))
	})
}

// Filename returns mFilename, the original path of the texture if known.
func (t Texture) Filename() Name {
	return read(t.s, "Texture.Filename", func() Name { return newName(&t.t.Filename) })
}

// CompressedData returns a copy of the encoded file; ok is false for raw
// texel textures.
func (t Texture) CompressedData() ([]byte, bool) {
	data := read(t.s, "Texture.CompressedData", func() []byte {
		if t.t.Height != 0 || t.t.Data == nil {
			return nil
		}
		return slices.Clone(unsafe.Slice((*byte)(unsafe.Pointer(t.t.Data)), t.t.Width))
	})
	return data, data != nil
}

// Texels returns the raw Width*Height texels; ok is false for compressed
// textures.
func (t Texture) Texels() (Array[Texel], bool) {
	a := read(t.s, "Texture.Texels", func() Array[Texel] {
		if t.t.Height == 0 {
			return Array[Texel]{}
		}
		return newArray(t.s, "texels", t.t.Data, t.t.Width*t.t.Height)
	})
	return a, a.base != nil
}

// Light is a read-only view of one aiLight.
type Light struct {
	s *Scene
	l *abi.Light
}

// LightParams is a copy of a light's parameters.
type LightParams struct {
	Type                 LightSourceType
	Position             Vector3D
	Direction            Vector3D
	Up                   Vector3D
	AttenuationConstant  float32
	AttenuationLinear    float32
	AttenuationQuadratic float32
	Diffuse              Color3D
	Specular             Color3D
	Ambient              Color3D
	InnerCone            float32 // Radians
	OuterCone            float32 // Radians
	Size                 Vector2D
}

// Name returns mName; a node of the same name positions the light.
func (l Light) Name() Name {
	return read(l.s, "Light.Name", func() Name { return newName(&l.l.Name) })
}

// Type returns mType.
func (l Light) Type() LightSourceType {
	return read(l.s, "Light.Type", func() LightSourceType { return LightSourceType(l.l.Type) })
}

// Params copies all parameters of the light.
func (l Light) Params() LightParams {
	return read(l.s, "Light.Params", func() LightParams {
		r := l.l
		return LightParams{
			Type:                 LightSourceType(r.Type),
			Position:             r.Position,
			Direction:            r.Direction,
			Up:                   r.Up,
			AttenuationConstant:  r.AttenuationConstant,
			AttenuationLinear:    r.AttenuationLinear,
			AttenuationQuadratic: r.AttenuationQuadratic,
			Diffuse:              r.ColorDiffuse,
			Specular:             r.ColorSpecular,
			Ambient:              r.ColorAmbient,
			InnerCone:            r.AngleInnerCone,
			OuterCone:            r.AngleOuterCone,
			Size:                 r.Size,
		}
	})
}

// Camera is a read-only view of one aiCamera.
type Camera struct {
	s *Scene
	c *abi.Camera
}

// CameraParams is a copy of a camera's parameters.
type CameraParams struct {
	Position          Vector3D
	Up                Vector3D
	LookAt            Vector3D
	HorizontalFOV     float32 // Radians, half angle
	ClipPlaneNear     float32
	ClipPlaneFar      float32
	Aspect            float32
	OrthographicWidth float32 // 0 for perspective cameras
}

// Name returns mName; a node of the same name positions the camera.
func (c Camera) Name() Name {
	return read(c.s, "Camera.Name", func() Name { return newName(&c.c.Name) })
}

// Params copies all parameters of the camera.
func (c Camera) Params() CameraParams {
	return read(c.s, "Camera.Params", func() CameraParams {
		r := c.c
		return CameraParams{
			Position:          r.Position,
			Up:                r.Up,
			LookAt:            r.LookAt,
			HorizontalFOV:     r.HorizontalFOV,
			ClipPlaneNear:     r.ClipPlaneNear,
			ClipPlaneFar:      r.ClipPlaneFar,
			Aspect:            r.Aspect,
			OrthographicWidth: r.OrthographicWidth,
		}
	})
}

// Animation is a read-only view of one aiAnimation. Channels are counted
// but not exposed.
type Animation struct {
	s *Scene
	a *abi.Animation
}

func (a Animation) Name() Name {
	return read(a.s, "Animation.Name", func() Name { return newName(&a.a.Name) })
}

// Duration is in ticks.
func (a Animation) Duration() float64 {
	return read(a.s, "Animation.Duration", func() float64 { return a.a.Duration })
}

// TicksPerSecond may be 0 when the source format does not say.
func (a Animation) TicksPerSecond() float64 {
	return read(a.s, "Animation.TicksPerSecond", func() float64 { return a.a.TicksPerSecond })
}

func (a Animation) NumChannels() int {
	return read(a.s, "Animation.NumChannels", func() int { return int(a.a.NumChannels) })
}

func (a Animation) NumMeshChannels() int {
	return read(a.s, "Animation.NumMeshChannels", func() int { return int(a.a.NumMeshChannels) })
}

func (a Animation) NumMorphMeshChannels() int {
	return read(a.s, "Animation.NumMorphMeshChannels", func() int { return int(a.a.NumMorphMeshChannels) })
}
