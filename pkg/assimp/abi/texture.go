package abi

// Texture mirrors aiTexture.
//
// When Height is 0 the texture is compressed and Data points at Width bytes
// of the encoded file; otherwise Data holds Width*Height texels.
type Texture struct {
	Width      uint32
	Height     uint32
	FormatHint [HintMaxTextureLen]byte
	Data       *Texel
	Filename   String
}

// Light mirrors aiLight.
type Light struct {
	Name String
	// Type is an aiLightSourceType value.
	Type uint32

	Position  Vector3D
	Direction Vector3D
	Up        Vector3D

	AttenuationConstant  float32
	AttenuationLinear    float32
	AttenuationQuadratic float32

	ColorDiffuse  Color3D
	ColorSpecular Color3D
	ColorAmbient  Color3D

	AngleInnerCone float32
	AngleOuterCone float32

	Size Vector2D
}

// Camera mirrors aiCamera.
type Camera struct {
	Name     String
	Position Vector3D
	Up       Vector3D
	LookAt   Vector3D

	HorizontalFOV     float32
	ClipPlaneNear     float32
	ClipPlaneFar      float32
	Aspect            float32
	OrthographicWidth float32
}
