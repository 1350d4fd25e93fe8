package assimp

import (
	"iter"
	"slices"
	"unsafe"

	"github.com/Faultbox/assimp-go/pkg/assimp/abi"
)

// Material is a read-only view of one aiMaterial.
type Material struct {
	s *Scene
	m *abi.Material
}

// Common property keys.
const (
	KeyName         = "?mat.name"
	KeyColorDiffuse = "$clr.diffuse"
	KeyTexturePath  = "$tex.file"
)

// NumProperties returns mNumProperties.
func (m Material) NumProperties() int {
	return read(m.s, "Material.NumProperties", func() int { return int(m.m.NumProperties) })
}

// PropertyAt returns property i.
func (m Material) PropertyAt(i int) (MaterialProperty, error) {
	m.s.live("Material.PropertyAt")
	p, err := elem("material properties", m.m.Properties, m.m.NumProperties, i)
	if err != nil {
		return MaterialProperty{}, err
	}
	return MaterialProperty{s: m.s, p: p}, nil
}

// Properties iterates the properties in storage order, which carries no
// meaning.
func (m Material) Properties() iter.Seq2[int, MaterialProperty] {
	return func(yield func(int, MaterialProperty) bool) {
		for i := 0; ; i++ {
			m.s.live("Material.Properties")
			if i >= int(m.m.NumProperties) {
				return
			}
			p := unsafe.Slice(m.m.Properties, m.m.NumProperties)[i]
			if !yield(i, MaterialProperty{s: m.s, p: p}) {
				return
			}
		}
	}
}

// Property finds the property with the given key, semantic and index, the
// same triple aiGetMaterialProperty matches on.
func (m Material) Property(key string, semantic TextureType, index int) (MaterialProperty, bool) {
	for _, p := range m.Properties() {
		if p.Semantic() == semantic && p.Index() == index && p.Key().String() == key {
			return p, true
		}
	}
	return MaterialProperty{}, false
}

// MaterialProperty is one tagged buffer of a material. The binding does
// not decode Data; Type says how it is laid out.
type MaterialProperty struct {
	s *Scene
	p *abi.MaterialProperty
}

// Key returns mKey, such as "$clr.diffuse".
func (p MaterialProperty) Key() Name {
	return read(p.s, "MaterialProperty.Key", func() Name { return newName(&p.p.Key) })
}

// Semantic is the texture type for texture properties, TextureNone otherwise.
func (p MaterialProperty) Semantic() TextureType {
	return read(p.s, "MaterialProperty.Semantic", func() TextureType { return TextureType(p.p.Semantic) })
}

// Index is the texture index for texture properties, 0 otherwise.
func (p MaterialProperty) Index() int {
	return read(p.s, "MaterialProperty.Index", func() int { return int(p.p.Index) })
}

// Type is the declared layout of Data.
func (p MaterialProperty) Type() PropertyType {
	return read(p.s, "MaterialProperty.Type", func() PropertyType { return PropertyType(p.p.Type) })
}

// Len is the declared byte length of Data.
func (p MaterialProperty) Len() int {
	return read(p.s, "MaterialProperty.Len", func() int { return int(p.p.DataLength) })
}

// Data returns a copy of the raw buffer.
func (p MaterialProperty) Data() []byte {
	return read(p.s, "MaterialProperty.Data", func() []byte {
		if p.p.Data == nil || p.p.DataLength == 0 {
			return nil
		}
		return slices.Clone(unsafe.Slice(p.p.Data, p.p.DataLength))
	})
}
