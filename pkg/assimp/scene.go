package assimp

import (
	"iter"
	"runtime"
	"unsafe"

	"github.com/Faultbox/assimp-go/pkg/assimp/abi"
	"github.com/google/uuid"
)

// Scene is an owning handle on one imported aiScene. It is not copyable in
// a meaningful way; share it with Clone. All memory reachable from it is
// valid until Close.
type Scene struct {
	raw     *abi.Scene
	lease   *lease
	cleanup runtime.Cleanup
}

func newScene(o *owner, path string) *Scene {
	s := &Scene{raw: o.ptr, lease: &lease{owner: o, path: path}}
	s.cleanup = runtime.AddCleanup(s, (*lease).leaked, s.lease)
	return s
}

// Close releases this handle. The foreign allocation is freed when the
// last clone is closed. Calling Close more than once is a no-op.
func (s *Scene) Close() error {
	if s == nil {
		return nil
	}
	if s.lease.end() {
		s.cleanup.Stop()
	}
	return nil
}

// Closed reports whether Close has been called on this handle.
func (s *Scene) Closed() bool {
	return s.lease.released.Load()
}

// Clone returns a second handle on the same allocation. Each handle must be
// closed; the allocation is released once, after the last Close.
func (s *Scene) Clone() (*Scene, error) {
	if s.Closed() {
		return nil, useAfterRelease("Clone")
	}
	s.lease.owner.acquire()
	return newScene(s.lease.owner, s.lease.path), nil
}

// live panics when the handle has been closed. Every view calls it before
// touching foreign memory.
func (s *Scene) live(op string) *abi.Scene {
	if s.lease.released.Load() {
		panic(useAfterRelease(op))
	}
	return s.raw
}

// read runs f with the handle checked and kept reachable until f returns,
// so the leak cleanup cannot release memory f is reading.
func read[R any](s *Scene, op string, f func() R) R {
	s.live(op)
	r := f()
	runtime.KeepAlive(s)
	return r
}

func (s *Scene) get(op string) (*abi.Scene, error) {
	if s.lease.released.Load() {
		return nil, useAfterRelease(op)
	}
	return s.raw, nil
}

// ID identifies the underlying allocation in logs. Clones share it.
func (s *Scene) ID() uuid.UUID { return s.lease.owner.id }

// Path is the path (or memory hint) the scene was imported from.
func (s *Scene) Path() string { return s.lease.path }

// Flags returns aiScene::mFlags.
func (s *Scene) Flags() SceneFlags {
	return read(s, "Flags", func() SceneFlags { return SceneFlags(s.raw.Flags) })
}

// Incomplete reports whether the library flagged the scene as incomplete,
// in which case mesh and material collections may be empty.
func (s *Scene) Incomplete() bool {
	return s.Flags()&SceneIncomplete != 0
}

// Name returns aiScene::mName.
func (s *Scene) Name() Name {
	return read(s, "Name", func() Name { return newName(&s.raw.Name) })
}

// RootNode returns the root of the node tree. ok is false only for
// incomplete scenes without one.
func (s *Scene) RootNode() (Node, bool) {
	raw := s.live("RootNode")
	if raw.RootNode == nil {
		return Node{}, false
	}
	return Node{s: s, n: raw.RootNode}, true
}

// FindNode returns the first node in pre-order whose name equals name.
func (s *Scene) FindNode(name string) (Node, bool) {
	root, ok := s.RootNode()
	if !ok {
		return Node{}, false
	}
	for n := range root.Descendants() {
		if n.Name().String() == name {
			return n, true
		}
	}
	return Node{}, false
}

func (s *Scene) NumMeshes() int {
	return read(s, "NumMeshes", func() int { return int(s.raw.NumMeshes) })
}

func (s *Scene) NumMaterials() int {
	return read(s, "NumMaterials", func() int { return int(s.raw.NumMaterials) })
}

func (s *Scene) NumAnimations() int {
	return read(s, "NumAnimations", func() int { return int(s.raw.NumAnimations) })
}

func (s *Scene) NumTextures() int {
	return read(s, "NumTextures", func() int { return int(s.raw.NumTextures) })
}

func (s *Scene) NumLights() int {
	return read(s, "NumLights", func() int { return int(s.raw.NumLights) })
}

func (s *Scene) NumCameras() int {
	return read(s, "NumCameras", func() int { return int(s.raw.NumCameras) })
}

// MeshAt returns mesh i. It fails with *IndexOutOfRangeError when
// i >= NumMeshes.
func (s *Scene) MeshAt(i int) (Mesh, error) {
	raw, err := s.get("MeshAt")
	if err != nil {
		return Mesh{}, err
	}
	p, err := elem("meshes", raw.Meshes, raw.NumMeshes, i)
	if err != nil {
		return Mesh{}, err
	}
	return Mesh{s: s, m: p}, nil
}

// MaterialAt returns material i.
func (s *Scene) MaterialAt(i int) (Material, error) {
	raw, err := s.get("MaterialAt")
	if err != nil {
		return Material{}, err
	}
	p, err := elem("materials", raw.Materials, raw.NumMaterials, i)
	if err != nil {
		return Material{}, err
	}
	return Material{s: s, m: p}, nil
}

// AnimationAt returns animation i.
func (s *Scene) AnimationAt(i int) (Animation, error) {
	raw, err := s.get("AnimationAt")
	if err != nil {
		return Animation{}, err
	}
	p, err := elem("animations", raw.Animations, raw.NumAnimations, i)
	if err != nil {
		return Animation{}, err
	}
	return Animation{s: s, a: p}, nil
}

// TextureAt returns embedded texture i.
func (s *Scene) TextureAt(i int) (Texture, error) {
	raw, err := s.get("TextureAt")
	if err != nil {
		return Texture{}, err
	}
	p, err := elem("textures", raw.Textures, raw.NumTextures, i)
	if err != nil {
		return Texture{}, err
	}
	return Texture{s: s, t: p}, nil
}

// LightAt returns light i.
func (s *Scene) LightAt(i int) (Light, error) {
	raw, err := s.get("LightAt")
	if err != nil {
		return Light{}, err
	}
	p, err := elem("lights", raw.Lights, raw.NumLights, i)
	if err != nil {
		return Light{}, err
	}
	return Light{s: s, l: p}, nil
}

// CameraAt returns camera i.
func (s *Scene) CameraAt(i int) (Camera, error) {
	raw, err := s.get("CameraAt")
	if err != nil {
		return Camera{}, err
	}
	p, err := elem("cameras", raw.Cameras, raw.NumCameras, i)
	if err != nil {
		return Camera{}, err
	}
	return Camera{s: s, c: p}, nil
}

// Meshes iterates meshes in collection order.
func (s *Scene) Meshes() iter.Seq2[int, Mesh] {
	return views(s, "Meshes", func(raw *abi.Scene) (**abi.Mesh, uint32) {
		return raw.Meshes, raw.NumMeshes
	}, func(p *abi.Mesh) Mesh { return Mesh{s: s, m: p} })
}

// Materials iterates materials in collection order.
func (s *Scene) Materials() iter.Seq2[int, Material] {
	return views(s, "Materials", func(raw *abi.Scene) (**abi.Material, uint32) {
		return raw.Materials, raw.NumMaterials
	}, func(p *abi.Material) Material { return Material{s: s, m: p} })
}

// Animations iterates animations in collection order.
func (s *Scene) Animations() iter.Seq2[int, Animation] {
	return views(s, "Animations", func(raw *abi.Scene) (**abi.Animation, uint32) {
		return raw.Animations, raw.NumAnimations
	}, func(p *abi.Animation) Animation { return Animation{s: s, a: p} })
}

// Textures iterates embedded textures in collection order.
func (s *Scene) Textures() iter.Seq2[int, Texture] {
	return views(s, "Textures", func(raw *abi.Scene) (**abi.Texture, uint32) {
		return raw.Textures, raw.NumTextures
	}, func(p *abi.Texture) Texture { return Texture{s: s, t: p} })
}

// Lights iterates lights in collection order.
func (s *Scene) Lights() iter.Seq2[int, Light] {
	return views(s, "Lights", func(raw *abi.Scene) (**abi.Light, uint32) {
		return raw.Lights, raw.NumLights
	}, func(p *abi.Light) Light { return Light{s: s, l: p} })
}

// Cameras iterates cameras in collection order.
func (s *Scene) Cameras() iter.Seq2[int, Camera] {
	return views(s, "Cameras", func(raw *abi.Scene) (**abi.Camera, uint32) {
		return raw.Cameras, raw.NumCameras
	}, func(p *abi.Camera) Camera { return Camera{s: s, c: p} })
}

// elem reads entry i of a count-tagged foreign pointer array.
func elem[T any](collection string, base **T, n uint32, i int) (*T, error) {
	if err := checkIndex(collection, i, int(n)); err != nil {
		return nil, err
	}
	return unsafe.Slice(base, n)[i], nil
}

// views iterates a foreign pointer array reachable from the scene root,
// re-checking the lease before each step so that closing the scene inside
// the loop body cannot lead to a read of released memory.
func views[T, V any](s *Scene, op string, arr func(*abi.Scene) (**T, uint32), wrap func(*T) V) iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i := 0; ; i++ {
			base, n := arr(s.live(op))
			if i >= int(n) {
				return
			}
			if !yield(i, wrap(unsafe.Slice(base, n)[i])) {
				return
			}
		}
	}
}
