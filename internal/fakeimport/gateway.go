package fakeimport

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/Faultbox/assimp-go/pkg/assimp/abi"
)

// Gateway serves registered scenes by path or buffer content. Every import
// builds a fresh scene, so two imports never share memory.
type Gateway struct {
	mu       sync.Mutex
	files    map[string]SceneSpec
	buffers  map[string]SceneSpec
	live     map[*abi.Scene]bool
	imports  int
	releases int
	doubles  int
	flags    []uint32
}

// New returns an empty Gateway.
func New() *Gateway {
	return &Gateway{
		files:   make(map[string]SceneSpec),
		buffers: make(map[string]SceneSpec),
		live:    make(map[*abi.Scene]bool),
	}
}

// AddFile registers spec under path.
func (g *Gateway) AddFile(path string, spec SceneSpec) *Gateway {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.files[path] = spec
	return g
}

// AddBuffer registers spec for imports whose data equals data.
func (g *Gateway) AddBuffer(data []byte, spec SceneSpec) *Gateway {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.buffers[string(data)] = spec
	return g
}

// ImportFile serves a registered path. Unknown paths fail the way
// libassimp reports a missing file.
func (g *Gateway) ImportFile(path []byte, flags uint32) (*abi.Scene, string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.imports++
	g.flags = append(g.flags, flags)

	if len(path) == 0 || path[len(path)-1] != 0 {
		return nil, "path is not NUL-terminated"
	}
	name := string(bytes.TrimSuffix(path, []byte{0}))
	spec, ok := g.files[name]
	if !ok {
		return nil, fmt.Sprintf("Unable to open file %q.", name)
	}
	return g.adopt(spec), ""
}

// ImportMemory serves a registered buffer.
func (g *Gateway) ImportMemory(data []byte, flags uint32, hint []byte) (*abi.Scene, string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.imports++
	g.flags = append(g.flags, flags)

	if len(data) == 0 {
		return nil, "empty import buffer"
	}
	spec, ok := g.buffers[string(data)]
	if !ok {
		return nil, fmt.Sprintf("No suitable reader found for the file format of file %q.",
			"$$$___magic___$$$."+string(bytes.TrimSuffix(hint, []byte{0})))
	}
	return g.adopt(spec), ""
}

func (g *Gateway) adopt(spec SceneSpec) *abi.Scene {
	s := Build(spec)
	g.live[s] = true
	return s
}

// Release frees a scene. The scene is zeroed so a read through a stale
// pointer sees an empty scene rather than the old data.
func (g *Gateway) Release(scene *abi.Scene) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.live[scene] {
		g.doubles++
		return
	}
	delete(g.live, scene)
	g.releases++
	*scene = abi.Scene{}
}

// Imports counts ImportFile and ImportMemory calls, failed ones included.
func (g *Gateway) Imports() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.imports
}

// Releases counts successful releases.
func (g *Gateway) Releases() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.releases
}

// BadReleases counts releases of scenes that were not live, which
// libassimp would turn into a double free.
func (g *Gateway) BadReleases() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.doubles
}

// Live counts scenes imported and not yet released.
func (g *Gateway) Live() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.live)
}

// LastFlags returns the flags of the most recent import call.
func (g *Gateway) LastFlags() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.flags) == 0 {
		return 0
	}
	return g.flags[len(g.flags)-1]
}
