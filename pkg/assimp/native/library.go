package native

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/Faultbox/assimp-go/pkg/assimp/abi"
)

// Library errors.
var (
	ErrLibraryNotFound     = errors.New("libassimp not found")
	ErrVersionMismatch     = errors.New("libassimp version does not match the mirrored ABI")
	ErrUnsupportedPlatform = errors.New("loading libassimp is not supported on this platform")
	ErrScenesOutstanding   = errors.New("scenes imported from this library are still alive")
	ErrEmptyBuffer         = errors.New("empty import buffer")
)

// Supported ABI range. Layout of abi types matches these releases.
const (
	abiMajor    = 5
	abiMinorMin = 3
	abiMinorMax = 4
)

// importMu serializes every call that touches assimp's global state.
var importMu sync.Mutex

// Version is the libassimp release reported by the loaded library.
type Version struct {
	Major, Minor, Revision uint32
}

// String returns the version as "Major.Minor.Revision".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Revision)
}

// Compatible reports whether the abi package mirrors this release.
func (v Version) Compatible() bool {
	return v.Major == abiMajor && v.Minor >= abiMinorMin && v.Minor <= abiMinorMax
}

// Library is an opened libassimp shared object.
type Library struct {
	handle uintptr
	path   string

	importFile           func(path *byte, flags uint32) *abi.Scene
	importFileFromMemory func(buf *byte, length uint32, flags uint32, hint *byte) *abi.Scene
	releaseImport        func(scene *abi.Scene)
	getErrorString       func() string
	getVersionMajor      func() uint32
	getVersionMinor      func() uint32
	getVersionRevision   func() uint32
	isExtensionSupported func(ext *byte) int32

	version Version
	live    atomic.Int64
	closed  atomic.Bool
}

// Open loads the first candidate that dlopen accepts and binds its symbols.
// With no candidates the platform's usual library names are tried.
//
// Important: Always call Close() when done, after every scene has been
// released.
func Open(candidates ...string) (*Library, error) {
	if len(candidates) == 0 {
		candidates = defaultNames()
	}

	var failures []string
	for _, name := range candidates {
		if name == "" {
			continue
		}
		handle, err := dlopen(name)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", name, err))
			continue
		}

		lib := &Library{handle: handle, path: name}
		if err := lib.bind(); err != nil {
			_ = dlclose(handle)
			return nil, fmt.Errorf("binding %s: %w", name, err)
		}

		lib.version = Version{
			Major:    lib.getVersionMajor(),
			Minor:    lib.getVersionMinor(),
			Revision: lib.getVersionRevision(),
		}
		if !lib.version.Compatible() {
			_ = dlclose(handle)
			return nil, fmt.Errorf("%w: %s reports %s, want %d.%d-%d.%d",
				ErrVersionMismatch, name, lib.version, abiMajor, abiMinorMin, abiMajor, abiMinorMax)
		}
		return lib, nil
	}

	return nil, fmt.Errorf("%w: tried %s", ErrLibraryNotFound, strings.Join(failures, "; "))
}

func (l *Library) bind() error {
	symbols := []struct {
		name string
		fptr any
	}{
		{"aiImportFile", &l.importFile},
		{"aiImportFileFromMemory", &l.importFileFromMemory},
		{"aiReleaseImport", &l.releaseImport},
		{"aiGetErrorString", &l.getErrorString},
		{"aiGetVersionMajor", &l.getVersionMajor},
		{"aiGetVersionMinor", &l.getVersionMinor},
		{"aiGetVersionRevision", &l.getVersionRevision},
		{"aiIsExtensionSupported", &l.isExtensionSupported},
	}

	for _, s := range symbols {
		addr, err := dlsym(l.handle, s.name)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", s.name, err)
		}
		if err := register(s.fptr, addr); err != nil {
			return fmt.Errorf("registering %s: %w", s.name, err)
		}
	}
	return nil
}

// Path returns the name the library was opened with.
func (l *Library) Path() string {
	return l.path
}

// Version returns the library's reported release.
func (l *Library) Version() Version {
	return l.version
}

// Live returns the number of imported scenes not yet released.
func (l *Library) Live() int64 {
	return l.live.Load()
}

// ImportFile calls aiImportFile. path must be NUL-terminated (see CString).
// On failure the scene is nil and the string holds aiGetErrorString, read
// under the same lock as the import.
func (l *Library) ImportFile(path []byte, flags uint32) (*abi.Scene, string) {
	if l.closed.Load() {
		return nil, "library closed"
	}
	if len(path) == 0 || path[len(path)-1] != 0 {
		return nil, "path is not NUL-terminated"
	}

	importMu.Lock()
	defer importMu.Unlock()

	scene := l.importFile(&path[0], flags)
	if scene == nil {
		return nil, l.getErrorString()
	}
	l.live.Add(1)
	return scene, ""
}

// ImportMemory calls aiImportFileFromMemory. hint is a NUL-terminated
// extension such as "obj\x00" and may be just the terminator.
func (l *Library) ImportMemory(data []byte, flags uint32, hint []byte) (*abi.Scene, string) {
	if l.closed.Load() {
		return nil, "library closed"
	}
	if len(data) == 0 {
		return nil, ErrEmptyBuffer.Error()
	}
	if uint64(len(data)) > math.MaxUint32 {
		return nil, fmt.Sprintf("buffer of %d bytes exceeds 4 GiB", len(data))
	}
	if len(hint) == 0 || hint[len(hint)-1] != 0 {
		hint = []byte{0}
	}

	importMu.Lock()
	defer importMu.Unlock()

	//nolint:gosec // G115: length checked above
	scene := l.importFileFromMemory(&data[0], uint32(len(data)), flags, &hint[0])
	if scene == nil {
		return nil, l.getErrorString()
	}
	l.live.Add(1)
	return scene, ""
}

// Release calls aiReleaseImport. Passing the same scene twice is undefined
// behaviour in assimp; callers own that guarantee.
func (l *Library) Release(scene *abi.Scene) {
	if scene == nil {
		return
	}

	importMu.Lock()
	defer importMu.Unlock()

	l.releaseImport(scene)
	l.live.Add(-1)
}

// IsExtensionSupported reports whether an importer exists for ext
// (for example ".obj" or "*.fbx").
func (l *Library) IsExtensionSupported(ext string) (bool, error) {
	cext, err := CString(ext)
	if err != nil {
		return false, err
	}

	importMu.Lock()
	defer importMu.Unlock()

	return l.isExtensionSupported(&cext[0]) != 0, nil
}

// Close unloads the library. It fails while imported scenes are alive,
// because releasing them needs the library's code.
func (l *Library) Close() error {
	if n := l.live.Load(); n > 0 {
		return fmt.Errorf("%w: %d", ErrScenesOutstanding, n)
	}
	if !l.closed.CompareAndSwap(false, true) {
		return nil
	}
	return dlclose(l.handle)
}
