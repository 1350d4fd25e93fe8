package assimp

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Faultbox/assimp-go/pkg/assimp/abi"
	"github.com/Faultbox/assimp-go/pkg/assimp/native"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Importer turns paths and buffers into Scenes through a Gateway.
// It is safe for concurrent use; the native gateway serializes the
// underlying calls.
type Importer struct {
	gw       Gateway
	log      *zap.Logger
	flags    PostProcess
	validate bool

	ownsGateway bool
	ownsLog     bool
}

// Option configures an Importer.
type Option func(*Importer)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(im *Importer) {
		if log != nil {
			im.log = log
		}
	}
}

// WithDefaultFlags sets post-processing steps ORed into every import.
func WithDefaultFlags(flags PostProcess) Option {
	return func(im *Importer) { im.flags = flags }
}

// WithValidation makes every import run Validate; a scene that fails it is
// released and the violations are returned.
func WithValidation(enabled bool) Option {
	return func(im *Importer) { im.validate = enabled }
}

// NewImporter returns an Importer over gw.
func NewImporter(gw Gateway, opts ...Option) *Importer {
	im := &Importer{gw: gw, log: zap.NewNop()}
	for _, opt := range opts {
		opt(im)
	}
	return im
}

// Open loads libassimp from the first candidate that works (platform
// defaults when none are given) and returns an Importer that owns it.
func Open(candidates []string, opts ...Option) (*Importer, error) {
	lib, err := native.Open(candidates...)
	if err != nil {
		return nil, err
	}
	im := NewImporter(lib, opts...)
	im.ownsGateway = true
	im.log.Info("libassimp loaded",
		zap.String("path", lib.Path()),
		zap.Stringer("version", lib.Version()))
	return im, nil
}

// Close unloads the library if the Importer opened it. It fails while
// scenes imported through it are still open.
func (im *Importer) Close() error {
	var err error
	if c, ok := im.gw.(io.Closer); ok && im.ownsGateway {
		err = multierr.Append(err, c.Close())
	}
	if im.ownsLog {
		// Sync on a console core fails for terminals; only the file matters.
		_ = im.log.Sync()
	}
	return err
}

// IsExtensionSupported reports whether the library can import files with
// the given extension (".obj", "*.fbx").
func (im *Importer) IsExtensionSupported(ext string) (bool, error) {
	q, ok := im.gw.(interface {
		IsExtensionSupported(string) (bool, error)
	})
	if !ok {
		return false, errors.New("gateway cannot query extensions")
	}
	return q.IsExtensionSupported(ext)
}

// ImportFile imports the file at path. It returns *EncodingError when the
// path contains a NUL byte (without calling the library) and *LoadFailure
// when the library produces no scene. The caller must Close the Scene.
func (im *Importer) ImportFile(path string, flags PostProcess) (*Scene, error) {
	cpath, err := native.CString(path)
	if err != nil {
		return nil, &EncodingError{Path: path, Err: err}
	}

	flags |= im.flags
	start := time.Now()
	raw, reason := im.gw.ImportFile(cpath, uint32(flags))
	if raw == nil {
		im.log.Debug("import failed",
			zap.String("path", path),
			zap.Stringer("flags", flags),
			zap.String("reason", reason))
		return nil, &LoadFailure{Path: path, Flags: flags, Reason: reason}
	}

	return im.adopt(raw, path, flags, time.Since(start))
}

// ImportMemory imports a file held in data. hint is the format extension
// ("obj", "glb") and may be empty for self-describing formats.
func (im *Importer) ImportMemory(data []byte, hint string, flags PostProcess) (*Scene, error) {
	chint, err := native.CString(hint)
	if err != nil {
		return nil, &EncodingError{Path: hint, Err: err}
	}

	label := "memory"
	if hint != "" {
		label += "." + hint
	}

	flags |= im.flags
	start := time.Now()
	raw, reason := im.gw.ImportMemory(data, uint32(flags), chint)
	if raw == nil {
		im.log.Debug("import failed",
			zap.String("path", label),
			zap.Int("bytes", len(data)),
			zap.String("reason", reason))
		return nil, &LoadFailure{Path: label, Flags: flags, Reason: reason}
	}

	return im.adopt(raw, label, flags, time.Since(start))
}

func (im *Importer) adopt(raw *abi.Scene, path string, flags PostProcess, took time.Duration) (*Scene, error) {
	s := newScene(newOwner(im.gw, raw, im.log), path)

	im.log.Debug("scene imported",
		zap.Stringer("scene", s.ID()),
		zap.String("path", path),
		zap.Stringer("flags", flags),
		zap.Duration("took", took),
		zap.Int("meshes", s.NumMeshes()),
		zap.Int("materials", s.NumMaterials()))

	if im.validate {
		if err := Validate(s); err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("validating %s: %w", path, err)
		}
	}
	return s, nil
}

// With imports path, runs fn and releases the scene on every exit path,
// including a panic in fn.
func (im *Importer) With(path string, flags PostProcess, fn func(*Scene) error) error {
	s, err := im.ImportFile(path, flags)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}
