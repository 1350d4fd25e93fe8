package assimp

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is. The typed errors below match them.
var (
	ErrEncoding        = errors.New("path is not representable as a C string")
	ErrLoadFailure     = errors.New("could not load file")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrUseAfterRelease = errors.New("scene used after release")
)

// EncodingError reports a path that cannot be passed to the library, for
// example one containing a NUL byte. It is returned before any foreign call.
type EncodingError struct {
	Path string
	Err  error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding path %q: %v", e.Path, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

func (e *EncodingError) Is(target error) bool { return target == ErrEncoding }

// LoadFailure reports that the library produced no scene. Reason is the
// library's last-error text and may be empty.
type LoadFailure struct {
	Path   string
	Flags  PostProcess
	Reason string
}

func (e *LoadFailure) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("could not load file %q", e.Path)
	}
	return fmt.Sprintf("could not load file %q: %s", e.Path, e.Reason)
}

func (e *LoadFailure) Is(target error) bool { return target == ErrLoadFailure }

// IndexOutOfRangeError reports an element request outside [0, Len).
type IndexOutOfRangeError struct {
	Collection string
	Index      int
	Len        int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0, %d)", e.Collection, e.Index, e.Len)
}

func (e *IndexOutOfRangeError) Is(target error) bool { return target == ErrIndexOutOfRange }

func checkIndex(collection string, i, n int) error {
	if i < 0 || i >= n {
		return &IndexOutOfRangeError{Collection: collection, Index: i, Len: n}
	}
	return nil
}
