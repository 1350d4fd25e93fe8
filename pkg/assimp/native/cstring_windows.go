//go:build windows

package native

import "golang.org/x/sys/windows"

// CString returns s as a NUL-terminated byte slice. It fails when s
// contains a NUL byte, before anything reaches the library.
// assimp takes narrow UTF-8 paths on Windows too.
func CString(s string) ([]byte, error) {
	return windows.ByteSliceFromString(s)
}
