//go:build unix

package native

import "golang.org/x/sys/unix"

// CString returns s as a NUL-terminated byte slice. It fails when s
// contains a NUL byte, before anything reaches the library.
func CString(s string) ([]byte, error) {
	return unix.ByteSliceFromString(s)
}
