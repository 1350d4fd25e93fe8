//go:build !unix && !windows

package native

import (
	"strings"
	"syscall"
)

// CString returns s as a NUL-terminated byte slice. It fails when s
// contains a NUL byte, before anything reaches the library.
func CString(s string) ([]byte, error) {
	if strings.IndexByte(s, 0) != -1 {
		return nil, syscall.EINVAL
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b, nil
}
