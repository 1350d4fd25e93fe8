package assimp

import (
	"bytes"

	"github.com/Faultbox/assimp-go/pkg/assimp/abi"
	"github.com/Faultbox/assimp-go/pkg/encoding"
	textencoding "golang.org/x/text/encoding"
)

// Name is a copy of an aiString: exactly the declared bytes, which may
// include NULs and need not be UTF-8.
type Name struct {
	b []byte
}

func newName(s *abi.String) Name {
	n := min(int(s.Length), len(s.Data))
	return Name{b: bytes.Clone(s.Data[:n])}
}

// Bytes returns a copy of the raw bytes.
func (n Name) Bytes() []byte { return bytes.Clone(n.b) }

// Len is the declared byte length.
func (n Name) Len() int { return len(n.b) }

// String returns the bytes as a Go string, unmodified.
func (n Name) String() string { return string(n.b) }

// UTF8 returns the name as valid UTF-8, decoding it from fallback (see
// encoding.Lookup) when the bytes are not UTF-8 already.
func (n Name) UTF8(fallback textencoding.Encoding) string {
	return encoding.ToUTF8(n.b, fallback)
}
