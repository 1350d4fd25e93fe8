package assimp

import "github.com/Faultbox/assimp-go/pkg/assimp/abi"

// Gateway is the foreign import entry point. *native.Library implements it;
// tests substitute an in-memory fake.
//
// Paths and hints are NUL-terminated. A nil scene means the import failed
// and the string carries the library's last-error text, fetched atomically
// with the call. Release is called at most once per returned scene.
type Gateway interface {
	ImportFile(path []byte, flags uint32) (*abi.Scene, string)
	ImportMemory(data []byte, flags uint32, hint []byte) (*abi.Scene, string)
	Release(scene *abi.Scene)
}
