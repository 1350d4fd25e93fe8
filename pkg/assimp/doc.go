// Package assimp exposes scenes imported by libassimp as read-only views
// over the library's own memory.
//
// A *Scene owns one foreign allocation. Nodes, meshes, materials and the
// other views borrow from it and stay valid until Close; using a view after
// that panics with an error wrapping ErrUseAfterRelease instead of reading
// freed memory.
//
//	im, err := assimp.Open(nil)
//	...
//	err = im.With("model.glb", assimp.Triangulate, func(s *assimp.Scene) error {
//		for _, m := range s.Meshes() {
//			fmt.Println(m.Name(), m.NumVertices())
//		}
//		return nil
//	})
package assimp
