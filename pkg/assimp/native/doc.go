// Package native loads libassimp at run time and exposes its C entry points.
//
// All foreign calls of the binding live here. The shared library is opened
// with purego (dlopen on Linux and macOS, LoadLibrary on Windows), so the
// module builds without cgo and without assimp headers.
//
// Threading: assimp's C API stores the text of the last failure in a
// process-wide string and shares its default logger between importers. Every
// import, error query and release therefore runs under one process-wide
// mutex, and the error text is read inside the same critical section as the
// failed import.
package native
