//go:build darwin || linux

package native

import (
	"runtime"

	"github.com/ebitengine/purego"
)

func defaultNames() []string {
	if runtime.GOOS == "darwin" {
		return []string{
			"libassimp.5.dylib",
			"libassimp.dylib",
			"/opt/homebrew/lib/libassimp.dylib",
			"/usr/local/lib/libassimp.dylib",
		}
	}
	return []string{"libassimp.so.5", "libassimp.so"}
}

func dlopen(name string) (uintptr, error) {
	return purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_LOCAL)
}

func dlsym(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func dlclose(handle uintptr) error {
	return purego.Dlclose(handle)
}
