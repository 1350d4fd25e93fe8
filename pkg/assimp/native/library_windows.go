//go:build windows

package native

import "golang.org/x/sys/windows"

func defaultNames() []string {
	return []string{"assimp-vc143-mt.dll", "assimp-vc142-mt.dll", "assimp.dll"}
}

func dlopen(name string) (uintptr, error) {
	h, err := windows.LoadLibrary(name)
	return uintptr(h), err
}

func dlsym(handle uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), name)
}

func dlclose(handle uintptr) error {
	return windows.FreeLibrary(windows.Handle(handle))
}
