//go:build !darwin && !linux && !windows

package native

func defaultNames() []string {
	return nil
}

func dlopen(string) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}

func dlsym(uintptr, string) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}

func dlclose(uintptr) error {
	return ErrUnsupportedPlatform
}

func register(any, uintptr) error {
	return ErrUnsupportedPlatform
}
