//go:build darwin || linux || windows

package native

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// register binds a Go function variable to a C symbol address.
// purego panics on signatures it cannot marshal; surface that as an error.
func register(fptr any, addr uintptr) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	purego.RegisterFunc(fptr, addr)
	return nil
}
