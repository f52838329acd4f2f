// Package assets embeds the GLSL programs and the default OBJ model.
package assets

import (
	"embed"
	"fmt"
)

//go:embed car.obj
var CarOBJ []byte

//go:embed shaders/*.vs shaders/*.fs
var shaders embed.FS

// Program returns the vertex and fragment source of a named program
// ("phong" or "unlit").
func Program(name string) (vs, fs string, err error) {
	v, err := shaders.ReadFile("shaders/" + name + ".vs")
	if err != nil {
		return "", "", fmt.Errorf("load %s vertex shader: %w", name, err)
	}
	f, err := shaders.ReadFile("shaders/" + name + ".fs")
	if err != nil {
		return "", "", fmt.Errorf("load %s fragment shader: %w", name, err)
	}
	return string(v), string(f), nil
}
