package lab

import (
	"errors"
	"fmt"
)

// Domain errors for lab operations.
var (
	// ErrUnknownLab indicates a lab name missing from the registry.
	ErrUnknownLab = errors.New("lab: unknown lab")

	// ErrUnknownSlice indicates a slice name outside the nine cube slices.
	ErrUnknownSlice = errors.New("lab: unknown slice")

	// ErrBusy indicates a turn was requested while another turn, a scramble or a pulse runs.
	ErrBusy = errors.New("lab: cube is busy")

	// ErrShaderInvalid indicates a shader program failed to compile or link.
	ErrShaderInvalid = errors.New("lab: shader failed to compile or link")

	// ErrUniformNotFound indicates a uniform the lab needs is missing from the shader.
	ErrUniformNotFound = errors.New("lab: uniform not found on shader")

	// ErrNoSession indicates a session id with no stored data.
	ErrNoSession = errors.New("lab: session not found")
)

// UniformError names the uniform a shader program could not resolve.
type UniformError struct {
	Name    string
	Wrapped error
}

func (e *UniformError) Error() string {
	return fmt.Sprintf("%s uniform not found on shader.", e.Name)
}

func (e *UniformError) Unwrap() error {
	return e.Wrapped
}

// MissingUniform returns a UniformError wrapping ErrUniformNotFound.
func MissingUniform(name string) error {
	return &UniformError{Name: name, Wrapped: ErrUniformNotFound}
}
