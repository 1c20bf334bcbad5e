// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "fmt"

// ResourceCreationError is returned when the native allocator
// returns no object. The object stays uncreated and Create may be
// called again.
type ResourceCreationError struct {
	// Kind is the kind of object: buffer, texture, shader or program.
	Kind string

	// Name is the name of the shader or program, if any.
	Name string
}

func (e *ResourceCreationError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("gpu: failed to create %s %q", e.Kind, e.Name)
	}
	return "gpu: failed to create " + e.Kind
}

// CompileError is returned by [Shader.Create] when compilation fails.
// Log is the native diagnostic log, unmodified.
type CompileError struct {
	Shader string
	Type   ShaderTypes
	Log    string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("gpu: failed to compile %s %q:\n%s", e.Type, e.Shader, e.Log)
}

// LinkError is returned by [Program.Create] when linking fails.
// The program has been destroyed. Log is the native diagnostic log,
// unmodified.
type LinkError struct {
	Program string
	Log     string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("gpu: failed to link program %q:\n%s", e.Program, e.Log)
}

// LinkPreconditionError is returned by [Program.Create] when one of
// the shaders has not been created. It is a programming error.
type LinkPreconditionError struct {
	Program string
	Shader  string
	Type    ShaderTypes
}

func (e *LinkPreconditionError) Error() string {
	return fmt.Sprintf("gpu: program %q: %s %q must be created before the program", e.Program, e.Type, e.Shader)
}

// UncommittedInputError is returned by [Model.CaptureInput] for a
// [ShaderInput] that has no index assigned. It is a programming error.
type UncommittedInputError struct {
	Input string
}

func (e *UncommittedInputError) Error() string {
	return "gpu: shader input was not created: " + e.Input
}

// AlreadyCreatedError is returned by Create on an object that is
// already created, whose native object would otherwise leak.
type AlreadyCreatedError struct {
	Kind string
	Name string
}

func (e *AlreadyCreatedError) Error() string {
	return fmt.Sprintf("gpu: %s %q is already created", e.Kind, e.Name)
}

// MissingResourceError is returned when an operation needs a
// resource that was never set, such as a [Model] element buffer, or
// one that is not created, as a zero handle is never bound.
type MissingResourceError struct {
	Resource string
}

func (e *MissingResourceError) Error() string {
	return "gpu: missing " + e.Resource
}

// StaleBindingError is returned by [Texture] configuration calls
// when the texture believes it is still bound for configuration but
// the [Context] shows another texture was bound to the same unit and
// target in between. Nothing is configured: the caller must call
// [Texture.ConfigureEnd] and start configuring again.
type StaleBindingError struct {
	Texture Handle
	Bound   Handle
	Unit    int
	Target  TextureTargets
}

func (e *StaleBindingError) Error() string {
	return fmt.Sprintf("gpu: texture %d is configuring but texture %d is bound to %s on unit %d", e.Texture, e.Bound, e.Target, e.Unit)
}
