// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"io/fs"
	"os"

	"cogentcore.org/core/base/errors"
)

// Shader is one compiled shader stage, linked into a [Program].
// Whether a Shader outlives the program creation that consumes it
// depends on its [Ownerships].
type Shader struct {

	// Name identifies the shader in errors and logs.
	Name string

	// Type is the pipeline stage.
	Type ShaderTypes

	// Ownership is [Exclusive] by default: the shader is destroyed by
	// the first [Program.Create] it is passed to. [Shared] shaders
	// must be destroyed by the caller.
	Ownership Ownerships

	ctx    *Context
	handle Handle
}

// NewShader returns a new uncreated shader of the given type.
func NewShader(ctx *Context, name string, typ ShaderTypes) *Shader {
	return &Shader{ctx: ctx, Name: name, Type: typ}
}

// Create allocates and compiles the shader from GLSL source. It
// returns a [ResourceCreationError] if the allocation fails, or a
// [CompileError] with the native log if compilation fails, in which
// case the stage is freed and is not created.
func (sh *Shader) Create(src string) error {
	api := sh.ctx.api
	h := api.CreateShader(sh.Type)
	if !h.Valid() {
		return errors.Log(&ResourceCreationError{Kind: "shader", Name: sh.Name})
	}
	api.ShaderSource(h, src)
	api.CompileShader(h)
	if !api.ShaderCompileStatus(h) {
		log := api.ShaderInfoLog(h)
		api.DeleteShader(h)
		return errors.Log(&CompileError{Shader: sh.Name, Type: sh.Type, Log: log})
	}
	sh.handle = h
	debug("gpu.Shader compiled", "name", sh.Name, "type", sh.Type, "handle", h)
	return nil
}

// CreateFile creates the shader from the source file at path in fsys.
func (sh *Shader) CreateFile(fsys fs.FS, path string) error {
	b, err := fs.ReadFile(fsys, path)
	if errors.Log(err) != nil {
		return err
	}
	return sh.Create(string(b))
}

// OpenFile creates the shader from the source file at path on the
// operating system filesystem.
func (sh *Shader) OpenFile(path string) error {
	b, err := os.ReadFile(path)
	if errors.Log(err) != nil {
		return err
	}
	return sh.Create(string(b))
}

// Handle returns the native handle, 0 if not created.
func (sh *Shader) Handle() Handle {
	return sh.handle
}

// IsCreated returns whether the shader compiled and has not been destroyed.
func (sh *Shader) IsCreated() bool {
	return sh.handle.Valid()
}

// Destroy frees the native shader. It is called automatically for
// [Exclusive] shaders by [Program.Create].
func (sh *Shader) Destroy() {
	sh.ctx.api.DeleteShader(sh.handle)
	debug("gpu.Shader destroyed", "name", sh.Name, "handle", sh.handle)
	sh.handle = 0
}
