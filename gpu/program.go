// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/ordmap"
)

// Program is a linked set of [Shader] stages that renders a [Model].
//
// Input locations to be fixed at link time are prepared with
// PrepareInputLocation before Create. After Create, locations are
// looked up by name, and Render draws a model with the [Drawer].
type Program struct {

	// Name identifies the program in errors and logs.
	Name string

	// Drawer issues the draw call within Render. It defaults to
	// triangles drawn from a [Model] count.
	Drawer Drawer

	ctx    *Context
	handle Handle

	// input name to index bindings applied at link time, in the
	// order they were prepared.
	locations *ordmap.Map[string, uint32]
}

// NewProgram returns a new uncreated program.
func NewProgram(ctx *Context, name string) *Program {
	return &Program{ctx: ctx, Name: name, Drawer: &ArraysDrawer{Topology: Triangles}, locations: ordmap.New[string, uint32]()}
}

// PrepareInputLocation binds the vertex input name to index when the
// program is linked. It has no effect once the program is created.
func (pr *Program) PrepareInputLocation(name string, index uint32) {
	pr.locations.Add(name, index)
}

// Create links the given shader stages into the program, using a
// stage given more than once only once. Every stage must be created,
// otherwise a [LinkPreconditionError] names the first that is not and
// nothing is allocated. Stages are detached after
// linking, and [Exclusive] stages are destroyed, whether or not
// linking succeeds. If linking fails, the program is freed and a
// [LinkError] with the native log is returned. Create on a program
// that is already created returns an [AlreadyCreatedError]: Destroy
// it first.
func (pr *Program) Create(stages ...*Shader) error {
	if pr.handle.Valid() {
		return errors.Log(&AlreadyCreatedError{Kind: "program", Name: pr.Name})
	}
	stages = uniqueStages(stages)
	for _, sh := range stages {
		if !sh.IsCreated() {
			return errors.Log(&LinkPreconditionError{Program: pr.Name, Shader: sh.Name, Type: sh.Type})
		}
	}
	api := pr.ctx.api
	h := api.CreateProgram()
	if !h.Valid() {
		return errors.Log(&ResourceCreationError{Kind: "program", Name: pr.Name})
	}
	for _, sh := range stages {
		api.AttachShader(h, sh.handle)
	}
	for _, kv := range pr.locations.Order {
		api.BindAttribLocation(h, kv.Value, kv.Key)
	}
	api.LinkProgram(h)
	linked := api.ProgramLinkStatus(h)
	for _, sh := range stages {
		api.DetachShader(h, sh.handle)
	}
	for _, sh := range stages {
		if sh.Ownership == Exclusive {
			sh.Destroy()
		}
	}
	if !linked {
		log := api.ProgramInfoLog(h)
		pr.ctx.deleteProgram(h)
		return errors.Log(&LinkError{Program: pr.Name, Log: log})
	}
	pr.handle = h
	debug("gpu.Program linked", "name", pr.Name, "handle", h, "stages", len(stages))
	return nil
}

// uniqueStages returns stages without repeats, in first seen order,
// so that each stage is attached and destroyed once.
func uniqueStages(stages []*Shader) []*Shader {
	res := make([]*Shader, 0, len(stages))
	for _, sh := range stages {
		if !slices.Contains(res, sh) {
			res = append(res, sh)
		}
	}
	return res
}

// Handle returns the native handle, 0 if not created.
func (pr *Program) Handle() Handle {
	return pr.handle
}

// IsCreated returns whether the program linked and has not been destroyed.
func (pr *Program) IsCreated() bool {
	return pr.handle.Valid()
}

// UniformLocation returns the location of the named uniform, or
// [NoLocation] if the program has no active uniform of that name.
func (pr *Program) UniformLocation(name string) Location {
	return pr.ctx.api.UniformLocation(pr.handle, name)
}

// InputLocation returns the index of the named vertex input, or
// [NoLocation] if the program has no active input of that name.
func (pr *Program) InputLocation(name string) Location {
	return pr.ctx.api.AttribLocation(pr.handle, name)
}

// Use makes the program current, for setting uniforms outside Render.
// An uncreated program is not made current, and a warning is logged.
func (pr *Program) Use() {
	if !pr.handle.Valid() {
		Logger().Warn("gpu.Program Use on a program that is not created", "name", pr.Name)
		return
	}
	pr.ctx.UseProgram(pr.handle)
}

// Render draws m: it enables the model's vertex inputs, makes the
// program current, enables the model's textures, calls the [Drawer],
// then disables the model and makes no program current. The disable
// steps run even if the draw fails, and the draw error is returned.
// If the program, or a buffer or texture m captures, is not created,
// nothing is issued and a [MissingResourceError] is returned.
// A nil Drawer draws triangles as [ArraysDrawer] does.
func (pr *Program) Render(m *Model) error {
	if !pr.handle.Valid() {
		return errors.Log(&MissingResourceError{Resource: fmt.Sprintf("created program %q", pr.Name)})
	}
	if err := m.check(); err != nil {
		return err
	}
	drawer := pr.Drawer
	if drawer == nil {
		drawer = &ArraysDrawer{Topology: Triangles}
	}
	m.enableInputs()
	pr.ctx.UseProgram(pr.handle)
	m.enableTextures()
	m.state = ModelEnabled
	err := drawer.Draw(pr.ctx, m)
	m.Disable()
	pr.ctx.UseProgram(0)
	return err
}

// Destroy frees the native program.
func (pr *Program) Destroy() {
	pr.ctx.deleteProgram(pr.handle)
	debug("gpu.Program destroyed", "name", pr.Name, "handle", pr.handle)
	pr.handle = 0
}
