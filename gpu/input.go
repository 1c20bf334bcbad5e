// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/core/base/errors"
)

// ShaderInput describes a vertex shader input (vertex attribute):
// how to read its values out of a [Buffer]. The layout is fixed at
// construction; the buffer is associated later by [Model.CaptureInput],
// so one buffer can hold several interleaved inputs using stride and
// offset.
//
// A ShaderInput is created by assigning it an input index, and must
// be created before capture.
type ShaderInput struct {
	comps      int
	typ        DataTypes
	offset     int
	stride     int
	normalized bool

	index   uint32
	created bool
}

// NewShaderInput returns a densely packed input of comps components
// of type typ, starting at the beginning of the buffer.
func NewShaderInput(comps int, typ DataTypes) *ShaderInput {
	return NewShaderInputLayout(comps, typ, 0, 0, false)
}

// NewShaderInputLayout returns an input of comps components of type
// typ, at byte offset from the start of the buffer and byte stride
// between consecutive vertices (0 for densely packed). If normalized,
// integer values are mapped to [0,1] or [-1,1].
func NewShaderInputLayout(comps int, typ DataTypes, offset, stride int, normalized bool) *ShaderInput {
	return &ShaderInput{comps: comps, typ: typ, offset: offset, stride: stride, normalized: normalized}
}

// Create assigns the input index, readying the input for capture.
// It returns the input for convenience.
func (in *ShaderInput) Create(index uint32) *ShaderInput {
	in.index = index
	in.created = true
	return in
}

// CreateFromProgram assigns the index the linked program pr gives
// the input named name. It returns a [MissingResourceError] if the
// program has no active input of that name.
func (in *ShaderInput) CreateFromProgram(pr *Program, name string) error {
	loc := pr.InputLocation(name)
	if !loc.Valid() {
		return errors.Log(&MissingResourceError{Resource: fmt.Sprintf("input %q in program %q", name, pr.Name)})
	}
	in.Create(uint32(loc))
	return nil
}

// Destroy clears the index assignment; the input can no longer be captured.
func (in *ShaderInput) Destroy() {
	in.created = false
}

// IsCreated returns whether an index is assigned.
func (in *ShaderInput) IsCreated() bool {
	return in.created
}

// Index returns the assigned index, only meaningful if created.
func (in *ShaderInput) Index() uint32 {
	return in.index
}

// Enable enables the input's vertex array and points it at the
// buffer currently bound to [ArrayBuffer].
func (in *ShaderInput) Enable(ctx *Context) {
	ctx.EnableVertexAttribArray(in.index)
	ctx.api.VertexAttribPointer(in.index, in.comps, in.typ, in.normalized, in.stride, in.offset)
}

// Disable disables the input's vertex array.
func (in *ShaderInput) Disable(ctx *Context) {
	ctx.DisableVertexAttribArray(in.index)
}

func (in *ShaderInput) String() string {
	if !in.created {
		return fmt.Sprintf("input (uncreated) %d x %s offset %d stride %d", in.comps, in.typ, in.offset, in.stride)
	}
	return fmt.Sprintf("input %d: %d x %s offset %d stride %d", in.index, in.comps, in.typ, in.offset, in.stride)
}
