// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// API is the native graphics call surface that the resource types
// drive. Each method corresponds to one native call on the single
// current rendering context; none of them block beyond the driver
// dispatch. Allocation methods return 0 on failure.
//
// The glcore package implements API on OpenGL 4.1 core, and the
// gltest package provides a recording fake for tests.
// Callers should not invoke API binding methods directly while
// wrappers are in use: go through the [Context] so that its binding
// tracker stays exact.
type API interface {

	// object lifecycle

	GenBuffer() Handle
	DeleteBuffer(h Handle)
	GenTexture() Handle
	DeleteTexture(h Handle)
	CreateShader(typ ShaderTypes) Handle
	DeleteShader(h Handle)
	CreateProgram() Handle
	DeleteProgram(h Handle)

	// binding

	BindBuffer(target BufferTargets, h Handle)
	BindTexture(target TextureTargets, h Handle)
	ActiveTexture(unit int)
	UseProgram(h Handle)

	// data transfer

	// BufferData reallocates the storage of the buffer bound to target
	// to len(data) bytes and copies data into it.
	BufferData(target BufferTargets, data []byte, usage BufferUsages)

	// BufferSubData writes data at offset into the existing storage of
	// the buffer bound to target, without reallocating.
	BufferSubData(target BufferTargets, offset int, data []byte)

	TexParameteri(target TextureTargets, param TexParams, value int32)
	TexImage2D(target TextureTargets, level int, internal InternalFormats, width, height int, format PixelFormats, typ DataTypes, pixels []byte)
	PixelStorei(param PixelStoreParams, value int32)

	// shaders and programs

	ShaderSource(h Handle, src string)
	CompileShader(h Handle)
	ShaderCompileStatus(h Handle) bool
	ShaderInfoLog(h Handle) string
	AttachShader(program, shader Handle)
	DetachShader(program, shader Handle)
	BindAttribLocation(program Handle, index uint32, name string)
	LinkProgram(h Handle)
	ProgramLinkStatus(h Handle) bool
	ProgramInfoLog(h Handle) string
	UniformLocation(program Handle, name string) Location
	AttribLocation(program Handle, name string) Location
	Uniform1i(loc Location, value int32)

	// vertex inputs

	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)

	// VertexAttribPointer describes the layout of vertex input index
	// in the buffer currently bound to ArrayBuffer.
	VertexAttribPointer(index uint32, comps int, typ DataTypes, normalized bool, stride, offset int)

	// draws

	DrawArrays(mode Topologies, first, count int)
	DrawElements(mode Topologies, count int, typ DataTypes, offset int)
	DrawArraysInstanced(mode Topologies, first, count, instances int)

	// GetError returns and clears the oldest recorded error code.
	GetError() ErrorCodes
}
