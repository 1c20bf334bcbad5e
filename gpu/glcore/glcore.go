// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

// Package glcore implements [gpu.API] on OpenGL 4.1 core profile,
// using github.com/go-gl/gl, and provides a GLFW window helper that
// creates a matching context.
package glcore

import (
	"strings"
	"unsafe"

	"cogentcore.org/core/base/errors"
	"github.com/go-gl/gl/v4.1-core/gl"

	"cogentcore.org/glpipe/gpu"
)

// API issues [gpu.API] calls to the OpenGL context current on the
// calling thread.
type API struct {

	// vertex array object bound for the lifetime of the context:
	// core profile has no default one.
	vao uint32
}

// New loads the OpenGL function pointers for the context current on
// the calling thread and returns an API for it. It must be called
// after the context is made current, on the same locked thread.
func New() (*API, error) {
	if err := gl.Init(); err != nil {
		return nil, errors.Log(err)
	}
	a := &API{}
	gl.GenVertexArrays(1, &a.vao)
	gl.BindVertexArray(a.vao)
	gpu.Logger().Info("glcore: OpenGL initialized", "version", gl.GoStr(gl.GetString(gl.VERSION)), "renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return a, nil
}

// Release deletes the vertex array object created by New.
func (a *API) Release() {
	gl.BindVertexArray(0)
	gl.DeleteVertexArrays(1, &a.vao)
	a.vao = 0
}

// ptr returns a pointer to the start of b, nil if empty.
func ptr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

// cstr returns s as a null terminated C string pointer.
// The returned pointer references Go memory and must not be retained.
func cstr(s string) *uint8 {
	if !strings.HasSuffix(s, "\x00") {
		s += "\x00"
	}
	return gl.Str(s)
}

func (a *API) GenBuffer() gpu.Handle {
	var h uint32
	gl.GenBuffers(1, &h)
	return gpu.Handle(h)
}

func (a *API) DeleteBuffer(h gpu.Handle) {
	hu := uint32(h)
	gl.DeleteBuffers(1, &hu)
}

func (a *API) GenTexture() gpu.Handle {
	var h uint32
	gl.GenTextures(1, &h)
	return gpu.Handle(h)
}

func (a *API) DeleteTexture(h gpu.Handle) {
	hu := uint32(h)
	gl.DeleteTextures(1, &hu)
}

func (a *API) CreateShader(typ gpu.ShaderTypes) gpu.Handle {
	return gpu.Handle(gl.CreateShader(glShaders[typ]))
}

func (a *API) DeleteShader(h gpu.Handle) {
	gl.DeleteShader(uint32(h))
}

func (a *API) CreateProgram() gpu.Handle {
	return gpu.Handle(gl.CreateProgram())
}

func (a *API) DeleteProgram(h gpu.Handle) {
	gl.DeleteProgram(uint32(h))
}

func (a *API) BindBuffer(target gpu.BufferTargets, h gpu.Handle) {
	gl.BindBuffer(glBufferTargets[target], uint32(h))
}

func (a *API) BindTexture(target gpu.TextureTargets, h gpu.Handle) {
	gl.BindTexture(glTextureTargets[target], uint32(h))
}

func (a *API) ActiveTexture(unit int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
}

func (a *API) UseProgram(h gpu.Handle) {
	gl.UseProgram(uint32(h))
}

func (a *API) BufferData(target gpu.BufferTargets, data []byte, usage gpu.BufferUsages) {
	gl.BufferData(glBufferTargets[target], len(data), ptr(data), glBufferUsages[usage])
}

func (a *API) BufferSubData(target gpu.BufferTargets, offset int, data []byte) {
	gl.BufferSubData(glBufferTargets[target], offset, len(data), ptr(data))
}

func (a *API) TexParameteri(target gpu.TextureTargets, param gpu.TexParams, value int32) {
	gl.TexParameteri(glTextureTargets[target], glTexParams[param], texParamValue(param, value))
}

func (a *API) TexImage2D(target gpu.TextureTargets, level int, internal gpu.InternalFormats, width, height int, format gpu.PixelFormats, typ gpu.DataTypes, pixels []byte) {
	gl.TexImage2D(glTextureTargets[target], int32(level), glInternalFormats[internal], int32(width), int32(height), 0, glPixelFormats[format], glDataTypes[typ], ptr(pixels))
}

func (a *API) PixelStorei(param gpu.PixelStoreParams, value int32) {
	gl.PixelStorei(glPixelStoreParams[param], value)
}

func (a *API) ShaderSource(h gpu.Handle, src string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(uint32(h), 1, csources, nil)
	free()
}

func (a *API) CompileShader(h gpu.Handle) {
	gl.CompileShader(uint32(h))
}

func (a *API) ShaderCompileStatus(h gpu.Handle) bool {
	var status int32
	gl.GetShaderiv(uint32(h), gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (a *API) ShaderInfoLog(h gpu.Handle) string {
	var n int32
	gl.GetShaderiv(uint32(h), gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(n+1))
	gl.GetShaderInfoLog(uint32(h), n, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (a *API) AttachShader(program, shader gpu.Handle) {
	gl.AttachShader(uint32(program), uint32(shader))
}

func (a *API) DetachShader(program, shader gpu.Handle) {
	gl.DetachShader(uint32(program), uint32(shader))
}

func (a *API) BindAttribLocation(program gpu.Handle, index uint32, name string) {
	gl.BindAttribLocation(uint32(program), index, cstr(name))
}

func (a *API) LinkProgram(h gpu.Handle) {
	gl.LinkProgram(uint32(h))
}

func (a *API) ProgramLinkStatus(h gpu.Handle) bool {
	var status int32
	gl.GetProgramiv(uint32(h), gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (a *API) ProgramInfoLog(h gpu.Handle) string {
	var n int32
	gl.GetProgramiv(uint32(h), gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(n+1))
	gl.GetProgramInfoLog(uint32(h), n, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (a *API) UniformLocation(program gpu.Handle, name string) gpu.Location {
	return gpu.Location(gl.GetUniformLocation(uint32(program), cstr(name)))
}

func (a *API) AttribLocation(program gpu.Handle, name string) gpu.Location {
	return gpu.Location(gl.GetAttribLocation(uint32(program), cstr(name)))
}

func (a *API) Uniform1i(loc gpu.Location, value int32) {
	gl.Uniform1i(int32(loc), value)
}

func (a *API) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (a *API) DisableVertexAttribArray(index uint32) {
	gl.DisableVertexAttribArray(index)
}

func (a *API) VertexAttribPointer(index uint32, comps int, typ gpu.DataTypes, normalized bool, stride, offset int) {
	gl.VertexAttribPointerWithOffset(index, int32(comps), glDataTypes[typ], normalized, int32(stride), uintptr(offset))
}

func (a *API) DrawArrays(mode gpu.Topologies, first, count int) {
	gl.DrawArrays(glTopologies[mode], int32(first), int32(count))
}

func (a *API) DrawElements(mode gpu.Topologies, count int, typ gpu.DataTypes, offset int) {
	gl.DrawElementsWithOffset(glTopologies[mode], int32(count), glDataTypes[typ], uintptr(offset))
}

func (a *API) DrawArraysInstanced(mode gpu.Topologies, first, count, instances int) {
	gl.DrawArraysInstanced(glTopologies[mode], int32(first), int32(count), int32(instances))
}

func (a *API) GetError() gpu.ErrorCodes {
	code, ok := glErrors[gl.GetError()]
	if !ok {
		return gpu.UnknownError
	}
	return code
}

var _ gpu.API = (*API)(nil)
