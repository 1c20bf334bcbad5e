// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gltest provides a recording fake of [gpu.API] for testing
// code against the gpu package without a graphics device.
package gltest

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/glpipe/gpu"
)

// Recorder is a [gpu.API] that records every call as a string and
// keeps just enough state to observe its effects: buffer storage,
// texture levels and parameters, shader sources, program attachments
// and attribute bindings. Allocation and compile or link failures
// can be scripted.
type Recorder struct {

	// Calls is the log of calls in order, formatted as Name(args).
	Calls []string

	// FailAlloc makes allocations of the given kinds return 0:
	// "buffer", "texture", "shader" or "program".
	FailAlloc map[string]bool

	// CompileFailMarker makes compilation fail for any source
	// containing it. It defaults to "#error".
	CompileFailMarker string

	// CompileLog is the shader log reported for failed compilation.
	CompileLog string

	// FailLink makes every link fail, reporting LinkLog.
	FailLink bool

	// LinkLog is the program log reported for failed links.
	LinkLog string

	// Attribs are the locations of active vertex inputs by name,
	// for every program, unless the program bound the name explicitly.
	Attribs map[string]gpu.Location

	// Uniforms are the locations of active uniforms by name.
	Uniforms map[string]gpu.Location

	// Errors is the queue of error codes returned by GetError.
	Errors []gpu.ErrorCodes

	next  gpu.Handle
	kinds map[gpu.Handle]string
	freed map[string]int
	alloc map[string]int

	boundBuffers  map[gpu.BufferTargets]gpu.Handle
	boundTextures map[texKey]gpu.Handle
	unit          int

	buffers    map[gpu.Handle][]byte
	levels     map[gpu.Handle]map[int]Level
	params     map[gpu.Handle]map[gpu.TexParams]int32
	sources    map[gpu.Handle]string
	compiled   map[gpu.Handle]bool
	attached   map[gpu.Handle][]gpu.Handle
	bindings   map[gpu.Handle]map[string]uint32
	linked     map[gpu.Handle]bool
	pixelStore map[gpu.PixelStoreParams]int32
}

type texKey struct {
	unit   int
	target gpu.TextureTargets
}

// Level is one uploaded texture mip level.
type Level struct {
	Width, Height int
	Format        gpu.PixelFormats
	Type          gpu.DataTypes
	Internal      gpu.InternalFormats
	Pixels        []byte
}

// NewRecorder returns a new Recorder with no scripted failures.
func NewRecorder() *Recorder {
	return &Recorder{
		FailAlloc:         make(map[string]bool),
		CompileFailMarker: "#error",
		CompileLog:        "0:1(1): error: syntax error",
		LinkLog:           "error: linking failed",
		Attribs:           make(map[string]gpu.Location),
		Uniforms:          make(map[string]gpu.Location),
		kinds:             make(map[gpu.Handle]string),
		freed:             make(map[string]int),
		alloc:             make(map[string]int),
		boundBuffers:      make(map[gpu.BufferTargets]gpu.Handle),
		boundTextures:     make(map[texKey]gpu.Handle),
		buffers:           make(map[gpu.Handle][]byte),
		levels:            make(map[gpu.Handle]map[int]Level),
		params:            make(map[gpu.Handle]map[gpu.TexParams]int32),
		sources:           make(map[gpu.Handle]string),
		compiled:          make(map[gpu.Handle]bool),
		attached:          make(map[gpu.Handle][]gpu.Handle),
		bindings:          make(map[gpu.Handle]map[string]uint32),
		linked:            make(map[gpu.Handle]bool),
		pixelStore:        make(map[gpu.PixelStoreParams]int32),
	}
}

// Reset clears the call log, keeping all other state.
func (r *Recorder) Reset() {
	r.Calls = nil
}

// Called returns the calls whose name is one of names, in order.
func (r *Recorder) Called(names ...string) []string {
	var res []string
	for _, c := range r.Calls {
		nm, _, _ := strings.Cut(c, "(")
		if slices.Contains(names, nm) {
			res = append(res, c)
		}
	}
	return res
}

// Live returns the number of objects of the given kind allocated
// and not yet deleted.
func (r *Recorder) Live(kind string) int {
	return r.alloc[kind] - r.freed[kind]
}

// Allocated returns the number of objects of the given kind ever allocated.
func (r *Recorder) Allocated(kind string) int {
	return r.alloc[kind]
}

// IsLive returns whether h is allocated and not deleted.
func (r *Recorder) IsLive(h gpu.Handle) bool {
	_, ok := r.kinds[h]
	return ok
}

// BufferContents returns the storage of buffer h.
func (r *Recorder) BufferContents(h gpu.Handle) []byte {
	return r.buffers[h]
}

// TextureLevel returns the uploaded mip level of texture h.
func (r *Recorder) TextureLevel(h gpu.Handle, level int) (Level, bool) {
	lv, ok := r.levels[h][level]
	return lv, ok
}

// TextureParam returns the texture parameter set on texture h.
func (r *Recorder) TextureParam(h gpu.Handle, param gpu.TexParams) (int32, bool) {
	v, ok := r.params[h][param]
	return v, ok
}

// Attached returns the shaders currently attached to program h.
func (r *Recorder) Attached(h gpu.Handle) []gpu.Handle {
	return r.attached[h]
}

// PixelStore returns the value of a pixel storage parameter.
func (r *Recorder) PixelStore(param gpu.PixelStoreParams) int32 {
	if v, ok := r.pixelStore[param]; ok {
		return v
	}
	return 4
}

func (r *Recorder) record(name string, args ...any) {
	sa := make([]string, len(args))
	for i, a := range args {
		switch v := a.(type) {
		case []byte:
			sa[i] = fmt.Sprintf("%d bytes", len(v))
		case string:
			sa[i] = fmt.Sprintf("%q", v)
		default:
			sa[i] = fmt.Sprint(v)
		}
	}
	r.Calls = append(r.Calls, name+"("+strings.Join(sa, ", ")+")")
}

func (r *Recorder) gen(kind string) gpu.Handle {
	if r.FailAlloc[kind] {
		return 0
	}
	r.next++
	r.kinds[r.next] = kind
	r.alloc[kind]++
	return r.next
}

func (r *Recorder) free(h gpu.Handle, kind string) {
	if k, ok := r.kinds[h]; ok && k == kind {
		delete(r.kinds, h)
		r.freed[kind]++
	}
}

func (r *Recorder) GenBuffer() gpu.Handle {
	h := r.gen("buffer")
	r.record("GenBuffer")
	return h
}

func (r *Recorder) DeleteBuffer(h gpu.Handle) {
	r.record("DeleteBuffer", h)
	r.free(h, "buffer")
	delete(r.buffers, h)
	for t, b := range r.boundBuffers {
		if b == h {
			r.boundBuffers[t] = 0
		}
	}
}

func (r *Recorder) GenTexture() gpu.Handle {
	h := r.gen("texture")
	r.record("GenTexture")
	return h
}

func (r *Recorder) DeleteTexture(h gpu.Handle) {
	r.record("DeleteTexture", h)
	r.free(h, "texture")
	delete(r.levels, h)
	delete(r.params, h)
	for k, t := range r.boundTextures {
		if t == h {
			r.boundTextures[k] = 0
		}
	}
}

func (r *Recorder) CreateShader(typ gpu.ShaderTypes) gpu.Handle {
	h := r.gen("shader")
	r.record("CreateShader", typ)
	return h
}

func (r *Recorder) DeleteShader(h gpu.Handle) {
	r.record("DeleteShader", h)
	r.free(h, "shader")
	delete(r.sources, h)
	delete(r.compiled, h)
}

func (r *Recorder) CreateProgram() gpu.Handle {
	h := r.gen("program")
	r.record("CreateProgram")
	return h
}

func (r *Recorder) DeleteProgram(h gpu.Handle) {
	r.record("DeleteProgram", h)
	r.free(h, "program")
	delete(r.attached, h)
	delete(r.bindings, h)
	delete(r.linked, h)
}

func (r *Recorder) BindBuffer(target gpu.BufferTargets, h gpu.Handle) {
	r.record("BindBuffer", target, h)
	r.boundBuffers[target] = h
}

func (r *Recorder) BindTexture(target gpu.TextureTargets, h gpu.Handle) {
	r.record("BindTexture", target, h)
	r.boundTextures[texKey{r.unit, target}] = h
}

func (r *Recorder) ActiveTexture(unit int) {
	r.record("ActiveTexture", unit)
	r.unit = unit
}

func (r *Recorder) UseProgram(h gpu.Handle) {
	r.record("UseProgram", h)
}

func (r *Recorder) BufferData(target gpu.BufferTargets, data []byte, usage gpu.BufferUsages) {
	r.record("BufferData", target, data, usage)
	if h := r.boundBuffers[target]; h.Valid() {
		r.buffers[h] = slices.Clone(data)
	}
}

func (r *Recorder) BufferSubData(target gpu.BufferTargets, offset int, data []byte) {
	r.record("BufferSubData", target, offset, data)
	h := r.boundBuffers[target]
	buf := r.buffers[h]
	if !h.Valid() || offset < 0 || offset+len(data) > len(buf) {
		r.Errors = append(r.Errors, gpu.InvalidValue)
		return
	}
	copy(buf[offset:], data)
}

func (r *Recorder) TexParameteri(target gpu.TextureTargets, param gpu.TexParams, value int32) {
	r.record("TexParameteri", target, param, value)
	h := r.boundTextures[texKey{r.unit, target}]
	if !h.Valid() {
		r.Errors = append(r.Errors, gpu.InvalidOperation)
		return
	}
	if r.params[h] == nil {
		r.params[h] = make(map[gpu.TexParams]int32)
	}
	r.params[h][param] = value
}

func (r *Recorder) TexImage2D(target gpu.TextureTargets, level int, internal gpu.InternalFormats, width, height int, format gpu.PixelFormats, typ gpu.DataTypes, pixels []byte) {
	r.record("TexImage2D", target, level, internal, width, height, format, typ, pixels)
	h := r.boundTextures[texKey{r.unit, target}]
	if !h.Valid() {
		r.Errors = append(r.Errors, gpu.InvalidOperation)
		return
	}
	if r.levels[h] == nil {
		r.levels[h] = make(map[int]Level)
	}
	r.levels[h][level] = Level{Width: width, Height: height, Format: format, Type: typ, Internal: internal, Pixels: slices.Clone(pixels)}
}

func (r *Recorder) PixelStorei(param gpu.PixelStoreParams, value int32) {
	r.record("PixelStorei", param, value)
	r.pixelStore[param] = value
}

func (r *Recorder) ShaderSource(h gpu.Handle, src string) {
	r.record("ShaderSource", h, len(src))
	r.sources[h] = src
}

func (r *Recorder) CompileShader(h gpu.Handle) {
	r.record("CompileShader", h)
	src := r.sources[h]
	r.compiled[h] = r.CompileFailMarker == "" || !strings.Contains(src, r.CompileFailMarker)
}

func (r *Recorder) ShaderCompileStatus(h gpu.Handle) bool {
	return r.compiled[h]
}

func (r *Recorder) ShaderInfoLog(h gpu.Handle) string {
	if r.compiled[h] {
		return ""
	}
	return r.CompileLog
}

func (r *Recorder) AttachShader(program, shader gpu.Handle) {
	r.record("AttachShader", program, shader)
	r.attached[program] = append(r.attached[program], shader)
}

func (r *Recorder) DetachShader(program, shader gpu.Handle) {
	r.record("DetachShader", program, shader)
	r.attached[program] = slices.DeleteFunc(r.attached[program], func(h gpu.Handle) bool { return h == shader })
}

func (r *Recorder) BindAttribLocation(program gpu.Handle, index uint32, name string) {
	r.record("BindAttribLocation", program, index, name)
	if r.bindings[program] == nil {
		r.bindings[program] = make(map[string]uint32)
	}
	r.bindings[program][name] = index
}

func (r *Recorder) LinkProgram(h gpu.Handle) {
	r.record("LinkProgram", h)
	r.linked[h] = !r.FailLink
}

func (r *Recorder) ProgramLinkStatus(h gpu.Handle) bool {
	return r.linked[h]
}

func (r *Recorder) ProgramInfoLog(h gpu.Handle) string {
	if r.linked[h] {
		return ""
	}
	return r.LinkLog
}

func (r *Recorder) UniformLocation(program gpu.Handle, name string) gpu.Location {
	if loc, ok := r.Uniforms[name]; ok && r.linked[program] {
		return loc
	}
	return gpu.NoLocation
}

func (r *Recorder) AttribLocation(program gpu.Handle, name string) gpu.Location {
	if !r.linked[program] {
		return gpu.NoLocation
	}
	if idx, ok := r.bindings[program][name]; ok {
		return gpu.Location(idx)
	}
	if loc, ok := r.Attribs[name]; ok {
		return loc
	}
	return gpu.NoLocation
}

func (r *Recorder) Uniform1i(loc gpu.Location, value int32) {
	r.record("Uniform1i", loc, value)
}

func (r *Recorder) EnableVertexAttribArray(index uint32) {
	r.record("EnableVertexAttribArray", index)
}

func (r *Recorder) DisableVertexAttribArray(index uint32) {
	r.record("DisableVertexAttribArray", index)
}

func (r *Recorder) VertexAttribPointer(index uint32, comps int, typ gpu.DataTypes, normalized bool, stride, offset int) {
	r.record("VertexAttribPointer", index, comps, typ, normalized, stride, offset)
}

func (r *Recorder) DrawArrays(mode gpu.Topologies, first, count int) {
	r.record("DrawArrays", mode, first, count)
}

func (r *Recorder) DrawElements(mode gpu.Topologies, count int, typ gpu.DataTypes, offset int) {
	r.record("DrawElements", mode, count, typ, offset)
}

func (r *Recorder) DrawArraysInstanced(mode gpu.Topologies, first, count, instances int) {
	r.record("DrawArraysInstanced", mode, first, count, instances)
}

func (r *Recorder) GetError() gpu.ErrorCodes {
	if len(r.Errors) == 0 {
		return gpu.NoError
	}
	code := r.Errors[0]
	r.Errors = r.Errors[1:]
	return code
}

var _ gpu.API = (*Recorder)(nil)
