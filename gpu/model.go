// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/ordmap"
)

// Model associates the vertex inputs of a [Program] with the
// buffers holding their data, and its samplers with textures, so
// that [Program.Render] can enable everything a draw needs.
// A Model holds references only: buffers and textures belong to the
// caller and may be shared between models.
type Model struct {
	ctx *Context

	inputs   *ordmap.Map[*ShaderInput, *Buffer]
	textures *ordmap.Map[*Texture, sampler]

	elements    *Buffer
	elementType DataTypes

	count int
	state ModelStates
}

// sampler is where a captured texture is enabled.
type sampler struct {
	unit int
	loc  Location
}

// NewModel returns a new empty model.
func NewModel(ctx *Context) *Model {
	return &Model{
		ctx:         ctx,
		inputs:      ordmap.New[*ShaderInput, *Buffer](),
		textures:    ordmap.New[*Texture, sampler](),
		elementType: UnsignedInt,
	}
}

// CaptureInput reads input in from buf, replacing any buffer
// previously captured for in. It returns an [UncommittedInputError]
// if in has not been created.
func (m *Model) CaptureInput(in *ShaderInput, buf *Buffer) error {
	if !in.IsCreated() {
		return errors.Log(&UncommittedInputError{Input: in.String()})
	}
	m.inputs.Add(in, buf)
	m.updateState()
	return nil
}

// CaptureTexture enables tex on the given texture unit, with the
// sampler uniform at loc, replacing any previous capture of tex.
func (m *Model) CaptureTexture(tex *Texture, unit int, loc Location) {
	m.textures.Add(tex, sampler{unit: unit, loc: loc})
	m.updateState()
}

// Release drops the capture of input in, returning false if there was none.
func (m *Model) Release(in *ShaderInput) bool {
	ok := m.inputs.DeleteKey(in)
	m.updateState()
	return ok
}

// ReleaseTexture drops the capture of tex, returning false if there was none.
func (m *Model) ReleaseTexture(tex *Texture) bool {
	ok := m.textures.DeleteKey(tex)
	m.updateState()
	return ok
}

// SetElementBuffer sets the buffer of indexes of type typ
// used by indexed draws. buf may be nil to clear it.
func (m *Model) SetElementBuffer(buf *Buffer, typ DataTypes) {
	m.elements = buf
	m.elementType = typ
}

// ElementBuffer returns the element buffer, nil if none is set.
func (m *Model) ElementBuffer() *Buffer {
	return m.elements
}

// ElementType returns the type of the element buffer indexes.
func (m *Model) ElementType() DataTypes {
	return m.elementType
}

// EnableElementBuffer binds the element buffer. It returns a
// [MissingResourceError] if none is set.
func (m *Model) EnableElementBuffer() error {
	if m.elements == nil {
		return errors.Log(&MissingResourceError{Resource: "model element buffer"})
	}
	if !m.elements.IsCreated() {
		return errors.Log(&MissingResourceError{Resource: "created model element buffer"})
	}
	m.elements.Bind()
	return nil
}

// DisableElementBuffer unbinds the element buffer. It returns a
// [MissingResourceError] if none is set.
func (m *Model) DisableElementBuffer() error {
	if m.elements == nil {
		return errors.Log(&MissingResourceError{Resource: "model element buffer"})
	}
	m.elements.Unbind()
	return nil
}

// SetCount sets the number of vertices (or indexes) drawn.
func (m *Model) SetCount(n int) {
	m.count = n
}

// Count returns the number of vertices (or indexes) drawn.
func (m *Model) Count() int {
	return m.count
}

// State returns where the model is in its lifecycle.
func (m *Model) State() ModelStates {
	return m.state
}

// Enable binds each captured buffer and enables its input, then
// enables each captured texture. No buffer is left bound to
// [ArrayBuffer]. The program owning the samplers must be current.
// It is called by [Program.Render].
func (m *Model) Enable() {
	m.enableInputs()
	m.enableTextures()
	m.state = ModelEnabled
}

// Disable disables each captured input and texture.
func (m *Model) Disable() {
	for _, kv := range m.inputs.Order {
		kv.Key.Disable(m.ctx)
	}
	for _, kv := range m.textures.Order {
		kv.Key.Disable()
	}
	m.updateState()
}

// check returns a [MissingResourceError] for the first captured
// buffer or texture that is not created.
func (m *Model) check() error {
	for _, kv := range m.inputs.Order {
		if !kv.Value.IsCreated() {
			return errors.Log(&MissingResourceError{Resource: "created buffer for input " + kv.Key.String()})
		}
	}
	for _, kv := range m.textures.Order {
		if !kv.Key.IsCreated() {
			return errors.Log(&MissingResourceError{Resource: fmt.Sprintf("created texture for unit %d", kv.Value.unit)})
		}
	}
	if m.elements != nil && !m.elements.IsCreated() {
		return errors.Log(&MissingResourceError{Resource: "created model element buffer"})
	}
	return nil
}

// enableInputs skips inputs whose buffer is not created, as their
// attribute pointer would read from no buffer.
func (m *Model) enableInputs() {
	for _, kv := range m.inputs.Order {
		if !kv.Value.IsCreated() {
			Logger().Warn("gpu.Model input buffer is not created", "input", kv.Key.String())
			continue
		}
		kv.Value.Bind()
		kv.Key.Enable(m.ctx)
	}
	m.ctx.BindBuffer(ArrayBuffer, 0)
}

func (m *Model) enableTextures() {
	for _, kv := range m.textures.Order {
		kv.Key.Enable(kv.Value.unit, kv.Value.loc)
	}
}

func (m *Model) updateState() {
	if m.inputs.Len() == 0 && m.textures.Len() == 0 {
		m.state = ModelEmpty
		return
	}
	m.state = ModelCaptured
}
