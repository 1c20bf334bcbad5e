// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"unsafe"

	"cogentcore.org/core/base/errors"
)

// Buffer is a GPU buffer object: a linear region of device memory
// with a binding target and a usage hint. Use [ArrayBuffer] for data
// read through a [ShaderInput], and [ElementArrayBuffer] for indexes.
//
// Create allocates the object without storage; Push (re)allocates
// storage and fills it; Update overwrites part of it in place.
// Push and Update leave nothing bound.
type Buffer struct {

	// Target is the binding target. Set before Create.
	Target BufferTargets

	// Usage is the storage hint passed with every Push.
	Usage BufferUsages

	ctx    *Context
	handle Handle

	// size in bytes of the last push
	size int
}

// NewBuffer returns a new uncreated buffer for the given target and usage.
func NewBuffer(ctx *Context, target BufferTargets, usage BufferUsages) *Buffer {
	return &Buffer{ctx: ctx, Target: target, Usage: usage}
}

// Create allocates the native buffer object. It returns a
// [ResourceCreationError] if the allocation fails, in which case
// Create can be called again.
func (b *Buffer) Create() error {
	h := b.ctx.api.GenBuffer()
	if !h.Valid() {
		return errors.Log(&ResourceCreationError{Kind: "buffer"})
	}
	b.handle = h
	b.size = 0
	debug("gpu.Buffer created", "handle", h, "target", b.Target)
	return nil
}

// CreateWith creates the buffer and pushes data into it.
func (b *Buffer) CreateWith(data []byte) error {
	if err := b.Create(); err != nil {
		return err
	}
	b.Push(data)
	return nil
}

// Handle returns the native handle, 0 if not created.
func (b *Buffer) Handle() Handle {
	return b.handle
}

// IsCreated returns whether Create has succeeded and Destroy has
// not been called since.
func (b *Buffer) IsCreated() bool {
	return b.handle.Valid()
}

// Size returns the size in bytes of the storage allocated by the last Push.
func (b *Buffer) Size() int {
	return b.size
}

// Push reallocates the storage to len(data) bytes and copies data into
// it. The size may differ from any previous push. The buffer must
// have been created: otherwise nothing is pushed and a warning is logged.
func (b *Buffer) Push(data []byte) {
	if !b.checkCreated("Push") {
		return
	}
	b.Bind()
	b.ctx.api.BufferData(b.Target, data, b.Usage)
	b.size = len(data)
	b.Unbind()
}

// Update writes data at byte offset into the existing storage without
// reallocating. The range offset+len(data) must lie within [Buffer.Size]:
// writing outside it is undefined natively and is not reported
// (a warning is logged when [Debug] is on).
func (b *Buffer) Update(offset int, data []byte) {
	if !b.checkCreated("Update") {
		return
	}
	if Debug && offset+len(data) > b.size {
		Logger().Warn("gpu.Buffer Update out of range", "handle", b.handle, "offset", offset, "len", len(data), "size", b.size)
	}
	b.Bind()
	b.ctx.api.BufferSubData(b.Target, offset, data)
	b.Unbind()
}

// PushFloat32 pushes float32 data, see [Buffer.Push].
func (b *Buffer) PushFloat32(data []float32) {
	b.Push(Bytes(data))
}

// UpdateFloat32 updates float32 data at byte offset, see [Buffer.Update].
func (b *Buffer) UpdateFloat32(offset int, data []float32) {
	b.Update(offset, Bytes(data))
}

// Destroy frees the native object and its storage. Destroying twice
// is a programming error. To load new data, reuse the buffer with
// Push instead of destroying it.
func (b *Buffer) Destroy() {
	b.ctx.deleteBuffer(b.handle)
	debug("gpu.Buffer destroyed", "handle", b.handle)
	b.handle = 0
	b.size = 0
}

// Bind binds the buffer to its target. Callers that bind manually
// are responsible for unbinding, as the binding is context wide.
// An uncreated buffer is not bound, and a warning is logged.
func (b *Buffer) Bind() {
	if !b.checkCreated("Bind") {
		return
	}
	b.ctx.BindBuffer(b.Target, b.handle)
}

// checkCreated logs a warning for op if the buffer is not created.
func (b *Buffer) checkCreated(op string) bool {
	if b.handle.Valid() {
		return true
	}
	Logger().Warn("gpu.Buffer "+op+" on a buffer that is not created", "target", b.Target)
	return false
}

// Unbind unbinds whatever buffer is bound to this buffer's target.
func (b *Buffer) Unbind() {
	b.ctx.BindBuffer(b.Target, 0)
}

// Bytes returns the memory of a slice of fixed size values as bytes,
// in native byte order, without copying. E must not contain pointers.
func Bytes[E any](data []E) []byte {
	if len(data) == 0 {
		return nil
	}
	var e E
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(data))), len(data)*int(unsafe.Sizeof(e)))
}
