// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "log/slog"

// Context is one logical rendering context: the native [API] plus a
// tracker of the binding state that the API holds globally. Every
// resource is created against a Context, and all binding goes through
// it, so the tracker always mirrors the native state. This lets
// [Texture] detect a stale configuring binding instead of silently
// configuring the wrong texture, and lets tests run several
// independent contexts against fakes.
//
// The tracker mirrors, it does not cache: every call is issued to the
// API even if the state is unchanged.
//
// A Context, and everything created against it, must only be used
// from the goroutine that owns the native context (typically the
// main thread, locked with [runtime.LockOSThread]).
type Context struct {
	api API

	// buffer bound to each target
	buffers map[BufferTargets]Handle

	// texture bound to each target on each unit
	textures map[textureBinding]Handle

	// active texture unit
	unit int

	// program in use
	program Handle

	// enabled vertex attribute arrays
	arrays map[uint32]bool
}

type textureBinding struct {
	unit   int
	target TextureTargets
}

// NewContext returns a new Context issuing calls to the given API,
// which must refer to a current native context in its initial state.
func NewContext(api API) *Context {
	return &Context{
		api:      api,
		buffers:  make(map[BufferTargets]Handle),
		textures: make(map[textureBinding]Handle),
		arrays:   make(map[uint32]bool),
	}
}

// API returns the native API of this context.
func (c *Context) API() API {
	return c.api
}

// BindBuffer binds buffer handle h to target. h may be 0 to unbind.
func (c *Context) BindBuffer(target BufferTargets, h Handle) {
	c.api.BindBuffer(target, h)
	c.buffers[target] = h
}

// BoundBuffer returns the buffer bound to target, 0 if none.
func (c *Context) BoundBuffer(target BufferTargets) Handle {
	return c.buffers[target]
}

// ActiveTexture makes unit the active texture unit, which
// subsequent texture binds apply to.
func (c *Context) ActiveTexture(unit int) {
	c.api.ActiveTexture(unit)
	c.unit = unit
}

// ActiveUnit returns the active texture unit.
func (c *Context) ActiveUnit() int {
	return c.unit
}

// BindTexture binds texture handle h to target on the active unit.
// h may be 0 to unbind.
func (c *Context) BindTexture(target TextureTargets, h Handle) {
	c.api.BindTexture(target, h)
	c.textures[textureBinding{c.unit, target}] = h
}

// BoundTexture returns the texture bound to target on unit, 0 if none.
func (c *Context) BoundTexture(unit int, target TextureTargets) Handle {
	return c.textures[textureBinding{unit, target}]
}

// UseProgram makes program h current. h may be 0 for none.
func (c *Context) UseProgram(h Handle) {
	c.api.UseProgram(h)
	c.program = h
}

// CurrentProgram returns the program in use, 0 if none.
func (c *Context) CurrentProgram() Handle {
	return c.program
}

// EnableVertexAttribArray enables vertex input array index.
func (c *Context) EnableVertexAttribArray(index uint32) {
	c.api.EnableVertexAttribArray(index)
	c.arrays[index] = true
}

// DisableVertexAttribArray disables vertex input array index.
func (c *Context) DisableVertexAttribArray(index uint32) {
	c.api.DisableVertexAttribArray(index)
	delete(c.arrays, index)
}

// AttribArrayEnabled returns whether vertex input array index is enabled.
func (c *Context) AttribArrayEnabled(index uint32) bool {
	return c.arrays[index]
}

// ConfigurePixelAlignment sets the row alignment, in bytes, of pixel
// data uploaded by [Texture.Push]. The native default is 4; tightly
// packed RGB or single channel images need 1.
func (c *Context) ConfigurePixelAlignment(n int) {
	c.api.PixelStorei(UnpackAlignment, int32(n))
}

// deleted buffers are unbound from every target, as natively.
func (c *Context) deleteBuffer(h Handle) {
	c.api.DeleteBuffer(h)
	for t, b := range c.buffers {
		if b == h {
			c.buffers[t] = 0
		}
	}
}

func (c *Context) deleteTexture(h Handle) {
	c.api.DeleteTexture(h)
	for tb, t := range c.textures {
		if t == h {
			c.textures[tb] = 0
		}
	}
}

// deleting the current program does not unbind it natively, but
// it is no longer usable, so it is forgotten here too.
func (c *Context) deleteProgram(h Handle) {
	c.api.DeleteProgram(h)
	if c.program == h {
		c.program = 0
	}
}

// maxErrors bounds the error drain, as a lost context can report
// errors forever.
const maxErrors = 32

// Errors returns and clears all pending native error codes.
func (c *Context) Errors() []ErrorCodes {
	var errs []ErrorCodes
	for range maxErrors {
		code := c.api.GetError()
		if code == NoError {
			break
		}
		errs = append(errs, code)
	}
	return errs
}

// CheckError logs all pending native error codes with [slog.Error],
// using msg as the message, and returns whether there were any.
// It is a diagnostic aid for use while debugging a sequence of calls.
func (c *Context) CheckError(msg string) bool {
	if msg == "" {
		msg = "gpu error"
	}
	errs := c.Errors()
	for _, code := range errs {
		slog.Error(msg, "code", code.String())
	}
	return len(errs) > 0
}
