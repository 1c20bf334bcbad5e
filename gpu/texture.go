// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"cogentcore.org/core/base/errors"
)

// Texture is a 2D image resource with mipmap levels, filtering and
// wrapping: by default a [Texture2D].
//
// A texture must be created and configured before use: call Create,
// then the Configure methods, then Push one image per mip level.
// Each Configure method binds the texture and enters configuring mode
// if it is not already in it; Push exits configuring mode when done,
// as does [Texture.ConfigureEnd].
//
// The number of mip levels must match the levels pushed, otherwise
// the texture is incomplete and sampling it is undefined. This is
// not checked. Use [Texture.ConfigureMipLevels] to declare the range.
//
// To use a texture, capture it with a [Model], or call Enable and
// Disable around a draw.
type Texture struct {

	// Target is the dimensionality target. Set before Create.
	Target TextureTargets

	// InternalFormat is the GPU storage format used by Push.
	InternalFormat InternalFormats

	ctx    *Context
	handle Handle

	// configuring is set while the texture is bound for configuration.
	// It is a proxy for the context binding state, verified against
	// the tracker on each configuration call.
	configuring bool

	// unit the texture was bound to for configuration
	configUnit int

	// unit the texture was last enabled on, -1 if not enabled
	enabledUnit int
}

// NewTexture returns a new uncreated texture for the given target.
func NewTexture(ctx *Context, target TextureTargets) *Texture {
	return &Texture{ctx: ctx, Target: target, InternalFormat: RGBA8, enabledUnit: -1}
}

// Create allocates the native texture object. It returns a
// [ResourceCreationError] if the allocation fails.
func (tx *Texture) Create() error {
	h := tx.ctx.api.GenTexture()
	if !h.Valid() {
		return errors.Log(&ResourceCreationError{Kind: "texture"})
	}
	tx.handle = h
	debug("gpu.Texture created", "handle", h, "target", tx.Target)
	return nil
}

// Handle returns the native handle, 0 if not created.
func (tx *Texture) Handle() Handle {
	return tx.handle
}

// IsCreated returns whether the texture has been created and not destroyed.
func (tx *Texture) IsCreated() bool {
	return tx.handle.Valid()
}

// IsConfiguring returns whether the texture believes it is bound for
// configuration.
func (tx *Texture) IsConfiguring() bool {
	return tx.configuring
}

// ConfigureFiltering sets the minification and magnification filters.
func (tx *Texture) ConfigureFiltering(min, mag TextureFilters) error {
	if err := tx.configureBegin(); err != nil {
		return err
	}
	tx.ctx.api.TexParameteri(tx.Target, TexMagFilter, int32(mag))
	tx.ctx.api.TexParameteri(tx.Target, TexMinFilter, int32(min))
	return nil
}

// ConfigureWrapping sets how texture coordinates outside [0,1] wrap
// along the horizontal (s, u or x) and vertical (t, v or y) axes.
func (tx *Texture) ConfigureWrapping(s, t TextureWraps) error {
	if err := tx.configureBegin(); err != nil {
		return err
	}
	tx.ctx.api.TexParameteri(tx.Target, TexWrapS, int32(s))
	tx.ctx.api.TexParameteri(tx.Target, TexWrapT, int32(t))
	return nil
}

// ConfigureMipLevels sets the range of mip levels, base being the
// largest image and max the smallest, both inclusive. Every level in
// the range must then be pushed.
func (tx *Texture) ConfigureMipLevels(base, max int) error {
	if err := tx.configureBegin(); err != nil {
		return err
	}
	tx.ctx.api.TexParameteri(tx.Target, TexBaseLevel, int32(base))
	tx.ctx.api.TexParameteri(tx.Target, TexMaxLevel, int32(max))
	return nil
}

// ConfigureIntParam sets any integer texture parameter.
func (tx *Texture) ConfigureIntParam(param TexParams, value int32) error {
	if err := tx.configureBegin(); err != nil {
		return err
	}
	tx.ctx.api.TexParameteri(tx.Target, param, value)
	return nil
}

// Push uploads one mip level from pixels, which hold width*height
// pixels of the given format and component type. The texture is
// bound for the upload and configuring mode ends afterwards.
func (tx *Texture) Push(pixels []byte, width, height, level int, typ DataTypes, format PixelFormats) error {
	if err := tx.configureBegin(); err != nil {
		return err
	}
	tx.ctx.api.TexImage2D(tx.Target, level, tx.InternalFormat, width, height, format, typ, pixels)
	tx.ConfigureEnd()
	return nil
}

// ConfigureEnd unbinds the texture and leaves configuring mode.
// It does nothing if the texture is not configuring, and is not
// needed after Push. If another texture has since been bound in its
// place, that binding is left alone and only the mode is cleared.
func (tx *Texture) ConfigureEnd() {
	if !tx.configuring {
		return
	}
	tx.configuring = false
	if tx.ctx.BoundTexture(tx.configUnit, tx.Target) != tx.handle {
		return
	}
	if tx.ctx.ActiveUnit() != tx.configUnit {
		tx.ctx.ActiveTexture(tx.configUnit)
	}
	tx.ctx.BindTexture(tx.Target, 0)
}

// Enable binds the texture to the given texture unit and points the
// sampler uniform at samplerLoc to that unit. The owning program must
// be in use. There is no requirement on configuring mode, but a
// texture enabled while configuring is no longer bound for
// configuration once Disable runs.
func (tx *Texture) Enable(unit int, samplerLoc Location) {
	if !tx.handle.Valid() {
		Logger().Warn("gpu.Texture Enable on a texture that is not created", "unit", unit)
		return
	}
	tx.ctx.ActiveTexture(unit)
	tx.ctx.BindTexture(tx.Target, tx.handle)
	tx.ctx.api.Uniform1i(samplerLoc, int32(unit))
	tx.enabledUnit = unit
}

// Disable unbinds the texture target on the unit this texture was
// last enabled on. Textures left bound on other units by other draws
// are not affected. It does nothing if the texture is not enabled.
func (tx *Texture) Disable() {
	if tx.enabledUnit < 0 {
		return
	}
	tx.ctx.ActiveTexture(tx.enabledUnit)
	tx.ctx.BindTexture(tx.Target, 0)
	tx.enabledUnit = -1
}

// Destroy frees the native texture.
func (tx *Texture) Destroy() {
	tx.ctx.deleteTexture(tx.handle)
	debug("gpu.Texture destroyed", "handle", tx.handle)
	tx.handle = 0
	tx.configuring = false
	tx.enabledUnit = -1
}

// configureBegin binds the texture on the active unit unless it is
// already configuring. If it is configuring but the tracker shows a
// different texture on its unit and target, it returns a
// [StaleBindingError]. If only the active unit has changed, the
// configuration unit is made active again.
// It returns a [MissingResourceError] if the texture is not created.
func (tx *Texture) configureBegin() error {
	if !tx.handle.Valid() {
		return errors.Log(&MissingResourceError{Resource: "created texture"})
	}
	if tx.configuring {
		bound := tx.ctx.BoundTexture(tx.configUnit, tx.Target)
		if bound != tx.handle {
			return errors.Log(&StaleBindingError{Texture: tx.handle, Bound: bound, Unit: tx.configUnit, Target: tx.Target})
		}
		if tx.ctx.ActiveUnit() != tx.configUnit {
			tx.ctx.ActiveTexture(tx.configUnit)
		}
		return nil
	}
	tx.configUnit = tx.ctx.ActiveUnit()
	tx.ctx.BindTexture(tx.Target, tx.handle)
	tx.configuring = true
	return nil
}
