// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/imagex"
	"golang.org/x/image/draw"
)

// PushImage uploads img as the given mip level, converting it to
// RGBA as needed. See [Texture.Push].
func (tx *Texture) PushImage(img image.Image, level int) error {
	rimg := imagex.AsRGBA(img)
	if rimg == nil {
		return errors.Log(&MissingResourceError{Resource: "texture image"})
	}
	sz := rimg.Rect.Size()
	pix := rimg.Pix[:4*sz.X*sz.Y]
	if rimg.Stride != 4*sz.X {
		// sub-image: copy out the visible rows
		pix = make([]byte, 0, 4*sz.X*sz.Y)
		for y := range sz.Y {
			off := rimg.PixOffset(rimg.Rect.Min.X, rimg.Rect.Min.Y+y)
			pix = append(pix, rimg.Pix[off:off+4*sz.X]...)
		}
	}
	return tx.Push(pix, sz.X, sz.Y, level, UnsignedByte, RGBA)
}

// PushMipmaps builds a chain of levels images from img with
// [MipmapChain], declares mip levels 0 through levels-1 and uploads
// every level. If levels <= 0 the full chain down to 1x1 is used.
func (tx *Texture) PushMipmaps(img image.Image, levels int) error {
	chain := MipmapChain(img, levels)
	if len(chain) == 0 {
		return errors.Log(&MissingResourceError{Resource: "texture image"})
	}
	if err := tx.ConfigureMipLevels(0, len(chain)-1); err != nil {
		return err
	}
	for i, lv := range chain {
		if err := tx.PushImage(lv, i); err != nil {
			return err
		}
	}
	return nil
}

// MipLevels returns the number of mip levels in a full chain for
// an image of the given size, down to 1x1.
func MipLevels(size image.Point) int {
	n := 1
	for size.X > 1 || size.Y > 1 {
		size.X = max(size.X/2, 1)
		size.Y = max(size.Y/2, 1)
		n++
	}
	return n
}

// MipmapChain returns img as RGBA followed by successive half size
// reductions, levels images in total, stopping early at 1x1.
// If levels <= 0 the full chain is returned. Reductions use
// bilinear filtering of the previous level.
func MipmapChain(img image.Image, levels int) []*image.RGBA {
	base := imagex.AsRGBA(img)
	if base == nil {
		return nil
	}
	sz := base.Rect.Size()
	full := MipLevels(sz)
	if levels <= 0 || levels > full {
		levels = full
	}
	chain := make([]*image.RGBA, 0, levels)
	chain = append(chain, base)
	prev := base
	for len(chain) < levels {
		sz = image.Point{max(sz.X/2, 1), max(sz.Y/2, 1)}
		next := image.NewRGBA(image.Rectangle{Max: sz})
		draw.BiLinear.Scale(next, next.Rect, prev, prev.Rect, draw.Src, nil)
		chain = append(chain, next)
		prev = next
	}
	return chain
}
