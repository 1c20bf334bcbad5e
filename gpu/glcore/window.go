// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package glcore

import (
	"image"
	"image/color"

	"cogentcore.org/core/base/errors"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"cogentcore.org/glpipe/gpu"
)

// WindowOptions are the settings for [CreateWindow].
type WindowOptions struct {

	// Size is the framebuffer size requested, in pixels.
	Size image.Point

	// Title is the window title.
	Title string

	// Hidden creates the window invisible, for offscreen checks.
	Hidden bool

	// VSync syncs buffer swaps to the display refresh.
	VSync bool
}

// Window is a GLFW window with an OpenGL 4.1 core context current
// on the calling thread, and a [gpu.Context] on it.
type Window struct {
	*glfw.Window

	// API is the native API of the window context.
	API *API

	// Context is the gpu context all resources for this window
	// must be created against.
	Context *gpu.Context
}

// CreateWindow initializes glfw, opens a window with an OpenGL 4.1
// core profile context and makes it current.
// IMPORTANT: must be called on the main thread, locked with
// runtime.LockOSThread, and the window must only be used from it.
func CreateWindow(opts WindowOptions) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Log(err)
	}
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if opts.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}
	size := opts.Size
	if size.X <= 0 || size.Y <= 0 {
		size = image.Pt(640, 480)
	}
	gw, err := glfw.CreateWindow(size.X, size.Y, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Log(err)
	}
	gw.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	api, err := New()
	if err != nil {
		gw.Destroy()
		glfw.Terminate()
		return nil, err
	}
	w := &Window{Window: gw, API: api, Context: gpu.NewContext(api)}
	return w, nil
}

// Size returns the framebuffer size in pixels.
func (w *Window) Size() image.Point {
	x, y := w.GetFramebufferSize()
	return image.Pt(x, y)
}

// Clear sets the viewport to the framebuffer and clears it to c.
func (w *Window) Clear(c color.Color) {
	sz := w.Size()
	gl.Viewport(0, 0, int32(sz.X), int32(sz.Y))
	r, g, b, a := c.RGBA()
	gl.ClearColor(float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Capture reads back the framebuffer as an image, top row first.
func (w *Window) Capture() *image.RGBA {
	sz := w.Size()
	img := image.NewRGBA(image.Rectangle{Max: sz})
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(sz.X), int32(sz.Y), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	// GL rows start at the bottom
	row := make([]byte, img.Stride)
	for y := range sz.Y / 2 {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bot := img.Pix[(sz.Y-1-y)*img.Stride : (sz.Y-y)*img.Stride]
		copy(row, top)
		copy(top, bot)
		copy(bot, row)
	}
	return img
}

// PollEvents processes pending events and returns false once the
// window should close.
func (w *Window) PollEvents() bool {
	if w.ShouldClose() {
		return false
	}
	glfw.PollEvents()
	return true
}

// Destroy releases the context, closes the window and terminates glfw.
func (w *Window) Destroy() {
	w.API.Release()
	w.Window.Destroy()
	glfw.Terminate()
}
