// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "image"

// Config is the configuration information for the glpipe cli.
type Config struct {

	// Vertex is the vertex shader source file. If it is not set,
	// the built-in textured quad shaders are used.
	Vertex string `flag:"vert"`

	// Fragment is the fragment shader source file, required with Vertex.
	Fragment string `flag:"frag"`

	// Texture is the image file sampled by the quad, in any format
	// imagex can open. If it is not set, a checkerboard is used.
	Texture string `flag:"t,texture"`

	// Mipmaps uploads a full mipmap chain of the texture
	// instead of a single level.
	Mipmaps bool `default:"true"`

	// Width is the window width in pixels.
	Width int `default:"640"`

	// Height is the window height in pixels.
	Height int `default:"480"`

	// Watch rebuilds the program whenever the Vertex or
	// Fragment file changes.
	Watch bool `cmd:"run" flag:"w,watch"`

	// Frames is the number of frames to draw before exiting,
	// or 0 to run until the window closes.
	Frames int `cmd:"run"`

	// Output is the file the rendered frame is saved to by check.
	// Nothing is saved if it is not set.
	Output string `cmd:"check" flag:"o,output"`

	// Debug logs resource lifecycle events.
	Debug bool `flag:"d,debug"`
}

// Size returns the window size.
func (c *Config) Size() image.Point {
	return image.Pt(c.Width, c.Height)
}
