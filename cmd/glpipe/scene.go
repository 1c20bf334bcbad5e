// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"embed"
	"image"
	"image/color"
	"unsafe"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/math32"

	"cogentcore.org/glpipe/gpu"
	"cogentcore.org/glpipe/gpu/reload"
)

//go:embed shaders/*.vert shaders/*.frag
var shaders embed.FS

// vertex is the interleaved layout of the quad vertex buffer.
type vertex struct {
	Pos math32.Vector2
	UV  math32.Vector2
}

// quad covers the viewport, with the image top row at the top.
var quad = []vertex{
	{math32.Vec2(-1, -1), math32.Vec2(0, 1)},
	{math32.Vec2(1, -1), math32.Vec2(1, 1)},
	{math32.Vec2(-1, 1), math32.Vec2(0, 0)},
	{math32.Vec2(1, 1), math32.Vec2(1, 0)},
}

var quadIndices = []uint32{0, 1, 2, 2, 1, 3}

const vertexStride = int(unsafe.Sizeof(vertex{}))

// scene is a textured quad: one interleaved vertex buffer, an element
// buffer and a texture, captured by a model and drawn by a program.
type scene struct {
	ctx *gpu.Context

	program *gpu.Program
	reload  *reload.Program

	vertices *gpu.Buffer
	indices  *gpu.Buffer
	texture  *gpu.Texture
	pos, uv  *gpu.ShaderInput
	model    *gpu.Model
}

// prepareProgram binds the quad inputs and sets the indexed drawer.
func prepareProgram(pr *gpu.Program) {
	pr.PrepareInputLocation("pos", 0)
	pr.PrepareInputLocation("uv", 1)
	pr.Drawer = &gpu.IndexedDrawer{Topology: gpu.Triangles}
}

// newScene creates every resource of the scene described by c.
// On failure all resources created so far are destroyed.
func newScene(ctx *gpu.Context, c *Config) (*scene, error) {
	sc := &scene{ctx: ctx}
	if err := sc.build(c); err != nil {
		sc.destroy()
		return nil, err
	}
	return sc, nil
}

func (sc *scene) build(c *Config) error {
	if err := sc.buildProgram(c); err != nil {
		return err
	}

	sc.vertices = gpu.NewBuffer(sc.ctx, gpu.ArrayBuffer, gpu.StaticDraw)
	if err := sc.vertices.CreateWith(gpu.Bytes(quad)); err != nil {
		return err
	}
	sc.indices = gpu.NewBuffer(sc.ctx, gpu.ElementArrayBuffer, gpu.StaticDraw)
	if err := sc.indices.CreateWith(gpu.Bytes(quadIndices)); err != nil {
		return err
	}

	img, err := loadImage(c.Texture)
	if err != nil {
		return err
	}
	sc.texture = gpu.NewTexture(sc.ctx, gpu.Texture2D)
	if err := sc.texture.Create(); err != nil {
		return err
	}
	if err := configureTexture(sc.texture, img, c.Mipmaps); err != nil {
		return err
	}

	sc.pos = gpu.NewShaderInputLayout(2, gpu.Float, 0, vertexStride, false).Create(0)
	sc.uv = gpu.NewShaderInputLayout(2, gpu.Float, int(unsafe.Offsetof(vertex{}.UV)), vertexStride, false).Create(1)

	sc.model = gpu.NewModel(sc.ctx)
	if err := sc.model.CaptureInput(sc.pos, sc.vertices); err != nil {
		return err
	}
	if err := sc.model.CaptureInput(sc.uv, sc.vertices); err != nil {
		return err
	}
	sc.model.SetElementBuffer(sc.indices, gpu.UnsignedInt)
	sc.model.SetCount(len(quadIndices))
	sc.captureSampler()
	return nil
}

func (sc *scene) buildProgram(c *Config) error {
	switch {
	case c.Vertex == "" && c.Fragment == "":
		pr, err := buildEmbedded(sc.ctx)
		sc.program = pr
		return err
	case c.Vertex == "" || c.Fragment == "":
		return errors.New("glpipe: vert and frag must be given together")
	}
	srcs := []reload.Source{{Type: gpu.VertexShader, Path: c.Vertex}, {Type: gpu.FragmentShader, Path: c.Fragment}}
	if c.Watch {
		rp, err := reload.NewProgram(sc.ctx, "quad", prepareProgram, srcs...)
		sc.reload = rp
		return err
	}
	pr, err := reload.Build(sc.ctx, "quad", prepareProgram, srcs...)
	sc.program = pr
	return err
}

// buildEmbedded links the built-in quad shaders.
func buildEmbedded(ctx *gpu.Context) (*gpu.Program, error) {
	vert := gpu.NewShader(ctx, "quad.vert", gpu.VertexShader)
	if err := vert.CreateFile(shaders, "shaders/quad.vert"); err != nil {
		return nil, err
	}
	frag := gpu.NewShader(ctx, "quad.frag", gpu.FragmentShader)
	if err := frag.CreateFile(shaders, "shaders/quad.frag"); err != nil {
		vert.Destroy()
		return nil, err
	}
	pr := gpu.NewProgram(ctx, "quad")
	prepareProgram(pr)
	if err := pr.Create(vert, frag); err != nil {
		return nil, err
	}
	return pr, nil
}

// configureTexture sets filtering and wrapping on tex and uploads img,
// as a full mipmap chain if mipmaps is set.
func configureTexture(tex *gpu.Texture, img image.Image, mipmaps bool) error {
	minify := gpu.Linear
	if mipmaps {
		minify = gpu.LinearMipmapLinear
	}
	if err := tex.ConfigureFiltering(minify, gpu.Linear); err != nil {
		return err
	}
	if err := tex.ConfigureWrapping(gpu.ClampToEdge, gpu.ClampToEdge); err != nil {
		return err
	}
	if mipmaps {
		return tex.PushMipmaps(img, 0)
	}
	if err := tex.ConfigureMipLevels(0, 0); err != nil {
		return err
	}
	return tex.PushImage(img, 0)
}

// loadImage opens the image file, or returns a checkerboard if
// filename is empty.
func loadImage(filename string) (image.Image, error) {
	if filename == "" {
		return checkerboard(256, 32), nil
	}
	img, _, err := imagex.Open(filename)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// checkerboard returns a size x size image of alternating cells.
func checkerboard(size, cell int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	light := color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
	dark := color.RGBA{0x30, 0x60, 0xa0, 0xff}
	for y := range size {
		for x := range size {
			if (x/cell+y/cell)%2 == 0 {
				img.SetRGBA(x, y, light)
			} else {
				img.SetRGBA(x, y, dark)
			}
		}
	}
	return img
}

// current returns the program to draw with.
func (sc *scene) current() *gpu.Program {
	if sc.reload != nil {
		return sc.reload.Current()
	}
	return sc.program
}

// captureSampler points the texture at the sampler of the current
// program, which moves when the program is rebuilt.
func (sc *scene) captureSampler() {
	sc.model.CaptureTexture(sc.texture, 0, sc.current().UniformLocation("tex"))
}

// update rebuilds the program if its sources changed. A failed
// rebuild is logged and the previous program kept.
func (sc *scene) update() {
	if sc.reload == nil {
		return
	}
	updated, err := sc.reload.Update()
	if err != nil {
		gpu.Logger().Error("glpipe: rebuild failed, keeping previous program", "err", err)
		return
	}
	if updated {
		sc.captureSampler()
	}
}

// draw renders the quad once.
func (sc *scene) draw() error {
	sc.update()
	return sc.current().Render(sc.model)
}

// destroy frees every resource of the scene that was created.
func (sc *scene) destroy() {
	if sc.model != nil {
		sc.model.Release(sc.pos)
		sc.model.Release(sc.uv)
		sc.model.ReleaseTexture(sc.texture)
	}
	if sc.pos != nil {
		sc.pos.Destroy()
		sc.uv.Destroy()
	}
	if sc.texture != nil {
		sc.texture.Destroy()
	}
	if sc.indices != nil {
		sc.indices.Destroy()
	}
	if sc.vertices != nil {
		sc.vertices.Destroy()
	}
	if sc.reload != nil {
		errors.Log(sc.reload.Close())
	}
	if sc.program != nil {
		sc.program.Destroy()
	}
}
