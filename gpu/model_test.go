// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu_test

import (
	"testing"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/glpipe/gpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuad(t *testing.T, ctx *gpu.Context) *gpu.Buffer {
	t.Helper()
	b := gpu.NewBuffer(ctx, gpu.ArrayBuffer, gpu.StaticDraw)
	require.NoError(t, b.Create())
	b.PushFloat32([]float32{0, 0, 1, 0, 1, 1, 0, 1})
	return b
}

func TestRender(t *testing.T) {
	rec, ctx := newContext(t)
	buf := newQuad(t, ctx)
	pr := newProgram(t, ctx)

	in := gpu.NewShaderInput(2, gpu.Float).Create(0)
	m := gpu.NewModel(ctx)
	require.NoError(t, m.CaptureInput(in, buf))
	m.SetCount(4)

	rec.Reset()
	require.NoError(t, pr.Render(m))
	assert.Equal(t, []string{
		fmtCall("BindBuffer", gpu.ArrayBuffer, buf.Handle()),
		"EnableVertexAttribArray(0)",
		"VertexAttribPointer(0, 2, Float, false, 0, 0)",
		"BindBuffer(ArrayBuffer, 0)",
		fmtCall("UseProgram", pr.Handle()),
		"DrawArrays(Triangles, 0, 4)",
		"DisableVertexAttribArray(0)",
		"UseProgram(0)",
	}, rec.Calls)

	assert.Equal(t, gpu.ModelCaptured, m.State())
	assert.Equal(t, gpu.Handle(0), ctx.CurrentProgram())
	assert.False(t, ctx.AttribArrayEnabled(0))
}

func TestRenderTextures(t *testing.T) {
	rec, ctx := newContext(t)
	buf := newQuad(t, ctx)
	pr := newProgram(t, ctx)
	tex := gpu.NewTexture(ctx, gpu.Texture2D)
	require.NoError(t, tex.Create())

	m := gpu.NewModel(ctx)
	require.NoError(t, m.CaptureInput(gpu.NewShaderInput(2, gpu.Float).Create(1), buf))
	m.CaptureTexture(tex, 2, 7)
	m.SetCount(4)

	rec.Reset()
	require.NoError(t, pr.Render(m))
	calls := rec.Called("UseProgram", "ActiveTexture", "BindTexture", "Uniform1i", "DrawArrays")
	assert.Equal(t, []string{
		fmtCall("UseProgram", pr.Handle()),
		"ActiveTexture(2)",
		fmtCall("BindTexture", gpu.Texture2D, tex.Handle()),
		"Uniform1i(7, 2)",
		"DrawArrays(Triangles, 0, 4)",
		"ActiveTexture(2)",
		"BindTexture(Texture2D, 0)",
		"UseProgram(0)",
	}, calls)
	assert.Equal(t, gpu.Handle(0), ctx.BoundTexture(2, gpu.Texture2D))
}

func TestModelInterleaved(t *testing.T) {
	rec, ctx := newContext(t)
	buf := newQuad(t, ctx)
	pos := gpu.NewShaderInputLayout(2, gpu.Float, 0, 16, false).Create(0)
	uv := gpu.NewShaderInputLayout(2, gpu.UnsignedShort, 8, 16, true).Create(1)

	m := gpu.NewModel(ctx)
	require.NoError(t, m.CaptureInput(pos, buf))
	require.NoError(t, m.CaptureInput(uv, buf))
	rec.Reset()
	m.Enable()
	assert.Equal(t, gpu.ModelEnabled, m.State())
	assert.Equal(t, []string{
		"VertexAttribPointer(0, 2, Float, false, 16, 0)",
		"VertexAttribPointer(1, 2, UnsignedShort, true, 16, 8)",
	}, rec.Called("VertexAttribPointer"))
	assert.Equal(t, gpu.Handle(0), ctx.BoundBuffer(gpu.ArrayBuffer))

	m.Disable()
	assert.Equal(t, gpu.ModelCaptured, m.State())
	assert.False(t, ctx.AttribArrayEnabled(0))
	assert.False(t, ctx.AttribArrayEnabled(1))
}

func TestModelUncommittedInput(t *testing.T) {
	rec, ctx := newContext(t)
	buf := newQuad(t, ctx)
	m := gpu.NewModel(ctx)

	in := gpu.NewShaderInput(2, gpu.Float)
	err := m.CaptureInput(in, buf)
	var uie *gpu.UncommittedInputError
	require.True(t, errors.As(err, &uie))
	assert.Equal(t, gpu.ModelEmpty, m.State())

	// index 0 is a valid slot once created
	in.Create(0)
	require.NoError(t, m.CaptureInput(in, buf))
	assert.Equal(t, gpu.ModelCaptured, m.State())

	rec.Reset()
	m.Enable()
	assert.Equal(t, []string{"EnableVertexAttribArray(0)"}, rec.Called("EnableVertexAttribArray"))
	m.Disable()

	in.Destroy()
	assert.False(t, in.IsCreated())
	assert.Error(t, m.CaptureInput(in, buf))
}

func TestModelCaptureReplaces(t *testing.T) {
	rec, ctx := newContext(t)
	a := newQuad(t, ctx)
	b := newQuad(t, ctx)
	tex := gpu.NewTexture(ctx, gpu.Texture2D)
	require.NoError(t, tex.Create())

	in := gpu.NewShaderInput(2, gpu.Float).Create(0)
	m := gpu.NewModel(ctx)
	require.NoError(t, m.CaptureInput(in, a))
	require.NoError(t, m.CaptureInput(in, b))
	m.CaptureTexture(tex, 0, 1)
	m.CaptureTexture(tex, 3, 1)

	rec.Reset()
	m.Enable()
	assert.Equal(t, []string{
		fmtCall("BindBuffer", gpu.ArrayBuffer, b.Handle()),
		"BindBuffer(ArrayBuffer, 0)",
	}, rec.Called("BindBuffer"))
	assert.Equal(t, []string{"ActiveTexture(3)"}, rec.Called("ActiveTexture"))
	m.Disable()

	assert.True(t, m.ReleaseTexture(tex))
	assert.False(t, m.ReleaseTexture(tex))
	assert.True(t, m.Release(in))
	assert.Equal(t, gpu.ModelEmpty, m.State())
}

func TestModelElementBuffer(t *testing.T) {
	rec, ctx := newContext(t)
	m := gpu.NewModel(ctx)

	var mre *gpu.MissingResourceError
	require.True(t, errors.As(m.EnableElementBuffer(), &mre))
	require.True(t, errors.As(m.DisableElementBuffer(), &mre))

	idx := gpu.NewBuffer(ctx, gpu.ElementArrayBuffer, gpu.StaticDraw)
	require.NoError(t, idx.CreateWith(gpu.Bytes([]uint16{0, 1, 2, 0, 2, 3})))
	m.SetElementBuffer(idx, gpu.UnsignedShort)
	assert.Equal(t, idx, m.ElementBuffer())

	rec.Reset()
	require.NoError(t, m.EnableElementBuffer())
	assert.Equal(t, idx.Handle(), ctx.BoundBuffer(gpu.ElementArrayBuffer))
	require.NoError(t, m.DisableElementBuffer())
	assert.Equal(t, gpu.Handle(0), ctx.BoundBuffer(gpu.ElementArrayBuffer))
	assert.Len(t, rec.Calls, 2)
}

func TestDrawers(t *testing.T) {
	rec, ctx := newContext(t)
	buf := newQuad(t, ctx)
	pr := newProgram(t, ctx)
	m := gpu.NewModel(ctx)
	require.NoError(t, m.CaptureInput(gpu.NewShaderInput(2, gpu.Float).Create(0), buf))

	idx := gpu.NewBuffer(ctx, gpu.ElementArrayBuffer, gpu.StaticDraw)
	require.NoError(t, idx.CreateWith(gpu.Bytes([]uint32{0, 1, 2, 0, 2, 3})))
	m.SetElementBuffer(idx, gpu.UnsignedInt)
	m.SetCount(6)

	rec.Reset()
	pr.Drawer = &gpu.IndexedDrawer{Topology: gpu.Triangles}
	require.NoError(t, pr.Render(m))
	assert.Equal(t, []string{
		fmtCall("BindBuffer", gpu.ElementArrayBuffer, idx.Handle()),
		"DrawElements(Triangles, 6, UnsignedInt, 0)",
		"BindBuffer(ElementArrayBuffer, 0)",
	}, rec.Called("DrawElements", "BindBuffer")[2:])

	rec.Reset()
	pr.Drawer = &gpu.InstancedDrawer{Topology: gpu.TriangleStrip, Instances: 10}
	m.SetCount(4)
	require.NoError(t, pr.Render(m))
	assert.Equal(t, []string{"DrawArraysInstanced(TriangleStrip, 0, 4, 10)"}, rec.Called("DrawArraysInstanced"))
}

func TestRenderDrawError(t *testing.T) {
	rec, ctx := newContext(t)
	buf := newQuad(t, ctx)
	pr := newProgram(t, ctx)
	m := gpu.NewModel(ctx)
	require.NoError(t, m.CaptureInput(gpu.NewShaderInput(2, gpu.Float).Create(0), buf))
	m.SetCount(3)

	// no element buffer: the draw fails but the model is still disabled
	pr.Drawer = &gpu.IndexedDrawer{Topology: gpu.Triangles}
	rec.Reset()
	err := pr.Render(m)
	var mre *gpu.MissingResourceError
	require.True(t, errors.As(err, &mre))
	assert.Equal(t, []string{"DisableVertexAttribArray(0)"}, rec.Called("DisableVertexAttribArray"))
	assert.Equal(t, gpu.Handle(0), ctx.CurrentProgram())
	assert.Equal(t, gpu.ModelCaptured, m.State())
}

func TestShaderInputFromProgram(t *testing.T) {
	rec, ctx := newContext(t)
	rec.Attribs["pos"] = 2
	pr := newProgram(t, ctx)

	in := gpu.NewShaderInput(2, gpu.Float)
	require.NoError(t, in.CreateFromProgram(pr, "pos"))
	assert.True(t, in.IsCreated())
	assert.Equal(t, uint32(2), in.Index())

	other := gpu.NewShaderInput(3, gpu.Float)
	var mre *gpu.MissingResourceError
	require.True(t, errors.As(other.CreateFromProgram(pr, "normal"), &mre))
	assert.False(t, other.IsCreated())
}

func TestRenderNotCreated(t *testing.T) {
	rec, ctx := newContext(t)
	buf := newQuad(t, ctx)
	m := gpu.NewModel(ctx)
	require.NoError(t, m.CaptureInput(gpu.NewShaderInput(2, gpu.Float).Create(0), buf))
	m.SetCount(3)

	var mre *gpu.MissingResourceError
	rec.Reset()
	require.True(t, errors.As(gpu.NewProgram(ctx, "none").Render(m), &mre))
	assert.Empty(t, rec.Calls)

	pr := newProgram(t, ctx)
	buf.Destroy()
	rec.Reset()
	require.True(t, errors.As(pr.Render(m), &mre))
	assert.Empty(t, rec.Calls)
	assert.Equal(t, gpu.ModelCaptured, m.State())

	// an uncreated texture fails the same way
	tm := gpu.NewModel(ctx)
	require.NoError(t, tm.CaptureInput(gpu.NewShaderInput(2, gpu.Float).Create(0), newQuad(t, ctx)))
	tm.CaptureTexture(gpu.NewTexture(ctx, gpu.Texture2D), 0, 1)
	tm.SetCount(3)
	rec.Reset()
	require.True(t, errors.As(pr.Render(tm), &mre))
	assert.Empty(t, rec.Calls)
}

func TestRenderNilDrawer(t *testing.T) {
	rec, ctx := newContext(t)
	buf := newQuad(t, ctx)
	pr := newProgram(t, ctx)
	pr.Drawer = nil
	m := gpu.NewModel(ctx)
	require.NoError(t, m.CaptureInput(gpu.NewShaderInput(2, gpu.Float).Create(0), buf))
	m.SetCount(3)

	rec.Reset()
	require.NoError(t, pr.Render(m))
	assert.Equal(t, []string{"DrawArrays(Triangles, 0, 3)"}, rec.Called("DrawArrays"))
}
