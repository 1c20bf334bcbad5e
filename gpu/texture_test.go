// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu_test

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/glpipe/gpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextureConfigure(t *testing.T) {
	rec, ctx := newContext(t)
	tx := gpu.NewTexture(ctx, gpu.Texture2D)
	require.NoError(t, tx.Create())
	rec.Reset()

	assert.False(t, tx.IsConfiguring())
	require.NoError(t, tx.ConfigureFiltering(gpu.Linear, gpu.Nearest))
	assert.True(t, tx.IsConfiguring())
	require.NoError(t, tx.ConfigureWrapping(gpu.ClampToEdge, gpu.Repeat))
	require.NoError(t, tx.Push([]byte{1, 2, 3, 4}, 1, 1, 0, gpu.UnsignedByte, gpu.RGBA))
	assert.False(t, tx.IsConfiguring())

	// bound once for the whole configuration, unbound after push
	assert.Equal(t, []string{
		"BindTexture(Texture2D, 1)",
		"TexParameteri(Texture2D, TexMagFilter, 0)",
		"TexParameteri(Texture2D, TexMinFilter, 1)",
		"TexParameteri(Texture2D, TexWrapS, 1)",
		"TexParameteri(Texture2D, TexWrapT, 0)",
		"TexImage2D(Texture2D, 0, RGBA8, 1, 1, RGBA, UnsignedByte, 4 bytes)",
		"BindTexture(Texture2D, 0)",
	}, rec.Calls)

	lv, ok := rec.TextureLevel(tx.Handle(), 0)
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3, 4}, lv.Pixels)
	assert.Equal(t, gpu.Handle(0), ctx.BoundTexture(0, gpu.Texture2D))
	assert.Empty(t, ctx.Errors())
}

func TestTextureConfigureEnd(t *testing.T) {
	rec, ctx := newContext(t)
	tx := gpu.NewTexture(ctx, gpu.Texture2D)
	require.NoError(t, tx.Create())
	require.NoError(t, tx.ConfigureMipLevels(0, 0))
	rec.Reset()

	tx.ConfigureEnd()
	assert.False(t, tx.IsConfiguring())
	assert.Equal(t, []string{"BindTexture(Texture2D, 0)"}, rec.Calls)

	// a second end is a no-op
	rec.Reset()
	tx.ConfigureEnd()
	assert.Empty(t, rec.Calls)

	// configuration can start again
	require.NoError(t, tx.ConfigureIntParam(gpu.TexMaxLevel, 3))
	v, ok := rec.TextureParam(tx.Handle(), gpu.TexMaxLevel)
	require.True(t, ok)
	assert.Equal(t, int32(3), v)
}

func TestTextureStaleBinding(t *testing.T) {
	rec, ctx := newContext(t)
	a := gpu.NewTexture(ctx, gpu.Texture2D)
	require.NoError(t, a.Create())
	b := gpu.NewTexture(ctx, gpu.Texture2D)
	require.NoError(t, b.Create())

	require.NoError(t, a.ConfigureFiltering(gpu.Linear, gpu.Linear))
	require.NoError(t, b.ConfigureFiltering(gpu.Nearest, gpu.Nearest))

	rec.Reset()
	err := a.ConfigureWrapping(gpu.ClampToEdge, gpu.ClampToEdge)
	var sbe *gpu.StaleBindingError
	require.True(t, errors.As(err, &sbe))
	assert.Equal(t, a.Handle(), sbe.Texture)
	assert.Equal(t, b.Handle(), sbe.Bound)
	assert.Equal(t, 0, sbe.Unit)
	assert.Empty(t, rec.Called("TexParameteri"))
	_, ok := rec.TextureParam(b.Handle(), gpu.TexWrapS)
	assert.False(t, ok)

	b.ConfigureEnd()
	a.ConfigureEnd()
	require.NoError(t, a.ConfigureWrapping(gpu.ClampToEdge, gpu.ClampToEdge))
	v, ok := rec.TextureParam(a.Handle(), gpu.TexWrapS)
	require.True(t, ok)
	assert.Equal(t, int32(gpu.ClampToEdge), v)
}

func TestTextureStaleConfigureEnd(t *testing.T) {
	rec, ctx := newContext(t)
	a := gpu.NewTexture(ctx, gpu.Texture2D)
	require.NoError(t, a.Create())
	b := gpu.NewTexture(ctx, gpu.Texture2D)
	require.NoError(t, b.Create())

	require.NoError(t, a.ConfigureFiltering(gpu.Linear, gpu.Linear))
	require.NoError(t, b.ConfigureFiltering(gpu.Nearest, gpu.Nearest))
	var sbe *gpu.StaleBindingError
	require.True(t, errors.As(a.ConfigureWrapping(gpu.Repeat, gpu.Repeat), &sbe))

	// ending the displaced texture first leaves b bound
	rec.Reset()
	a.ConfigureEnd()
	assert.False(t, a.IsConfiguring())
	assert.Empty(t, rec.Called("BindTexture"))
	assert.Equal(t, b.Handle(), ctx.BoundTexture(0, gpu.Texture2D))

	require.NoError(t, b.Push(make([]byte, 4), 1, 1, 0, gpu.UnsignedByte, gpu.RGBA))
	_, ok := rec.TextureLevel(b.Handle(), 0)
	assert.True(t, ok)
	assert.Equal(t, gpu.Handle(0), ctx.BoundTexture(0, gpu.Texture2D))
}

func TestTextureNotCreated(t *testing.T) {
	rec, ctx := newContext(t)
	tx := gpu.NewTexture(ctx, gpu.Texture2D)

	var mre *gpu.MissingResourceError
	require.True(t, errors.As(tx.ConfigureFiltering(gpu.Linear, gpu.Linear), &mre))
	require.True(t, errors.As(tx.Push(make([]byte, 4), 1, 1, 0, gpu.UnsignedByte, gpu.RGBA), &mre))
	assert.False(t, tx.IsConfiguring())
	tx.Enable(1, 4)
	tx.Disable()
	assert.Empty(t, rec.Calls)
}

func TestTextureConfigureUnit(t *testing.T) {
	rec, ctx := newContext(t)
	tx := gpu.NewTexture(ctx, gpu.Texture2D)
	require.NoError(t, tx.Create())
	ctx.ActiveTexture(1)
	require.NoError(t, tx.ConfigureFiltering(gpu.Linear, gpu.Linear))

	ctx.ActiveTexture(3)
	rec.Reset()
	require.NoError(t, tx.ConfigureWrapping(gpu.Repeat, gpu.Repeat))
	tx.ConfigureEnd()
	assert.Equal(t, []string{
		"ActiveTexture(1)",
		"TexParameteri(Texture2D, TexWrapS, 0)",
		"TexParameteri(Texture2D, TexWrapT, 0)",
		"BindTexture(Texture2D, 0)",
	}, rec.Calls)
	assert.Equal(t, gpu.Handle(0), ctx.BoundTexture(1, gpu.Texture2D))
}

func TestTextureEnableDisable(t *testing.T) {
	rec, ctx := newContext(t)
	a := gpu.NewTexture(ctx, gpu.Texture2D)
	require.NoError(t, a.Create())
	b := gpu.NewTexture(ctx, gpu.Texture2D)
	require.NoError(t, b.Create())
	rec.Reset()

	a.Enable(0, 4)
	b.Enable(1, 5)
	assert.Equal(t, []string{
		"ActiveTexture(0)",
		"BindTexture(Texture2D, 1)",
		"Uniform1i(4, 0)",
		"ActiveTexture(1)",
		"BindTexture(Texture2D, 2)",
		"Uniform1i(5, 1)",
	}, rec.Calls)

	// disabling a leaves b bound on its own unit
	rec.Reset()
	a.Disable()
	assert.Equal(t, []string{"ActiveTexture(0)", "BindTexture(Texture2D, 0)"}, rec.Calls)
	assert.Equal(t, gpu.Handle(0), ctx.BoundTexture(0, gpu.Texture2D))
	assert.Equal(t, b.Handle(), ctx.BoundTexture(1, gpu.Texture2D))

	rec.Reset()
	a.Disable()
	assert.Empty(t, rec.Calls)
}

func TestTextureCreateFails(t *testing.T) {
	rec, ctx := newContext(t)
	rec.FailAlloc["texture"] = true
	tx := gpu.NewTexture(ctx, gpu.Texture2D)
	var rce *gpu.ResourceCreationError
	require.True(t, errors.As(tx.Create(), &rce))
	assert.Equal(t, "texture", rce.Kind)
	assert.False(t, tx.IsCreated())
}

func TestTextureDestroy(t *testing.T) {
	rec, ctx := newContext(t)
	tx := gpu.NewTexture(ctx, gpu.Texture2D)
	require.NoError(t, tx.Create())
	require.NoError(t, tx.ConfigureFiltering(gpu.Linear, gpu.Linear))
	h := tx.Handle()
	tx.Destroy()
	assert.False(t, tx.IsCreated())
	assert.False(t, tx.IsConfiguring())
	assert.False(t, rec.IsLive(h))
	assert.Equal(t, gpu.Handle(0), ctx.BoundTexture(0, gpu.Texture2D))
}

func TestPushImage(t *testing.T) {
	rec, ctx := newContext(t)
	tx := gpu.NewTexture(ctx, gpu.Texture2D)
	require.NoError(t, tx.Create())

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{255, 0, 0, 255})
	sub := img.SubImage(image.Rect(1, 1, 3, 3))
	require.NoError(t, tx.PushImage(sub, 0))

	lv, ok := rec.TextureLevel(tx.Handle(), 0)
	require.True(t, ok)
	assert.Equal(t, 2, lv.Width)
	assert.Equal(t, 2, lv.Height)
	assert.Len(t, lv.Pixels, 16)
	assert.Equal(t, []byte{255, 0, 0, 255}, lv.Pixels[:4])
	assert.Equal(t, gpu.RGBA, lv.Format)

	gray := image.NewGray(image.Rect(0, 0, 3, 1))
	require.NoError(t, tx.PushImage(gray, 1))
	lv, ok = rec.TextureLevel(tx.Handle(), 1)
	require.True(t, ok)
	assert.Len(t, lv.Pixels, 12)
}

func TestPushMipmaps(t *testing.T) {
	rec, ctx := newContext(t)
	tx := gpu.NewTexture(ctx, gpu.Texture2D)
	require.NoError(t, tx.Create())

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	require.NoError(t, tx.PushMipmaps(img, 0))

	maxLevel, ok := rec.TextureParam(tx.Handle(), gpu.TexMaxLevel)
	require.True(t, ok)
	assert.Equal(t, int32(2), maxLevel)
	for i, sz := range []int{4, 2, 1} {
		lv, ok := rec.TextureLevel(tx.Handle(), i)
		require.True(t, ok, "level %d", i)
		assert.Equal(t, sz, lv.Width)
		assert.Equal(t, sz, lv.Height)
	}
	assert.False(t, tx.IsConfiguring())
}

func TestMipmapChain(t *testing.T) {
	tests := []struct {
		size   image.Point
		levels int
		want   []image.Point
	}{
		{image.Pt(4, 4), 0, []image.Point{{4, 4}, {2, 2}, {1, 1}}},
		{image.Pt(5, 3), 0, []image.Point{{5, 3}, {2, 1}, {1, 1}}},
		{image.Pt(8, 8), 2, []image.Point{{8, 8}, {4, 4}}},
		{image.Pt(2, 2), 10, []image.Point{{2, 2}, {1, 1}}},
		{image.Pt(1, 1), 0, []image.Point{{1, 1}}},
	}
	for _, tt := range tests {
		chain := gpu.MipmapChain(image.NewRGBA(image.Rectangle{Max: tt.size}), tt.levels)
		var got []image.Point
		for _, img := range chain {
			got = append(got, img.Rect.Size())
		}
		assert.Equal(t, tt.want, got, "size %v levels %d", tt.size, tt.levels)
	}
	assert.Nil(t, gpu.MipmapChain(nil, 0))
	assert.Equal(t, 3, gpu.MipLevels(image.Pt(5, 3)))
	assert.Equal(t, 1, gpu.MipLevels(image.Pt(1, 1)))
}
