// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package glcore

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"cogentcore.org/glpipe/gpu"
)

var glBufferTargets = map[gpu.BufferTargets]uint32{
	gpu.ArrayBuffer:        gl.ARRAY_BUFFER,
	gpu.ElementArrayBuffer: gl.ELEMENT_ARRAY_BUFFER,
	gpu.UniformBuffer:      gl.UNIFORM_BUFFER,
	gpu.CopyReadBuffer:     gl.COPY_READ_BUFFER,
	gpu.CopyWriteBuffer:    gl.COPY_WRITE_BUFFER,
	gpu.PixelUnpackBuffer:  gl.PIXEL_UNPACK_BUFFER,
}

var glBufferUsages = map[gpu.BufferUsages]uint32{
	gpu.StaticDraw:  gl.STATIC_DRAW,
	gpu.DynamicDraw: gl.DYNAMIC_DRAW,
	gpu.StreamDraw:  gl.STREAM_DRAW,
	gpu.StaticRead:  gl.STATIC_READ,
	gpu.DynamicRead: gl.DYNAMIC_READ,
	gpu.StreamRead:  gl.STREAM_READ,
	gpu.StaticCopy:  gl.STATIC_COPY,
	gpu.DynamicCopy: gl.DYNAMIC_COPY,
	gpu.StreamCopy:  gl.STREAM_COPY,
}

var glDataTypes = map[gpu.DataTypes]uint32{
	gpu.Byte:          gl.BYTE,
	gpu.UnsignedByte:  gl.UNSIGNED_BYTE,
	gpu.Short:         gl.SHORT,
	gpu.UnsignedShort: gl.UNSIGNED_SHORT,
	gpu.Int:           gl.INT,
	gpu.UnsignedInt:   gl.UNSIGNED_INT,
	gpu.HalfFloat:     gl.HALF_FLOAT,
	gpu.Float:         gl.FLOAT,
	gpu.Double:        gl.DOUBLE,
}

var glTextureTargets = map[gpu.TextureTargets]uint32{
	gpu.Texture2D:        gl.TEXTURE_2D,
	gpu.TextureRectangle: gl.TEXTURE_RECTANGLE,
	gpu.Texture1DArray:   gl.TEXTURE_1D_ARRAY,
}

var glTexParams = map[gpu.TexParams]uint32{
	gpu.TexMinFilter: gl.TEXTURE_MIN_FILTER,
	gpu.TexMagFilter: gl.TEXTURE_MAG_FILTER,
	gpu.TexWrapS:     gl.TEXTURE_WRAP_S,
	gpu.TexWrapT:     gl.TEXTURE_WRAP_T,
	gpu.TexWrapR:     gl.TEXTURE_WRAP_R,
	gpu.TexBaseLevel: gl.TEXTURE_BASE_LEVEL,
	gpu.TexMaxLevel:  gl.TEXTURE_MAX_LEVEL,
}

var glTextureFilters = map[gpu.TextureFilters]int32{
	gpu.Nearest:              gl.NEAREST,
	gpu.Linear:               gl.LINEAR,
	gpu.NearestMipmapNearest: gl.NEAREST_MIPMAP_NEAREST,
	gpu.LinearMipmapNearest:  gl.LINEAR_MIPMAP_NEAREST,
	gpu.NearestMipmapLinear:  gl.NEAREST_MIPMAP_LINEAR,
	gpu.LinearMipmapLinear:   gl.LINEAR_MIPMAP_LINEAR,
}

var glTextureWraps = map[gpu.TextureWraps]int32{
	gpu.Repeat:         gl.REPEAT,
	gpu.ClampToEdge:    gl.CLAMP_TO_EDGE,
	gpu.MirroredRepeat: gl.MIRRORED_REPEAT,
	gpu.ClampToBorder:  gl.CLAMP_TO_BORDER,
}

var glPixelFormats = map[gpu.PixelFormats]uint32{
	gpu.Red:            gl.RED,
	gpu.RG:             gl.RG,
	gpu.RGB:            gl.RGB,
	gpu.BGR:            gl.BGR,
	gpu.RGBA:           gl.RGBA,
	gpu.BGRA:           gl.BGRA,
	gpu.DepthComponent: gl.DEPTH_COMPONENT,
}

var glInternalFormats = map[gpu.InternalFormats]int32{
	gpu.RGBA8:            gl.RGBA8,
	gpu.SRGB8Alpha8:      gl.SRGB8_ALPHA8,
	gpu.RGB8:             gl.RGB8,
	gpu.R8:               gl.R8,
	gpu.RG8:              gl.RG8,
	gpu.RGBA16F:          gl.RGBA16F,
	gpu.RGBA32F:          gl.RGBA32F,
	gpu.DepthComponent24: gl.DEPTH_COMPONENT24,
}

var glPixelStoreParams = map[gpu.PixelStoreParams]uint32{
	gpu.UnpackAlignment: gl.UNPACK_ALIGNMENT,
	gpu.PackAlignment:   gl.PACK_ALIGNMENT,
	gpu.UnpackRowLength: gl.UNPACK_ROW_LENGTH,
}

var glTopologies = map[gpu.Topologies]uint32{
	gpu.Points:        gl.POINTS,
	gpu.Lines:         gl.LINES,
	gpu.LineStrip:     gl.LINE_STRIP,
	gpu.LineLoop:      gl.LINE_LOOP,
	gpu.Triangles:     gl.TRIANGLES,
	gpu.TriangleStrip: gl.TRIANGLE_STRIP,
	gpu.TriangleFan:   gl.TRIANGLE_FAN,
}

var glShaders = map[gpu.ShaderTypes]uint32{
	gpu.VertexShader:   gl.VERTEX_SHADER,
	gpu.FragmentShader: gl.FRAGMENT_SHADER,
	gpu.GeometryShader: gl.GEOMETRY_SHADER,
	gpu.TessCtrlShader: gl.TESS_CONTROL_SHADER,
	gpu.TessEvalShader: gl.TESS_EVALUATION_SHADER,
}

var glErrors = map[uint32]gpu.ErrorCodes{
	gl.NO_ERROR:                      gpu.NoError,
	gl.INVALID_ENUM:                  gpu.InvalidEnum,
	gl.INVALID_VALUE:                 gpu.InvalidValue,
	gl.INVALID_OPERATION:             gpu.InvalidOperation,
	gl.STACK_OVERFLOW:                gpu.StackOverflow,
	gl.STACK_UNDERFLOW:               gpu.StackUnderflow,
	gl.OUT_OF_MEMORY:                 gpu.OutOfMemory,
	gl.INVALID_FRAMEBUFFER_OPERATION: gpu.InvalidFramebufferOperation,
}

// texParamValue translates the value of a texture parameter: filter
// and wrap parameters carry [gpu.TextureFilters] and
// [gpu.TextureWraps], others are passed through.
func texParamValue(param gpu.TexParams, value int32) int32 {
	switch param {
	case gpu.TexMinFilter, gpu.TexMagFilter:
		return glTextureFilters[gpu.TextureFilters(value)]
	case gpu.TexWrapS, gpu.TexWrapT, gpu.TexWrapR:
		return glTextureWraps[gpu.TextureWraps(value)]
	}
	return value
}
