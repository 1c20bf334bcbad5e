// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

//go:generate core generate

// Handle is an opaque native identifier for a GPU-resident object
// (buffer, texture, shader, program). Zero means no object: it is
// the value before creation and after destruction, and it is never
// bound or used in a GPU operation.
type Handle uint32

// Valid returns true if the handle refers to an object.
func (h Handle) Valid() bool {
	return h != 0
}

// Location is a uniform or vertex input location in a linked program.
type Location int32

// NoLocation is returned by location queries for names that are
// not active in the program.
const NoLocation Location = -1

// Valid returns true if the location was found.
func (l Location) Valid() bool {
	return l >= 0
}

// BufferTargets are the binding targets a [Buffer] can be bound to.
type BufferTargets int32 //enums:enum

const (
	// ArrayBuffer holds vertex input data read through a [ShaderInput].
	ArrayBuffer BufferTargets = iota

	// ElementArrayBuffer holds vertex indexes for indexed draws.
	ElementArrayBuffer

	// UniformBuffer holds a uniform block.
	UniformBuffer

	// CopyReadBuffer is the source of buffer to buffer copies.
	CopyReadBuffer

	// CopyWriteBuffer is the destination of buffer to buffer copies.
	CopyWriteBuffer

	// PixelUnpackBuffer is the source of texture uploads.
	PixelUnpackBuffer
)

// BufferUsages are hints about how a [Buffer]'s storage will be used.
type BufferUsages int32 //enums:enum

const (
	// StaticDraw is set once and drawn many times.
	StaticDraw BufferUsages = iota

	// DynamicDraw is updated repeatedly and drawn many times.
	DynamicDraw

	// StreamDraw is set once and drawn at most a few times.
	StreamDraw

	// StaticRead is set once by the GPU and read many times.
	StaticRead

	// DynamicRead is updated repeatedly by the GPU and read many times.
	DynamicRead

	// StreamRead is set once by the GPU and read at most a few times.
	StreamRead

	// StaticCopy is set once by the GPU and used as a draw source.
	StaticCopy

	// DynamicCopy is updated repeatedly by the GPU and used as a draw source.
	DynamicCopy

	// StreamCopy is set once by the GPU and used as a draw source a few times.
	StreamCopy
)

// DataTypes are the component types of vertex, index and pixel data.
type DataTypes int32 //enums:enum

const (
	Byte DataTypes = iota
	UnsignedByte
	Short
	UnsignedShort
	Int
	UnsignedInt
	HalfFloat
	Float
	Double
)

// Bytes returns the size of one component of this type in bytes.
func (dt DataTypes) Bytes() int {
	switch dt {
	case Byte, UnsignedByte:
		return 1
	case Short, UnsignedShort, HalfFloat:
		return 2
	case Double:
		return 8
	}
	return 4
}

// TextureTargets are the dimensionality targets a [Texture] binds to.
// All of them accept 2D image uploads.
type TextureTargets int32 //enums:enum

const (
	// Texture2D is a standard two dimensional texture.
	Texture2D TextureTargets = iota

	// TextureRectangle is a 2D texture addressed in texels, without mipmaps.
	TextureRectangle

	// Texture1DArray is an array of 1D textures uploaded as rows.
	Texture1DArray
)

// TextureFilters are the minification and magnification filters.
type TextureFilters int32 //enums:enum

const (
	Nearest TextureFilters = iota
	Linear
	NearestMipmapNearest
	LinearMipmapNearest
	NearestMipmapLinear
	LinearMipmapLinear
)

// TextureWraps are the texture coordinate wrapping modes.
type TextureWraps int32 //enums:enum

const (
	Repeat TextureWraps = iota
	ClampToEdge
	MirroredRepeat
	ClampToBorder
)

// TexParams are integer texture parameters settable with
// [Texture.ConfigureIntParam]. Filter and wrap parameters take
// [TextureFilters] and [TextureWraps] values; level parameters
// take plain level numbers.
type TexParams int32 //enums:enum

const (
	TexMinFilter TexParams = iota
	TexMagFilter
	TexWrapS
	TexWrapT
	TexWrapR
	TexBaseLevel
	TexMaxLevel
)

// PixelFormats are the layouts of client pixel data.
type PixelFormats int32 //enums:enum

const (
	Red PixelFormats = iota
	RG
	RGB
	BGR
	RGBA
	BGRA
	DepthComponent
)

// InternalFormats are the storage formats of texture images on the GPU.
type InternalFormats int32 //enums:enum

const (
	// RGBA8 is 8 bits per component linear RGBA, the default.
	RGBA8 InternalFormats = iota

	// SRGB8Alpha8 is 8 bits per component sRGB color with linear alpha.
	SRGB8Alpha8

	RGB8
	R8
	RG8
	RGBA16F
	RGBA32F
	DepthComponent24
)

// PixelStoreParams are the pixel transfer parameters set by [PixelStore].
type PixelStoreParams int32 //enums:enum

const (
	// UnpackAlignment is the row alignment of pixel data sent to the GPU.
	UnpackAlignment PixelStoreParams = iota

	// PackAlignment is the row alignment of pixel data read back.
	PackAlignment

	// UnpackRowLength is the row length of pixel data sent to the GPU,
	// when it differs from the image width.
	UnpackRowLength
)

// Topologies are the primitive topologies used by draw calls.
type Topologies int32 //enums:enum

const (
	Points Topologies = iota
	Lines
	LineStrip
	LineLoop
	Triangles
	TriangleStrip
	TriangleFan
)

// ShaderTypes are the programmable pipeline stages.
type ShaderTypes int32 //enums:enum

const (
	VertexShader ShaderTypes = iota
	FragmentShader
	GeometryShader
	TessCtrlShader
	TessEvalShader
)

// Ownerships determine what happens to a [Shader] once a [Program]
// has been linked from it.
type Ownerships int32 //enums:enum

const (
	// Exclusive shaders belong to the first program linked from them
	// and are destroyed as soon as that link completes.
	Exclusive Ownerships = iota

	// Shared shaders survive linking and can be used for more programs.
	// The caller destroys them.
	Shared
)

// ErrorCodes are the codes returned by the native error query.
type ErrorCodes int32 //enums:enum

const (
	NoError ErrorCodes = iota
	InvalidEnum
	InvalidValue
	InvalidOperation
	StackOverflow
	StackUnderflow
	OutOfMemory
	InvalidFramebufferOperation

	// UnknownError is any code not otherwise listed.
	UnknownError
)

// ModelStates are the states of a [Model].
type ModelStates int32 //enums:enum

const (
	// ModelEmpty has no captures.
	ModelEmpty ModelStates = iota

	// ModelCaptured has at least one capture and is not mid-render.
	ModelCaptured

	// ModelEnabled has its captures enabled for a draw.
	ModelEnabled
)
