// Package gfx defines the closed option sets the library accepts — primitive
// topology, texture wrap and filter modes, buffer usage hints, texture
// targets — and translates them to driver constants at the GL boundary. The
// rest of the library speaks these types, never raw GL enums.
package gfx

import "github.com/go-gl/gl/v4.1-core/gl"

// Primitive is the geometric interpretation of a vertex/index sequence
// during drawing.
type Primitive int

const (
	Points Primitive = iota
	Lines
	LineLoop
	LineStrip
	Triangles
	TriangleFan
	TriangleStrip
)

var primitives = map[Primitive]uint32{
	Points:        gl.POINTS,
	Lines:         gl.LINES,
	LineLoop:      gl.LINE_LOOP,
	LineStrip:     gl.LINE_STRIP,
	Triangles:     gl.TRIANGLES,
	TriangleFan:   gl.TRIANGLE_FAN,
	TriangleStrip: gl.TRIANGLE_STRIP,
}

// GL returns the driver constant for the primitive. Unknown values draw
// triangles.
func (p Primitive) GL() uint32 {
	if v, ok := primitives[p]; ok {
		return v
	}
	return gl.TRIANGLES
}

// WrapMode selects texture coordinate wrapping on one axis.
type WrapMode int

const (
	Repeat WrapMode = iota
	ClampToEdge
	ClampToBorder
	MirroredRepeat
)

var wrapModes = map[WrapMode]int32{
	Repeat:         gl.REPEAT,
	ClampToEdge:    gl.CLAMP_TO_EDGE,
	ClampToBorder:  gl.CLAMP_TO_BORDER,
	MirroredRepeat: gl.MIRRORED_REPEAT,
}

func (w WrapMode) GL() int32 {
	if v, ok := wrapModes[w]; ok {
		return v
	}
	return gl.REPEAT
}

// MinFilter selects texture minification filtering.
type MinFilter int

const (
	MinNearest MinFilter = iota
	MinLinear
	NearestMipmapNearest
	LinearMipmapNearest
	NearestMipmapLinear
	LinearMipmapLinear
)

var minFilters = map[MinFilter]int32{
	MinNearest:           gl.NEAREST,
	MinLinear:            gl.LINEAR,
	NearestMipmapNearest: gl.NEAREST_MIPMAP_NEAREST,
	LinearMipmapNearest:  gl.LINEAR_MIPMAP_NEAREST,
	NearestMipmapLinear:  gl.NEAREST_MIPMAP_LINEAR,
	LinearMipmapLinear:   gl.LINEAR_MIPMAP_LINEAR,
}

func (f MinFilter) GL() int32 {
	if v, ok := minFilters[f]; ok {
		return v
	}
	return gl.LINEAR
}

// Mipmapped reports whether the filter samples from mipmap levels, in which
// case the texture must generate them after upload.
func (f MinFilter) Mipmapped() bool {
	switch f {
	case NearestMipmapNearest, LinearMipmapNearest, NearestMipmapLinear, LinearMipmapLinear:
		return true
	}
	return false
}

// MagFilter selects texture magnification filtering.
type MagFilter int

const (
	MagNearest MagFilter = iota
	MagLinear
)

func (f MagFilter) GL() int32 {
	if f == MagNearest {
		return gl.NEAREST
	}
	return gl.LINEAR
}

// Usage is the buffer allocation hint: access frequency crossed with access
// nature, passed to the driver verbatim. UsageEmpty marks a buffer allocated
// without data.
type Usage int

const (
	UsageEmpty Usage = iota
	StaticDraw
	StaticCopy
	StaticRead
	DynamicDraw
	DynamicCopy
	DynamicRead
)

var usages = map[Usage]uint32{
	StaticDraw:  gl.STATIC_DRAW,
	StaticCopy:  gl.STATIC_COPY,
	StaticRead:  gl.STATIC_READ,
	DynamicDraw: gl.DYNAMIC_DRAW,
	DynamicCopy: gl.DYNAMIC_COPY,
	DynamicRead: gl.DYNAMIC_READ,
}

func (u Usage) GL() uint32 {
	if v, ok := usages[u]; ok {
		return v
	}
	return gl.STATIC_DRAW
}

// TextureTarget is the dimensionality/type tag of a texture resource.
type TextureTarget int

const (
	Texture2D TextureTarget = iota
	Texture1D
	Texture1DArray
	Texture2DArray
	Texture3D
	TextureCubemap
)

var textureTargets = map[TextureTarget]uint32{
	Texture1D:      gl.TEXTURE_1D,
	Texture1DArray: gl.TEXTURE_1D_ARRAY,
	Texture2D:      gl.TEXTURE_2D,
	Texture2DArray: gl.TEXTURE_2D_ARRAY,
	Texture3D:      gl.TEXTURE_3D,
	TextureCubemap: gl.TEXTURE_CUBE_MAP,
}

func (t TextureTarget) GL() uint32 {
	if v, ok := textureTargets[t]; ok {
		return v
	}
	return gl.TEXTURE_2D
}

// AttribType is the component type of one vertex attribute channel.
type AttribType int

const (
	Float AttribType = iota
	Int
	UnsignedByte
	UnsignedInt
)

var attribTypes = map[AttribType]uint32{
	Float:        gl.FLOAT,
	Int:          gl.INT,
	UnsignedByte: gl.UNSIGNED_BYTE,
	UnsignedInt:  gl.UNSIGNED_INT,
}

func (a AttribType) GL() uint32 {
	if v, ok := attribTypes[a]; ok {
		return v
	}
	return gl.FLOAT
}

// ClearMask selects which framebuffer planes a clear touches.
type ClearMask uint32

const (
	ClearColor ClearMask = 1 << iota
	ClearDepth
	ClearStencil
)

func (m ClearMask) GL() uint32 {
	var bits uint32
	if m&ClearColor != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if m&ClearDepth != 0 {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	if m&ClearStencil != 0 {
		bits |= gl.STENCIL_BUFFER_BIT
	}
	return bits
}
