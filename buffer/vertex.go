package buffer

import "github.com/go-gl/mathgl/mgl32"

// Vertex is the packed per-vertex record every vertex buffer stores: position,
// color, normal and texture coordinates, 44 bytes with no padding.
type Vertex struct {
	Pos    mgl32.Vec3
	Color  mgl32.Vec3
	Normal mgl32.Vec3
	UV     mgl32.Vec2
}

// Byte layout of Vertex, used when binding attribute channels.
const (
	VertexStride = 44

	OffsetPos    = 0
	OffsetColor  = 12
	OffsetNormal = 24
	OffsetUV     = 36
)

// indexStride is the byte size of one index element (uint32).
const indexStride = 4
