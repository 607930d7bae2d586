package curve3

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Format describes the element type of a [Buffer].
type Format uint8

const (
	FormatUint8 Format = iota
	FormatUint32
	FormatFloat
	FormatFloat2
	FormatFloat3
	// FormatFloat4 is the vertex format: x, y, z, radius as float32.
	FormatFloat4
)

// ElemSize returns the size in bytes of one element of this format.
func (f Format) ElemSize() int {
	switch f {
	case FormatUint8:
		return 1
	case FormatUint32:
		return 4
	case FormatFloat:
		return 4
	case FormatFloat2:
		return 8
	case FormatFloat3:
		return 12
	case FormatFloat4:
		return 16
	default:
		return 0
	}
}

func (f Format) String() string {
	switch f {
	case FormatUint8:
		return "uint8"
	case FormatUint32:
		return "uint32"
	case FormatFloat:
		return "float"
	case FormatFloat2:
		return "float2"
	case FormatFloat3:
		return "float3"
	case FormatFloat4:
		return "float4"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// Buffer is a view over externally owned bytes, described by an element
// format, a byte offset to the first element, a byte stride between
// elements, and an element count. Elements are little-endian.
//
// Buffers are how callers hand topology, vertex, flag, and attribute data
// to a [Geometry]; they are only read during [Geometry.Commit], which
// materializes densely packed native copies. A zero Buffer is an unbound
// slot.
type Buffer struct {
	Data   []byte
	Format Format
	Offset int
	Stride int
	Count  int
}

// NewBuffer returns a view over data with the format's natural stride and
// no offset.
func NewBuffer(data []byte, format Format, count int) Buffer {
	return Buffer{Data: data, Format: format, Stride: format.ElemSize(), Count: count}
}

// IsBound reports whether the buffer references any data.
func (b Buffer) IsBound() bool {
	return b.Data != nil && b.Count > 0
}

// Validate checks that the view lies within the underlying bytes and that
// the stride does not make elements overlap the next element's start.
func (b Buffer) Validate() error {
	if !b.IsBound() {
		return fmt.Errorf("curve3: buffer is not bound")
	}
	es := b.Format.ElemSize()
	if es == 0 {
		return fmt.Errorf("curve3: invalid buffer format %v", b.Format)
	}
	if b.Stride < es {
		return fmt.Errorf("curve3: buffer stride %d smaller than element size %d", b.Stride, es)
	}
	if b.Offset < 0 {
		return fmt.Errorf("curve3: negative buffer offset %d", b.Offset)
	}
	end := b.Offset + (b.Count-1)*b.Stride + es
	if end > len(b.Data) {
		return fmt.Errorf("curve3: buffer view [%d:%d] exceeds %d bytes of data", b.Offset, end, len(b.Data))
	}
	return nil
}

func (b Buffer) elem(i int) []byte {
	off := b.Offset + i*b.Stride
	return b.Data[off:]
}

func (b Buffer) uint32At(i int) uint32 {
	return binary.LittleEndian.Uint32(b.elem(i))
}

func (b Buffer) byteAt(i int) byte {
	return b.elem(i)[0]
}

func (b Buffer) float32At(i int, component int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b.elem(i)[4*component:]))
}

func (b Buffer) controlPointAt(i int) ControlPoint {
	return ControlPoint{
		Position: Vec3{
			X: b.float32At(i, 0),
			Y: b.float32At(i, 1),
			Z: b.float32At(i, 2),
		},
		Radius: b.float32At(i, 3),
	}
}
