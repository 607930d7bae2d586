package curve3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferValidate(t *testing.T) {
	data := make([]byte, 64)

	assert.NoError(t, NewBuffer(data, FormatFloat4, 4).Validate())
	assert.NoError(t, NewBuffer(data, FormatUint32, 16).Validate())

	assert.Error(t, Buffer{}.Validate(), "unbound buffer")
	assert.Error(t, NewBuffer(data, FormatFloat4, 5).Validate(), "view past end of data")
	assert.Error(t, Buffer{Data: data, Format: FormatFloat4, Stride: 8, Count: 2}.Validate(),
		"stride smaller than element")
	assert.Error(t, Buffer{Data: data, Format: FormatUint32, Offset: -4, Stride: 4, Count: 1}.Validate(),
		"negative offset")

	// a view ending exactly at the last byte is fine
	assert.NoError(t, Buffer{Data: data, Format: FormatUint32, Offset: 36, Stride: 12, Count: 3}.Validate())
	assert.Error(t, Buffer{Data: data, Format: FormatUint32, Offset: 40, Stride: 12, Count: 3}.Validate())
}

func TestBufferStridedReads(t *testing.T) {
	// interleave control points with 8 bytes of padding
	pts := []ControlPoint{CP(1, 2, 3, 4), CP(5, 6, 7, 8), CP(9, 10, 11, 12)}
	packed := packControlPoints(pts)
	data := make([]byte, 0, len(packed)+8*len(pts))
	for i := range pts {
		data = append(data, packed[16*i:16*(i+1)]...)
		data = append(data, make([]byte, 8)...)
	}

	b := Buffer{Data: data, Format: FormatFloat4, Stride: 24, Count: 3}
	require.NoError(t, b.Validate())
	for i, want := range pts {
		assert.Equal(t, want, b.controlPointAt(i))
	}
}

func TestFormatElemSize(t *testing.T) {
	assert.Equal(t, 1, FormatUint8.ElemSize())
	assert.Equal(t, 4, FormatUint32.ElemSize())
	assert.Equal(t, 4, FormatFloat.ElemSize())
	assert.Equal(t, 8, FormatFloat2.ElemSize())
	assert.Equal(t, 12, FormatFloat3.ElemSize())
	assert.Equal(t, 16, FormatFloat4.ElemSize())
	assert.Equal(t, 0, Format(99).ElemSize())
}
