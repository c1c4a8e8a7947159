package cydec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsdbkit/cydec/cyerr"
	"github.com/tsdbkit/cydec/format"
)

func TestIntegerCodec_CompressDecompress_I64_FullRange(t *testing.T) {
	c, err := NewIntegerCodec()
	require.NoError(t, err)

	src := []int64{math.MinInt64, -1, 0, 1, math.MaxInt64, 42, -42}
	enc, err := c.CompressI64(src)
	require.NoError(t, err)

	got, err := c.DecompressI64(enc)
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestIntegerCodec_CompressDecompress_U64_FullRange(t *testing.T) {
	c, err := NewIntegerCodec()
	require.NoError(t, err)

	src := []uint64{0, 1, math.MaxUint64, 1000, 999}
	enc, err := c.CompressU64(src)
	require.NoError(t, err)

	got, err := c.DecompressU64(enc)
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestIntegerCodec_CompressDecompress_AllWidths(t *testing.T) {
	c, err := NewIntegerCodec(WithIntegerCompression(format.CompressionLZ4))
	require.NoError(t, err)

	i8 := []int8{math.MinInt8, 0, math.MaxInt8}
	encI8, err := c.CompressI8(i8)
	require.NoError(t, err)
	gotI8, err := c.DecompressI8(encI8)
	require.NoError(t, err)
	assert.Equal(t, i8, gotI8)

	i16 := []int16{math.MinInt16, 0, math.MaxInt16}
	encI16, err := c.CompressI16(i16)
	require.NoError(t, err)
	gotI16, err := c.DecompressI16(encI16)
	require.NoError(t, err)
	assert.Equal(t, i16, gotI16)

	u32 := []uint32{0, 1, math.MaxUint32}
	encU32, err := c.CompressU32(u32)
	require.NoError(t, err)
	gotU32, err := c.DecompressU32(encU32)
	require.NoError(t, err)
	assert.Equal(t, u32, gotU32)
}

func TestIntegerCodec_Compress_SlowlyVaryingSeries_CompressesWell(t *testing.T) {
	c, err := NewIntegerCodec(WithIntegerCompression(format.CompressionZstd))
	require.NoError(t, err)

	src := make([]int64, 2000)
	v := int64(1000)
	for i := range src {
		v += int64(i % 3)
		src[i] = v
	}

	enc, err := c.CompressI64(src)
	require.NoError(t, err)
	assert.Less(t, len(enc), len(src)*8/4)

	got, err := c.DecompressI64(enc)
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestIntegerCodec_ParCompressDecompress_Deterministic(t *testing.T) {
	c, err := NewIntegerCodec(WithIntegerWorkers(4))
	require.NoError(t, err)

	src := make([]int64, 977)
	for i := range src {
		src[i] = int64(i*7 - 3)
	}

	enc, err := c.ParCompressI64(src, 64)
	require.NoError(t, err)

	got, err := c.ParDecompressI64(enc)
	require.NoError(t, err)
	assert.Equal(t, src, got)

	// A second round-trip with a single worker must produce the same frame
	// bytes and the same logical result.
	c2, err := NewIntegerCodec(WithIntegerWorkers(1))
	require.NoError(t, err)

	enc2, err := c2.ParCompressI64(src, 64)
	require.NoError(t, err)
	assert.Equal(t, enc, enc2)
	got2, err := c2.ParDecompressI64(enc2)
	require.NoError(t, err)
	assert.Equal(t, src, got2)
}

func TestIntegerCodec_ParCompress_InvalidChunkSize(t *testing.T) {
	c, err := NewIntegerCodec()
	require.NoError(t, err)

	_, err = c.ParCompressI64([]int64{1, 2, 3}, 0)
	assert.ErrorIs(t, err, cyerr.ErrInvalidChunkSize)

	_, err = c.ParCompressI64([]int64{1, 2, 3}, -5)
	assert.ErrorIs(t, err, cyerr.ErrInvalidChunkSize)
}

func TestIntegerCodec_ParDecompress_AcceptsSingleBlockFrame(t *testing.T) {
	c, err := NewIntegerCodec()
	require.NoError(t, err)

	src := []int64{10, 20, 30}
	enc, err := c.CompressI64(src)
	require.NoError(t, err)

	got, err := c.ParDecompressI64(enc)
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestIntegerCodec_EmptyInput(t *testing.T) {
	c, err := NewIntegerCodec()
	require.NoError(t, err)

	enc, err := c.CompressI64(nil)
	require.NoError(t, err)
	got, err := c.DecompressI64(enc)
	require.NoError(t, err)
	assert.Empty(t, got)

	parEnc, err := c.ParCompressI64(nil, 10)
	require.NoError(t, err)
	parGot, err := c.ParDecompressI64(parEnc)
	require.NoError(t, err)
	assert.Empty(t, parGot)
}

func TestIntegerCodec_CompressBytes_RoundTrip(t *testing.T) {
	c, err := NewIntegerCodec(WithIntegerCompression(format.CompressionS2))
	require.NoError(t, err)

	src := []byte("arbitrary byte payload, not a numeric array")
	enc, err := c.CompressBytes(src)
	require.NoError(t, err)

	got, err := c.DecompressBytes(enc)
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestIntegerCodec_Decompress_KindMismatch(t *testing.T) {
	c, err := NewIntegerCodec()
	require.NoError(t, err)

	enc, err := c.CompressI32([]int32{1, 2, 3})
	require.NoError(t, err)

	_, err = c.DecompressI64(enc)
	assert.ErrorIs(t, err, cyerr.ErrKindMismatch)
}

func TestIntegerCodec_Decompress_CorruptedMagic(t *testing.T) {
	c, err := NewIntegerCodec()
	require.NoError(t, err)

	enc, err := c.CompressI64([]int64{1, 2, 3})
	require.NoError(t, err)
	enc[0] = 'X'

	_, err = c.DecompressI64(enc)
	assert.ErrorIs(t, err, cyerr.ErrBadMagic)
}

func TestFloatingCodec_CompressDecompress_F64_WithinTolerance(t *testing.T) {
	c, err := NewFloatingCodec()
	require.NoError(t, err)

	src := []float64{0, 1.5, -3.25, 100.000000001, -0.000123456}
	enc, err := c.CompressF64(src)
	require.NoError(t, err)

	got, err := c.DecompressF64(enc)
	require.NoError(t, err)
	require.Len(t, got, len(src))

	tol := 0.5 * math.Pow10(-9)
	for i := range src {
		assert.InDelta(t, src[i], got[i], tol)
	}
}

func TestFloatingCodec_CompressDecompress_F32_CustomScale(t *testing.T) {
	c, err := NewFloatingCodec(WithDefaultScaleF32(2))
	require.NoError(t, err)

	src := []float32{1.23, -4.56, 0, 99.99}
	enc, err := c.CompressF32(src)
	require.NoError(t, err)

	got, err := c.DecompressF32(enc)
	require.NoError(t, err)

	tol := float32(0.5 * math.Pow10(-2))
	for i := range src {
		assert.InDelta(t, src[i], got[i], float64(tol))
	}
}

func TestFloatingCodec_CompressF64_PerCallScaleOverride(t *testing.T) {
	c, err := NewFloatingCodec()
	require.NoError(t, err)

	src := []float64{1.23456789}
	enc, err := c.CompressF64(src, 3)
	require.NoError(t, err)

	got, err := c.DecompressF64(enc)
	require.NoError(t, err)
	assert.InDelta(t, 1.235, got[0], 0.5*math.Pow10(-3))
}

func TestFloatingCodec_CompressF64_RejectsNaNAndInf(t *testing.T) {
	c, err := NewFloatingCodec()
	require.NoError(t, err)

	_, err = c.CompressF64([]float64{math.NaN()})
	assert.ErrorIs(t, err, cyerr.ErrUnsupported)

	_, err = c.CompressF64([]float64{math.Inf(1)})
	assert.ErrorIs(t, err, cyerr.ErrUnsupported)
}

func TestFloatingCodec_ParCompressDecompress_F64(t *testing.T) {
	c, err := NewFloatingCodec(WithFloatWorkers(4))
	require.NoError(t, err)

	src := make([]float64, 530)
	for i := range src {
		src[i] = float64(i) * 0.01
	}

	enc, err := c.ParCompressF64(src, 50)
	require.NoError(t, err)

	got, err := c.ParDecompressF64(enc)
	require.NoError(t, err)
	require.Len(t, got, len(src))

	tol := 0.5 * math.Pow10(-9)
	for i := range src {
		assert.InDelta(t, src[i], got[i], tol)
	}
}

func TestFloatingCodec_ParCompress_InvalidChunkSize(t *testing.T) {
	c, err := NewFloatingCodec()
	require.NoError(t, err)

	_, err = c.ParCompressF64([]float64{1.0}, 0)
	assert.ErrorIs(t, err, cyerr.ErrInvalidChunkSize)
}

func TestFloatingCodec_EmptyInput(t *testing.T) {
	c, err := NewFloatingCodec()
	require.NoError(t, err)

	enc, err := c.CompressF64(nil)
	require.NoError(t, err)
	got, err := c.DecompressF64(enc)
	require.NoError(t, err)
	assert.Empty(t, got)
}
