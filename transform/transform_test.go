package transform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsdbkit/cydec/compress"
)

func TestEncodeDecodeI64_RoundTrip(t *testing.T) {
	codec := compress.NewNoOpCompressor()
	src := []int64{math.MinInt64, 0, math.MaxInt64, -5, 5, 5, 5}

	enc, err := EncodeI64(src, codec)
	require.NoError(t, err)

	got, err := DecodeI64(enc, len(src), codec)
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestEncodeDecodeI32_RoundTrip(t *testing.T) {
	codec := compress.NewLZ4Compressor()
	src := []int32{math.MinInt32, math.MaxInt32, 0, 1, -1, 42}

	enc, err := EncodeI32(src, codec)
	require.NoError(t, err)

	got, err := DecodeI32(enc, len(src), codec)
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestEncodeDecodeI16_RoundTrip(t *testing.T) {
	codec := compress.NewS2Compressor()
	src := []int16{math.MinInt16, math.MaxInt16, 0, 1, -1}

	enc, err := EncodeI16(src, codec)
	require.NoError(t, err)

	got, err := DecodeI16(enc, len(src), codec)
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestEncodeDecodeI8_RoundTrip(t *testing.T) {
	codec := compress.NewNoOpCompressor()
	src := []int8{math.MinInt8, math.MaxInt8, 0, 1, -1}

	enc, err := EncodeI8(src, codec)
	require.NoError(t, err)

	got, err := DecodeI8(enc, len(src), codec)
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestEncodeDecodeU64_RoundTrip(t *testing.T) {
	codec := compress.NewNoOpCompressor()
	src := []uint64{0, math.MaxUint64, 1, 1 << 63}

	enc, err := EncodeU64(src, codec)
	require.NoError(t, err)

	got, err := DecodeU64(enc, len(src), codec)
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestEncodeDecodeU32_RoundTrip(t *testing.T) {
	codec := compress.NewNoOpCompressor()
	src := []uint32{0, math.MaxUint32, 1 << 31}

	enc, err := EncodeU32(src, codec)
	require.NoError(t, err)

	got, err := DecodeU32(enc, len(src), codec)
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestEncodeDecodeU16_RoundTrip(t *testing.T) {
	codec := compress.NewNoOpCompressor()
	src := []uint16{0, math.MaxUint16, 1 << 15}

	enc, err := EncodeU16(src, codec)
	require.NoError(t, err)

	got, err := DecodeU16(enc, len(src), codec)
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestEncodeDecodeU8_RoundTrip(t *testing.T) {
	codec := compress.NewNoOpCompressor()
	src := []uint8{0, math.MaxUint8, 1 << 7}

	enc, err := EncodeU8(src, codec)
	require.NoError(t, err)

	got, err := DecodeU8(enc, len(src), codec)
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestEncodeDecodeBytes_RoundTrip(t *testing.T) {
	codec := compress.NewS2Compressor()
	src := []byte("arbitrary raw payload, not numeric at all")

	enc, err := EncodeBytes(src, codec)
	require.NoError(t, err)

	got, err := DecodeBytes(enc, codec)
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestEncodeDecodeI64_Empty(t *testing.T) {
	codec := compress.NewNoOpCompressor()

	enc, err := EncodeI64(nil, codec)
	require.NoError(t, err)

	got, err := DecodeI64(enc, 0, codec)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEncodeDecodeI64_SingleElement(t *testing.T) {
	codec := compress.NewNoOpCompressor()
	src := []int64{7}

	enc, err := EncodeI64(src, codec)
	require.NoError(t, err)

	got, err := DecodeI64(enc, 1, codec)
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestEncodeDecodeI64_SlowlyVaryingProducesSmallDeltas(t *testing.T) {
	codec := compress.NewNoOpCompressor()
	src := make([]int64, 1000)
	for i := range src {
		src[i] = int64(i)
	}

	enc, err := EncodeI64(src, codec)
	require.NoError(t, err)

	// Slowly-varying sequences should pack far smaller than the raw
	// 8-bytes-per-element representation.
	assert.Less(t, len(enc), len(src)*2)

	got, err := DecodeI64(enc, len(src), codec)
	require.NoError(t, err)
	assert.Equal(t, src, got)
}
