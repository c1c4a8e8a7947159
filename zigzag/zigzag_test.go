package zigzag

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode64_KnownValues(t *testing.T) {
	cases := []struct {
		in   int64
		want uint64
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Encode64(c.in))
		assert.Equal(t, c.in, Decode64(c.want))
	}
}

func TestEncode64_ExtremeRange(t *testing.T) {
	for _, v := range []int64{math.MinInt64, math.MaxInt64, 0, -1, 1} {
		assert.Equal(t, v, Decode64(Encode64(v)))
	}
}

func TestEncode32_ExtremeRange(t *testing.T) {
	for _, v := range []int32{math.MinInt32, math.MaxInt32, 0, -1, 1} {
		assert.Equal(t, v, Decode32(Encode32(v)))
	}
}

func TestEncode16_ExtremeRange(t *testing.T) {
	for _, v := range []int16{math.MinInt16, math.MaxInt16, 0, -1, 1} {
		assert.Equal(t, v, Decode16(Encode16(v)))
	}
}

func TestEncode8_ExtremeRange(t *testing.T) {
	for _, v := range []int8{math.MinInt8, math.MaxInt8, 0, -1, 1} {
		assert.Equal(t, v, Decode8(Encode8(v)))
	}
}

func TestEncode64_FullRangeSample(t *testing.T) {
	for v := int64(-1000); v <= 1000; v++ {
		assert.Equal(t, v, Decode64(Encode64(v)))
	}
}
