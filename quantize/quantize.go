// Package quantize implements the lossy fixed-point transform cydec uses
// to pack floating-point arrays through the same delta/zigzag/varint pipe
// as integers: each value is scaled by a power of ten, rounded to the
// nearest destination integer, and carried through that integer's width.
//
// This is new code: the teacher's own float path (Gorilla, bit-exact
// XOR-of-previous-bits) solves a different problem, lossless encoding,
// which this format's Non-goals rule out. What's kept from the teacher
// is the shape of a quantiser/dequantiser pair, not its algorithm.
package quantize

import (
	"math"

	"github.com/tsdbkit/cydec/cyerr"
)

// DefaultScaleF64 is the power-of-ten exponent used when the caller does
// not supply an override for 64-bit floats.
const DefaultScaleF64 = 9

// DefaultScaleF32 is the power-of-ten exponent used when the caller does
// not supply an override for 32-bit floats.
const DefaultScaleF32 = 6

// EncodeF64 quantises v at scale s into an int64, returning
// cyerr.ErrUnsupported for NaN/Inf inputs and cyerr.ErrOverflow when the
// scaled value does not fit in an int64.
func EncodeF64(v float64, s int) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, cyerr.ErrUnsupported
	}

	scaled := math.Round(v * math.Pow10(s))
	if scaled < math.MinInt64 || scaled > math.MaxInt64 {
		return 0, cyerr.ErrOverflow
	}

	return int64(scaled), nil
}

// DecodeF64 reverses EncodeF64: value = q / 10^s.
func DecodeF64(q int64, s int) float64 {
	return float64(q) / math.Pow10(s)
}

// EncodeF32 quantises v at scale s into an int32, returning
// cyerr.ErrUnsupported for NaN/Inf inputs and cyerr.ErrOverflow when the
// scaled value does not fit in an int32.
func EncodeF32(v float32, s int) (int32, error) {
	if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
		return 0, cyerr.ErrUnsupported
	}

	scaled := math.Round(float64(v) * math.Pow10(s))
	if scaled < math.MinInt32 || scaled > math.MaxInt32 {
		return 0, cyerr.ErrOverflow
	}

	return int32(scaled), nil
}

// DecodeF32 reverses EncodeF32: value = q / 10^s.
func DecodeF32(q int32, s int) float32 {
	return float32(float64(q) / math.Pow10(s))
}
