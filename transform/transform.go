// Package transform implements cydec's element-kind engine: the
// composition of delta, zigzag, and varint encoding with a back-end
// compress.Codec for each supported integer width, plus the bypass path
// for raw bytes. It is grounded on the encoder/decoder composition in
// blob/numeric_encoder.go — encoding, then compression, then index
// bookkeeping — trimmed here to this format's single-array shape: no
// index, just one transform-then-compress pipeline per call.
//
// Each signed width (I8/I16/I32/I64) gets its own pipeline rather than a
// single generics-over-width implementation, because the zigzag shift
// amount is a compile-time property of the width; this mirrors how the
// pack hardcodes its own timestamp delta/zigzag pair to int64 instead of
// parameterizing it.
package transform

import (
	"fmt"

	"github.com/tsdbkit/cydec/compress"
	"github.com/tsdbkit/cydec/cyerr"
	"github.com/tsdbkit/cydec/delta"
	"github.com/tsdbkit/cydec/internal/pool"
	"github.com/tsdbkit/cydec/varint"
	"github.com/tsdbkit/cydec/zigzag"
)

// EncodeI8 runs the delta → zigzag → varint → codec pipeline over src.
func EncodeI8(src []int8, codec compress.Compressor) ([]byte, error) {
	deltas := make([]int8, len(src))
	delta.Encode(deltas, src)

	buf := pool.GetTransformBuffer()
	defer pool.PutTransformBuffer(buf)

	for _, d := range deltas {
		buf.B = varint.AppendUint64(buf.B, uint64(zigzag.Encode8(d)))
	}

	out, err := codec.Compress(buf.B)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cyerr.ErrBackendFailure, err)
	}

	return out, nil
}

// DecodeI8 inverts EncodeI8, reconstructing count elements.
func DecodeI8(data []byte, count int, codec compress.Decompressor) ([]int8, error) {
	raw, err := decompress(data, codec)
	if err != nil {
		return nil, err
	}

	deltas := make([]int8, count)
	rest := raw
	for i := 0; i < count; i++ {
		u, n, err := varint.ReadUint64(rest)
		if err != nil {
			return nil, err
		}
		if u > 0xFF {
			return nil, cyerr.ErrMalformed
		}
		deltas[i] = zigzag.Decode8(uint8(u))
		rest = rest[n:]
	}
	if len(rest) != 0 {
		return nil, cyerr.ErrMalformed
	}

	out := make([]int8, count)
	delta.Decode(out, deltas)

	return out, nil
}

// EncodeI16 runs the delta → zigzag → varint → codec pipeline over src.
func EncodeI16(src []int16, codec compress.Compressor) ([]byte, error) {
	deltas := make([]int16, len(src))
	delta.Encode(deltas, src)

	buf := pool.GetTransformBuffer()
	defer pool.PutTransformBuffer(buf)

	for _, d := range deltas {
		buf.B = varint.AppendUint64(buf.B, uint64(zigzag.Encode16(d)))
	}

	out, err := codec.Compress(buf.B)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cyerr.ErrBackendFailure, err)
	}

	return out, nil
}

// DecodeI16 inverts EncodeI16, reconstructing count elements.
func DecodeI16(data []byte, count int, codec compress.Decompressor) ([]int16, error) {
	raw, err := decompress(data, codec)
	if err != nil {
		return nil, err
	}

	deltas := make([]int16, count)
	rest := raw
	for i := 0; i < count; i++ {
		u, n, err := varint.ReadUint64(rest)
		if err != nil {
			return nil, err
		}
		if u > 0xFFFF {
			return nil, cyerr.ErrMalformed
		}
		deltas[i] = zigzag.Decode16(uint16(u))
		rest = rest[n:]
	}
	if len(rest) != 0 {
		return nil, cyerr.ErrMalformed
	}

	out := make([]int16, count)
	delta.Decode(out, deltas)

	return out, nil
}

// EncodeI32 runs the delta → zigzag → varint → codec pipeline over src.
func EncodeI32(src []int32, codec compress.Compressor) ([]byte, error) {
	deltas := make([]int32, len(src))
	delta.Encode(deltas, src)

	buf := pool.GetTransformBuffer()
	defer pool.PutTransformBuffer(buf)

	for _, d := range deltas {
		buf.B = varint.AppendUint64(buf.B, uint64(zigzag.Encode32(d)))
	}

	out, err := codec.Compress(buf.B)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cyerr.ErrBackendFailure, err)
	}

	return out, nil
}

// DecodeI32 inverts EncodeI32, reconstructing count elements.
func DecodeI32(data []byte, count int, codec compress.Decompressor) ([]int32, error) {
	raw, err := decompress(data, codec)
	if err != nil {
		return nil, err
	}

	deltas := make([]int32, count)
	rest := raw
	for i := 0; i < count; i++ {
		u, n, err := varint.ReadUint64(rest)
		if err != nil {
			return nil, err
		}
		if u > 0xFFFFFFFF {
			return nil, cyerr.ErrMalformed
		}
		deltas[i] = zigzag.Decode32(uint32(u))
		rest = rest[n:]
	}
	if len(rest) != 0 {
		return nil, cyerr.ErrMalformed
	}

	out := make([]int32, count)
	delta.Decode(out, deltas)

	return out, nil
}

// EncodeI64 runs the delta → zigzag → varint → codec pipeline over src.
func EncodeI64(src []int64, codec compress.Compressor) ([]byte, error) {
	deltas := make([]int64, len(src))
	delta.Encode(deltas, src)

	buf := pool.GetTransformBuffer()
	defer pool.PutTransformBuffer(buf)

	for _, d := range deltas {
		buf.B = varint.AppendUint64(buf.B, zigzag.Encode64(d))
	}

	out, err := codec.Compress(buf.B)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cyerr.ErrBackendFailure, err)
	}

	return out, nil
}

// DecodeI64 inverts EncodeI64, reconstructing count elements.
func DecodeI64(data []byte, count int, codec compress.Decompressor) ([]int64, error) {
	raw, err := decompress(data, codec)
	if err != nil {
		return nil, err
	}

	deltas := make([]int64, count)
	rest := raw
	for i := 0; i < count; i++ {
		u, n, err := varint.ReadUint64(rest)
		if err != nil {
			return nil, err
		}
		deltas[i] = zigzag.Decode64(u)
		rest = rest[n:]
	}
	if len(rest) != 0 {
		return nil, cyerr.ErrMalformed
	}

	out := make([]int64, count)
	delta.Decode(out, deltas)

	return out, nil
}

// EncodeU8 reinterprets src as signed 8-bit and runs the signed pipeline;
// the element kind tag lets the decoder reinterpret back.
func EncodeU8(src []uint8, codec compress.Compressor) ([]byte, error) {
	signed := make([]int8, len(src))
	for i, v := range src {
		signed[i] = int8(v)
	}

	return EncodeI8(signed, codec)
}

// DecodeU8 inverts EncodeU8.
func DecodeU8(data []byte, count int, codec compress.Decompressor) ([]uint8, error) {
	signed, err := DecodeI8(data, count, codec)
	if err != nil {
		return nil, err
	}

	out := make([]uint8, count)
	for i, v := range signed {
		out[i] = uint8(v)
	}

	return out, nil
}

// EncodeU16 reinterprets src as signed 16-bit and runs the signed pipeline.
func EncodeU16(src []uint16, codec compress.Compressor) ([]byte, error) {
	signed := make([]int16, len(src))
	for i, v := range src {
		signed[i] = int16(v)
	}

	return EncodeI16(signed, codec)
}

// DecodeU16 inverts EncodeU16.
func DecodeU16(data []byte, count int, codec compress.Decompressor) ([]uint16, error) {
	signed, err := DecodeI16(data, count, codec)
	if err != nil {
		return nil, err
	}

	out := make([]uint16, count)
	for i, v := range signed {
		out[i] = uint16(v)
	}

	return out, nil
}

// EncodeU32 reinterprets src as signed 32-bit and runs the signed pipeline.
func EncodeU32(src []uint32, codec compress.Compressor) ([]byte, error) {
	signed := make([]int32, len(src))
	for i, v := range src {
		signed[i] = int32(v)
	}

	return EncodeI32(signed, codec)
}

// DecodeU32 inverts EncodeU32.
func DecodeU32(data []byte, count int, codec compress.Decompressor) ([]uint32, error) {
	signed, err := DecodeI32(data, count, codec)
	if err != nil {
		return nil, err
	}

	out := make([]uint32, count)
	for i, v := range signed {
		out[i] = uint32(v)
	}

	return out, nil
}

// EncodeU64 reinterprets src as signed 64-bit and runs the signed pipeline.
func EncodeU64(src []uint64, codec compress.Compressor) ([]byte, error) {
	signed := make([]int64, len(src))
	for i, v := range src {
		signed[i] = int64(v)
	}

	return EncodeI64(signed, codec)
}

// DecodeU64 inverts EncodeU64.
func DecodeU64(data []byte, count int, codec compress.Decompressor) ([]uint64, error) {
	signed, err := DecodeI64(data, count, codec)
	if err != nil {
		return nil, err
	}

	out := make([]uint64, count)
	for i, v := range signed {
		out[i] = uint64(v)
	}

	return out, nil
}

// EncodeBytes submits src directly to codec, bypassing delta/zigzag/varint
// entirely; Bytes is the one element kind this pipeline does not transform.
func EncodeBytes(src []byte, codec compress.Compressor) ([]byte, error) {
	out, err := codec.Compress(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cyerr.ErrBackendFailure, err)
	}

	return out, nil
}

// DecodeBytes inverts EncodeBytes.
func DecodeBytes(data []byte, codec compress.Decompressor) ([]byte, error) {
	out, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cyerr.ErrBackendFailure, err)
	}

	return out, nil
}

func decompress(data []byte, codec compress.Decompressor) ([]byte, error) {
	out, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cyerr.ErrBackendFailure, err)
	}

	return out, nil
}
