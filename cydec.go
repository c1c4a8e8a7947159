// Package cydec provides the public façade for compressing and
// decompressing fixed-width numeric arrays: two handles, IntegerCodec and
// FloatingCodec, each exposing compress/decompress and their parallel
// chunked counterparts per supported element kind.
//
// Grounded on mebo.go's top-level convenience wrappers around
// blob.NewNumericEncoder/NewNumericDecoder, and on
// blob/numeric_encoder_config.go's functional-options composition for
// constructor configuration (compression back end, worker count, default
// float scale).
package cydec

import (
	"github.com/tsdbkit/cydec/compress"
	"github.com/tsdbkit/cydec/cyerr"
	"github.com/tsdbkit/cydec/format"
	"github.com/tsdbkit/cydec/frame"
	"github.com/tsdbkit/cydec/internal/options"
	"github.com/tsdbkit/cydec/parallel"
	"github.com/tsdbkit/cydec/quantize"
	"github.com/tsdbkit/cydec/transform"
)

// IntegerCodec compresses and decompresses arrays of the eight fixed-width
// integer element kinds. A codec handle is stateless and immutable after
// construction: it may be shared freely across concurrent callers.
type IntegerCodec struct {
	codec compress.Codec
	pool  *parallel.Pool
}

// IntegerCodecOption configures an IntegerCodec at construction time.
type IntegerCodecOption = options.Option[*IntegerCodec]

// WithIntegerCompression selects the back-end byte compressor used for
// every element kind this codec handles. The default is
// format.CompressionLZ4.
func WithIntegerCompression(t format.CompressionType) IntegerCodecOption {
	return options.New(func(c *IntegerCodec) error {
		codec, err := compress.CreateCodec(t, "integer codec")
		if err != nil {
			return err
		}
		c.codec = codec

		return nil
	})
}

// WithIntegerWorkers sets the number of persistent workers backing the
// codec's parallel chunk engine. The default is runtime.GOMAXPROCS(0).
func WithIntegerWorkers(n int) IntegerCodecOption {
	return options.NoError(func(c *IntegerCodec) {
		c.pool = parallel.New(n)
	})
}

// NewIntegerCodec constructs an IntegerCodec, applying opts in order.
func NewIntegerCodec(opts ...IntegerCodecOption) (*IntegerCodec, error) {
	c := &IntegerCodec{
		codec: compress.NewLZ4Compressor(),
		pool:  parallel.New(0),
	}

	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// FloatingCodec compresses and decompresses arrays of the F32/F64 element
// kinds via fixed-point quantisation. Like IntegerCodec, a handle is
// stateless and immutable after construction.
type FloatingCodec struct {
	codec    compress.Codec
	pool     *parallel.Pool
	scaleF64 int
	scaleF32 int
}

// FloatingCodecOption configures a FloatingCodec at construction time.
type FloatingCodecOption = options.Option[*FloatingCodec]

// WithFloatCompression selects the back-end byte compressor used for both
// float element kinds. The default is format.CompressionLZ4.
func WithFloatCompression(t format.CompressionType) FloatingCodecOption {
	return options.New(func(c *FloatingCodec) error {
		codec, err := compress.CreateCodec(t, "floating codec")
		if err != nil {
			return err
		}
		c.codec = codec

		return nil
	})
}

// WithFloatWorkers sets the number of persistent workers backing the
// codec's parallel chunk engine.
func WithFloatWorkers(n int) FloatingCodecOption {
	return options.NoError(func(c *FloatingCodec) {
		c.pool = parallel.New(n)
	})
}

// WithDefaultScaleF64 overrides the default power-of-ten scale factor
// (9) used by CompressF64 and ParCompressF64 when no per-call override is
// given.
func WithDefaultScaleF64(s int) FloatingCodecOption {
	return options.NoError(func(c *FloatingCodec) {
		c.scaleF64 = s
	})
}

// WithDefaultScaleF32 overrides the default power-of-ten scale factor
// (6) used by CompressF32 and ParCompressF32 when no per-call override is
// given.
func WithDefaultScaleF32(s int) FloatingCodecOption {
	return options.NoError(func(c *FloatingCodec) {
		c.scaleF32 = s
	})
}

// NewFloatingCodec constructs a FloatingCodec, applying opts in order.
func NewFloatingCodec(opts ...FloatingCodecOption) (*FloatingCodec, error) {
	c := &FloatingCodec{
		codec:    compress.NewLZ4Compressor(),
		pool:     parallel.New(0),
		scaleF64: quantize.DefaultScaleF64,
		scaleF32: quantize.DefaultScaleF32,
	}

	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// encodeSingle transforms src and wraps the result in a SingleBlock frame.
func encodeSingle[T any](codec compress.Compressor, kind format.ElementKind, src []T, encodeFn func([]T, compress.Compressor) ([]byte, error)) ([]byte, error) {
	payload, err := encodeFn(src, codec)
	if err != nil {
		return nil, err
	}

	return frame.EncodeSingleBlock(kind, uint64(len(src)), 0, payload), nil
}

// decodeSingle parses a frame of the expected kind and inverts its
// transform, dispatching on the frame's own codec kind: a SingleBlock
// frame decodes directly, a MultiChunk frame decodes chunk-by-chunk on the
// caller's goroutine. This is the same dispatch parDecode performs, run
// with a nil pool so a plain Decompress<Kind> call never spawns workers.
func decodeSingle[T any](codec compress.Decompressor, kind format.ElementKind, data []byte, decodeFn func([]byte, int, compress.Decompressor) ([]T, error)) ([]T, error) {
	return parDecode(nil, codec, kind, data, decodeFn)
}

// parEncode splits src into chunks of chunkSize elements, encodes each as
// a standalone SingleBlock frame in parallel, and assembles the outer
// MultiChunk frame. An empty src is encoded as a trivial zero-count
// SingleBlock frame, since chunking nothing has no meaningful chunk shape.
func parEncode[T any](p *parallel.Pool, codec compress.Compressor, kind format.ElementKind, src []T, chunkSize int, encodeFn func([]T, compress.Compressor) ([]byte, error)) ([]byte, error) {
	if chunkSize <= 0 {
		return nil, cyerr.ErrInvalidChunkSize
	}

	n := len(src)
	if n == 0 {
		return frame.EncodeSingleBlock(kind, 0, 0, nil), nil
	}

	chunkCount := (n + chunkSize - 1) / chunkSize
	chunkPayloads := make([][]byte, chunkCount)

	err := parallel.Map(p, chunkCount, func(i int) error {
		start := i * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}

		payload, err := encodeSingle(codec, kind, src[start:end], encodeFn)
		if err != nil {
			return err
		}
		chunkPayloads[i] = payload

		return nil
	})
	if err != nil {
		return nil, err
	}

	return frame.EncodeMultiChunk(kind, uint64(n), 0, uint64(chunkSize), chunkPayloads), nil
}

// parDecode auto-detects codec kind from the frame header: a SingleBlock
// frame decodes on the caller's goroutine, a MultiChunk frame fans out
// across the pool with each worker writing its own disjoint output range.
func parDecode[T any](p *parallel.Pool, codec compress.Decompressor, kind format.ElementKind, data []byte, decodeFn func([]byte, int, compress.Decompressor) ([]T, error)) ([]T, error) {
	h, payload, err := frame.Decode(data)
	if err != nil {
		return nil, err
	}
	if h.ElementKind != kind {
		return nil, cyerr.ErrKindMismatch
	}

	if h.CodecKind == format.CodecSingleBlock {
		return decodeFn(payload, int(h.ElementCount), codec)
	}

	ci, chunkBytes, err := frame.ParseChunkIndex(payload)
	if err != nil {
		return nil, err
	}

	out := make([]T, h.ElementCount)
	indexLen := uint64(ci.Len())

	err = parallel.Map(p, len(ci.Offsets), func(i int) error {
		start := ci.Offsets[i] - indexLen
		end := start + ci.Lengths[i]
		chunkFrame := chunkBytes[start:end]

		innerHeader, innerPayload, err := frame.Decode(chunkFrame)
		if err != nil {
			return err
		}
		if innerHeader.ElementKind != kind {
			return cyerr.ErrKindMismatch
		}

		vals, err := decodeFn(innerPayload, int(innerHeader.ElementCount), codec)
		if err != nil {
			return err
		}

		copy(out[uint64(i)*ci.ChunkSize:], vals)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// CompressI8 encodes src as a SingleBlock frame.
func (c *IntegerCodec) CompressI8(src []int8) ([]byte, error) {
	return encodeSingle(c.codec, format.KindI8, src, transform.EncodeI8)
}

// DecompressI8 inverts CompressI8.
func (c *IntegerCodec) DecompressI8(data []byte) ([]int8, error) {
	return decodeSingle(c.codec, format.KindI8, data, transform.DecodeI8)
}

// ParCompressI8 encodes src as a MultiChunk frame, chunking every chunkSize
// elements and encoding chunks across the codec's worker pool.
func (c *IntegerCodec) ParCompressI8(src []int8, chunkSize int) ([]byte, error) {
	return parEncode(c.pool, c.codec, format.KindI8, src, chunkSize, transform.EncodeI8)
}

// ParDecompressI8 inverts ParCompressI8, also accepting a SingleBlock frame.
func (c *IntegerCodec) ParDecompressI8(data []byte) ([]int8, error) {
	return parDecode(c.pool, c.codec, format.KindI8, data, transform.DecodeI8)
}

// CompressI16 encodes src as a SingleBlock frame.
func (c *IntegerCodec) CompressI16(src []int16) ([]byte, error) {
	return encodeSingle(c.codec, format.KindI16, src, transform.EncodeI16)
}

// DecompressI16 inverts CompressI16.
func (c *IntegerCodec) DecompressI16(data []byte) ([]int16, error) {
	return decodeSingle(c.codec, format.KindI16, data, transform.DecodeI16)
}

// ParCompressI16 encodes src as a MultiChunk frame.
func (c *IntegerCodec) ParCompressI16(src []int16, chunkSize int) ([]byte, error) {
	return parEncode(c.pool, c.codec, format.KindI16, src, chunkSize, transform.EncodeI16)
}

// ParDecompressI16 inverts ParCompressI16.
func (c *IntegerCodec) ParDecompressI16(data []byte) ([]int16, error) {
	return parDecode(c.pool, c.codec, format.KindI16, data, transform.DecodeI16)
}

// CompressI32 encodes src as a SingleBlock frame.
func (c *IntegerCodec) CompressI32(src []int32) ([]byte, error) {
	return encodeSingle(c.codec, format.KindI32, src, transform.EncodeI32)
}

// DecompressI32 inverts CompressI32.
func (c *IntegerCodec) DecompressI32(data []byte) ([]int32, error) {
	return decodeSingle(c.codec, format.KindI32, data, transform.DecodeI32)
}

// ParCompressI32 encodes src as a MultiChunk frame.
func (c *IntegerCodec) ParCompressI32(src []int32, chunkSize int) ([]byte, error) {
	return parEncode(c.pool, c.codec, format.KindI32, src, chunkSize, transform.EncodeI32)
}

// ParDecompressI32 inverts ParCompressI32.
func (c *IntegerCodec) ParDecompressI32(data []byte) ([]int32, error) {
	return parDecode(c.pool, c.codec, format.KindI32, data, transform.DecodeI32)
}

// CompressI64 encodes src as a SingleBlock frame.
func (c *IntegerCodec) CompressI64(src []int64) ([]byte, error) {
	return encodeSingle(c.codec, format.KindI64, src, transform.EncodeI64)
}

// DecompressI64 inverts CompressI64.
func (c *IntegerCodec) DecompressI64(data []byte) ([]int64, error) {
	return decodeSingle(c.codec, format.KindI64, data, transform.DecodeI64)
}

// ParCompressI64 encodes src as a MultiChunk frame.
func (c *IntegerCodec) ParCompressI64(src []int64, chunkSize int) ([]byte, error) {
	return parEncode(c.pool, c.codec, format.KindI64, src, chunkSize, transform.EncodeI64)
}

// ParDecompressI64 inverts ParCompressI64.
func (c *IntegerCodec) ParDecompressI64(data []byte) ([]int64, error) {
	return parDecode(c.pool, c.codec, format.KindI64, data, transform.DecodeI64)
}

// CompressU8 encodes src as a SingleBlock frame.
func (c *IntegerCodec) CompressU8(src []uint8) ([]byte, error) {
	return encodeSingle(c.codec, format.KindU8, src, transform.EncodeU8)
}

// DecompressU8 inverts CompressU8.
func (c *IntegerCodec) DecompressU8(data []byte) ([]uint8, error) {
	return decodeSingle(c.codec, format.KindU8, data, transform.DecodeU8)
}

// ParCompressU8 encodes src as a MultiChunk frame.
func (c *IntegerCodec) ParCompressU8(src []uint8, chunkSize int) ([]byte, error) {
	return parEncode(c.pool, c.codec, format.KindU8, src, chunkSize, transform.EncodeU8)
}

// ParDecompressU8 inverts ParCompressU8.
func (c *IntegerCodec) ParDecompressU8(data []byte) ([]uint8, error) {
	return parDecode(c.pool, c.codec, format.KindU8, data, transform.DecodeU8)
}

// CompressU16 encodes src as a SingleBlock frame.
func (c *IntegerCodec) CompressU16(src []uint16) ([]byte, error) {
	return encodeSingle(c.codec, format.KindU16, src, transform.EncodeU16)
}

// DecompressU16 inverts CompressU16.
func (c *IntegerCodec) DecompressU16(data []byte) ([]uint16, error) {
	return decodeSingle(c.codec, format.KindU16, data, transform.DecodeU16)
}

// ParCompressU16 encodes src as a MultiChunk frame.
func (c *IntegerCodec) ParCompressU16(src []uint16, chunkSize int) ([]byte, error) {
	return parEncode(c.pool, c.codec, format.KindU16, src, chunkSize, transform.EncodeU16)
}

// ParDecompressU16 inverts ParCompressU16.
func (c *IntegerCodec) ParDecompressU16(data []byte) ([]uint16, error) {
	return parDecode(c.pool, c.codec, format.KindU16, data, transform.DecodeU16)
}

// CompressU32 encodes src as a SingleBlock frame.
func (c *IntegerCodec) CompressU32(src []uint32) ([]byte, error) {
	return encodeSingle(c.codec, format.KindU32, src, transform.EncodeU32)
}

// DecompressU32 inverts CompressU32.
func (c *IntegerCodec) DecompressU32(data []byte) ([]uint32, error) {
	return decodeSingle(c.codec, format.KindU32, data, transform.DecodeU32)
}

// ParCompressU32 encodes src as a MultiChunk frame.
func (c *IntegerCodec) ParCompressU32(src []uint32, chunkSize int) ([]byte, error) {
	return parEncode(c.pool, c.codec, format.KindU32, src, chunkSize, transform.EncodeU32)
}

// ParDecompressU32 inverts ParCompressU32.
func (c *IntegerCodec) ParDecompressU32(data []byte) ([]uint32, error) {
	return parDecode(c.pool, c.codec, format.KindU32, data, transform.DecodeU32)
}

// CompressU64 encodes src as a SingleBlock frame.
func (c *IntegerCodec) CompressU64(src []uint64) ([]byte, error) {
	return encodeSingle(c.codec, format.KindU64, src, transform.EncodeU64)
}

// DecompressU64 inverts CompressU64.
func (c *IntegerCodec) DecompressU64(data []byte) ([]uint64, error) {
	return decodeSingle(c.codec, format.KindU64, data, transform.DecodeU64)
}

// ParCompressU64 encodes src as a MultiChunk frame.
func (c *IntegerCodec) ParCompressU64(src []uint64, chunkSize int) ([]byte, error) {
	return parEncode(c.pool, c.codec, format.KindU64, src, chunkSize, transform.EncodeU64)
}

// ParDecompressU64 inverts ParCompressU64.
func (c *IntegerCodec) ParDecompressU64(data []byte) ([]uint64, error) {
	return parDecode(c.pool, c.codec, format.KindU64, data, transform.DecodeU64)
}

// CompressBytes encodes src as a SingleBlock frame, bypassing the
// delta/zigzag/varint transform entirely since a byte array carries no
// numeric structure to exploit.
func (c *IntegerCodec) CompressBytes(src []byte) ([]byte, error) {
	payload, err := transform.EncodeBytes(src, c.codec)
	if err != nil {
		return nil, err
	}

	return frame.EncodeSingleBlock(format.KindBytes, uint64(len(src)), 0, payload), nil
}

// DecompressBytes inverts CompressBytes.
func (c *IntegerCodec) DecompressBytes(data []byte) ([]byte, error) {
	return parDecode(nil, c.codec, format.KindBytes, data, bytesDecodeFn)
}

// bytesDecodeFn adapts transform.DecodeBytes to the (data, count, codec)
// shape parDecode's decodeFn expects; count is unused since a byte array
// carries no varint-counted element structure.
func bytesDecodeFn(data []byte, _ int, codec compress.Decompressor) ([]byte, error) {
	return transform.DecodeBytes(data, codec)
}

// quantizeF64 and dequantizeF64 adapt quantize.EncodeF64/DecodeF64 to the
// []float64<->[]int64 slice shape transform.EncodeI64/DecodeI64 expects.
func quantizeF64(src []float64, scale int) ([]int64, error) {
	out := make([]int64, len(src))
	for i, v := range src {
		q, err := quantize.EncodeF64(v, scale)
		if err != nil {
			return nil, err
		}
		out[i] = q
	}

	return out, nil
}

func dequantizeF64(src []int64, scale int) []float64 {
	out := make([]float64, len(src))
	for i, q := range src {
		out[i] = quantize.DecodeF64(q, scale)
	}

	return out
}

func quantizeF32(src []float32, scale int) ([]int32, error) {
	out := make([]int32, len(src))
	for i, v := range src {
		q, err := quantize.EncodeF32(v, scale)
		if err != nil {
			return nil, err
		}
		out[i] = q
	}

	return out, nil
}

func dequantizeF32(src []int32, scale int) []float32 {
	out := make([]float32, len(src))
	for i, q := range src {
		out[i] = quantize.DecodeF32(q, scale)
	}

	return out
}

// CompressF64 quantises src to fixed-point integers at the codec's default
// scale (or the override scale, if given) and encodes the result as a
// SingleBlock frame.
func (c *FloatingCodec) CompressF64(src []float64, scale ...int) ([]byte, error) {
	s := c.scaleF64
	if len(scale) > 0 {
		s = scale[0]
	}

	q, err := quantizeF64(src, s)
	if err != nil {
		return nil, err
	}

	payload, err := transform.EncodeI64(q, c.codec)
	if err != nil {
		return nil, err
	}

	return frame.EncodeSingleBlock(format.KindF64, uint64(len(src)), int64(s), payload), nil
}

// DecompressF64 inverts CompressF64, reading the scale factor from the frame.
func (c *FloatingCodec) DecompressF64(data []byte) ([]float64, error) {
	q, scale, err := parDecodeFloat(nil, c.codec, format.KindF64, data, transform.DecodeI64)
	if err != nil {
		return nil, err
	}

	return dequantizeF64(q, int(scale)), nil
}

// ParCompressF64 quantises src and encodes it as a MultiChunk frame.
func (c *FloatingCodec) ParCompressF64(src []float64, chunkSize int, scale ...int) ([]byte, error) {
	s := c.scaleF64
	if len(scale) > 0 {
		s = scale[0]
	}

	q, err := quantizeF64(src, s)
	if err != nil {
		return nil, err
	}

	return parEncodeFloat(c.pool, c.codec, format.KindF64, q, chunkSize, int64(s), transform.EncodeI64)
}

// ParDecompressF64 inverts ParCompressF64, also accepting a SingleBlock frame.
func (c *FloatingCodec) ParDecompressF64(data []byte) ([]float64, error) {
	q, scale, err := parDecodeFloat(c.pool, c.codec, format.KindF64, data, transform.DecodeI64)
	if err != nil {
		return nil, err
	}

	return dequantizeF64(q, int(scale)), nil
}

// CompressF32 quantises src to fixed-point integers at the codec's default
// scale (or the override scale, if given) and encodes the result as a
// SingleBlock frame.
func (c *FloatingCodec) CompressF32(src []float32, scale ...int) ([]byte, error) {
	s := c.scaleF32
	if len(scale) > 0 {
		s = scale[0]
	}

	q, err := quantizeF32(src, s)
	if err != nil {
		return nil, err
	}

	payload, err := transform.EncodeI32(q, c.codec)
	if err != nil {
		return nil, err
	}

	return frame.EncodeSingleBlock(format.KindF32, uint64(len(src)), int64(s), payload), nil
}

// DecompressF32 inverts CompressF32, reading the scale factor from the frame.
func (c *FloatingCodec) DecompressF32(data []byte) ([]float32, error) {
	q, scale, err := parDecodeFloat(nil, c.codec, format.KindF32, data, transform.DecodeI32)
	if err != nil {
		return nil, err
	}

	return dequantizeF32(q, int(scale)), nil
}

// ParCompressF32 quantises src and encodes it as a MultiChunk frame.
func (c *FloatingCodec) ParCompressF32(src []float32, chunkSize int, scale ...int) ([]byte, error) {
	s := c.scaleF32
	if len(scale) > 0 {
		s = scale[0]
	}

	q, err := quantizeF32(src, s)
	if err != nil {
		return nil, err
	}

	return parEncodeFloat(c.pool, c.codec, format.KindF32, q, chunkSize, int64(s), transform.EncodeI32)
}

// ParDecompressF32 inverts ParCompressF32, also accepting a SingleBlock frame.
func (c *FloatingCodec) ParDecompressF32(data []byte) ([]float32, error) {
	q, scale, err := parDecodeFloat(c.pool, c.codec, format.KindF32, data, transform.DecodeI32)
	if err != nil {
		return nil, err
	}

	return dequantizeF32(q, int(scale)), nil
}

// parEncodeFloat is parEncode specialised for float kinds: it threads the
// scale factor through to the outer frame header since the chunk index
// itself carries no per-chunk scale (every chunk within one frame shares
// the frame's scale).
func parEncodeFloat[T any](p *parallel.Pool, codec compress.Compressor, kind format.ElementKind, quantized []T, chunkSize int, scale int64, encodeFn func([]T, compress.Compressor) ([]byte, error)) ([]byte, error) {
	if chunkSize <= 0 {
		return nil, cyerr.ErrInvalidChunkSize
	}

	n := len(quantized)
	if n == 0 {
		return frame.EncodeSingleBlock(kind, 0, scale, nil), nil
	}

	chunkCount := (n + chunkSize - 1) / chunkSize
	chunkPayloads := make([][]byte, chunkCount)

	err := parallel.Map(p, chunkCount, func(i int) error {
		start := i * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}

		payload, err := encodeFn(quantized[start:end], codec)
		if err != nil {
			return err
		}
		chunkPayloads[i] = frame.EncodeSingleBlock(kind, uint64(end-start), scale, payload)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return frame.EncodeMultiChunk(kind, uint64(n), scale, uint64(chunkSize), chunkPayloads), nil
}

// parDecodeFloat mirrors parDecode, additionally returning the frame's
// scale factor so the caller can dequantise.
func parDecodeFloat[T any](p *parallel.Pool, codec compress.Decompressor, kind format.ElementKind, data []byte, decodeFn func([]byte, int, compress.Decompressor) ([]T, error)) ([]T, int64, error) {
	h, payload, err := frame.Decode(data)
	if err != nil {
		return nil, 0, err
	}
	if h.ElementKind != kind {
		return nil, 0, cyerr.ErrKindMismatch
	}

	if h.CodecKind == format.CodecSingleBlock {
		vals, err := decodeFn(payload, int(h.ElementCount), codec)
		return vals, h.ScaleFactor, err
	}

	ci, chunkBytes, err := frame.ParseChunkIndex(payload)
	if err != nil {
		return nil, 0, err
	}

	out := make([]T, h.ElementCount)
	indexLen := uint64(ci.Len())

	err = parallel.Map(p, len(ci.Offsets), func(i int) error {
		start := ci.Offsets[i] - indexLen
		end := start + ci.Lengths[i]
		chunkFrame := chunkBytes[start:end]

		innerHeader, innerPayload, err := frame.Decode(chunkFrame)
		if err != nil {
			return err
		}
		if innerHeader.ElementKind != kind {
			return cyerr.ErrKindMismatch
		}

		vals, err := decodeFn(innerPayload, int(innerHeader.ElementCount), codec)
		if err != nil {
			return err
		}

		copy(out[uint64(i)*ci.ChunkSize:], vals)

		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return out, h.ScaleFactor, nil
}
