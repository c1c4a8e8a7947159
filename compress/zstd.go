package compress

// ZstdCompressor provides Zstandard compression for the transform output a
// frame's chunks carry, trading some throughput for the best compression
// ratio of the built-in back ends. A codec handle uses it only when
// format.CompressionZstd is selected; it then applies to every chunk and
// codec kind that handle writes.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
