package compress

import (
	"fmt"
	"io"
)

// Backend identifies a compression algorithm usable under the frame codec.
type Backend uint8

const (
	// Snappy is the wire-mandated default backend: every reader must be
	// able to decode a Snappy-framed column file.
	Snappy Backend = iota + 1
	// Zstd trades speed for a better compression ratio; the writer
	// defaults to it for STRING and TEXT columns.
	Zstd
	// LZ4 favors decompression speed over ratio.
	LZ4
	// None disables compression, for data unlikely to benefit from it.
	None
)

// String returns the canonical wire spelling recorded in a column's
// metadata "compression" field.
func (b Backend) String() string {
	switch b {
	case Snappy:
		return "SNAPPY"
	case Zstd:
		return "ZSTD"
	case LZ4:
		return "LZ4"
	case None:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// ParseBackend maps a wire spelling back to a Backend.
func ParseBackend(name string) (Backend, error) {
	switch name {
	case "SNAPPY":
		return Snappy, nil
	case "ZSTD":
		return Zstd, nil
	case "LZ4":
		return LZ4, nil
	case "NONE":
		return None, nil
	default:
		return 0, fmt.Errorf("compress: unknown backend %q", name)
	}
}

// Encoder streams compressed bytes to an underlying writer.
type Encoder interface {
	io.Writer

	// Flush forces any buffered bytes out as a complete block without
	// closing the underlying stream. The frame codec calls this
	// periodically on large columns so no single block grows unboundedly.
	Flush() error

	// Close flushes any remaining buffered bytes and finalizes the
	// stream. It does not close the underlying writer.
	Close() error
}

// Decoder streams decompressed bytes from an underlying reader.
type Decoder interface {
	io.Reader
}

// NewEncoder returns the streaming compressor for the given backend,
// writing its compressed output to w.
func NewEncoder(backend Backend, w io.Writer) (Encoder, error) {
	switch backend {
	case Snappy:
		return newSnappyEncoder(w), nil
	case Zstd:
		return newZstdEncoder(w)
	case LZ4:
		return newLZ4Encoder(w), nil
	case None:
		return newNoopEncoder(w), nil
	default:
		return nil, fmt.Errorf("compress: unknown backend %d", backend)
	}
}

// NewDecoder returns the streaming decompressor for the given backend,
// reading compressed bytes from r.
func NewDecoder(backend Backend, r io.Reader) (Decoder, error) {
	switch backend {
	case Snappy:
		return newSnappyDecoder(r), nil
	case Zstd:
		return newZstdDecoder(r)
	case LZ4:
		return newLZ4Decoder(r), nil
	case None:
		return newNoopDecoder(r), nil
	default:
		return nil, fmt.Errorf("compress: unknown backend %d", backend)
	}
}
