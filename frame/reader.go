package frame

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/colstore/saw/compress"
	"github.com/colstore/saw/sawerr"
)

// Reader wraps a compressed byte source with fixed-width big-endian scalar
// reads and a length-prefixed modified-UTF-8 string read.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	dec     compress.Decoder
	scratch [8]byte
}

// NewReader wraps src, decompressing it with the given backend.
func NewReader(src io.Reader, backend compress.Backend) (*Reader, error) {
	dec, err := compress.NewDecoder(backend, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sawerr.ErrInvalidArgument, err)
	}

	return &Reader{dec: dec}, nil
}

// ReadUint8 reads a single unsigned byte.
func (r *Reader) ReadUint8() (uint8, error) {
	if err := r.readFull(r.scratch[:1]); err != nil {
		return 0, err
	}

	return r.scratch[0], nil
}

// ReadInt8 reads a single signed byte, used verbatim for BOOLEAN's
// tri-state sentinel.
func (r *Reader) ReadInt8() (int8, error) {
	v, err := r.ReadUint8()

	return int8(v), err
}

// ReadInt16 reads a big-endian 16-bit signed integer.
func (r *Reader) ReadInt16() (int16, error) {
	if err := r.readFull(r.scratch[:2]); err != nil {
		return 0, err
	}

	return int16(binary.BigEndian.Uint16(r.scratch[:2])), nil
}

// ReadInt32 reads a big-endian 32-bit signed integer.
func (r *Reader) ReadInt32() (int32, error) {
	if err := r.readFull(r.scratch[:4]); err != nil {
		return 0, err
	}

	return int32(binary.BigEndian.Uint32(r.scratch[:4])), nil
}

// ReadInt64 reads a big-endian 64-bit signed integer.
func (r *Reader) ReadInt64() (int64, error) {
	if err := r.readFull(r.scratch[:8]); err != nil {
		return 0, err
	}

	return int64(binary.BigEndian.Uint64(r.scratch[:8])), nil
}

// ReadFloat32 reads a big-endian IEEE-754 32-bit float.
func (r *Reader) ReadFloat32() (float32, error) {
	if err := r.readFull(r.scratch[:4]); err != nil {
		return 0, err
	}

	return math.Float32frombits(binary.BigEndian.Uint32(r.scratch[:4])), nil
}

// ReadFloat64 reads a big-endian IEEE-754 64-bit float.
func (r *Reader) ReadFloat64() (float64, error) {
	if err := r.readFull(r.scratch[:8]); err != nil {
		return 0, err
	}

	return math.Float64frombits(binary.BigEndian.Uint64(r.scratch[:8])), nil
}

// ReadUintN reads a key of the given byte width (1, 2, or 4), mirroring
// Writer.WriteUintN.
func (r *Reader) ReadUintN(width int) (uint32, error) {
	switch width {
	case 1:
		v, err := r.ReadUint8()

		return uint32(v), err
	case 2:
		v, err := r.ReadInt16()

		return uint32(uint16(v)), err
	case 4:
		v, err := r.ReadInt32()

		return uint32(v), err
	default:
		return 0, fmt.Errorf("%w: unsupported key width %d", sawerr.ErrInvalidArgument, width)
	}
}

// ReadString reads a 2-byte big-endian length prefix followed by that many
// modified-UTF-8 bytes, and decodes them into a string.
func (r *Reader) ReadString() (string, error) {
	if err := r.readFull(r.scratch[:2]); err != nil {
		return "", err
	}
	n := binary.BigEndian.Uint16(r.scratch[:2])
	if n == 0 {
		return "", nil
	}

	buf := make([]byte, n)
	if err := r.readFull(buf); err != nil {
		return "", err
	}

	s, err := decodeMUTF8(buf)
	if err != nil {
		return "", fmt.Errorf("%w: %v", sawerr.ErrCorrupt, err)
	}

	return s, nil
}

// readFull reads exactly len(buf) bytes, translating a short or absent
// read into ErrCorrupt: any column payload is declared to hold a specific
// number of elements (from metadata), so running out of bytes mid-element
// means the file is truncated or was never valid.
func (r *Reader) readFull(buf []byte) error {
	if _, err := io.ReadFull(r.dec, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: unexpected end of column stream: %v", sawerr.ErrCorrupt, err)
		}

		return fmt.Errorf("%w: %v", sawerr.ErrIOError, err)
	}

	return nil
}
