package frame

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/colstore/saw/compress"
	"github.com/colstore/saw/internal/pool"
	"github.com/colstore/saw/sawerr"
)

// FlushInterval is the number of written elements between cooperative
// compressor flushes. Not wire-visible; tunable.
const FlushInterval = 20000

// Writer wraps a compressed byte sink with fixed-width big-endian scalar
// writes and a length-prefixed modified-UTF-8 string write.
//
// A Writer is not safe for concurrent use; each column task owns its own
// Writer over its own file.
type Writer struct {
	ctx     context.Context
	enc     compress.Encoder
	scratch [8]byte
	strBuf  *pool.ByteBuffer
	written int
}

// NewWriter wraps dst with the given compression backend and returns a
// Writer ready for scalar writes. ctx is checked cooperatively at each
// flush point; pass context.Background() if cancellation is not needed.
func NewWriter(ctx context.Context, dst io.Writer, backend compress.Backend) (*Writer, error) {
	enc, err := compress.NewEncoder(backend, dst)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sawerr.ErrInvalidArgument, err)
	}

	return &Writer{ctx: ctx, enc: enc, strBuf: pool.GetBlobBuffer()}, nil
}

// WriteUint8 writes a single unsigned byte.
func (w *Writer) WriteUint8(v uint8) error {
	w.scratch[0] = v

	return w.writeAndTick(w.scratch[:1])
}

// WriteInt8 writes a single signed byte, used verbatim for BOOLEAN's
// tri-state sentinel.
func (w *Writer) WriteInt8(v int8) error {
	return w.WriteUint8(uint8(v))
}

// WriteInt16 writes a big-endian 16-bit signed integer.
func (w *Writer) WriteInt16(v int16) error {
	binary.BigEndian.PutUint16(w.scratch[:2], uint16(v))

	return w.writeAndTick(w.scratch[:2])
}

// WriteInt32 writes a big-endian 32-bit signed integer.
func (w *Writer) WriteInt32(v int32) error {
	binary.BigEndian.PutUint32(w.scratch[:4], uint32(v))

	return w.writeAndTick(w.scratch[:4])
}

// WriteInt64 writes a big-endian 64-bit signed integer.
func (w *Writer) WriteInt64(v int64) error {
	binary.BigEndian.PutUint64(w.scratch[:8], uint64(v))

	return w.writeAndTick(w.scratch[:8])
}

// WriteFloat32 writes a big-endian IEEE-754 32-bit float.
func (w *Writer) WriteFloat32(v float32) error {
	binary.BigEndian.PutUint32(w.scratch[:4], math.Float32bits(v))

	return w.writeAndTick(w.scratch[:4])
}

// WriteFloat64 writes a big-endian IEEE-754 64-bit float.
func (w *Writer) WriteFloat64(v float64) error {
	binary.BigEndian.PutUint64(w.scratch[:8], math.Float64bits(v))

	return w.writeAndTick(w.scratch[:8])
}

// WriteUintN writes v using the given byte width (1, 2, or 4), the layout
// used for STRING dictionary keys, whose width is chosen per-column.
func (w *Writer) WriteUintN(v uint32, width int) error {
	switch width {
	case 1:
		return w.WriteUint8(uint8(v))
	case 2:
		return w.WriteInt16(int16(v)) //nolint:gosec
	case 4:
		return w.WriteInt32(int32(v)) //nolint:gosec
	default:
		return fmt.Errorf("%w: unsupported key width %d", sawerr.ErrInvalidArgument, width)
	}
}

// WriteString writes a 2-byte big-endian length prefix followed by s
// encoded as modified-UTF-8. The encoding scratch space is reused across
// calls via a pooled buffer instead of allocating one slice per string.
func (w *Writer) WriteString(s string) error {
	w.strBuf.Reset()
	w.strBuf.B = appendMUTF8(w.strBuf.B, s)
	encoded := w.strBuf.Bytes()
	if len(encoded) > math.MaxUint16 {
		return fmt.Errorf("%w: string length %d exceeds uint16 prefix", sawerr.ErrInvalidArgument, len(encoded))
	}

	var lenBuf [2]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(len(encoded))) //nolint:gosec
	if _, err := w.enc.Write(lenBuf[:]); err != nil {
		return fmt.Errorf("%w: %v", sawerr.ErrIOError, err)
	}

	if len(encoded) > 0 {
		if _, err := w.enc.Write(encoded); err != nil {
			return fmt.Errorf("%w: %v", sawerr.ErrIOError, err)
		}
	}

	return w.tick()
}

// writeAndTick writes raw bytes then runs the periodic-flush bookkeeping.
func (w *Writer) writeAndTick(p []byte) error {
	if _, err := w.enc.Write(p); err != nil {
		return fmt.Errorf("%w: %v", sawerr.ErrIOError, err)
	}

	return w.tick()
}

// tick counts one written element and flushes the compressor every
// FlushInterval elements, checking for cooperative cancellation at the
// same cadence.
func (w *Writer) tick() error {
	w.written++
	if w.written%FlushInterval != 0 {
		return nil
	}

	if err := w.ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", sawerr.ErrInterrupted, err)
	}

	if err := w.enc.Flush(); err != nil {
		return fmt.Errorf("%w: %v", sawerr.ErrIOError, err)
	}

	return nil
}

// Close flushes any remaining buffered bytes and finalizes the compressed
// stream. It does not close the underlying io.Writer.
func (w *Writer) Close() error {
	pool.PutBlobBuffer(w.strBuf)
	w.strBuf = nil

	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("%w: %v", sawerr.ErrIOError, err)
	}

	return nil
}
