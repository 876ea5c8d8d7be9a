package compress

import (
	"io"

	"github.com/klauspost/compress/s2"
)

// snappyEncoder wraps an s2.Writer configured for Snappy wire compatibility.
// This is the wire-mandated backend: column files written this way decode
// with any standard Snappy-framed reader, not just this package's.
type snappyEncoder struct {
	w *s2.Writer
}

func newSnappyEncoder(w io.Writer) Encoder {
	return &snappyEncoder{w: s2.NewWriter(w, s2.WriterSnappyCompat())}
}

func (e *snappyEncoder) Write(p []byte) (int, error) { return e.w.Write(p) }
func (e *snappyEncoder) Flush() error                { return e.w.Flush() }
func (e *snappyEncoder) Close() error                { return e.w.Close() }

// newSnappyDecoder returns a decoder for a Snappy-framed stream. s2.Reader
// reads both S2 and plain Snappy streams, so this also serves as the
// decoder for columns written by any standard Snappy implementation.
func newSnappyDecoder(r io.Reader) Decoder {
	return s2.NewReader(r)
}
