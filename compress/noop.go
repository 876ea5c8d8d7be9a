package compress

import "io"

// noopEncoder passes bytes through unchanged, for data unlikely to benefit
// from compression.
type noopEncoder struct {
	w io.Writer
}

func newNoopEncoder(w io.Writer) Encoder {
	return &noopEncoder{w: w}
}

func (e *noopEncoder) Write(p []byte) (int, error) { return e.w.Write(p) }
func (e *noopEncoder) Flush() error                { return nil }
func (e *noopEncoder) Close() error                { return nil }

func newNoopDecoder(r io.Reader) Decoder {
	return r
}
