//go:build cgo

package compress

import (
	"io"

	"github.com/valyala/gozstd"
)

// zstdEncoder wraps gozstd's cgo-backed streaming writer. Built only when
// cgo is available; the pure-Go zstd backend in zstd_pure.go is the
// portable default.
type zstdEncoder struct {
	w *gozstd.Writer
}

func newZstdEncoder(w io.Writer) (Encoder, error) {
	return &zstdEncoder{w: gozstd.NewWriterLevel(w, 3)}, nil
}

func (e *zstdEncoder) Write(p []byte) (int, error) { return e.w.Write(p) }
func (e *zstdEncoder) Flush() error                { return e.w.Flush() }
func (e *zstdEncoder) Close() error                { return e.w.Close() }

type zstdDecoder struct {
	r *gozstd.Reader
}

func newZstdDecoder(r io.Reader) (Decoder, error) {
	return &zstdDecoder{r: gozstd.NewReader(r)}, nil
}

func (d *zstdDecoder) Read(p []byte) (int, error) { return d.r.Read(p) }
