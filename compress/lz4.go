package compress

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

type lz4Encoder struct {
	w *lz4.Writer
}

func newLZ4Encoder(w io.Writer) Encoder {
	return &lz4Encoder{w: lz4.NewWriter(w)}
}

func (e *lz4Encoder) Write(p []byte) (int, error) { return e.w.Write(p) }
func (e *lz4Encoder) Flush() error                { return e.w.Flush() }
func (e *lz4Encoder) Close() error                { return e.w.Close() }

func newLZ4Decoder(r io.Reader) Decoder {
	return lz4.NewReader(r)
}
