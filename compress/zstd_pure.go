//go:build !cgo

package compress

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

type zstdEncoder struct {
	enc *zstd.Encoder
}

func newZstdEncoder(w io.Writer) (Encoder, error) {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, err
	}

	return &zstdEncoder{enc: enc}, nil
}

func (e *zstdEncoder) Write(p []byte) (int, error) { return e.enc.Write(p) }
func (e *zstdEncoder) Flush() error                { return e.enc.Flush() }
func (e *zstdEncoder) Close() error                { return e.enc.Close() }

type zstdDecoder struct {
	dec *zstd.Decoder
}

func newZstdDecoder(r io.Reader) (Decoder, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}

	return &zstdDecoder{dec: dec}, nil
}

func (d *zstdDecoder) Read(p []byte) (int, error) { return d.dec.Read(p) }
