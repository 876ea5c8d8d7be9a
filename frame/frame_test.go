package frame

import (
	"bytes"
	"context"
	"testing"

	"github.com/colstore/saw/compress"
	"github.com/colstore/saw/sawerr"
	"github.com/stretchr/testify/require"
)

func TestWriterReaderScalarRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(context.Background(), &buf, compress.Snappy)
	require.NoError(t, err)

	require.NoError(t, w.WriteUint8(0xFE))
	require.NoError(t, w.WriteInt8(-7))
	require.NoError(t, w.WriteInt16(-1234))
	require.NoError(t, w.WriteInt32(-123456789))
	require.NoError(t, w.WriteInt64(-123456789012345))
	require.NoError(t, w.WriteFloat32(3.14159))
	require.NoError(t, w.WriteFloat64(2.718281828459045))
	require.NoError(t, w.Close())

	r, err := NewReader(&buf, compress.Snappy)
	require.NoError(t, err)

	u8, err := r.ReadUint8()
	require.NoError(t, err)
	require.Equal(t, uint8(0xFE), u8)

	i8, err := r.ReadInt8()
	require.NoError(t, err)
	require.Equal(t, int8(-7), i8)

	i16, err := r.ReadInt16()
	require.NoError(t, err)
	require.Equal(t, int16(-1234), i16)

	i32, err := r.ReadInt32()
	require.NoError(t, err)
	require.Equal(t, int32(-123456789), i32)

	i64, err := r.ReadInt64()
	require.NoError(t, err)
	require.Equal(t, int64(-123456789012345), i64)

	f32, err := r.ReadFloat32()
	require.NoError(t, err)
	require.InDelta(t, float32(3.14159), f32, 0.00001)

	f64, err := r.ReadFloat64()
	require.NoError(t, err)
	require.InDelta(t, 2.718281828459045, f64, 1e-12)
}

func TestWriterReaderStringRoundTrip(t *testing.T) {
	strs := []string{
		"",
		"hello",
		"unicode: héllo wörld",
		string(rune(0)),
		"nul\x00inside",
		"emoji: \U0001F600 rocket \U0001F680",
		"mixed\x00null and \U0001F4A9 poop",
	}

	var buf bytes.Buffer
	w, err := NewWriter(context.Background(), &buf, compress.Zstd)
	require.NoError(t, err)
	for _, s := range strs {
		require.NoError(t, w.WriteString(s))
	}
	require.NoError(t, w.Close())

	r, err := NewReader(&buf, compress.Zstd)
	require.NoError(t, err)
	for _, want := range strs {
		got, err := r.ReadString()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestWriterUintNRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(context.Background(), &buf, compress.None)
	require.NoError(t, err)

	require.NoError(t, w.WriteUintN(0xAB, 1))
	require.NoError(t, w.WriteUintN(0xABCD, 2))
	require.NoError(t, w.WriteUintN(0xABCDEF01, 4))
	require.NoError(t, w.Close())

	r, err := NewReader(&buf, compress.None)
	require.NoError(t, err)

	v1, err := r.ReadUintN(1)
	require.NoError(t, err)
	require.Equal(t, uint32(0xAB), v1)

	v2, err := r.ReadUintN(2)
	require.NoError(t, err)
	require.Equal(t, uint32(0xABCD), v2)

	v4, err := r.ReadUintN(4)
	require.NoError(t, err)
	require.Equal(t, uint32(0xABCDEF01), v4)
}

func TestReaderTruncatedStreamIsCorrupt(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(context.Background(), &buf, compress.Snappy)
	require.NoError(t, err)
	require.NoError(t, w.WriteInt32(42))
	require.NoError(t, w.Close())

	r, err := NewReader(&buf, compress.Snappy)
	require.NoError(t, err)

	_, err = r.ReadInt32()
	require.NoError(t, err)

	_, err = r.ReadInt32()
	require.ErrorIs(t, err, sawerr.ErrCorrupt)
}

func TestPeriodicFlushDoesNotTruncate(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(context.Background(), &buf, compress.Snappy)
	require.NoError(t, err)

	const n = FlushInterval*2 + 17
	for i := 0; i < n; i++ {
		require.NoError(t, w.WriteInt32(int32(i)))
	}
	require.NoError(t, w.Close())

	r, err := NewReader(&buf, compress.Snappy)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		v, err := r.ReadInt32()
		require.NoError(t, err)
		require.Equal(t, int32(i), v)
	}
}
