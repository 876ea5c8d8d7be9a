package compress

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBackendRoundTrip(t *testing.T) {
	backends := []Backend{Snappy, Zstd, LZ4, None}
	payload := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 500)

	for _, backend := range backends {
		t.Run(backend.String(), func(t *testing.T) {
			var buf bytes.Buffer
			enc, err := NewEncoder(backend, &buf)
			require.NoError(t, err)

			_, err = enc.Write(payload[:len(payload)/2])
			require.NoError(t, err)
			require.NoError(t, enc.Flush())
			_, err = enc.Write(payload[len(payload)/2:])
			require.NoError(t, err)
			require.NoError(t, enc.Close())

			dec, err := NewDecoder(backend, &buf)
			require.NoError(t, err)

			got, err := io.ReadAll(dec)
			require.NoError(t, err)
			require.Equal(t, payload, got)
		})
	}
}

func TestBackendStringAndParse(t *testing.T) {
	for _, b := range []Backend{Snappy, Zstd, LZ4, None} {
		parsed, err := ParseBackend(b.String())
		require.NoError(t, err)
		require.Equal(t, b, parsed)
	}

	_, err := ParseBackend("BOGUS")
	require.Error(t, err)
}

func TestEmptyPayload(t *testing.T) {
	for _, backend := range []Backend{Snappy, Zstd, LZ4, None} {
		var buf bytes.Buffer
		enc, err := NewEncoder(backend, &buf)
		require.NoError(t, err)
		require.NoError(t, enc.Close())

		dec, err := NewDecoder(backend, &buf)
		require.NoError(t, err)
		got, err := io.ReadAll(dec)
		require.NoError(t, err)
		require.Empty(t, got)
	}
}
