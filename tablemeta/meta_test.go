package tablemeta

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	m := TableMeta{
		Name:     "trades",
		RowCount: 3,
		ColumnMetadata: []ColumnMeta{
			{ID: "00_price", Type: "DOUBLE", Name: "price", Compression: "SNAPPY"},
			{ID: "01_symbol", Type: "STRING", Name: "symbol", Compression: "ZSTD", KeyWidth: 1, UniqueCount: 2},
		},
	}

	data, err := m.Marshal()
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, m, got)
}

func TestWriteReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	m := TableMeta{
		Name:     "t",
		RowCount: 0,
		ColumnMetadata: []ColumnMeta{
			{ID: "00_a", Type: "FLOAT", Name: "a", Compression: "SNAPPY"},
		},
	}

	require.NoError(t, WriteFile(path, m))
	got, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, m, got)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestUnmarshalCorrupt(t *testing.T) {
	_, err := Unmarshal([]byte("not json"))
	require.Error(t, err)
}

func TestColumnMetaTagAndBackend(t *testing.T) {
	cm := ColumnMeta{Type: "LONG", Compression: "LZ4"}
	tag, err := cm.Tag()
	require.NoError(t, err)
	require.Equal(t, "LONG", tag.String())

	backend, err := cm.Backend()
	require.NoError(t, err)
	require.Equal(t, "LZ4", backend.String())
}
