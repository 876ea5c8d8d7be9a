package tablemeta

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/colstore/saw/coltype"
	"github.com/colstore/saw/compress"
	"github.com/colstore/saw/sawerr"
)

// FileName is the fixed filename of the metadata document inside a table
// directory.
const FileName = "Metadata.json"

// ColumnMeta is one column's metadata record, in table column order.
type ColumnMeta struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Compression string `json:"compression"`
	// KeyWidth and UniqueCount are only meaningful, and only populated,
	// for STRING columns.
	KeyWidth    int `json:"keyWidth,omitempty"`
	UniqueCount int `json:"uniqueCount,omitempty"`
}

// Tag parses the column's wire type spelling back to a coltype.Tag.
func (c ColumnMeta) Tag() (coltype.Tag, error) {
	return coltype.Parse(c.Type)
}

// Backend parses the column's wire compression spelling back to a
// compress.Backend.
func (c ColumnMeta) Backend() (compress.Backend, error) {
	return compress.ParseBackend(c.Compression)
}

// TableMeta is the full metadata document for one saved table.
type TableMeta struct {
	Name           string       `json:"name"`
	RowCount       int          `json:"rowCount"`
	ColumnMetadata []ColumnMeta `json:"columnMetadata"`
}

// Marshal renders m as indented JSON, UTF-8, no byte-order mark.
func (m TableMeta) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sawerr.ErrInternal, err)
	}
	return data, nil
}

// Unmarshal parses data into a TableMeta.
func Unmarshal(data []byte) (TableMeta, error) {
	var m TableMeta
	if err := json.Unmarshal(data, &m); err != nil {
		return TableMeta{}, fmt.Errorf("%w: %v", sawerr.ErrCorrupt, err)
	}
	return m, nil
}

// WriteFile marshals m and writes it to path.
func WriteFile(path string, m TableMeta) error {
	data, err := m.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", sawerr.ErrIOError, err)
	}
	return nil
}

// ReadFile reads and parses the metadata document at path.
func ReadFile(path string) (TableMeta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return TableMeta{}, fmt.Errorf("%w: %v", sawerr.ErrIOError, err)
		}
		return TableMeta{}, fmt.Errorf("%w: %v", sawerr.ErrIOError, err)
	}
	return Unmarshal(data)
}
