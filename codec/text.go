package codec

import (
	"fmt"

	"github.com/colstore/saw/frame"
	"github.com/colstore/saw/sawerr"
	"github.com/colstore/saw/table"
)

// EncodeText writes col as rowCount consecutive length-prefixed strings,
// no dictionary.
func EncodeText(w *frame.Writer, col table.Column) error {
	c, ok := col.(table.TextColumn)
	if !ok {
		return fmt.Errorf("%w: column %q declares TEXT but does not implement TextColumn", sawerr.ErrInvalidArgument, col.Name())
	}
	for v := range c.Strings() {
		if err := w.WriteString(v); err != nil {
			return err
		}
	}
	return nil
}

// DecodeText reads rowCount length-prefixed strings and builds a Text
// column.
func DecodeText(r *frame.Reader, name string, rowCount int) (table.Column, error) {
	values := make([]string, rowCount)
	for i := range values {
		v, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return table.NewTextColumn(name, values), nil
}
