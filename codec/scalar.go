package codec

import (
	"fmt"

	"github.com/colstore/saw/coltype"
	"github.com/colstore/saw/frame"
	"github.com/colstore/saw/sawerr"
	"github.com/colstore/saw/table"
)

// EncodeColumn writes col's payload to w using the codec its tag
// dispatches to. STRING columns are handled here too (the column itself
// carries keyWidth/uniqueCount); only decoding a STRING column needs those
// values supplied separately, since the reader hasn't parsed the payload
// yet.
func EncodeColumn(w *frame.Writer, col table.Column) error {
	switch col.Type() {
	case coltype.Float:
		c, ok := col.(table.FloatColumn)
		if !ok {
			return fmt.Errorf("%w: column %q declares FLOAT but does not implement FloatColumn", sawerr.ErrInvalidArgument, col.Name())
		}
		for v := range c.Floats() {
			if err := w.WriteFloat32(v); err != nil {
				return err
			}
		}
		return nil
	case coltype.Double:
		c, ok := col.(table.DoubleColumn)
		if !ok {
			return fmt.Errorf("%w: column %q declares DOUBLE but does not implement DoubleColumn", sawerr.ErrInvalidArgument, col.Name())
		}
		for v := range c.Doubles() {
			if err := w.WriteFloat64(v); err != nil {
				return err
			}
		}
		return nil
	case coltype.Integer:
		c, ok := col.(table.IntColumn)
		if !ok {
			return fmt.Errorf("%w: column %q declares INTEGER but does not implement IntColumn", sawerr.ErrInvalidArgument, col.Name())
		}
		for v := range c.Ints() {
			if err := w.WriteInt32(v); err != nil {
				return err
			}
		}
		return nil
	case coltype.Short:
		c, ok := col.(table.ShortColumn)
		if !ok {
			return fmt.Errorf("%w: column %q declares SHORT but does not implement ShortColumn", sawerr.ErrInvalidArgument, col.Name())
		}
		for v := range c.Shorts() {
			if err := w.WriteInt16(v); err != nil {
				return err
			}
		}
		return nil
	case coltype.Long:
		c, ok := col.(table.LongColumn)
		if !ok {
			return fmt.Errorf("%w: column %q declares LONG but does not implement LongColumn", sawerr.ErrInvalidArgument, col.Name())
		}
		for v := range c.Longs() {
			if err := w.WriteInt64(v); err != nil {
				return err
			}
		}
		return nil
	case coltype.Boolean:
		c, ok := col.(table.BooleanColumn)
		if !ok {
			return fmt.Errorf("%w: column %q declares BOOLEAN but does not implement BooleanColumn", sawerr.ErrInvalidArgument, col.Name())
		}
		for v := range c.TriStates() {
			if err := w.WriteInt8(v); err != nil {
				return err
			}
		}
		return nil
	case coltype.LocalDate:
		c, ok := col.(table.LocalDateColumn)
		if !ok {
			return fmt.Errorf("%w: column %q declares LOCAL_DATE but does not implement LocalDateColumn", sawerr.ErrInvalidArgument, col.Name())
		}
		for v := range c.PackedDates() {
			if err := w.WriteInt32(v); err != nil {
				return err
			}
		}
		return nil
	case coltype.LocalTime:
		c, ok := col.(table.LocalTimeColumn)
		if !ok {
			return fmt.Errorf("%w: column %q declares LOCAL_TIME but does not implement LocalTimeColumn", sawerr.ErrInvalidArgument, col.Name())
		}
		for v := range c.PackedTimes() {
			if err := w.WriteInt32(v); err != nil {
				return err
			}
		}
		return nil
	case coltype.LocalDateTime:
		c, ok := col.(table.LocalDateTimeColumn)
		if !ok {
			return fmt.Errorf("%w: column %q declares LOCAL_DATE_TIME but does not implement LocalDateTimeColumn", sawerr.ErrInvalidArgument, col.Name())
		}
		for v := range c.PackedDateTimes() {
			if err := w.WriteInt64(v); err != nil {
				return err
			}
		}
		return nil
	case coltype.Instant:
		c, ok := col.(table.InstantColumn)
		if !ok {
			return fmt.Errorf("%w: column %q declares INSTANT but does not implement InstantColumn", sawerr.ErrInvalidArgument, col.Name())
		}
		for v := range c.Instants() {
			if err := w.WriteInt64(v); err != nil {
				return err
			}
		}
		return nil
	case coltype.Text:
		return EncodeText(w, col)
	case coltype.String:
		c, ok := col.(table.StringColumn)
		if !ok {
			return fmt.Errorf("%w: column %q declares STRING but does not implement StringColumn", sawerr.ErrInvalidArgument, col.Name())
		}
		return EncodeStringDict(w, c)
	default:
		return fmt.Errorf("%w: unknown column type tag %d for column %q", sawerr.ErrInvalidArgument, col.Type(), col.Name())
	}
}

// DecodeFixed reads rowCount elements of a fixed-width tag from r and
// builds the matching reference column. STRING is not handled here; use
// DecodeStringDict instead, since it needs keyWidth and uniqueCount from
// metadata.
func DecodeFixed(r *frame.Reader, tag coltype.Tag, name string, rowCount int) (table.Column, error) {
	switch tag {
	case coltype.Float:
		values := make([]float32, rowCount)
		for i := range values {
			v, err := r.ReadFloat32()
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return table.NewFloatColumn(name, values), nil
	case coltype.Double:
		values := make([]float64, rowCount)
		for i := range values {
			v, err := r.ReadFloat64()
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return table.NewDoubleColumn(name, values), nil
	case coltype.Integer:
		values := make([]int32, rowCount)
		for i := range values {
			v, err := r.ReadInt32()
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return table.NewIntColumn(name, values), nil
	case coltype.Short:
		values := make([]int16, rowCount)
		for i := range values {
			v, err := r.ReadInt16()
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return table.NewShortColumn(name, values), nil
	case coltype.Long:
		values := make([]int64, rowCount)
		for i := range values {
			v, err := r.ReadInt64()
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return table.NewLongColumn(name, values), nil
	case coltype.Boolean:
		values := make([]int8, rowCount)
		for i := range values {
			v, err := r.ReadInt8()
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return table.NewBooleanColumn(name, values), nil
	case coltype.LocalDate:
		values := make([]int32, rowCount)
		for i := range values {
			v, err := r.ReadInt32()
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return table.NewLocalDateColumn(name, values), nil
	case coltype.LocalTime:
		values := make([]int32, rowCount)
		for i := range values {
			v, err := r.ReadInt32()
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return table.NewLocalTimeColumn(name, values), nil
	case coltype.LocalDateTime:
		values := make([]int64, rowCount)
		for i := range values {
			v, err := r.ReadInt64()
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return table.NewLocalDateTimeColumn(name, values), nil
	case coltype.Instant:
		values := make([]int64, rowCount)
		for i := range values {
			v, err := r.ReadInt64()
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return table.NewInstantColumn(name, values), nil
	case coltype.Text:
		return DecodeText(r, name, rowCount)
	default:
		return nil, fmt.Errorf("%w: DecodeFixed does not handle tag %d", sawerr.ErrInvalidArgument, tag)
	}
}
