package table

import (
	"iter"

	"github.com/colstore/saw/coltype"
)

// Column is the capability set every column, of any tag, must expose. The
// codec package dispatches on Type() to decide which typed sub-interface
// below to assert the column against.
type Column interface {
	// Name returns the column's display name, used to build its
	// metadata record and a stable on-disk id.
	Name() string
	// Type returns the column's type tag.
	Type() coltype.Tag
	// Size returns the number of rows in the column.
	Size() int
}

// FloatColumn is a Column of 32-bit IEEE-754 floats.
type FloatColumn interface {
	Column
	Floats() iter.Seq[float32]
}

// DoubleColumn is a Column of 64-bit IEEE-754 floats.
type DoubleColumn interface {
	Column
	Doubles() iter.Seq[float64]
}

// IntColumn is a Column of 32-bit signed integers.
type IntColumn interface {
	Column
	Ints() iter.Seq[int32]
}

// ShortColumn is a Column of 16-bit signed integers.
type ShortColumn interface {
	Column
	Shorts() iter.Seq[int16]
}

// LongColumn is a Column of 64-bit signed integers.
type LongColumn interface {
	Column
	Longs() iter.Seq[int64]
}

// BooleanColumn is a Column of tri-state (true/false/missing) bytes. The
// codec writes and reads the sentinel byte verbatim; it never interprets
// its meaning.
type BooleanColumn interface {
	Column
	TriStates() iter.Seq[int8]
}

// LocalDateColumn is a Column of 32-bit packed calendar dates. The packing
// scheme is owned by the caller's column implementation; the codec treats
// each value as an opaque int32.
type LocalDateColumn interface {
	Column
	PackedDates() iter.Seq[int32]
}

// LocalTimeColumn is a Column of 32-bit packed wall-clock times.
type LocalTimeColumn interface {
	Column
	PackedTimes() iter.Seq[int32]
}

// LocalDateTimeColumn is a Column of 64-bit packed date-times.
type LocalDateTimeColumn interface {
	Column
	PackedDateTimes() iter.Seq[int64]
}

// InstantColumn is a Column of 64-bit epoch-based instants.
type InstantColumn interface {
	Column
	Instants() iter.Seq[int64]
}

// TextColumn is a Column of unbounded, per-row length-prefixed strings
// with no dictionary.
type TextColumn interface {
	Column
	Strings() iter.Seq[string]
}

// StringColumn is the dictionary-encoded STRING column capability set. Its
// three projections (entries, counts, per-row keys) are exactly the ones
// the string codec must preserve across a round trip.
type StringColumn interface {
	Column
	// KeyWidth is the dictionary key's byte width: 1, 2, or 4.
	KeyWidth() int
	// UniqueCount is the number of distinct dictionary entries.
	UniqueCount() int
	// Entries yields each unique key and its string value.
	Entries() iter.Seq2[uint32, string]
	// Counts yields each unique key and its occurrence count. Iterates
	// in a potentially different order than Entries.
	Counts() iter.Seq2[uint32, int32]
	// Keys yields the per-row key sequence, length == Size().
	Keys() iter.Seq[uint32]
}

// Table is the capability set the writer consumes from a caller-supplied
// table and the reader hands back.
type Table interface {
	Name() string
	Columns() []Column
	RowCount() int
	ColumnCount() int
}
