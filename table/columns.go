package table

import (
	"iter"
	"maps"
	"slices"

	"github.com/colstore/saw/coltype"
)

// Float is a reference FloatColumn backed by a slice.
type Float struct {
	name   string
	values []float32
}

// NewFloatColumn builds a Float column from values.
func NewFloatColumn(name string, values []float32) *Float {
	return &Float{name: name, values: values}
}

func (c *Float) Name() string             { return c.name }
func (c *Float) Type() coltype.Tag        { return coltype.Float }
func (c *Float) Size() int                { return len(c.values) }
func (c *Float) Floats() iter.Seq[float32] { return slices.Values(c.values) }

// Double is a reference DoubleColumn backed by a slice.
type Double struct {
	name   string
	values []float64
}

// NewDoubleColumn builds a Double column from values.
func NewDoubleColumn(name string, values []float64) *Double {
	return &Double{name: name, values: values}
}

func (c *Double) Name() string              { return c.name }
func (c *Double) Type() coltype.Tag         { return coltype.Double }
func (c *Double) Size() int                 { return len(c.values) }
func (c *Double) Doubles() iter.Seq[float64] { return slices.Values(c.values) }

// Int is a reference IntColumn backed by a slice.
type Int struct {
	name   string
	values []int32
}

// NewIntColumn builds an Int column from values.
func NewIntColumn(name string, values []int32) *Int {
	return &Int{name: name, values: values}
}

func (c *Int) Name() string           { return c.name }
func (c *Int) Type() coltype.Tag      { return coltype.Integer }
func (c *Int) Size() int              { return len(c.values) }
func (c *Int) Ints() iter.Seq[int32]  { return slices.Values(c.values) }

// Short is a reference ShortColumn backed by a slice.
type Short struct {
	name   string
	values []int16
}

// NewShortColumn builds a Short column from values.
func NewShortColumn(name string, values []int16) *Short {
	return &Short{name: name, values: values}
}

func (c *Short) Name() string          { return c.name }
func (c *Short) Type() coltype.Tag     { return coltype.Short }
func (c *Short) Size() int             { return len(c.values) }
func (c *Short) Shorts() iter.Seq[int16] { return slices.Values(c.values) }

// Long is a reference LongColumn backed by a slice.
type Long struct {
	name   string
	values []int64
}

// NewLongColumn builds a Long column from values.
func NewLongColumn(name string, values []int64) *Long {
	return &Long{name: name, values: values}
}

func (c *Long) Name() string          { return c.name }
func (c *Long) Type() coltype.Tag     { return coltype.Long }
func (c *Long) Size() int             { return len(c.values) }
func (c *Long) Longs() iter.Seq[int64] { return slices.Values(c.values) }

// Boolean is a reference BooleanColumn backed by a slice of tri-state
// signed bytes. The engine never interprets these bytes; it round-trips
// them verbatim.
type Boolean struct {
	name   string
	values []int8
}

// NewBooleanColumn builds a Boolean column from tri-state bytes.
func NewBooleanColumn(name string, values []int8) *Boolean {
	return &Boolean{name: name, values: values}
}

func (c *Boolean) Name() string            { return c.name }
func (c *Boolean) Type() coltype.Tag       { return coltype.Boolean }
func (c *Boolean) Size() int               { return len(c.values) }
func (c *Boolean) TriStates() iter.Seq[int8] { return slices.Values(c.values) }

// LocalDate is a reference LocalDateColumn backed by a slice of opaque
// packed 32-bit dates.
type LocalDate struct {
	name   string
	values []int32
}

// NewLocalDateColumn builds a LocalDate column from packed values.
func NewLocalDateColumn(name string, values []int32) *LocalDate {
	return &LocalDate{name: name, values: values}
}

func (c *LocalDate) Name() string               { return c.name }
func (c *LocalDate) Type() coltype.Tag          { return coltype.LocalDate }
func (c *LocalDate) Size() int                  { return len(c.values) }
func (c *LocalDate) PackedDates() iter.Seq[int32] { return slices.Values(c.values) }

// LocalTime is a reference LocalTimeColumn backed by a slice of opaque
// packed 32-bit wall-clock times.
type LocalTime struct {
	name   string
	values []int32
}

// NewLocalTimeColumn builds a LocalTime column from packed values.
func NewLocalTimeColumn(name string, values []int32) *LocalTime {
	return &LocalTime{name: name, values: values}
}

func (c *LocalTime) Name() string               { return c.name }
func (c *LocalTime) Type() coltype.Tag          { return coltype.LocalTime }
func (c *LocalTime) Size() int                  { return len(c.values) }
func (c *LocalTime) PackedTimes() iter.Seq[int32] { return slices.Values(c.values) }

// LocalDateTime is a reference LocalDateTimeColumn backed by a slice of
// opaque packed 64-bit date-times.
type LocalDateTime struct {
	name   string
	values []int64
}

// NewLocalDateTimeColumn builds a LocalDateTime column from packed values.
func NewLocalDateTimeColumn(name string, values []int64) *LocalDateTime {
	return &LocalDateTime{name: name, values: values}
}

func (c *LocalDateTime) Name() string                   { return c.name }
func (c *LocalDateTime) Type() coltype.Tag              { return coltype.LocalDateTime }
func (c *LocalDateTime) Size() int                      { return len(c.values) }
func (c *LocalDateTime) PackedDateTimes() iter.Seq[int64] { return slices.Values(c.values) }

// Instant is a reference InstantColumn backed by a slice of epoch-based
// 64-bit instants.
type Instant struct {
	name   string
	values []int64
}

// NewInstantColumn builds an Instant column from values.
func NewInstantColumn(name string, values []int64) *Instant {
	return &Instant{name: name, values: values}
}

func (c *Instant) Name() string             { return c.name }
func (c *Instant) Type() coltype.Tag        { return coltype.Instant }
func (c *Instant) Size() int                { return len(c.values) }
func (c *Instant) Instants() iter.Seq[int64] { return slices.Values(c.values) }

// Text is a reference TextColumn: unbounded free-text strings with no
// dictionary.
type Text struct {
	name   string
	values []string
}

// NewTextColumn builds a Text column from values.
func NewTextColumn(name string, values []string) *Text {
	return &Text{name: name, values: values}
}

func (c *Text) Name() string             { return c.name }
func (c *Text) Type() coltype.Tag        { return coltype.Text }
func (c *Text) Size() int                { return len(c.values) }
func (c *Text) Strings() iter.Seq[string] { return slices.Values(c.values) }

// StringDict is a reference StringColumn: a dictionary-encoded string
// column with an explicit key width.
type StringDict struct {
	name     string
	keyWidth int
	entries  map[uint32]string
	counts   map[uint32]int32
	keys     []uint32
}

// NewStringColumn builds a StringDict from raw row values, deriving the
// dictionary (entries, counts) and choosing the smallest key width that
// can address every unique value: 1 byte up to 255 values, 2 bytes up to
// 65535, 4 bytes beyond that.
func NewStringColumn(name string, values []string) *StringDict {
	valueToKey := make(map[string]uint32, len(values))
	entries := make(map[uint32]string)
	counts := make(map[uint32]int32)
	keys := make([]uint32, len(values))

	var next uint32
	for i, v := range values {
		key, ok := valueToKey[v]
		if !ok {
			key = next
			next++
			valueToKey[v] = key
			entries[key] = v
		}
		counts[key]++
		keys[i] = key
	}

	return &StringDict{
		name:     name,
		keyWidth: keyWidthFor(len(entries)),
		entries:  entries,
		counts:   counts,
		keys:     keys,
	}
}

// NewStringColumnFromDictionary builds a StringDict directly from an
// already-computed dictionary, preserving keyWidth, entries, counts, and
// the per-row key sequence exactly as given. This is what the reader uses
// to reconstruct a STRING column without re-deriving its dictionary.
func NewStringColumnFromDictionary(
	name string,
	keyWidth int,
	entries map[uint32]string,
	counts map[uint32]int32,
	keys []uint32,
) *StringDict {
	return &StringDict{
		name:     name,
		keyWidth: keyWidth,
		entries:  entries,
		counts:   counts,
		keys:     keys,
	}
}

func keyWidthFor(uniqueCount int) int {
	switch {
	case uniqueCount <= 0xFF:
		return 1
	case uniqueCount <= 0xFFFF:
		return 2
	default:
		return 4
	}
}

func (c *StringDict) Name() string        { return c.name }
func (c *StringDict) Type() coltype.Tag   { return coltype.String }
func (c *StringDict) Size() int           { return len(c.keys) }
func (c *StringDict) KeyWidth() int       { return c.keyWidth }
func (c *StringDict) UniqueCount() int    { return len(c.entries) }

func (c *StringDict) Entries() iter.Seq2[uint32, string] { return maps.All(c.entries) }
func (c *StringDict) Counts() iter.Seq2[uint32, int32]   { return maps.All(c.counts) }
func (c *StringDict) Keys() iter.Seq[uint32]             { return slices.Values(c.keys) }
