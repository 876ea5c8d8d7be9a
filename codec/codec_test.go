package codec

import (
	"bytes"
	"context"
	"testing"

	"github.com/colstore/saw/compress"
	"github.com/colstore/saw/coltype"
	"github.com/colstore/saw/frame"
	"github.com/colstore/saw/table"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, col table.Column, rowCount int) table.Column {
	t.Helper()

	var buf bytes.Buffer
	w, err := frame.NewWriter(context.Background(), &buf, compress.Snappy)
	require.NoError(t, err)
	require.NoError(t, EncodeColumn(w, col))
	require.NoError(t, w.Close())

	r, err := frame.NewReader(&buf, compress.Snappy)
	require.NoError(t, err)

	if sc, ok := col.(table.StringColumn); ok {
		got, err := DecodeStringDict(r, col.Name(), sc.KeyWidth(), sc.UniqueCount(), rowCount)
		require.NoError(t, err)
		return got
	}

	got, err := DecodeFixed(r, col.Type(), col.Name(), rowCount)
	require.NoError(t, err)
	return got
}

func TestFloatRoundTrip(t *testing.T) {
	col := table.NewFloatColumn("f", []float32{1.5, -2.25, 0})
	got := roundTrip(t, col, 3)
	var values []float32
	for v := range got.(table.FloatColumn).Floats() {
		values = append(values, v)
	}
	require.Equal(t, []float32{1.5, -2.25, 0}, values)
}

func TestLongAndBooleanRoundTrip(t *testing.T) {
	longCol := table.NewLongColumn("l", []int64{1, -2, 3000000000})
	got := roundTrip(t, longCol, 3)
	var longs []int64
	for v := range got.(table.LongColumn).Longs() {
		longs = append(longs, v)
	}
	require.Equal(t, []int64{1, -2, 3000000000}, longs)

	boolCol := table.NewBooleanColumn("b", []int8{1, 0, -1})
	got2 := roundTrip(t, boolCol, 3)
	var bools []int8
	for v := range got2.(table.BooleanColumn).TriStates() {
		bools = append(bools, v)
	}
	require.Equal(t, []int8{1, 0, -1}, bools)
}

func TestInstantAndDateTimeRoundTrip(t *testing.T) {
	col := table.NewInstantColumn("ts", []int64{0, 1690000000000, -1})
	got := roundTrip(t, col, 3)
	var values []int64
	for v := range got.(table.InstantColumn).Instants() {
		values = append(values, v)
	}
	require.Equal(t, []int64{0, 1690000000000, -1}, values)

	dtCol := table.NewLocalDateTimeColumn("dt", []int64{0, 20260731120000, -1})
	got2 := roundTrip(t, dtCol, 3)
	var dateTimes []int64
	for v := range got2.(table.LocalDateTimeColumn).PackedDateTimes() {
		dateTimes = append(dateTimes, v)
	}
	require.Equal(t, []int64{0, 20260731120000, -1}, dateTimes)
}

func TestTextRoundTrip(t *testing.T) {
	col := table.NewTextColumn("t", []string{"hello world", "", "unicode: \U0001F600"})
	got := roundTrip(t, col, 3)
	var values []string
	for v := range got.(table.TextColumn).Strings() {
		values = append(values, v)
	}
	require.Equal(t, []string{"hello world", "", "unicode: \U0001F600"}, values)
}

func TestStringDictRoundTrip(t *testing.T) {
	values := []string{"red", "green", "red", "blue", "green", "red"}
	col := table.NewStringColumn("color", values)
	got := roundTrip(t, col, len(values)).(table.StringColumn)

	require.Equal(t, col.KeyWidth(), got.KeyWidth())

	wantEntries := make(map[uint32]string)
	for k, v := range col.Entries() {
		wantEntries[k] = v
	}
	gotEntries := make(map[uint32]string)
	for k, v := range got.Entries() {
		gotEntries[k] = v
	}
	require.Equal(t, wantEntries, gotEntries)

	wantCounts := make(map[uint32]int32)
	for k, v := range col.Counts() {
		wantCounts[k] = v
	}
	gotCounts := make(map[uint32]int32)
	for k, v := range got.Counts() {
		gotCounts[k] = v
	}
	require.Equal(t, wantCounts, gotCounts)

	var wantKeys, gotKeys []uint32
	for k := range col.Keys() {
		wantKeys = append(wantKeys, k)
	}
	for k := range got.Keys() {
		gotKeys = append(gotKeys, k)
	}
	require.Equal(t, wantKeys, gotKeys)
}

func TestStringDictEmptyColumn(t *testing.T) {
	col := table.NewStringColumn("empty", nil)
	got := roundTrip(t, col, 0).(table.StringColumn)
	require.Equal(t, 0, got.Size())
}

func TestEncodeColumnRejectsTypeMismatch(t *testing.T) {
	var buf bytes.Buffer
	w, err := frame.NewWriter(context.Background(), &buf, compress.None)
	require.NoError(t, err)

	mismatched := mismatchedColumn{name: "bad", tag: coltype.Float}
	err = EncodeColumn(w, mismatched)
	require.Error(t, err)
}

type mismatchedColumn struct {
	name string
	tag  coltype.Tag
}

func (m mismatchedColumn) Name() string        { return m.name }
func (m mismatchedColumn) Type() coltype.Tag    { return m.tag }
func (m mismatchedColumn) Size() int            { return 0 }
