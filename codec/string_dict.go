package codec

import (
	"github.com/colstore/saw/frame"
	"github.com/colstore/saw/table"
)

// EncodeStringDict writes c's five-section dictionary payload: entries'
// keys, entries' values, counts' keys, counts' values, then the per-row
// key sequence. Entries and counts are each materialized once before
// writing, since map iteration order is not guaranteed stable across
// repeated range statements over the same map and the two projections
// must stay co-indexed within their own section.
func EncodeStringDict(w *frame.Writer, c table.StringColumn) error {
	keyWidth := c.KeyWidth()

	type entry struct {
		key uint32
		val string
	}
	entries := make([]entry, 0, c.UniqueCount())
	for k, v := range c.Entries() {
		entries = append(entries, entry{key: k, val: v})
	}

	for _, e := range entries {
		if err := w.WriteUintN(e.key, keyWidth); err != nil {
			return err
		}
	}
	for _, e := range entries {
		if err := w.WriteString(e.val); err != nil {
			return err
		}
	}

	type count struct {
		key uint32
		n   int32
	}
	counts := make([]count, 0, c.UniqueCount())
	for k, n := range c.Counts() {
		counts = append(counts, count{key: k, n: n})
	}

	for _, cnt := range counts {
		if err := w.WriteUintN(cnt.key, keyWidth); err != nil {
			return err
		}
	}
	for _, cnt := range counts {
		if err := w.WriteInt32(cnt.n); err != nil {
			return err
		}
	}

	for k := range c.Keys() {
		if err := w.WriteUintN(k, keyWidth); err != nil {
			return err
		}
	}

	return nil
}

// DecodeStringDict reads the five-section dictionary payload sized by
// keyWidth, uniqueCount, and rowCount (all supplied from metadata, since
// nothing in the payload itself declares its own boundaries) and builds a
// StringDict column.
func DecodeStringDict(r *frame.Reader, name string, keyWidth, uniqueCount, rowCount int) (table.Column, error) {
	entryKeys := make([]uint32, uniqueCount)
	for i := range entryKeys {
		k, err := r.ReadUintN(keyWidth)
		if err != nil {
			return nil, err
		}
		entryKeys[i] = k
	}

	entries := make(map[uint32]string, uniqueCount)
	for i := 0; i < uniqueCount; i++ {
		s, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		entries[entryKeys[i]] = s
	}

	countKeys := make([]uint32, uniqueCount)
	for i := range countKeys {
		k, err := r.ReadUintN(keyWidth)
		if err != nil {
			return nil, err
		}
		countKeys[i] = k
	}

	counts := make(map[uint32]int32, uniqueCount)
	for i := 0; i < uniqueCount; i++ {
		n, err := r.ReadInt32()
		if err != nil {
			return nil, err
		}
		counts[countKeys[i]] = n
	}

	keys := make([]uint32, rowCount)
	for i := range keys {
		k, err := r.ReadUintN(keyWidth)
		if err != nil {
			return nil, err
		}
		keys[i] = k
	}

	return table.NewStringColumnFromDictionary(name, keyWidth, entries, counts, keys), nil
}
