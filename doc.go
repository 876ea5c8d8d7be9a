// Package saw persists and restores tabular datasets using a compact,
// compressed, column-oriented on-disk format.
//
// A table is a directory: one JSON metadata document plus one file per
// column, each independently compressed and independently readable.
// Columns are written and read in parallel across a bounded worker pool,
// since nothing about one column's codec depends on another's.
//
// # Basic usage
//
// Saving a table built from the table package's reference columns:
//
//	t := table.New("trades",
//	    table.NewDoubleColumn("price", prices),
//	    table.NewStringColumn("symbol", symbols),
//	)
//	dir, err := saw.SaveTable("/data", t)
//
// Reading it back:
//
//	got, err := saw.Read(dir)
//
// # Compression
//
// The writer picks Zstd for STRING and TEXT columns and Snappy for
// everything else by default; override per-tag with WithCompression.
// Every reader can decode Snappy-framed column files regardless of the
// table's actual per-column choices, since compress.Backend is
// recorded in the metadata document and dispatched from there.
package saw
