// Package codec implements the per-column-type binary layouts that sit on
// top of package frame's scalar and string primitives: one encode/decode
// pair per coltype.Tag, dispatched by the table writer/reader against the
// table.Column sub-interface the tag requires.
//
// Every codec in this package reads and writes a column's payload as a
// single stream with no internal length prefix or type tag; the caller
// supplies row count (and, for STRING, key width and unique count) from
// the table metadata document.
package codec
