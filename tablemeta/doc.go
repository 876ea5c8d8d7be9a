// Package tablemeta defines the table metadata document: table name, row
// count, and per-column id/type/name/compression/keyWidth/uniqueCount,
// marshaled to and from the JSON file that accompanies every saved table.
package tablemeta
