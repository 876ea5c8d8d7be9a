// Package coltype defines the closed set of column type tags the saw
// storage engine understands, and their canonical textual spellings used
// in the metadata document and in codec dispatch.
package coltype

import "fmt"

// Tag identifies the scalar domain type stored in one column.
type Tag uint8

const (
	Float Tag = iota + 1
	Double
	Integer
	Short
	Long
	Boolean
	LocalDate
	LocalTime
	LocalDateTime
	Instant
	String
	Text
)

// String returns the canonical uppercase wire spelling of the tag, the same
// text used in the metadata document's "type" field.
func (t Tag) String() string {
	switch t {
	case Float:
		return "FLOAT"
	case Double:
		return "DOUBLE"
	case Integer:
		return "INTEGER"
	case Short:
		return "SHORT"
	case Long:
		return "LONG"
	case Boolean:
		return "BOOLEAN"
	case LocalDate:
		return "LOCAL_DATE"
	case LocalTime:
		return "LOCAL_TIME"
	case LocalDateTime:
		return "LOCAL_DATE_TIME"
	case Instant:
		return "INSTANT"
	case String:
		return "STRING"
	case Text:
		return "TEXT"
	default:
		return "UNKNOWN"
	}
}

// Parse maps a wire spelling back to its Tag. Returns an error for any name
// outside the closed enumeration.
func Parse(name string) (Tag, error) {
	switch name {
	case "FLOAT":
		return Float, nil
	case "DOUBLE":
		return Double, nil
	case "INTEGER":
		return Integer, nil
	case "SHORT":
		return Short, nil
	case "LONG":
		return Long, nil
	case "BOOLEAN":
		return Boolean, nil
	case "LOCAL_DATE":
		return LocalDate, nil
	case "LOCAL_TIME":
		return LocalTime, nil
	case "LOCAL_DATE_TIME":
		return LocalDateTime, nil
	case "INSTANT":
		return Instant, nil
	case "STRING":
		return String, nil
	case "TEXT":
		return Text, nil
	default:
		return 0, fmt.Errorf("coltype: unknown type tag %q", name)
	}
}

// FixedWidth returns the natural big-endian byte width of one element for
// fixed-width tags, and false for STRING and TEXT, whose payloads are not a
// uniform number of bytes per row.
func (t Tag) FixedWidth() (int, bool) {
	switch t {
	case Float:
		return 4, true
	case Double:
		return 8, true
	case Integer:
		return 4, true
	case Short:
		return 2, true
	case Long:
		return 8, true
	case Boolean:
		return 1, true
	case LocalDate:
		return 4, true
	case LocalTime:
		return 4, true
	case LocalDateTime:
		return 8, true
	case Instant:
		return 8, true
	default:
		return 0, false
	}
}

// IsDictionary reports whether the tag is the dictionary-encoded STRING type.
func (t Tag) IsDictionary() bool {
	return t == String
}
