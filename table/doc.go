// Package table defines the minimal Table/Column capability sets the
// storage engine consumes (package saw never looks inside a caller's own
// table implementation beyond these interfaces) and ships a small
// reference implementation of both, concrete enough to round-trip through
// SaveTable/Read in tests and simple programs.
//
// This package deliberately does not implement sorting, joins, filters,
// or any other query surface — those are out of scope for the storage
// engine and are left to whatever richer table library a caller already
// has. The reference columns here exist only so the engine has something
// concrete to save and load.
package table
