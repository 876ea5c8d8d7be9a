// Package frame provides the framing layer every column codec is built on:
// a compressed byte stream (see package compress) plus fixed-width
// big-endian scalar encode/decode and a length-prefixed modified-UTF-8
// string codec, the same wire encoding Java's DataOutput.writeUTF /
// DataInput.readUTF use (relevant because TEXT and STRING payloads must
// stay byte-compatible with that convention).
//
// Writers flush the underlying compressor periodically during large
// writes so that no single compressed block grows unboundedly; the exact
// cadence is not wire-visible.
package frame
