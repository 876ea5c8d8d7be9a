// Package compress provides the streaming compression backends the frame
// codec layers under a column file.
//
// Snappy is the wire-mandated default: every reader must be able to decode
// a Snappy-framed column file regardless of what the writer that produced
// it preferred. Zstd, LZ4 and None are additional backends a writer may
// select per column (recorded in that column's metadata record) when a
// better ratio, or raw speed, matters more than universal compatibility.
//
// Unlike a one-shot Compress([]byte)/Decompress([]byte) codec, every
// backend here is a streaming Encoder/Decoder: column payloads can run to
// tens of millions of rows, and the frame codec above this package needs
// to flush the compressor periodically so no single compressed block grows
// unboundedly.
package compress
