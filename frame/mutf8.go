package frame

import (
	"errors"
	"strings"
	"unicode/utf16"
)

// errTruncatedMUTF8 marks a modified-UTF-8 byte sequence that ends mid-rune.
var errTruncatedMUTF8 = errors.New("frame: truncated modified-UTF-8 sequence")

// errInvalidMUTF8 marks a leading byte that does not start any valid
// modified-UTF-8 sequence.
var errInvalidMUTF8 = errors.New("frame: invalid modified-UTF-8 sequence")

// mutf8Len returns the number of modified-UTF-8 bytes needed to encode r.
// Unlike standard UTF-8, the NUL rune costs two bytes and any rune outside
// the Basic Multilingual Plane is represented as a surrogate pair, each
// half encoded as its own three-byte sequence (six bytes total), matching
// the encoding produced by Java's DataOutput.writeUTF.
func mutf8Len(r rune) int {
	switch {
	case r == 0:
		return 2
	case r <= 0x7F:
		return 1
	case r <= 0x7FF:
		return 2
	case r <= 0xFFFF:
		return 3
	default:
		return 6
	}
}

// mutf8EncodedLen returns the total modified-UTF-8 byte length of s.
func mutf8EncodedLen(s string) int {
	n := 0
	for _, r := range s {
		n += mutf8Len(r)
	}

	return n
}

// appendMUTF8Rune appends the modified-UTF-8 encoding of r to buf.
func appendMUTF8Rune(buf []byte, r rune) []byte {
	switch {
	case r == 0:
		return append(buf, 0xC0, 0x80)
	case r <= 0x7F:
		return append(buf, byte(r))
	case r <= 0x7FF:
		return append(buf, byte(0xC0|(r>>6)), byte(0x80|(r&0x3F)))
	case r <= 0xFFFF:
		return append(buf,
			byte(0xE0|(r>>12)),
			byte(0x80|((r>>6)&0x3F)),
			byte(0x80|(r&0x3F)),
		)
	default:
		hi, lo := utf16.EncodeRune(r)
		buf = appendMUTF8BMP(buf, hi)
		buf = appendMUTF8BMP(buf, lo)

		return buf
	}
}

// appendMUTF8BMP appends the 3-byte modified-UTF-8 sequence for a BMP code
// point (including lone surrogate halves, which only arise as one side of
// a split supplementary-plane rune).
func appendMUTF8BMP(buf []byte, r rune) []byte {
	return append(buf,
		byte(0xE0|(r>>12)),
		byte(0x80|((r>>6)&0x3F)),
		byte(0x80|(r&0x3F)),
	)
}

// appendMUTF8 appends the modified-UTF-8 encoding of s to dst, growing it
// as needed, and returns the extended slice. Callers that already hold a
// reusable buffer (Writer.WriteString does, via internal/pool) pass its
// backing slice as dst to avoid a fresh allocation per string.
func appendMUTF8(dst []byte, s string) []byte {
	for _, r := range s {
		dst = appendMUTF8Rune(dst, r)
	}

	return dst
}

// encodeMUTF8 encodes s as modified-UTF-8 into a freshly allocated slice.
func encodeMUTF8(s string) []byte {
	return appendMUTF8(make([]byte, 0, mutf8EncodedLen(s)), s)
}

// decodeMUTF8 decodes a modified-UTF-8 byte slice back into a string,
// recombining split surrogate pairs into their original supplementary-plane
// rune.
func decodeMUTF8(data []byte) (string, error) {
	var sb strings.Builder
	sb.Grow(len(data))

	i := 0
	for i < len(data) {
		r, n, err := decodeMUTF8Char(data[i:])
		if err != nil {
			return "", err
		}
		i += n

		if utf16.IsSurrogate(r) {
			r2, n2, err := decodeMUTF8Char(data[i:])
			if err != nil {
				return "", err
			}

			combined := utf16.DecodeRune(r, r2)
			if combined == utf16.ReplacementChar {
				return "", errInvalidMUTF8
			}
			i += n2
			sb.WriteRune(combined)

			continue
		}

		sb.WriteRune(r)
	}

	return sb.String(), nil
}

// decodeMUTF8Char decodes a single modified-UTF-8 character from the start
// of data, returning the rune (or, for one half of a split surrogate pair,
// the raw surrogate value) and the number of bytes consumed.
func decodeMUTF8Char(data []byte) (rune, int, error) {
	if len(data) == 0 {
		return 0, 0, errTruncatedMUTF8
	}

	b0 := data[0]
	switch {
	case b0&0x80 == 0:
		return rune(b0), 1, nil
	case b0&0xE0 == 0xC0:
		if len(data) < 2 {
			return 0, 0, errTruncatedMUTF8
		}

		return rune(b0&0x1F)<<6 | rune(data[1]&0x3F), 2, nil
	case b0&0xF0 == 0xE0:
		if len(data) < 3 {
			return 0, 0, errTruncatedMUTF8
		}

		r := rune(b0&0x0F)<<12 | rune(data[1]&0x3F)<<6 | rune(data[2]&0x3F)

		return r, 3, nil
	default:
		return 0, 0, errInvalidMUTF8
	}
}
