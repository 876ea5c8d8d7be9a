package saw

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/colstore/saw/internal/collision"
	"github.com/colstore/saw/internal/hash"
)

// maxSanitizedNameLen bounds the display-name portion of a column id so
// the full id stays a legal filename on both POSIX and Windows.
const maxSanitizedNameLen = 48

// sanitizeName rewrites name into a legal POSIX/Windows filename fragment:
// only letters, digits, underscore, and hyphen survive, everything else
// becomes an underscore, and the result is truncated to
// maxSanitizedNameLen bytes. An all-invalid or empty name falls back to
// "column".
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	s := b.String()
	if len(s) > maxSanitizedNameLen {
		s = s[:maxSanitizedNameLen]
	}
	s = strings.Trim(s, "_")
	if s == "" {
		return "column"
	}
	return s
}

// columnIDs assigns a stable, unique, filesystem-legal id to each of the
// given display names, in order: a zero-padded column index, an
// underscore, and the sanitized display name. The column index alone
// already guarantees id uniqueness, but a sanitized-name collision (two
// distinct display names, like "price!" and "price?", sanitizing to the
// same text) is still flagged via a Tracker and disambiguated with an
// 8-hex-digit xxhash of the original (unsanitized) display name, so ids
// stay meaningfully distinct rather than differing only in their numeric
// prefix.
func columnIDs(names []string) []string {
	indexWidth := len(strconv.Itoa(len(names) - 1))
	if indexWidth < 2 {
		indexWidth = 2
	}

	ids := make([]string, len(names))
	tr := collision.NewTracker()

	for i, name := range names {
		sanitized := sanitizeName(name)
		suffix := ""
		if collided, err := tr.Track(sanitized, name); err == nil && collided {
			suffix = fmt.Sprintf("_%08x", uint32(hash.ID(name)))
		}

		ids[i] = fmt.Sprintf("%0*d_%s%s", indexWidth, i, sanitized, suffix)
	}

	return ids
}
