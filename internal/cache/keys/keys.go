// Package keys derives deterministic cache keys for geometry
// documents.
package keys

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Key digests a document into a fixed-size cache key. Runs of ASCII
// whitespace are collapsed first so trivially reformatted copies of the
// same document share a key; parsing is pure, so equal inputs always
// yield equal summaries.
func Key(format string, payload []byte) string {
	sum := xxhash.Sum64(normalize(payload))
	return fmt.Sprintf("geom:%s:d=%016x", format, sum)
}

// normalize trims the payload and collapses ASCII whitespace runs to a
// single space.
func normalize(b []byte) []byte {
	out := make([]byte, 0, len(b))
	wasWS := false
	for _, c := range b {
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f' {
			if !wasWS && len(out) > 0 {
				out = append(out, ' ')
			}
			wasWS = true
			continue
		}
		out = append(out, c)
		wasWS = false
	}
	for len(out) > 0 && out[len(out)-1] == ' ' {
		out = out[:len(out)-1]
	}
	return out
}
