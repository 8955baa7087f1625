// Package fingerprint computes a stable diagnostic identity for a node
// group's static configuration, so callers can tell two node groups apart
// in a log line without printing every field.
package fingerprint

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Config hashes (name, base, nodeIDLen, msgIDLen, typeNames) into a stable
// uint64. typeNames must already be in list order: changing that order
// changes the fingerprint, matching the wire-contract rule that list order
// is not renegotiable (spec.md §3).
func Config(name string, base uint32, nodeIDLen, msgIDLen uint8, typeNames []string) uint64 {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('|')
	b.WriteString(strconv.FormatUint(uint64(base), 16))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(int(nodeIDLen)))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(int(msgIDLen)))

	for _, n := range typeNames {
		b.WriteByte('|')
		b.WriteString(n)
	}

	return xxhash.Sum64String(b.String())
}
