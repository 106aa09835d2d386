package validate

import (
	"fmt"

	"github.com/bitwyre/fixparser/fixerrors"
	"github.com/bitwyre/fixparser/message"
)

// checksumSuffixLen is the width of the trailing "10=NNN<sep>" field
// this validator assumes every valid message ends with.
const checksumSuffixLen = 7

// Checksum recomputes tag 10 from the raw wire bytes, modulo 256, and
// compares it to the declared value.
//
// The sum runs over raw[0 : len(raw)-7], i.e. everything before the
// trailing "10=NNN<sep>" field. Each byte equal to separator contributes
// the value 1 to the sum rather than its literal ordinal — this is what
// keeps the computation identical whether separator is the canonical
// SOH (0x01, whose ordinal already is 1) or a print-safe surrogate like
// '|' used by test fixtures.
func Checksum(msg *message.ParsedMessage, separator byte, bag *fixerrors.Bag) bool {
	cs, found := msg.TrailerField("CheckSum")
	if !found {
		bag.Add(fixerrors.ChecksumMalformedErr())
		return false
	}
	if len(cs.Value) != 3 {
		bag.Add(fixerrors.ChecksumSizeInvalidErr(cs.Value))
		return false
	}

	raw := msg.Raw
	if len(raw) < checksumSuffixLen {
		bag.Add(fixerrors.ChecksumMalformedErr())
		return false
	}

	prefixLen := len(raw) - checksumSuffixLen
	suffix := raw[prefixLen:]
	if string(suffix[0:3]) != "10=" || suffix[checksumSuffixLen-1] != separator {
		bag.Add(fixerrors.ChecksumMalformedErr())
		return false
	}

	var sum int
	for _, b := range raw[:prefixLen] {
		if b == separator {
			sum++
		} else {
			sum += int(b)
		}
	}
	sum %= 256

	computed := fmt.Sprintf("%03d", sum)
	if computed != cs.Value {
		bag.Add(fixerrors.ChecksumMismatchErr(computed, cs.Value))
		return false
	}

	return true
}
