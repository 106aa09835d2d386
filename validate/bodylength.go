package validate

import (
	"strconv"

	"github.com/bitwyre/fixparser/fixerrors"
	"github.com/bitwyre/fixparser/message"
)

// BodyLength recomputes tag 9 from the parsed header and body and
// compares it to the declared value.
//
// The computation sums, over every field in header ∪ body other than
// tag 8 and tag 9, len(decimal tag) + 1 ('=') + len(value) + 1
// (separator). The trailer is excluded entirely.
func BodyLength(msg *message.ParsedMessage, bag *fixerrors.Bag) bool {
	tag9, found := msg.HeaderField("BodyLength")
	if !found {
		bag.Add(fixerrors.BodyLengthMissingErr())
		return false
	}

	computed := 0
	for _, f := range msg.Header {
		if f.Number == 8 || f.Number == 9 {
			continue
		}
		computed += fieldWireLength(f)
	}
	for _, f := range msg.Body {
		computed += fieldWireLength(f)
	}

	declared, err := strconv.Atoi(tag9.Value)
	if err != nil || declared != computed {
		bag.Add(fixerrors.BodyLengthMismatchErr(computed, tag9.Value))
		return false
	}

	return true
}

func fieldWireLength(f message.ParsedField) int {
	return len(strconv.FormatUint(uint64(f.Number), 10)) + 1 + len(f.Value) + 1
}
