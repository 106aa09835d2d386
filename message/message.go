package message

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitwyre/fixparser/dictionary"
	"github.com/bitwyre/fixparser/fixerrors"
	"github.com/bitwyre/fixparser/wire"
)

// ParsedField is one field of a categorised message: its tag number, its
// dictionary name, and its value exactly as it appeared on the wire.
// Values are never type-coerced or validated against an enum — this
// module only checks structure, never value domains.
type ParsedField struct {
	Number uint32
	Name   string
	Value  string
}

// ParsedMessage is the categorised view of one FIX message: its fields
// bucketed into header, body, and trailer, plus the raw bytes it was
// built from (needed byte-exact by the checksum validator).
type ParsedMessage struct {
	Header  []ParsedField
	Body    []ParsedField
	Trailer []ParsedField
	Raw     []byte
}

// MsgType returns the value of tag 35 in the header, if present.
func (m *ParsedMessage) MsgType() (string, bool) {
	for _, f := range m.Header {
		if f.Number == 35 {
			return f.Value, true
		}
	}
	return "", false
}

// fieldByName looks up the first field named name in a specific section.
func fieldByName(fields []ParsedField, name string) (ParsedField, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return ParsedField{}, false
}

// HeaderField looks up a header field by dictionary name.
func (m *ParsedMessage) HeaderField(name string) (ParsedField, bool) {
	return fieldByName(m.Header, name)
}

// BodyField looks up a body field by dictionary name.
func (m *ParsedMessage) BodyField(name string) (ParsedField, bool) {
	return fieldByName(m.Body, name)
}

// TrailerField looks up a trailer field by dictionary name.
func (m *ParsedMessage) TrailerField(name string) (ParsedField, bool) {
	return fieldByName(m.Trailer, name)
}

// Categorise walks tokens in order and assigns each to header, body, or
// trailer against schema, appending an UnknownTag error to bag for any
// tag not present in the field catalogue. Malformed tokens (already
// filtered out by the tokeniser) are reported by the caller, not here —
// Categorise only ever sees well-formed (tag, value) pairs.
//
// Duplicate tags are preserved: this function never deduplicates.
func Categorise(tokens []wire.Token, schema *dictionary.Schema, bag *fixerrors.Bag) *ParsedMessage {
	msg := &ParsedMessage{}

	for _, tok := range tokens {
		number, err := strconv.ParseUint(tok.Tag, 10, 32)
		if err != nil {
			bag.Add(fixerrors.UnknownTagErr(tok.Tag))
			continue
		}

		def, ok := schema.FieldByNumber(uint32(number))
		if !ok {
			bag.Add(fixerrors.UnknownTagErr(tok.Tag))
			continue
		}

		field := ParsedField{Number: def.Number, Name: def.Name, Value: tok.Value}

		switch {
		case schema.HeaderContains(def.Name):
			msg.Header = append(msg.Header, field)
		case schema.TrailerContains(def.Name):
			msg.Trailer = append(msg.Trailer, field)
		default:
			msg.Body = append(msg.Body, field)
		}
	}

	return msg
}

// Dump renders a ParsedMessage as a human-readable string, grouped by
// section in the order header, body, trailer. It performs no I/O — it
// is a pure formatting helper a caller's own CLI or logger can print;
// presentation and I/O are the caller's concern; this only builds the
// string.
func (m *ParsedMessage) Dump() string {
	var b strings.Builder
	dumpSection(&b, "HEADER", m.Header)
	dumpSection(&b, "BODY", m.Body)
	dumpSection(&b, "TRAILER", m.Trailer)
	return b.String()
}

func dumpSection(b *strings.Builder, title string, fields []ParsedField) {
	fmt.Fprintf(b, "%s\n", title)
	for _, f := range fields {
		fmt.Fprintf(b, "  %d\t%s: %s\n", f.Number, f.Name, f.Value)
	}
}
