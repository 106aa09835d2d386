package fixerrors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Kind is the closed set of ten validation error kinds this module
// reports.
type Kind int

const (
	KindDictionaryLoadFailed Kind = iota
	KindMalformedToken
	KindUnknownTag
	KindUnknownMsgType
	KindRequiredMissing
	KindBodyLengthMissing
	KindBodyLengthMismatch
	KindChecksumSizeInvalid
	KindChecksumMalformed
	KindChecksumMismatch
)

func (k Kind) String() string {
	switch k {
	case KindDictionaryLoadFailed:
		return "DictionaryLoadFailed"
	case KindMalformedToken:
		return "MalformedToken"
	case KindUnknownTag:
		return "UnknownTag"
	case KindUnknownMsgType:
		return "UnknownMsgType"
	case KindRequiredMissing:
		return "RequiredMissing"
	case KindBodyLengthMissing:
		return "BodyLengthMissing"
	case KindBodyLengthMismatch:
		return "BodyLengthMismatch"
	case KindChecksumSizeInvalid:
		return "ChecksumSizeInvalid"
	case KindChecksumMalformed:
		return "ChecksumMalformed"
	case KindChecksumMismatch:
		return "ChecksumMismatch"
	default:
		return "Unknown"
	}
}

// Section names the part of a message a RequiredMissing error refers to.
type Section string

const (
	Header  Section = "HEADER"
	Body    Section = "BODY"
	Trailer Section = "TRAILER"
)

// Sentinel errors, one per Kind, so callers can use errors.Is against a
// specific failure mode without inspecting a string message.
var (
	ErrDictionaryLoadFailed = stderrors.New("fix: dictionary load failed")
	ErrMalformedToken       = stderrors.New("fix: malformed token")
	ErrUnknownTag           = stderrors.New("fix: unknown tag")
	ErrUnknownMsgType       = stderrors.New("fix: unknown message type")
	ErrRequiredMissing      = stderrors.New("fix: required field missing")
	ErrBodyLengthMissing    = stderrors.New("fix: body length missing")
	ErrBodyLengthMismatch   = stderrors.New("fix: body length mismatch")
	ErrChecksumSizeInvalid  = stderrors.New("fix: checksum size invalid")
	ErrChecksumMalformed    = stderrors.New("fix: checksum malformed")
	ErrChecksumMismatch     = stderrors.New("fix: checksum mismatch")
)

var sentinelByKind = map[Kind]error{
	KindDictionaryLoadFailed: ErrDictionaryLoadFailed,
	KindMalformedToken:       ErrMalformedToken,
	KindUnknownTag:           ErrUnknownTag,
	KindUnknownMsgType:       ErrUnknownMsgType,
	KindRequiredMissing:      ErrRequiredMissing,
	KindBodyLengthMissing:    ErrBodyLengthMissing,
	KindBodyLengthMismatch:   ErrBodyLengthMismatch,
	KindChecksumSizeInvalid:  ErrChecksumSizeInvalid,
	KindChecksumMalformed:    ErrChecksumMalformed,
	KindChecksumMismatch:     ErrChecksumMismatch,
}

// Error is a single validation failure. It always carries a Kind from
// the closed set above and unwraps to that kind's sentinel error, so
// errors.Is(err, fixerrors.ErrUnknownTag) works regardless of which
// stage raised it.
type Error struct {
	Kind    Kind
	Message string

	Tag     string  // UnknownTag
	MsgType string  // UnknownMsgType
	Section Section // RequiredMissing
	Name    string  // RequiredMissing

	Expected string // BodyLengthMismatch, ChecksumMismatch
	Got      string // BodyLengthMismatch, ChecksumMismatch, ChecksumSizeInvalid
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return sentinelByKind[e.Kind]
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// DictionaryLoadFailed reports that the schema loader could not read or
// parse a dictionary file.
func DictionaryLoadFailed(cause error) *Error {
	return newError(KindDictionaryLoadFailed, fmt.Sprintf("dictionary load failed: %v", cause))
}

// MalformedTokenErr reports a tokeniser input with no '=' or an empty
// tag.
func MalformedTokenErr(raw string) *Error {
	e := newError(KindMalformedToken, fmt.Sprintf("malformed token %q: expected tag=value", raw))
	return e
}

// UnknownTagErr reports a tag integer absent from the field catalogue.
func UnknownTagErr(tag string) *Error {
	e := newError(KindUnknownTag, fmt.Sprintf("unknown tag %s", tag))
	e.Tag = tag
	return e
}

// UnknownMsgTypeErr reports a tag 35 value with no matching MessageDef.
func UnknownMsgTypeErr(msgType string) *Error {
	e := newError(KindUnknownMsgType, fmt.Sprintf("unknown message type %q", msgType))
	e.MsgType = msgType
	return e
}

// RequiredMissingErr reports a required=Y field with no matching
// ParsedField in the given section.
func RequiredMissingErr(section Section, name string) *Error {
	e := newError(KindRequiredMissing, fmt.Sprintf("%s: required field %q is missing", section, name))
	e.Section = section
	e.Name = name
	return e
}

// BodyLengthMissingErr reports the absence of tag 9 in the header.
func BodyLengthMissingErr() *Error {
	return newError(KindBodyLengthMissing, "body length (tag 9) is missing from the header")
}

// BodyLengthMismatchErr reports a declared tag 9 value that does not
// match the computed body length. got is the raw, unparsed tag 9 value,
// so a non-numeric declaration is reported as-is rather than coerced.
func BodyLengthMismatchErr(expected int, got string) *Error {
	e := newError(KindBodyLengthMismatch, fmt.Sprintf("body length mismatch: expected %d, got %s", expected, got))
	e.Expected = fmt.Sprintf("%d", expected)
	e.Got = got
	return e
}

// ChecksumSizeInvalidErr reports a tag 10 value whose length is not 3.
func ChecksumSizeInvalidErr(got string) *Error {
	e := newError(KindChecksumSizeInvalid, fmt.Sprintf("checksum value %q must be exactly 3 characters", got))
	e.Got = got
	return e
}

// ChecksumMalformedErr reports raw bytes too short, or not ending in the
// expected 7-byte "10=NNN<sep>" suffix.
func ChecksumMalformedErr() *Error {
	return newError(KindChecksumMalformed, "message does not end with a well-formed checksum field")
}

// ChecksumMismatchErr reports a declared tag 10 value that does not
// match the computed checksum.
func ChecksumMismatchErr(expected, got string) *Error {
	e := newError(KindChecksumMismatch, fmt.Sprintf("checksum mismatch: expected %q, got %q", expected, got))
	e.Expected = expected
	e.Got = got
	return e
}

// Bag is the ordered, append-only accumulator of validation errors for
// one validation call. Its zero value is ready to use.
type Bag struct {
	errs []*Error
}

// Add appends an error to the bag in discovery order.
func (b *Bag) Add(err *Error) {
	b.errs = append(b.errs, err)
}

// Empty reports whether no errors have been added.
func (b *Bag) Empty() bool {
	return len(b.errs) == 0
}

// Errors returns the accumulated errors in discovery order. The
// returned slice must not be mutated by the caller.
func (b *Bag) Errors() []*Error {
	return b.errs
}

// Has reports whether the bag contains at least one error of the given
// kind.
func (b *Bag) Has(kind Kind) bool {
	for _, e := range b.errs {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Error joins every accumulated message into a single multi-line string
// so a Bag can be used anywhere a plain error is expected.
func (b *Bag) Error() string {
	if b.Empty() {
		return ""
	}
	msgs := make([]string, len(b.errs))
	for i, e := range b.errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}
