// Package message builds the categorised, structured view of a FIX
// message the rest of the validator operates on: ParsedField and
// ParsedMessage, produced by Categorise.
//
// Categorise takes the ordered tokens wire.Tokenize produced and a
// *dictionary.Schema, and buckets each field into header, body, or
// trailer purely by looking its name up in the schema's header/trailer
// membership tables — header takes precedence over trailer, trailer
// over body. A tag absent from the schema's field catalogue is reported
// through the caller's *fixerrors.Bag as UnknownTag and dropped from the
// parsed message; every other token lands in exactly one section.
// Malformed tokens never reach Categorise: the tokeniser filters them out.
//
// A ParsedMessage owns copies of every string it holds — unlike the
// original C++ implementation, whose Field/Tag structs kept referring to
// spans of the process-wide message buffer — so it outlives the raw
// bytes it was built from.
package message
