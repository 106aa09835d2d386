// Package wire implements the tag-value tokeniser: it splits a raw FIX
// message into an ordered list of (tag, value) pairs without
// interpreting them against any dictionary. It never rewrites bytes and
// never reorders fields.
package wire
