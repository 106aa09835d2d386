// Package fixerrors holds the closed set of validation error kinds and
// Bag, the ordered per-call accumulator they collect into — a per-call
// value, never a shared global, unlike the original C++ implementation's
// process-wide errorBag.
//
// Every error Bag collects implements the standard error interface, so
// callers can use errors.Is/errors.As against the sentinel errors this
// package defines instead of matching on stringly-typed codes.
package fixerrors
