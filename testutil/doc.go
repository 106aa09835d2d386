// Package testutil provides shared FIX44 fixtures for this module's own
// test suites: a minimal dictionary.Schema covering the message types
// the fixtures use, and the raw wire messages themselves, as plain
// exported vars and consts with no test framework dependency.
package testutil
