// Package fixparser validates a single FIX 4.4 tag-value wire message
// against a declarative dictionary: it checks tag recognition, the
// dictionary's required-field tree across header, body, and trailer
// (including nested groups and components), the declared body length
// (tag 9), and the checksum (tag 10).
//
// # Layers
//
// The module is organised the way a small validation library earns its
// packages, each with one job:
//
//   - dictionary: the parsed schema — fields, groups, components,
//     messages — and an XML loader for the on-disk dictionary format.
//   - wire: the tokeniser, splitting raw bytes into tag=value pairs.
//   - message: the categoriser, bucketing tokens into header/body/trailer
//     against a Schema.
//   - fixerrors: the closed set of validation error kinds and the
//     per-call error bag they accumulate into.
//   - validate: the gated pipeline tying the above together, plus
//     optional structured logging and Prometheus metrics.
//   - config: runtime options (separator, FIX version, dictionary path).
//   - metric, health, testutil: ambient infrastructure shared by the
//     packages above and by this module's own test suites.
//
// # Basic usage
//
//	schema, err := dictionary.LoadFile("/usr/local/etc/fixparser/FIX44.xml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	outcome := validate.Validate(schema, rawMessage, config.Default())
//	if !outcome.Valid {
//	    for _, e := range outcome.Errors {
//	        log.Println(e)
//	    }
//	}
//
// # Design
//
// The Schema is the only shared, long-lived state and is read-only
// after construction, so it may be freely shared across goroutines. A
// caller may validate many messages concurrently — on its own or via
// validate.ValidateBatch — provided each call gets its own outcome; this
// module carries no process-wide mutable state.
//
// Pretty-printing to a terminal, FIX session and transport handling, and
// non-FIX44 dialects are out of scope: this is a validation library, not
// a FIX engine. dictionary.LoadFile exists as a convenience so the
// library is usable standalone, but Validate itself only ever consumes
// an already-built *dictionary.Schema — it never touches a filesystem.
package fixparser
