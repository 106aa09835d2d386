// Package dictionary is the in-memory projection of a FIX data dictionary.
//
// A Schema classifies every tag as header, trailer, or message-body, and
// encodes the per-message-type required-field tree, including the
// components and repeating groups that tree recurses through. It is built
// once, treated as read-only afterward, and shared freely across
// goroutines — every method on Schema is a pure lookup over data fixed at
// construction time.
//
// Two ways to build one:
//
//   - NewSchema, for callers who already parsed a dictionary into
//     FieldDef/Item/ComponentDef/MessageDef values (the "core" path
//     construction, where loading the dictionary file is somebody
//     else's problem).
//   - LoadFile / LoadReader, a FIX 4.4 XML dictionary loader built on
//     encoding/xml, for callers who just want to point at a file on disk.
//
// Both paths run the same validation: every FieldRef must resolve, every
// ComponentRef must resolve, and the component reference graph must be
// acyclic.
package dictionary
