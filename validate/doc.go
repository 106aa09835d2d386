// Package validate implements the gated validation pipeline — Tokenise,
// Categorise, RequiredFields, BodyLength, Checksum — behind a single
// Validate call, plus a Validator that adds optional structured logging
// and Prometheus metrics around it.
package validate
