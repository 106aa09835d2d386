// Package config carries the validator's runtime options — separator,
// FIX dialect, dictionary path — as a typed struct with sane defaults,
// plus an optional YAML loader for callers who keep validator settings in
// the same config tree as the rest of their service. This is a much
// smaller surface than a live, NATS-KV-backed, hot-reloading
// configuration manager: a FIX dictionary and a wire separator are fixed
// for the lifetime of a Schema, so there is nothing here to hot-reload.
package config
