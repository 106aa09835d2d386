// Package metric provides a thin, locking wrapper around a private
// prometheus.Registry that packages elsewhere in this module register
// their own collectors against. It drops the service-specific "core
// platform metrics" (NATS connection state, per-service health gauges,
// and so on) a networked service would register here: a validation
// library has no NATS connection, no running services, and no HTTP
// handler of its own to expose them on — exposing /metrics over HTTP is
// the caller's transport concern, same as CLI output and session I/O.
package metric
