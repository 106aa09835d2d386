// Package health provides a thread-safe status registry: a small
// Healthy/Degraded/Unhealthy three-state model with a Monitor for
// tracking several named components at once. A validation library has
// no long-running services to watch, so this drops the component health
// checker integration and error-message sanitizer a networked service
// would need (those exist to scrub URLs, paths, and credentials out of
// live service errors before they reach a status page — a FIX
// validation error never carries any of that, see DESIGN.md). What
// remains is useful on its own: reporting whether a Schema loaded
// successfully, and summarising the error rate across a batch of
// validation runs.
package health
