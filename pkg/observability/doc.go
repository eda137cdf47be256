/*
Package observability exposes Prometheus metrics for gate definitions and
transition authorizations.

Each Metrics value owns its own prometheus.Registry, so several engines (or
tests) can run in one process without colliding on metric names.
*/
package observability
