/*
Package observability provides tools for monitoring organization trees.

Metrics turns guard lifecycle hooks into Prometheus counters and records the shape
of a tree (node count, depth, aggregate value) as gauges.
*/
package observability
