/*
Package observability turns engine lifecycle hooks into logs and metrics.

Metrics registers Prometheus collectors for runs, comparisons, swaps and step
counts; LoggingHooks writes one structured record per run. Both return
domain.LifecycleHooks values that can be merged with Combine and passed to
sortscope.WithLifecycleHooks.
*/
package observability
