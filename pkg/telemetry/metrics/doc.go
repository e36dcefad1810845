// Package metrics provides Prometheus instrumentation for container field
// resolution.
//
// Metrics are optional: a container built without a Collector records
// nothing. A Collector registers on an injectable prometheus.Registry so
// that tests and embedding applications control exposure.
//
// Exposed metrics (namespace "lazyenv"):
//   - lazyenv_resolutions_total{container,outcome}: resolution attempts by
//     outcome ("success", "missing_required", "type_coercion",
//     "constraint")
//   - lazyenv_cache_hits_total{container}: reads served from the field
//     cache without consulting the source
//   - lazyenv_overrides_total{container}: explicit field overrides
//   - lazyenv_fields{container}: number of declared fields
package metrics
