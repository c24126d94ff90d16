// Package driver orchestrates the build and score actions: a fixed-size
// worker pool that parses PDFs, fingerprints them, and persists the results
// (build), or partitions the fingerprint store across workers to find
// matches for a query document (score).
//
// The worker pool is a classic channel-fed fan-out, grounded on the
// semaphore-gated pools in the Geek0x0-pdf reference examples: a bounded
// number of goroutines pull tasks from a shared channel, and each worker
// is retired and replaced after a fixed number of tasks (--chunk) to bound
// any slow per-task resource leak across a long batch run.
package driver
