// Package source turns raw trip data into the batch stream the pipeline
// consumes. It reads CSV spools with timestamp inference, merges multiple
// sorted spools into one ordered record stream, resamples records into
// fixed-frequency time buckets, and exposes an infinite cyclic cursor over
// the bucket list.
//
// A bucket with no records yields an empty batch, never an error; this is
// what keeps sparse time ranges from halting downstream stages.
package source
