// Package network is the core of the tool: it reads whitespace-delimited
// interaction tables, projects each row down to its two endpoint columns,
// merges all files into one ordered deduplicated edge list, and writes the
// result as the two combined-network artifacts.
//
// # Data model
//
// An Edge is an order-sensitive pair of entity identifiers. A Network is the
// running union of edges across all input files: a slice preserves the order
// of first occurrences, a set keyed on the pair makes duplicate lookups O(1).
// In undirected mode the set key is orientation-normalized, so (B,A) collapses
// into a previously seen (A,B); the orientation that was seen first is the one
// that survives into the output.
//
// # Failure model
//
// The combiner is fail-fast and atomic. Any file that cannot be read or lacks
// the required endpoint columns aborts the whole run, and no artifact is
// written. Artifacts are written to temp files and renamed into place only
// after both have been produced, so a crash mid-write never leaves a
// half-written combined network behind.
package network
