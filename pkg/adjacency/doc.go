// Package adjacency derives the neighbor relation between regions from
// shared boundary arcs.
//
// The derivation is two linear passes. [Index] walks every resolved
// geometry's arc references and records, per canonical arc id, the set of
// region codes traversing it. [Build] then turns that ownership table into a
// symmetric neighbor mapping: every arc owned by two or more regions makes
// each pair of its owners mutually adjacent; arcs with a single owner
// (coastline, interior rings) contribute nothing.
//
// The output is keyed by the full recognized-code universe, so isolated
// regions appear with an empty neighbor list rather than being absent, and
// codes outside the universe never appear at all. Neighbor lists are sorted
// lexicographically for stable, diff-friendly output.
package adjacency
